package repository

import (
	"database/sql"
	"time"

	"fitbot/internal/models"
)

// CalendarRepository хранит материализованные дни календаря
type CalendarRepository struct {
	db *sql.DB
}

// NewCalendarRepository создаёт репозиторий календаря
func NewCalendarRepository(db *sql.DB) *CalendarRepository {
	return &CalendarRepository{db: db}
}

// Upsert записывает день календаря. Повторная запись того же дня
// обновляет план, но не трогает уже выставленный статус done/skipped
func (r *CalendarRepository) Upsert(day models.CalendarDay) error {
	_, err := r.db.Exec(`
		INSERT INTO public.calendar_days
		(user_id, date, day_type, status, workout_key, level, kcal, protein, fat, carbs, note)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (user_id, date)
		DO UPDATE SET day_type = $3, workout_key = $5, level = $6,
			kcal = $7, protein = $8, fat = $9, carbs = $10, updated_at = NOW()`,
		day.UserID, day.Date.Format("2006-01-02"), day.DayType, day.Status,
		day.WorkoutKey, day.Level,
		day.Macros.Kcal, day.Macros.Protein, day.Macros.Fat, day.Macros.Carbs,
		day.Note,
	)
	return err
}

// Get возвращает день календаря, nil если день не материализован
func (r *CalendarRepository) Get(userID int, date time.Time) (*models.CalendarDay, error) {
	row := r.db.QueryRow(`
		SELECT id, user_id, date, day_type, status,
			COALESCE(workout_key, ''), COALESCE(level, ''),
			COALESCE(kcal, 0), COALESCE(protein, 0), COALESCE(fat, 0), COALESCE(carbs, 0),
			COALESCE(note, '')
		FROM public.calendar_days
		WHERE user_id = $1 AND date = $2`,
		userID, date.Format("2006-01-02"))

	day, err := scanCalendarDay(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return day, nil
}

// SetStatus меняет статус дня
func (r *CalendarRepository) SetStatus(userID int, date time.Time, status models.DayStatus) error {
	_, err := r.db.Exec(`
		UPDATE public.calendar_days SET status = $1, updated_at = NOW()
		WHERE user_id = $2 AND date = $3`,
		status, userID, date.Format("2006-01-02"))
	return err
}

// SetLevel меняет уровень сложности дня
func (r *CalendarRepository) SetLevel(userID int, date time.Time, level models.Level) error {
	_, err := r.db.Exec(`
		UPDATE public.calendar_days SET level = $1, updated_at = NOW()
		WHERE user_id = $2 AND date = $3`,
		level, userID, date.Format("2006-01-02"))
	return err
}

// SetNote сохраняет комментарий к дню
func (r *CalendarRepository) SetNote(userID int, date time.Time, note string) error {
	_, err := r.db.Exec(`
		UPDATE public.calendar_days SET note = $1, updated_at = NOW()
		WHERE user_id = $2 AND date = $3`,
		note, userID, date.Format("2006-01-02"))
	return err
}

// MarkSkippedBefore помечает пропущенными все planned-дни раньше даты.
// Возвращает число затронутых дней
func (r *CalendarRepository) MarkSkippedBefore(userID int, date time.Time) (int, error) {
	res, err := r.db.Exec(`
		UPDATE public.calendar_days SET status = 'skipped', updated_at = NOW()
		WHERE user_id = $1 AND date < $2 AND status = 'planned'`,
		userID, date.Format("2006-01-02"))
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	return int(n), err
}

// ListRange возвращает дни в диапазоне [from, to] по возрастанию даты
func (r *CalendarRepository) ListRange(userID int, from, to time.Time) ([]models.CalendarDay, error) {
	rows, err := r.db.Query(`
		SELECT id, user_id, date, day_type, status,
			COALESCE(workout_key, ''), COALESCE(level, ''),
			COALESCE(kcal, 0), COALESCE(protein, 0), COALESCE(fat, 0), COALESCE(carbs, 0),
			COALESCE(note, '')
		FROM public.calendar_days
		WHERE user_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date`,
		userID, from.Format("2006-01-02"), to.Format("2006-01-02"))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var days []models.CalendarDay
	for rows.Next() {
		day, err := scanCalendarDay(rows)
		if err != nil {
			continue
		}
		days = append(days, *day)
	}
	return days, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCalendarDay(row rowScanner) (*models.CalendarDay, error) {
	var day models.CalendarDay
	err := row.Scan(
		&day.ID, &day.UserID, &day.Date, &day.DayType, &day.Status,
		&day.WorkoutKey, &day.Level,
		&day.Macros.Kcal, &day.Macros.Protein, &day.Macros.Fat, &day.Macros.Carbs,
		&day.Note,
	)
	if err != nil {
		return nil, err
	}
	return &day, nil
}
