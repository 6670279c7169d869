package repository

import (
	"database/sql"

	"fitbot/internal/models"
)

// ProgressRepository хранит замеры тела
type ProgressRepository struct {
	db *sql.DB
}

// NewProgressRepository создаёт репозиторий замеров
func NewProgressRepository(db *sql.DB) *ProgressRepository {
	return &ProgressRepository{db: db}
}

// Add добавляет замер и возвращает его id
func (r *ProgressRepository) Add(entry models.ProgressEntry) (int, error) {
	var id int
	err := r.db.QueryRow(`
		INSERT INTO public.progress_logs
		(user_id, date, weight, waist, belly, biceps, chest, note)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		entry.UserID, entry.Date.Format("2006-01-02"),
		nullFloat(entry.Weight), nullFloat(entry.Waist), nullFloat(entry.Belly),
		nullFloat(entry.Biceps), nullFloat(entry.Chest), entry.Note,
	).Scan(&id)
	return id, err
}

// List возвращает замеры пользователя по возрастанию даты
func (r *ProgressRepository) List(userID int) ([]models.ProgressEntry, error) {
	rows, err := r.db.Query(`
		SELECT id, user_id, date,
			COALESCE(weight, 0), COALESCE(waist, 0), COALESCE(belly, 0),
			COALESCE(biceps, 0), COALESCE(chest, 0), COALESCE(note, ''), created_at
		FROM public.progress_logs
		WHERE user_id = $1
		ORDER BY date, id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.ProgressEntry
	for rows.Next() {
		var e models.ProgressEntry
		if err := rows.Scan(
			&e.ID, &e.UserID, &e.Date,
			&e.Weight, &e.Waist, &e.Belly, &e.Biceps, &e.Chest,
			&e.Note, &e.CreatedAt,
		); err != nil {
			continue
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Latest возвращает последний замер, nil если замеров нет
func (r *ProgressRepository) Latest(userID int) (*models.ProgressEntry, error) {
	var e models.ProgressEntry
	err := r.db.QueryRow(`
		SELECT id, user_id, date,
			COALESCE(weight, 0), COALESCE(waist, 0), COALESCE(belly, 0),
			COALESCE(biceps, 0), COALESCE(chest, 0), COALESCE(note, ''), created_at
		FROM public.progress_logs
		WHERE user_id = $1
		ORDER BY date DESC, id DESC
		LIMIT 1`, userID).Scan(
		&e.ID, &e.UserID, &e.Date,
		&e.Weight, &e.Waist, &e.Belly, &e.Biceps, &e.Chest,
		&e.Note, &e.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Update перезаписывает ненулевые поля замера пользователя
func (r *ProgressRepository) Update(userID, entryID int, entry models.ProgressEntry) error {
	_, err := r.db.Exec(`
		UPDATE public.progress_logs SET
			weight = COALESCE($1, weight),
			waist = COALESCE($2, waist),
			belly = COALESCE($3, belly),
			biceps = COALESCE($4, biceps),
			chest = COALESCE($5, chest),
			note = COALESCE($6, note)
		WHERE id = $7 AND user_id = $8`,
		nullFloat(entry.Weight), nullFloat(entry.Waist), nullFloat(entry.Belly),
		nullFloat(entry.Biceps), nullFloat(entry.Chest), nullString(entry.Note),
		entryID, userID,
	)
	return err
}

// Delete удаляет замер пользователя
func (r *ProgressRepository) Delete(userID, entryID int) error {
	_, err := r.db.Exec(
		"DELETE FROM public.progress_logs WHERE id = $1 AND user_id = $2",
		entryID, userID)
	return err
}

// nullFloat превращает нулевое значение в NULL: незаполненные поля
// замера не должны выглядеть как реальный ноль
func nullFloat(v float64) sql.NullFloat64 {
	return sql.NullFloat64{Float64: v, Valid: v != 0}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
