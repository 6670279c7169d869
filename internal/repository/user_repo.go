package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"fitbot/internal/models"
)

// UserRepository работает с пользователями и их настройками
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository создаёт репозиторий пользователей
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetOrCreate возвращает пользователя по tg_id, создавая его при первом
// обращении вместе со строкой настроек
func (r *UserRepository) GetOrCreate(tgID int64, name, tz string, chatID int64) (int, error) {
	var id int
	err := r.db.QueryRow("SELECT id FROM public.users WHERE tg_id = $1", tgID).Scan(&id)
	if err == nil {
		// chat_id = 0 приходит из HTTP API и не должен затирать чат бота
		_, err = r.db.Exec(
			"UPDATE public.users SET name = $1, tz = $2, chat_id = COALESCE(NULLIF($3, 0), chat_id) WHERE id = $4",
			name, tz, chatID, id,
		)
		return id, err
	}
	if err != sql.ErrNoRows {
		return 0, err
	}

	err = r.db.QueryRow(`
		INSERT INTO public.users (tg_id, name, tz, chat_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		tgID, name, tz, chatID,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	_, err = r.db.Exec("INSERT INTO public.settings (user_id) VALUES ($1)", id)
	return id, err
}

// GetByID возвращает пользователя по внутреннему ID
func (r *UserRepository) GetByID(id int) (*models.User, error) {
	u := &models.User{}
	var name, tz sql.NullString
	var chatID sql.NullInt64
	err := r.db.QueryRow(`
		SELECT id, tg_id, name, tz, chat_id, created_at
		FROM public.users WHERE id = $1`, id).Scan(
		&u.ID, &u.TgID, &name, &tz, &chatID, &u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	u.Name = name.String
	u.TZ = tz.String
	u.ChatID = chatID.Int64
	return u, nil
}

// ListIDs возвращает ID всех пользователей
func (r *UserRepository) ListIDs() ([]int, error) {
	rows, err := r.db.Query("SELECT id FROM public.users ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// GetSettings возвращает настройки пользователя
func (r *UserRepository) GetSettings(userID int) (*models.Settings, error) {
	s := &models.Settings{UserID: userID, Reminders: map[string]models.ReminderConfig{}}
	var startDate sql.NullTime
	var level string
	var remindersJSON string
	err := r.db.QueryRow(`
		SELECT start_date, level, reminders_json, updated_at
		FROM public.settings WHERE user_id = $1`, userID).Scan(
		&startDate, &level, &remindersJSON, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if startDate.Valid {
		d := startDate.Time
		s.StartDate = &d
	}
	s.Level = models.Level(level)
	if err := json.Unmarshal([]byte(remindersJSON), &s.Reminders); err != nil {
		return nil, fmt.Errorf("не удалось разобрать reminders_json: %w", err)
	}
	return s, nil
}

// SetStartDate задаёт дату начала цикла (позиция 0)
func (r *UserRepository) SetStartDate(userID int, date time.Time) error {
	_, err := r.db.Exec(
		"UPDATE public.settings SET start_date = $1, updated_at = NOW() WHERE user_id = $2",
		date.Format("2006-01-02"), userID,
	)
	return err
}

// SetLevel сохраняет выбранный уровень сложности
func (r *UserRepository) SetLevel(userID int, level models.Level) error {
	_, err := r.db.Exec(
		"UPDATE public.settings SET level = $1, updated_at = NOW() WHERE user_id = $2",
		string(level), userID,
	)
	return err
}

// SetReminders сохраняет настройки напоминаний
func (r *UserRepository) SetReminders(userID int, reminders map[string]models.ReminderConfig) error {
	data, err := json.Marshal(reminders)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(
		"UPDATE public.settings SET reminders_json = $1, updated_at = NOW() WHERE user_id = $2",
		string(data), userID,
	)
	return err
}
