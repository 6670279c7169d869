package repository

import (
	"database/sql"
	"time"

	"fitbot/internal/models"
	"fitbot/internal/progression"
)

// OverrideRepository хранит прогрессии по упражнениям
type OverrideRepository struct {
	db *sql.DB
}

// NewOverrideRepository создаёт репозиторий прогрессий
func NewOverrideRepository(db *sql.DB) *OverrideRepository {
	return &OverrideRepository{db: db}
}

// ForUser возвращает ledger, привязанный к одному пользователю.
// Реализует progression.Ledger
func (r *OverrideRepository) ForUser(userID int) progression.Ledger {
	return &userLedger{db: r.db, userID: userID}
}

// List возвращает все прогрессии пользователя
func (r *OverrideRepository) List(userID int) ([]models.Override, error) {
	rows, err := r.db.Query(`
		SELECT exercise_name, delta_text, applied_at
		FROM public.overrides
		WHERE user_id = $1
		ORDER BY exercise_name`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Override
	for rows.Next() {
		var o models.Override
		if err := rows.Scan(&o.ExerciseName, &o.DeltaText, &o.AppliedAt); err != nil {
			continue
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

// userLedger — progression.Ledger поверх Postgres для одного пользователя.
// Upsert атомарен на уровне строки, последний пишущий выигрывает.
type userLedger struct {
	db     *sql.DB
	userID int
}

func (l *userLedger) SetOverride(exerciseName, deltaText string, at time.Time) error {
	_, err := l.db.Exec(`
		INSERT INTO public.overrides (user_id, exercise_name, delta_text, applied_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, exercise_name)
		DO UPDATE SET delta_text = $3, applied_at = $4`,
		l.userID, exerciseName, deltaText, at,
	)
	return err
}

func (l *userLedger) GetOverride(exerciseName string) (string, bool, error) {
	var delta string
	err := l.db.QueryRow(`
		SELECT delta_text FROM public.overrides
		WHERE user_id = $1 AND exercise_name = $2`,
		l.userID, exerciseName,
	).Scan(&delta)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return delta, true, nil
}

func (l *userLedger) Overrides() (map[string]string, error) {
	rows, err := l.db.Query(
		"SELECT exercise_name, delta_text FROM public.overrides WHERE user_id = $1",
		l.userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var name, delta string
		if err := rows.Scan(&name, &delta); err != nil {
			continue
		}
		out[name] = delta
	}
	return out, rows.Err()
}
