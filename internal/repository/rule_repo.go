package repository

import (
	"database/sql"
	"time"

	"fitbot/internal/models"
	"fitbot/internal/progression"
)

// RuleRepository хранит правила автопрогрессии
type RuleRepository struct {
	db *sql.DB
}

// NewRuleRepository создаёт репозиторий правил
func NewRuleRepository(db *sql.DB) *RuleRepository {
	return &RuleRepository{db: db}
}

// Upsert создаёт или обновляет правило. Обновление сбрасывает last_applied:
// изменённое правило снова становится немедленно должным
func (r *RuleRepository) Upsert(userID int, workoutKey, exerciseName, deltaText string, intervalDays int) error {
	if err := progression.ValidateRule(workoutKey, exerciseName, deltaText, intervalDays); err != nil {
		return err
	}
	_, err := r.db.Exec(`
		INSERT INTO public.progression_rules
		(user_id, workout_key, exercise_name, delta_text, interval_days)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, workout_key, exercise_name)
		DO UPDATE SET delta_text = $4, interval_days = $5, last_applied = NULL, updated_at = NOW()`,
		userID, workoutKey, exerciseName, deltaText, intervalDays,
	)
	return err
}

// Delete удаляет правило
func (r *RuleRepository) Delete(userID int, workoutKey, exerciseName string) error {
	_, err := r.db.Exec(`
		DELETE FROM public.progression_rules
		WHERE user_id = $1 AND workout_key = $2 AND exercise_name = $3`,
		userID, workoutKey, exerciseName,
	)
	return err
}

// ListByUser возвращает правила пользователя в порядке создания
func (r *RuleRepository) ListByUser(userID int) ([]models.AutoprogRule, error) {
	rows, err := r.db.Query(`
		SELECT id, workout_key, exercise_name, delta_text, interval_days, last_applied, created_at
		FROM public.progression_rules
		WHERE user_id = $1
		ORDER BY id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rules []models.AutoprogRule
	for rows.Next() {
		var rule models.AutoprogRule
		var lastApplied sql.NullTime
		if err := rows.Scan(
			&rule.ID, &rule.WorkoutKey, &rule.ExerciseName,
			&rule.DeltaText, &rule.IntervalDays, &lastApplied, &rule.CreatedAt,
		); err != nil {
			continue
		}
		if lastApplied.Valid {
			d := lastApplied.Time
			rule.LastApplied = &d
		}
		rules = append(rules, rule)
	}
	return rules, rows.Err()
}

// ForUser возвращает хранилище правил одного пользователя.
// Реализует progression.RuleStore
func (r *RuleRepository) ForUser(userID int) progression.RuleStore {
	return &userRules{repo: r, userID: userID}
}

type userRules struct {
	repo   *RuleRepository
	userID int
}

func (s *userRules) ListRules() ([]models.AutoprogRule, error) {
	return s.repo.ListByUser(s.userID)
}

func (s *userRules) MarkApplied(ruleID int, day time.Time) error {
	_, err := s.repo.db.Exec(
		"UPDATE public.progression_rules SET last_applied = $1, updated_at = NOW() WHERE id = $2",
		day.Format("2006-01-02"), ruleID,
	)
	return err
}
