package progression

import (
	"fmt"
	"time"

	"fitbot/internal/models"
)

// RuleStore persists autoprogression rules.
// ListRules returns rules in creation order so that when two rules target
// the same exercise, the later-created one wins deterministically.
type RuleStore interface {
	ListRules() ([]models.AutoprogRule, error)
	MarkApplied(ruleID int, day time.Time) error
}

// Engine applies due autoprogression rules into the ledger.
// It never reads the wall clock: the trigger passes "today" in.
type Engine struct {
	rules  RuleStore
	ledger Ledger
}

// NewEngine создаёт движок автопрогрессии
func NewEngine(rules RuleStore, ledger Ledger) *Engine {
	return &Engine{rules: rules, ledger: ledger}
}

// ruleDue reports whether a rule has to be applied on day. A rule that was
// never applied is due immediately.
func ruleDue(r models.AutoprogRule, day time.Time) bool {
	if r.LastApplied == nil {
		return true
	}
	return daysBetween(*r.LastApplied, day) >= r.IntervalDays
}

// RunOnce applies every due rule: writes its delta into the ledger and
// stamps last_applied with today. Safe to invoke more than once per day —
// a rule stamped today is not due again until its interval passes.
// Returns the number of applied rules.
func (e *Engine) RunOnce(today time.Time) (int, error) {
	rules, err := e.rules.ListRules()
	if err != nil {
		return 0, fmt.Errorf("не удалось получить правила: %w", err)
	}

	applied := 0
	for _, r := range rules {
		if !ruleDue(r, today) {
			continue
		}
		if err := e.ledger.SetOverride(r.ExerciseName, r.DeltaText, today); err != nil {
			return applied, fmt.Errorf("правило %d: %w", r.ID, err)
		}
		if err := e.rules.MarkApplied(r.ID, today); err != nil {
			return applied, fmt.Errorf("правило %d: %w", r.ID, err)
		}
		applied++
	}
	return applied, nil
}

// ValidationError rejects a rule-creation call.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

// ValidateRule checks required fields at rule-creation time. DeltaText is
// stored verbatim and never parsed: its semantics are a display concern.
func ValidateRule(workoutKey, exerciseName, deltaText string, intervalDays int) error {
	if workoutKey == "" {
		return ValidationError{Field: "workout_key", Message: "ключ тренировки не может быть пустым"}
	}
	if exerciseName == "" {
		return ValidationError{Field: "exercise_name", Message: "название упражнения не может быть пустым"}
	}
	if deltaText == "" {
		return ValidationError{Field: "delta_text", Message: "текст прогрессии не может быть пустым"}
	}
	if intervalDays < 1 {
		return ValidationError{Field: "interval_days", Message: "интервал должен быть не меньше 1 дня"}
	}
	return nil
}

func daysBetween(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}
