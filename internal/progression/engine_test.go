package progression

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"fitbot/internal/models"
)

// memoryRules is a RuleStore fake that lists rules in creation order.
type memoryRules struct {
	rules []models.AutoprogRule
}

func (s *memoryRules) add(workoutKey, exercise, delta string, interval int) {
	s.rules = append(s.rules, models.AutoprogRule{
		ID:           len(s.rules) + 1,
		WorkoutKey:   workoutKey,
		ExerciseName: exercise,
		DeltaText:    delta,
		IntervalDays: interval,
	})
}

func (s *memoryRules) ListRules() ([]models.AutoprogRule, error) {
	out := make([]models.AutoprogRule, len(s.rules))
	copy(out, s.rules)
	return out, nil
}

func (s *memoryRules) MarkApplied(ruleID int, day time.Time) error {
	for i := range s.rules {
		if s.rules[i].ID == ruleID {
			d := day
			s.rules[i].LastApplied = &d
			return nil
		}
	}
	return errors.New("правило не найдено")
}

func TestRunOnce_NeverAppliedRuleIsDue(t *testing.T) {
	rules := &memoryRules{}
	rules.add("a", "Жим лежа", "+2.5 кг", 7)
	ledger := NewMemoryLedger()
	engine := NewEngine(rules, ledger)

	applied, err := engine.RunOnce(day(2024, 1, 1))
	if err != nil {
		t.Fatalf("RunOnce() error = %v", err)
	}
	if applied != 1 {
		t.Fatalf("RunOnce() applied %d rules, want 1", applied)
	}

	got, ok, _ := ledger.GetOverride("Жим лежа")
	if !ok || got != "+2.5 кг" {
		t.Errorf("ledger after run: %q, %v; want %q, true", got, ok, "+2.5 кг")
	}
	if rules.rules[0].LastApplied == nil || !rules.rules[0].LastApplied.Equal(day(2024, 1, 1)) {
		t.Errorf("LastApplied = %v, want 2024-01-01", rules.rules[0].LastApplied)
	}
}

func TestRunOnce_IntervalGate(t *testing.T) {
	tests := []struct {
		name        string
		today       time.Time
		wantApplied int
	}{
		{"next day is too early", day(2024, 1, 2), 0},
		{"day before interval ends", day(2024, 1, 7), 0},
		{"due exactly on interval", day(2024, 1, 8), 1},
		{"overdue", day(2024, 1, 20), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules := &memoryRules{}
			rules.add("a", "Жим лежа", "+2.5 кг", 7)
			engine := NewEngine(rules, NewMemoryLedger())

			if _, err := engine.RunOnce(day(2024, 1, 1)); err != nil {
				t.Fatal(err)
			}
			applied, err := engine.RunOnce(tt.today)
			if err != nil {
				t.Fatal(err)
			}
			if applied != tt.wantApplied {
				t.Errorf("RunOnce(%v) applied %d, want %d", tt.today, applied, tt.wantApplied)
			}
		})
	}
}

func TestRunOnce_IdempotentWithinDay(t *testing.T) {
	rules := &memoryRules{}
	rules.add("a", "Жим лежа", "+2.5 кг", 7)
	rules.add("b", "Тяга", "+1 повт", 14)
	ledger := NewMemoryLedger()
	engine := NewEngine(rules, ledger)

	today := day(2024, 1, 1)
	if _, err := engine.RunOnce(today); err != nil {
		t.Fatal(err)
	}
	stateAfterFirst, _ := ledger.Overrides()

	applied, err := engine.RunOnce(today)
	if err != nil {
		t.Fatal(err)
	}
	if applied != 0 {
		t.Errorf("second RunOnce same day applied %d rules, want 0", applied)
	}

	stateAfterSecond, _ := ledger.Overrides()
	if !reflect.DeepEqual(stateAfterFirst, stateAfterSecond) {
		t.Errorf("ledger changed on repeated run: %v → %v", stateAfterFirst, stateAfterSecond)
	}
}

func TestRunOnce_EngineWriteBeatsManualOverride(t *testing.T) {
	rules := &memoryRules{}
	rules.add("a", "Жим лежа", "+5 повт", 7)
	ledger := NewMemoryLedger()
	engine := NewEngine(rules, ledger)

	// Manual override first, engine run after: last writer wins
	if err := ledger.SetOverride("Жим лежа", "+2 кг", day(2024, 1, 1)); err != nil {
		t.Fatal(err)
	}
	if _, err := engine.RunOnce(day(2024, 1, 1)); err != nil {
		t.Fatal(err)
	}

	got, _, _ := ledger.GetOverride("Жим лежа")
	if got != "+5 повт" {
		t.Errorf("GetOverride() = %q, want engine value %q", got, "+5 повт")
	}
}

func TestRunOnce_LaterRuleWinsOnSameExercise(t *testing.T) {
	rules := &memoryRules{}
	rules.add("a", "Жим лежа", "+1 повт", 7)
	rules.add("b", "Жим лежа", "+2.5 кг", 7)
	ledger := NewMemoryLedger()

	if _, err := NewEngine(rules, ledger).RunOnce(day(2024, 1, 1)); err != nil {
		t.Fatal(err)
	}

	got, _, _ := ledger.GetOverride("Жим лежа")
	if got != "+2.5 кг" {
		t.Errorf("GetOverride() = %q, want later-created rule value %q", got, "+2.5 кг")
	}
}

func TestRunOnce_MalformedDeltaStoredVerbatim(t *testing.T) {
	rules := &memoryRules{}
	rules.add("a", "Жим лежа", "???", 7)
	ledger := NewMemoryLedger()

	if _, err := NewEngine(rules, ledger).RunOnce(day(2024, 1, 1)); err != nil {
		t.Fatalf("RunOnce() must not fail on malformed delta: %v", err)
	}
	got, _, _ := ledger.GetOverride("Жим лежа")
	if got != "???" {
		t.Errorf("GetOverride() = %q, want verbatim %q", got, "???")
	}
}

func TestValidateRule(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		exercise string
		delta    string
		interval int
		wantErr  bool
	}{
		{"valid rule", "a", "Жим лежа", "+2.5 кг", 7, false},
		{"daily interval", "a", "Жим лежа", "+1 повт", 1, false},
		{"empty workout key", "", "Жим лежа", "+2.5 кг", 7, true},
		{"empty exercise", "a", "", "+2.5 кг", 7, true},
		{"empty delta", "a", "Жим лежа", "", 7, true},
		{"zero interval", "a", "Жим лежа", "+2.5 кг", 0, true},
		{"negative interval", "a", "Жим лежа", "+2.5 кг", -3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRule(tt.key, tt.exercise, tt.delta, tt.interval)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRule() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var vErr ValidationError
				if !errors.As(err, &vErr) {
					t.Errorf("error type = %T, want ValidationError", err)
				}
			}
		})
	}
}
