package plan

import (
	"errors"
	"testing"
	"time"

	"fitbot/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCyclePosition(t *testing.T) {
	start := date(2024, 1, 1)

	tests := []struct {
		name     string
		target   time.Time
		cycleLen int
		want     int
	}{
		{"start day", date(2024, 1, 1), 3, 0},
		{"second day", date(2024, 1, 2), 3, 1},
		{"third day", date(2024, 1, 3), 3, 2},
		{"wraps after length 3", date(2024, 1, 4), 3, 0},
		{"full cycle later", date(2024, 1, 7), 3, 0},
		{"day before start", date(2023, 12, 31), 3, 2},
		{"three days before start", date(2023, 12, 29), 3, 0},
		{"far in the past", date(2023, 1, 1), 7, 6},
		{"cycle of one", date(2024, 6, 15), 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CyclePosition(start, tt.target, tt.cycleLen)
			if err != nil {
				t.Fatalf("CyclePosition() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("CyclePosition(%v) = %d, want %d", tt.target, got, tt.want)
			}
		})
	}
}

func TestCyclePosition_Periodic(t *testing.T) {
	// Position is invariant under shifts by whole cycles, both directions
	start := date(2024, 3, 10)
	base, err := CyclePosition(start, start, 5)
	if err != nil {
		t.Fatal(err)
	}
	for _, d := range []int{-4, -1, 1, 2, 10} {
		target := start.AddDate(0, 0, d*5)
		got, err := CyclePosition(start, target, 5)
		if err != nil {
			t.Fatal(err)
		}
		if got != base {
			t.Errorf("shift by %d cycles: position = %d, want %d", d, got, base)
		}
	}
}

func TestCyclePosition_Range(t *testing.T) {
	start := date(2024, 1, 1)
	for d := -20; d <= 20; d++ {
		got, err := CyclePosition(start, start.AddDate(0, 0, d), 6)
		if err != nil {
			t.Fatal(err)
		}
		if got < 0 || got >= 6 {
			t.Errorf("day offset %d: position %d out of [0, 6)", d, got)
		}
	}
}

func TestCyclePosition_EmptyCycle(t *testing.T) {
	_, err := CyclePosition(date(2024, 1, 1), date(2024, 1, 2), 0)
	var cfgErr ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("CyclePosition with empty cycle: error = %v, want ConfigurationError", err)
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want int
	}{
		{"same day", date(2024, 1, 1), date(2024, 1, 1), 0},
		{"next day", date(2024, 1, 1), date(2024, 1, 2), 1},
		{"backwards", date(2024, 1, 5), date(2024, 1, 1), -4},
		{"across month", date(2024, 1, 31), date(2024, 2, 2), 2},
		{"across leap day", date(2024, 2, 28), date(2024, 3, 1), 2},
		{"ignores time of day", time.Date(2024, 1, 1, 23, 50, 0, 0, time.UTC), time.Date(2024, 1, 2, 0, 5, 0, 0, time.UTC), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysBetween(tt.from, tt.to); got != tt.want {
				t.Errorf("DaysBetween(%v, %v) = %d, want %d", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func testSnapshot(t *testing.T) *Snapshot {
	t.Helper()
	store := NewStore()
	snap, err := store.Load(models.PlanDefinition{
		CycleOrder: []string{"fullbody", "rest", "upper"},
		Workouts: map[string]models.DayContent{
			"fullbody": {
				Title: "Фулбоди",
				Levels: map[models.Level][]models.ExerciseEntry{
					models.LevelEasy:   {{Name: "Приседания", Sets: 3, Reps: "10"}},
					models.LevelMedium: {{Name: "Приседания", Sets: 4, Reps: "10", Weight: "40 кг"}},
					models.LevelHard:   {{Name: "Приседания", Sets: 5, Reps: "8", Weight: "60 кг"}},
				},
			},
		},
		Macros: map[models.DayType]models.MacroTarget{
			models.DayTypeTrain: {Kcal: 2500, Protein: 180, Fat: 70, Carbs: 280},
			models.DayTypeRest:  {Kcal: 2100, Protein: 170, Fat: 65, Carbs: 200},
		},
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return snap
}

func TestResolveDay(t *testing.T) {
	snap := testSnapshot(t)
	start := date(2024, 1, 1)

	tests := []struct {
		name           string
		target         time.Time
		wantPos        int
		wantType       models.DayType
		wantKey        string
		contentMissing bool
	}{
		{"training day with content", date(2024, 1, 1), 0, models.DayTypeTrain, "fullbody", false},
		{"reserved rest key", date(2024, 1, 2), 1, models.DayTypeRest, "rest", false},
		{"training key without content", date(2024, 1, 3), 2, models.DayTypeRest, "upper", true},
		{"wraps to first day", date(2024, 1, 4), 0, models.DayTypeTrain, "fullbody", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := snap.ResolveDay(start, tt.target)
			if err != nil {
				t.Fatalf("ResolveDay() error = %v", err)
			}
			if got.Position != tt.wantPos || got.DayType != tt.wantType ||
				got.WorkoutKey != tt.wantKey || got.ContentMissing != tt.contentMissing {
				t.Errorf("ResolveDay(%v) = %+v, want pos=%d type=%s key=%s missing=%v",
					tt.target, got, tt.wantPos, tt.wantType, tt.wantKey, tt.contentMissing)
			}
		})
	}
}
