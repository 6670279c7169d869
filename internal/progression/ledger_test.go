package progression

import (
	"testing"
	"time"

	"fitbot/internal/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMemoryLedger_LastWriteWins(t *testing.T) {
	ledger := NewMemoryLedger()

	if err := ledger.SetOverride("Жим лежа", "+2 повт", day(2024, 1, 1)); err != nil {
		t.Fatal(err)
	}
	if err := ledger.SetOverride("Жим лежа", "+2.5 кг", day(2024, 1, 2)); err != nil {
		t.Fatal(err)
	}

	got, ok, err := ledger.GetOverride("Жим лежа")
	if err != nil {
		t.Fatal(err)
	}
	if !ok || got != "+2.5 кг" {
		t.Errorf("GetOverride() = %q, %v; want %q, true", got, ok, "+2.5 кг")
	}
}

func TestMemoryLedger_MissingOverride(t *testing.T) {
	ledger := NewMemoryLedger()
	_, ok, err := ledger.GetOverride("Приседания")
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("GetOverride() on empty ledger must report absence")
	}
}

func TestOverlay_ExactNameMatch(t *testing.T) {
	entries := []models.ExerciseEntry{
		{Name: "Жим лежа", Sets: 4, Reps: "8"},
		{Name: "жим лежа", Sets: 3, Reps: "10"}, // different case — no match
		{Name: "Тяга", Sets: 3, Reps: "12"},
	}
	overrides := map[string]string{"Жим лежа": "+5 кг"}

	got := Overlay(entries, overrides)
	if len(got) != 3 {
		t.Fatalf("Overlay() returned %d entries, want 3", len(got))
	}

	wantDeltas := []string{"+5 кг", "", ""}
	for i, want := range wantDeltas {
		if got[i].Delta != want {
			t.Errorf("entry %d (%s): Delta = %q, want %q", i, got[i].Name, got[i].Delta, want)
		}
	}
}

func TestOverlay_PreservesOrderAndBaseValues(t *testing.T) {
	entries := []models.ExerciseEntry{
		{Name: "Присед", Sets: 5, Reps: "5", Weight: "100 кг"},
		{Name: "Выпады", Sets: 3, Reps: "12"},
	}
	got := Overlay(entries, nil)
	for i := range entries {
		if got[i].ExerciseEntry != entries[i] {
			t.Errorf("entry %d changed: %+v, want %+v", i, got[i].ExerciseEntry, entries[i])
		}
	}
}
