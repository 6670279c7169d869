package progression

import (
	"sort"
	"sync"
	"time"

	"fitbot/internal/models"
)

// Ledger stores per-exercise overrides. Upserts are last-write-wins and
// overrides never expire; keys are matched case-sensitively.
// Implementations: Postgres (internal/repository) and Memory (tests).
type Ledger interface {
	SetOverride(exerciseName, deltaText string, at time.Time) error
	GetOverride(exerciseName string) (string, bool, error)
	Overrides() (map[string]string, error)
}

// Overlay attaches an override delta to every entry that has one.
// Names are matched exactly; no fuzzy matching.
func Overlay(entries []models.ExerciseEntry, overrides map[string]string) []models.OverlaidExercise {
	out := make([]models.OverlaidExercise, 0, len(entries))
	for _, e := range entries {
		out = append(out, models.OverlaidExercise{
			ExerciseEntry: e,
			Delta:         overrides[e.Name],
		})
	}
	return out
}

// MemoryLedger держит прогрессии в памяти. Используется в тестах и как
// запасной вариант без базы.
type MemoryLedger struct {
	mu sync.Mutex
	m  map[string]models.Override
}

// NewMemoryLedger создаёт пустой ledger
func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{m: make(map[string]models.Override)}
}

func (l *MemoryLedger) SetOverride(exerciseName, deltaText string, at time.Time) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.m[exerciseName] = models.Override{
		ExerciseName: exerciseName,
		DeltaText:    deltaText,
		AppliedAt:    at,
	}
	return nil
}

func (l *MemoryLedger) GetOverride(exerciseName string) (string, bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	o, ok := l.m[exerciseName]
	return o.DeltaText, ok, nil
}

func (l *MemoryLedger) Overrides() (map[string]string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make(map[string]string, len(l.m))
	for name, o := range l.m {
		out[name] = o.DeltaText
	}
	return out, nil
}

// List возвращает прогрессии в алфавитном порядке упражнений
func (l *MemoryLedger) List() []models.Override {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]models.Override, 0, len(l.m))
	for _, o := range l.m {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ExerciseName < out[j].ExerciseName })
	return out
}
