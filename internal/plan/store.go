package plan

import (
	"fmt"
	"sync"
	"time"

	"fitbot/internal/models"

	"github.com/google/uuid"
)

// Snapshot is one immutable sync generation of the plan. Readers that hold
// a snapshot keep seeing consistent data even if the store reloads.
type Snapshot struct {
	ID       string
	Def      models.PlanDefinition
	LoadedAt time.Time
}

// CycleLength returns the number of days in the repeating cycle.
func (s *Snapshot) CycleLength() int {
	return len(s.Def.CycleOrder)
}

// DayContent returns the workout content for a key, reporting a miss.
func (s *Snapshot) DayContent(key string) (models.DayContent, bool) {
	c, ok := s.Def.Workouts[key]
	return c, ok
}

// Title returns the workout title, falling back to the key itself.
func (s *Snapshot) Title(key string) string {
	if c, ok := s.Def.Workouts[key]; ok && c.Title != "" {
		return c.Title
	}
	return key
}

// Macros returns the macro target for a day type.
func (s *Snapshot) Macros(dt models.DayType) (models.MacroTarget, error) {
	m, ok := s.Def.Macros[dt]
	if !ok {
		return models.MacroTarget{}, ConfigurationError{Reason: fmt.Sprintf("нет КБЖУ для типа дня %q", dt)}
	}
	return m, nil
}

// Store holds the active plan snapshot. Load replaces it wholesale:
// an invalid definition never overwrites the previously valid one.
type Store struct {
	mu   sync.RWMutex
	snap *Snapshot
}

// NewStore creates an empty store; Snapshot fails until the first Load.
func NewStore() *Store {
	return &Store{}
}

// Validate checks that a definition can serve every assemble call.
func Validate(def models.PlanDefinition) error {
	if len(def.CycleOrder) == 0 {
		return ConfigurationError{Reason: "cycle_order пуст"}
	}
	for _, dt := range []models.DayType{models.DayTypeTrain, models.DayTypeRest} {
		if _, ok := def.Macros[dt]; !ok {
			return ConfigurationError{Reason: fmt.Sprintf("нет КБЖУ для типа дня %q", dt)}
		}
	}
	return nil
}

// Load validates the definition and atomically replaces the active snapshot.
func (s *Store) Load(def models.PlanDefinition) (*Snapshot, error) {
	if err := Validate(def); err != nil {
		return nil, err
	}
	snap := &Snapshot{
		ID:       uuid.New().String(),
		Def:      def,
		LoadedAt: time.Now(),
	}
	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()
	return snap, nil
}

// Snapshot returns the active snapshot.
func (s *Store) Snapshot() (*Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snap == nil {
		return nil, ConfigurationError{Reason: "план не загружен"}
	}
	return s.snap, nil
}
