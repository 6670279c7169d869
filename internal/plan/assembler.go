package plan

import (
	"time"

	"fitbot/internal/models"
	"fitbot/internal/progression"
)

// Assembler composes resolver, store and ledger into the "plan for date X"
// view. Every consumer (bot commands, HTTP API) reads through Assemble so
// day_type, macros and workout always form a consistent tuple.
type Assembler struct {
	store *Store
}

// NewAssembler создаёт сборщик дневного плана
func NewAssembler(store *Store) *Assembler {
	return &Assembler{store: store}
}

// Assemble builds the plan view for a date. startDate is the user's cycle
// start (position 0); ledger supplies the user's overrides. A training key
// without content degrades to a rest day with a warning instead of failing.
func (a *Assembler) Assemble(date, startDate time.Time, ledger progression.Ledger) (*models.DayPlanView, error) {
	snap, err := a.store.Snapshot()
	if err != nil {
		return nil, err
	}
	return a.AssembleFrom(snap, date, startDate, ledger)
}

// AssembleFrom is Assemble pinned to an explicit snapshot, so a caller that
// renders several days sees one consistent sync generation.
func (a *Assembler) AssembleFrom(snap *Snapshot, date, startDate time.Time, ledger progression.Ledger) (*models.DayPlanView, error) {
	day, err := snap.ResolveDay(startDate, date)
	if err != nil {
		return nil, err
	}

	view := &models.DayPlanView{
		Date:     date,
		Position: day.Position,
		DayType:  day.DayType,
	}

	if day.DayType == models.DayTypeRest {
		if day.ContentMissing {
			view.Warning = "тренировка «" + day.WorkoutKey + "» не найдена в плане, день считается отдыхом"
		}
		view.Macros, err = snap.Macros(models.DayTypeRest)
		return view, err
	}

	view.Macros, err = snap.Macros(models.DayTypeTrain)
	if err != nil {
		return nil, err
	}

	content, _ := snap.DayContent(day.WorkoutKey)
	overrides, err := ledger.Overrides()
	if err != nil {
		return nil, err
	}

	workout := &models.WorkoutView{
		Key:    day.WorkoutKey,
		Title:  snap.Title(day.WorkoutKey),
		Levels: make(map[models.Level][]models.OverlaidExercise, len(models.Levels)),
	}
	for _, level := range models.Levels {
		workout.Levels[level] = progression.Overlay(content.Levels[level], overrides)
	}
	view.Workout = workout
	return view, nil
}
