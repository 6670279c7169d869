package models

import "time"

// Override прогрессия по упражнению, введённая пользователем или движком.
// Хранится последнее значение, прежние перезаписываются.
type Override struct {
	ExerciseName string
	DeltaText    string // например "+2 повт" или "+2.5 кг"; не парсится
	AppliedAt    time.Time
}

// AutoprogRule правило автопрогрессии: каждые IntervalDays дней
// применить DeltaText к упражнению
type AutoprogRule struct {
	ID           int
	WorkoutKey   string
	ExerciseName string
	DeltaText    string
	IntervalDays int
	LastApplied  *time.Time // nil — правило ещё не применялось
	CreatedAt    time.Time
}
