package models

import "time"

// User пользователь бота
type User struct {
	ID        int
	TgID      int64
	Name      string
	TZ        string
	ChatID    int64
	CreatedAt time.Time
}

// ReminderConfig настройка одного напоминания
type ReminderConfig struct {
	Time    string `json:"time"` // "HH:MM"
	Enabled bool   `json:"enabled"`
	Day     string `json:"day,omitempty"` // день недели для еженедельных отчётов
}

// Settings настройки пользователя
type Settings struct {
	UserID    int
	StartDate *time.Time // дата позиции 0 цикла; nil — не задана
	Level     Level
	Reminders map[string]ReminderConfig
	UpdatedAt time.Time
}

// DayStatus статус дня в календаре
type DayStatus string

const (
	DayStatusPlanned DayStatus = "planned"
	DayStatusDone    DayStatus = "done"
	DayStatusSkipped DayStatus = "skipped"
)

// CalendarDay материализованный день календаря
type CalendarDay struct {
	ID         int
	UserID     int
	Date       time.Time
	DayType    DayType
	Status     DayStatus
	WorkoutKey string
	Level      Level
	Macros     MacroTarget
	Note       string
}

// ProgressEntry замер тела
type ProgressEntry struct {
	ID        int
	UserID    int
	Date      time.Time
	Weight    float64
	Waist     float64
	Belly     float64
	Biceps    float64
	Chest     float64
	Note      string
	CreatedAt time.Time
}
