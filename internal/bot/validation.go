package bot

import (
	"strconv"
	"strings"
	"time"

	"fitbot/internal/calendar"
)

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

// parseProgressionInput разбирает строку вида "упражнение | +2 повт"
func parseProgressionInput(text string) (name, delta string, err error) {
	if !strings.Contains(text, "|") {
		return "", "", ValidationError{Field: "progression", Message: "Формат: упражнение | +2 повт"}
	}
	parts := strings.SplitN(text, "|", 2)
	name = strings.TrimSpace(parts[0])
	delta = strings.TrimSpace(parts[1])
	if name == "" || delta == "" {
		return "", "", ValidationError{Field: "progression", Message: "Формат: упражнение | +2 повт"}
	}
	return name, delta, nil
}

// parseAutoprogInput разбирает строку вида
// "workout_key | упражнение | +1 повт | 7" (интервал опционален, по умолчанию 7)
func parseAutoprogInput(payload string) (workoutKey, exerciseName, deltaText string, intervalDays int, err error) {
	var fields []string
	for _, f := range strings.Split(payload, "|") {
		if f = strings.TrimSpace(f); f != "" {
			fields = append(fields, f)
		}
	}
	if len(fields) < 3 {
		return "", "", "", 0, ValidationError{
			Field:   "autoprog",
			Message: "Формат: /autoprog set workout_key | упражнение | +1 повт | 7",
		}
	}

	workoutKey, exerciseName, deltaText = fields[0], fields[1], fields[2]
	intervalDays = 7
	if len(fields) >= 4 {
		v, convErr := strconv.Atoi(fields[3])
		if convErr != nil || v < 1 {
			return "", "", "", 0, ValidationError{
				Field:   "autoprog",
				Message: "Интервал должен быть целым числом дней, минимум 1",
			}
		}
		intervalDays = v
	}
	return workoutKey, exerciseName, deltaText, intervalDays, nil
}

// parseProgressLine разбирает замеры одной строкой:
// "вес, талия, живот, бицепс, грудь", пустые поля допустимы
func parseProgressLine(text string) ([5]float64, error) {
	var out [5]float64
	parts := strings.Split(text, ",")
	if len(parts) == 0 || len(parts) > 5 {
		return out, ValidationError{Field: "progress", Message: "Пример: 92.5, 84, 89, 36, 102"}
	}
	for i, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" || part == "-" {
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil || v < 0 {
			return out, ValidationError{Field: "progress", Message: "Все значения должны быть числами. Пример: 92.5, 84, 89, 36, 102"}
		}
		out[i] = v
	}
	return out, nil
}

// parseStartDate разбирает дату старта цикла:
// "today", ГГГГ-ММ-ДД или ДД.ММ.ГГГГ
func parseStartDate(val string, today time.Time) (time.Time, error) {
	val = strings.ToLower(strings.TrimSpace(val))
	if val == "today" || val == "сегодня" {
		return today, nil
	}
	if t, err := time.Parse("2006-01-02", val); err == nil {
		return t, nil
	}
	if t, err := calendar.ParseDate(val); err == nil {
		return t, nil
	}
	return time.Time{}, ValidationError{Field: "start_date", Message: "Неверный формат даты. Пример: 2026-02-02 или 02.02.2026"}
}

// validWeekday проверяет день недели для еженедельных напоминаний
var weekdays = map[string]bool{
	"mon": true, "tue": true, "wed": true, "thu": true,
	"fri": true, "sat": true, "sun": true,
}

func validWeekday(day string) bool {
	return weekdays[strings.ToLower(day)]
}
