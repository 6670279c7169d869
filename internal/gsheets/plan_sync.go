package gsheets

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"fitbot/internal/models"
	"fitbot/internal/plan"
)

// TabNames имена листов таблицы с планом
type TabNames struct {
	Plan   string
	Macros string
	Cycle  string
}

// FetchDefinition читает три листа таблицы и собирает из них план.
// Ошибка в любой строке отменяет весь синк, частичный план не собирается
func (c *Client) FetchDefinition(ctx context.Context, tabs TabNames) (*models.PlanDefinition, error) {
	planRows, err := c.readTab(ctx, tabs.Plan)
	if err != nil {
		return nil, err
	}
	macrosRows, err := c.readTab(ctx, tabs.Macros)
	if err != nil {
		return nil, err
	}
	cycleRows, err := c.readTab(ctx, tabs.Cycle)
	if err != nil {
		return nil, err
	}
	return BuildDefinition(planRows, macrosRows, cycleRows)
}

// BuildDefinition собирает план из сырых строк трёх листов.
// Первая строка каждого листа — заголовки колонок
func BuildDefinition(planRows, macrosRows, cycleRows [][]interface{}) (*models.PlanDefinition, error) {
	def := &models.PlanDefinition{
		Workouts: make(map[string]models.DayContent),
		Macros:   make(map[models.DayType]models.MacroTarget),
	}

	if err := buildWorkouts(def, planRows); err != nil {
		return nil, err
	}
	if err := buildMacros(def, macrosRows); err != nil {
		return nil, err
	}
	if err := buildCycle(def, cycleRows); err != nil {
		return nil, err
	}
	if err := plan.Validate(*def); err != nil {
		return nil, err
	}
	return def, nil
}

func buildWorkouts(def *models.PlanDefinition, rows [][]interface{}) error {
	cols, rows, err := headerIndex(rows, "PLAN", "workout_key", "title", "level", "name", "sets", "reps", "weight")
	if err != nil {
		return err
	}

	for i, row := range rows {
		key := cellAt(row, cols["workout_key"])
		title := cellAt(row, cols["title"])
		levelRaw := strings.ToLower(cellAt(row, cols["level"]))
		name := cellAt(row, cols["name"])
		setsRaw := cellAt(row, cols["sets"])
		reps := cellAt(row, cols["reps"])
		weight := cellAt(row, cols["weight"])

		if key == "" && title == "" && levelRaw == "" && name == "" {
			continue // пустая строка
		}
		line := i + 2 // строка в таблице, с учётом заголовка

		if key == "" || levelRaw == "" || name == "" {
			return rowError("PLAN", line, "нужны workout_key, level и name")
		}
		if !models.ValidLevel(levelRaw) {
			return rowError("PLAN", line, fmt.Sprintf("неизвестный уровень «%s»", levelRaw))
		}
		level := models.Level(levelRaw)
		sets, err := strconv.Atoi(setsRaw)
		if err != nil || sets <= 0 {
			return rowError("PLAN", line, fmt.Sprintf("sets должен быть положительным числом, получено «%s»", setsRaw))
		}

		content, ok := def.Workouts[key]
		if !ok {
			content = models.DayContent{
				Title:  key,
				Levels: make(map[models.Level][]models.ExerciseEntry),
			}
		}
		if title != "" {
			content.Title = title
		}
		content.Levels[level] = append(content.Levels[level], models.ExerciseEntry{
			Name:   name,
			Sets:   sets,
			Reps:   reps,
			Weight: weight,
		})
		def.Workouts[key] = content
	}
	return nil
}

func buildMacros(def *models.PlanDefinition, rows [][]interface{}) error {
	cols, rows, err := headerIndex(rows, "MACROS", "day_type", "kcal", "protein", "fat", "carbs")
	if err != nil {
		return err
	}

	for i, row := range rows {
		dayTypeRaw := strings.ToLower(cellAt(row, cols["day_type"]))
		if dayTypeRaw == "" {
			continue
		}
		line := i + 2

		dayType := models.DayType(dayTypeRaw)
		if dayType != models.DayTypeTrain && dayType != models.DayTypeRest {
			return rowError("MACROS", line, fmt.Sprintf("day_type должен быть train или rest, получено «%s»", dayTypeRaw))
		}

		var target models.MacroTarget
		for _, f := range []struct {
			name string
			dst  *int
		}{
			{"kcal", &target.Kcal},
			{"protein", &target.Protein},
			{"fat", &target.Fat},
			{"carbs", &target.Carbs},
		} {
			raw := cellAt(row, cols[f.name])
			if raw == "" {
				continue
			}
			v, err := strconv.Atoi(raw)
			if err != nil || v < 0 {
				return rowError("MACROS", line, fmt.Sprintf("%s должен быть неотрицательным числом, получено «%s»", f.name, raw))
			}
			*f.dst = v
		}
		def.Macros[dayType] = target
	}
	return nil
}

func buildCycle(def *models.PlanDefinition, rows [][]interface{}) error {
	cols, rows, err := headerIndex(rows, "CYCLE", "workout_key")
	if err != nil {
		return err
	}

	for _, row := range rows {
		key := cellAt(row, cols["workout_key"])
		if key == "" {
			continue
		}
		def.CycleOrder = append(def.CycleOrder, key)
	}
	return nil
}

// headerIndex находит колонки по заголовкам первой строки
func headerIndex(rows [][]interface{}, tab string, required ...string) (map[string]int, [][]interface{}, error) {
	if len(rows) == 0 {
		return nil, nil, plan.ValidationError{Field: tab, Message: "лист пуст"}
	}

	cols := make(map[string]int)
	for i, cell := range rows[0] {
		cols[strings.ToLower(strings.TrimSpace(fmt.Sprintf("%v", cell)))] = i
	}
	for _, name := range required {
		if _, ok := cols[name]; !ok {
			return nil, nil, plan.ValidationError{
				Field:   tab,
				Message: fmt.Sprintf("нет колонки «%s»", name),
			}
		}
	}
	return cols, rows[1:], nil
}

func cellAt(row []interface{}, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(fmt.Sprintf("%v", row[idx]))
}

func rowError(tab string, line int, msg string) error {
	return plan.ValidationError{
		Field:   fmt.Sprintf("%s:%d", tab, line),
		Message: msg,
	}
}
