package gsheets

import (
	"errors"
	"testing"

	"fitbot/internal/models"
	"fitbot/internal/plan"
)

func row(cells ...string) []interface{} {
	out := make([]interface{}, len(cells))
	for i, c := range cells {
		out[i] = c
	}
	return out
}

func validPlanRows() [][]interface{} {
	return [][]interface{}{
		row("workout_key", "title", "level", "name", "sets", "reps", "weight"),
		row("fullbody", "Фулбоди", "easy", "Приседания", "3", "10", "40 кг"),
		row("fullbody", "", "medium", "Приседания", "4", "8", "60 кг"),
		row("fullbody", "", "hard", "Приседания", "5", "5", "80 кг"),
		row("upper", "Верх тела", "easy", "Жим лежа", "3", "12", "30 кг"),
		row("upper", "", "medium", "Жим лежа", "4", "8", "50 кг"),
		row("upper", "", "hard", "Жим лежа", "5", "5", "70 кг"),
	}
}

func validMacrosRows() [][]interface{} {
	return [][]interface{}{
		row("day_type", "kcal", "protein", "fat", "carbs"),
		row("train", "2600", "180", "80", "280"),
		row("rest", "2100", "160", "70", "200"),
	}
}

func validCycleRows() [][]interface{} {
	return [][]interface{}{
		row("workout_key"),
		row("fullbody"),
		row("rest"),
		row("upper"),
		row("rest"),
	}
}

func TestBuildDefinition(t *testing.T) {
	def, err := BuildDefinition(validPlanRows(), validMacrosRows(), validCycleRows())
	if err != nil {
		t.Fatalf("BuildDefinition() error = %v", err)
	}

	wantCycle := []string{"fullbody", "rest", "upper", "rest"}
	if len(def.CycleOrder) != len(wantCycle) {
		t.Fatalf("CycleOrder = %v, ожидалось %v", def.CycleOrder, wantCycle)
	}
	for i, key := range wantCycle {
		if def.CycleOrder[i] != key {
			t.Errorf("CycleOrder[%d] = %s, ожидалось %s", i, def.CycleOrder[i], key)
		}
	}

	fullbody, ok := def.Workouts["fullbody"]
	if !ok {
		t.Fatal("тренировка fullbody не собрана")
	}
	if fullbody.Title != "Фулбоди" {
		t.Errorf("Title = %s, ожидалось Фулбоди", fullbody.Title)
	}
	medium := fullbody.Levels[models.LevelMedium]
	if len(medium) != 1 || medium[0].Sets != 4 || medium[0].Reps != "8" {
		t.Errorf("medium = %+v, ожидался один подход 4x8", medium)
	}

	if def.Macros[models.DayTypeTrain].Kcal != 2600 {
		t.Errorf("train kcal = %d, ожидалось 2600", def.Macros[models.DayTypeTrain].Kcal)
	}
	if def.Macros[models.DayTypeRest].Carbs != 200 {
		t.Errorf("rest carbs = %d, ожидалось 200", def.Macros[models.DayTypeRest].Carbs)
	}
}

func TestBuildDefinitionTitleFallsBackToKey(t *testing.T) {
	rows := [][]interface{}{
		row("workout_key", "title", "level", "name", "sets", "reps", "weight"),
		row("legs", "", "easy", "Выпады", "3", "10", ""),
	}
	cycle := [][]interface{}{row("workout_key"), row("legs")}

	def, err := BuildDefinition(rows, validMacrosRows(), cycle)
	if err != nil {
		t.Fatalf("BuildDefinition() error = %v", err)
	}
	if def.Workouts["legs"].Title != "legs" {
		t.Errorf("Title = %s, ожидался ключ legs", def.Workouts["legs"].Title)
	}
}

func TestBuildDefinitionRejectsBadRows(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p, m, c *[][]interface{})
	}{
		{
			name: "пропущено имя упражнения",
			mutate: func(p, m, c *[][]interface{}) {
				(*p)[1] = row("fullbody", "", "easy", "", "3", "10", "")
			},
		},
		{
			name: "неизвестный уровень",
			mutate: func(p, m, c *[][]interface{}) {
				(*p)[1] = row("fullbody", "", "expert", "Приседания", "3", "10", "")
			},
		},
		{
			name: "нечисловые подходы",
			mutate: func(p, m, c *[][]interface{}) {
				(*p)[1] = row("fullbody", "", "easy", "Приседания", "три", "10", "")
			},
		},
		{
			name: "неизвестный тип дня",
			mutate: func(p, m, c *[][]interface{}) {
				(*m)[1] = row("cheat", "2600", "180", "80", "280")
			},
		},
		{
			name: "нечисловые калории",
			mutate: func(p, m, c *[][]interface{}) {
				(*m)[1] = row("train", "много", "180", "80", "280")
			},
		},
		{
			name: "нет колонки level",
			mutate: func(p, m, c *[][]interface{}) {
				(*p)[0] = row("workout_key", "title", "name", "sets", "reps", "weight")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, m, c := validPlanRows(), validMacrosRows(), validCycleRows()
			tt.mutate(&p, &m, &c)

			_, err := BuildDefinition(p, m, c)
			if err == nil {
				t.Fatal("ожидалась ошибка валидации")
			}
			var ve plan.ValidationError
			if !errors.As(err, &ve) {
				t.Errorf("ожидалась plan.ValidationError, получено %T: %v", err, err)
			}
		})
	}
}

func TestBuildDefinitionEmptyCycleFails(t *testing.T) {
	cycle := [][]interface{}{row("workout_key")}
	_, err := BuildDefinition(validPlanRows(), validMacrosRows(), cycle)
	if err == nil {
		t.Fatal("ожидалась ошибка: цикл пуст")
	}
	var ce plan.ConfigurationError
	if !errors.As(err, &ce) {
		t.Errorf("ожидалась plan.ConfigurationError, получено %T: %v", err, err)
	}
}

func TestBuildDefinitionSkipsBlankRows(t *testing.T) {
	p := append(validPlanRows(), row("", "", "", "", "", "", ""))
	def, err := BuildDefinition(p, validMacrosRows(), validCycleRows())
	if err != nil {
		t.Fatalf("BuildDefinition() error = %v", err)
	}
	if len(def.Workouts) != 2 {
		t.Errorf("собрано %d тренировок, ожидалось 2", len(def.Workouts))
	}
}
