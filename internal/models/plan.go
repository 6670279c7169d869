package models

import "time"

// DayType тип дня в цикле: тренировка или отдых
type DayType string

const (
	DayTypeTrain DayType = "train"
	DayTypeRest  DayType = "rest"
)

// Level уровень сложности тренировки
type Level string

const (
	LevelEasy   Level = "easy"
	LevelMedium Level = "medium"
	LevelHard   Level = "hard"
)

// Levels перечисляет уровни в порядке отображения
var Levels = []Level{LevelEasy, LevelMedium, LevelHard}

// NameRu возвращает русское название уровня
func (l Level) NameRu() string {
	switch l {
	case LevelEasy:
		return "Легкая"
	case LevelMedium:
		return "Средняя"
	case LevelHard:
		return "Сложная"
	default:
		return string(l)
	}
}

// ValidLevel проверяет, что строка является известным уровнем
func ValidLevel(s string) bool {
	switch Level(s) {
	case LevelEasy, LevelMedium, LevelHard:
		return true
	}
	return false
}

// RestKey зарезервированный ключ дня отдыха в cycle_order
const RestKey = "rest"

// ExerciseEntry одно упражнение в тренировке (базовые значения до прогрессии)
type ExerciseEntry struct {
	Name   string `yaml:"name"`
	Sets   int    `yaml:"sets"`
	Reps   string `yaml:"reps"`
	Weight string `yaml:"weight,omitempty"`
}

// DayContent содержимое одного тренировочного дня по уровням
type DayContent struct {
	Title  string                    `yaml:"title"`
	Levels map[Level][]ExerciseEntry `yaml:"levels"`
}

// MacroTarget целевые КБЖУ для типа дня
type MacroTarget struct {
	Kcal    int `yaml:"kcal"`
	Protein int `yaml:"protein"`
	Fat     int `yaml:"fat"`
	Carbs   int `yaml:"carbs"`
}

// PlanDefinition полное определение плана: порядок цикла, тренировки, КБЖУ.
// Заменяется целиком при синхронизации, частично не мутируется.
type PlanDefinition struct {
	CycleOrder []string               `yaml:"cycle_order"`
	Workouts   map[string]DayContent  `yaml:"workouts"`
	Macros     map[DayType]MacroTarget `yaml:"macros"`
}

// OverlaidExercise упражнение с наложенной прогрессией (если есть)
type OverlaidExercise struct {
	ExerciseEntry
	Delta string // текст прогрессии, пусто если нет
}

// WorkoutView тренировка дня со всеми уровнями и прогрессиями
type WorkoutView struct {
	Key    string
	Title  string
	Levels map[Level][]OverlaidExercise
}

// DayPlanView собранный план на дату — единственный путь чтения
type DayPlanView struct {
	Date     time.Time
	Position int // позиция в цикле
	DayType  DayType
	Macros   MacroTarget
	Workout  *WorkoutView // nil для дня отдыха
	Warning  string       // заполнено, если день деградировал в отдых
}
