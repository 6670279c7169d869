package bot

import (
	"fmt"
	"strings"

	"fitbot/internal/models"
)

// formatDayMessage собирает заголовок дня: тип дня и КБЖУ
func formatDayMessage(view *models.DayPlanView) string {
	var sb strings.Builder

	if view.Warning != "" {
		sb.WriteString("⚠️ " + view.Warning + "\n")
	}

	if view.DayType == models.DayTypeTrain && view.Workout != nil {
		sb.WriteString(fmt.Sprintf("✅ Сегодня тренировка: %s\n", view.Workout.Title))
	} else {
		sb.WriteString("🟡 Сегодня отдых\n")
	}
	sb.WriteString(fmt.Sprintf("КБЖУ: %d ккал, Б %d, Ж %d, У %d",
		view.Macros.Kcal, view.Macros.Protein, view.Macros.Fat, view.Macros.Carbs))
	return sb.String()
}

// formatWorkoutText печатает упражнения одного уровня с прогрессиями
func formatWorkoutText(workout *models.WorkoutView, level models.Level) string {
	entries := workout.Levels[level]
	if len(entries) == 0 {
		return fmt.Sprintf("%s\nПлан для уровня «%s» пока пуст.", workout.Title, level.NameRu())
	}

	lines := []string{fmt.Sprintf("%s — %s", workout.Title, level.NameRu())}
	for i, ex := range entries {
		line := fmt.Sprintf("%d. %s — %dx%s", i+1, ex.Name, ex.Sets, ex.Reps)
		if ex.Weight != "" {
			line += fmt.Sprintf(" (%s)", ex.Weight)
		}
		if ex.Delta != "" {
			line += fmt.Sprintf(" | прогрессия: %s", ex.Delta)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// formatProgressEntry печатает один замер
func formatProgressEntry(e models.ProgressEntry) string {
	line := fmt.Sprintf("%s:", e.Date.Format("02.01.2006"))
	for _, f := range []struct {
		label string
		value float64
	}{
		{"вес", e.Weight},
		{"талия", e.Waist},
		{"живот", e.Belly},
		{"бицепс", e.Biceps},
		{"грудь", e.Chest},
	} {
		if f.value > 0 {
			line += fmt.Sprintf(" %s %.1f", f.label, f.value)
		}
	}
	if e.Note != "" {
		line += " — " + e.Note
	}
	return line
}

// formatRules печатает правила автопрогрессии списком
func formatRules(rules []models.AutoprogRule) string {
	if len(rules) == 0 {
		return "Правил автопрогрессии пока нет."
	}
	lines := []string{"Правила автопрогрессии:"}
	for _, r := range rules {
		line := fmt.Sprintf("- %s | %s | %s | %dд", r.WorkoutKey, r.ExerciseName, r.DeltaText, r.IntervalDays)
		if r.LastApplied != nil {
			line += fmt.Sprintf(" (применено %s)", r.LastApplied.Format("02.01.2006"))
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
