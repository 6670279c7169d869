package bot

import (
	"fmt"
	"strings"

	"fitbot/internal/calendar"
	"fitbot/internal/models"
)

// reminderTexts тексты простых напоминаний по типам
var reminderTexts = map[string]string{
	"water":      "Напоминание: выпей воду.",
	"motivation": "Мотивация: держим курс на цель.",
	"sleep":      "Напоминание: сон и восстановление сегодня важны.",
	"workout":    "Пора тренироваться. Проверь /today.",
}

// Ключи отчётов в настройках напоминаний
const (
	reminderDailyReport  = "daily_report"
	reminderWeeklyReport = "weekly_report"
)

// defaultReminders отчёты, включённые по умолчанию
func defaultReminders() map[string]models.ReminderConfig {
	return map[string]models.ReminderConfig{
		reminderDailyReport:  {Time: "23:00", Enabled: true},
		reminderWeeklyReport: {Time: "20:00", Day: "sun", Enabled: true},
	}
}

// userReminders возвращает настройки с дозаполненными умолчаниями
func userReminders(settings *models.Settings) map[string]models.ReminderConfig {
	reminders := settings.Reminders
	if reminders == nil {
		reminders = make(map[string]models.ReminderConfig)
	}
	for key, def := range defaultReminders() {
		if _, ok := reminders[key]; !ok {
			reminders[key] = def
		}
	}
	return reminders
}

func reminderTypeNames() []string {
	return []string{"water", "motivation", "sleep", "workout"}
}

func (b *Bot) handleReminder(chatID int64, userID int, args string) {
	settings, err := b.repo.User.GetSettings(userID)
	if err != nil {
		b.sendError(chatID, "Не удалось получить настройки", err)
		return
	}
	reminders := userReminders(settings)

	parts := strings.Fields(args)
	if len(parts) == 0 || strings.ToLower(parts[0]) == "list" {
		lines := []string{"Текущие напоминания:"}
		for _, key := range reminderTypeNames() {
			cfg, ok := reminders[key]
			if ok && cfg.Enabled && cfg.Time != "" {
				lines = append(lines, fmt.Sprintf("- %s: %s", key, cfg.Time))
			} else {
				lines = append(lines, fmt.Sprintf("- %s: выключено", key))
			}
		}
		lines = append(lines, "Формат: /reminder set water 10:00 или /reminder off water")
		b.sendMessage(chatID, strings.Join(lines, "\n"))
		return
	}

	action := strings.ToLower(parts[0])
	switch action {
	case "set", "on":
		if len(parts) < 3 {
			b.sendMessage(chatID, "Формат: /reminder set water 10:00")
			return
		}
		rType := strings.ToLower(parts[1])
		timeStr := parts[2]
		if _, ok := reminderTexts[rType]; !ok {
			b.sendMessage(chatID, fmt.Sprintf("Типы: %s", strings.Join(reminderTypeNames(), ", ")))
			return
		}
		if _, _, err := calendar.ParseTime(timeStr); err != nil {
			b.sendMessage(chatID, "Время в формате HH:MM, например 10:00")
			return
		}
		reminders[rType] = models.ReminderConfig{Time: timeStr, Enabled: true}
		if err := b.saveReminders(userID, reminders); err != nil {
			b.sendError(chatID, "Не удалось сохранить напоминание", err)
			return
		}
		b.sendMessage(chatID, fmt.Sprintf("Ок, напоминание %s в %s", rType, timeStr))

	case "off", "disable":
		if len(parts) < 2 {
			b.sendMessage(chatID, "Формат: /reminder off water")
			return
		}
		rType := strings.ToLower(parts[1])
		if _, ok := reminderTexts[rType]; !ok {
			b.sendMessage(chatID, fmt.Sprintf("Типы: %s", strings.Join(reminderTypeNames(), ", ")))
			return
		}
		reminders[rType] = models.ReminderConfig{Enabled: false}
		if err := b.saveReminders(userID, reminders); err != nil {
			b.sendError(chatID, "Не удалось сохранить настройки", err)
			return
		}
		b.sendMessage(chatID, fmt.Sprintf("Ок, напоминание %s выключено", rType))

	default:
		b.sendMessage(chatID, "Команды: /reminder list | /reminder set water 10:00 | /reminder off water")
	}
}

// handleDailyReport управляет ежедневным отчётом: on, off, time HH:MM
func (b *Bot) handleDailyReport(chatID int64, userID int, args string) {
	settings, err := b.repo.User.GetSettings(userID)
	if err != nil {
		b.sendError(chatID, "Не удалось получить настройки", err)
		return
	}
	reminders := userReminders(settings)
	cfg := reminders[reminderDailyReport]

	parts := strings.Fields(args)
	if len(parts) == 0 {
		status := "выключен"
		if cfg.Enabled {
			status = fmt.Sprintf("включен, время %s", cfg.Time)
		}
		b.sendMessage(chatID, fmt.Sprintf(
			"Ежедневный отчет: %s\nКоманды: /dailyreport on | /dailyreport off | /dailyreport time 23:00", status))
		return
	}

	switch strings.ToLower(parts[0]) {
	case "on":
		cfg.Enabled = true
		if cfg.Time == "" {
			cfg.Time = "23:00"
		}
	case "off":
		cfg.Enabled = false
	case "time":
		if len(parts) < 2 {
			b.sendMessage(chatID, "Формат: /dailyreport time 23:00")
			return
		}
		if _, _, err := calendar.ParseTime(parts[1]); err != nil {
			b.sendMessage(chatID, "Время в формате HH:MM, например 23:00")
			return
		}
		cfg.Time = parts[1]
		cfg.Enabled = true
	default:
		b.sendMessage(chatID, "Команды: /dailyreport on | /dailyreport off | /dailyreport time 23:00")
		return
	}

	reminders[reminderDailyReport] = cfg
	if err := b.saveReminders(userID, reminders); err != nil {
		b.sendError(chatID, "Не удалось сохранить настройки", err)
		return
	}
	if cfg.Enabled {
		b.sendMessage(chatID, fmt.Sprintf("Ежедневный отчет включен, время %s", cfg.Time))
	} else {
		b.sendMessage(chatID, "Ежедневный отчет выключен")
	}
}

func (b *Bot) saveReminders(userID int, reminders map[string]models.ReminderConfig) error {
	if err := b.repo.User.SetReminders(userID, reminders); err != nil {
		return err
	}
	b.scheduler.Rebuild()
	return nil
}
