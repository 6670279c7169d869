package bot

import (
	"fmt"

	"fitbot/internal/calendar"
	"fitbot/internal/models"

	"github.com/google/uuid"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// handleCalendarExport отправляет .ics с планом на ближайший цикл
func (b *Bot) handleCalendarExport(chatID int64, userID int) {
	snap, err := b.store.Snapshot()
	if err != nil {
		b.sendError(chatID, "План не загружен", err)
		return
	}

	views, err := b.svc.UpcomingDays(userID, b.today(), snap.CycleLength())
	if err != nil {
		b.sendError(chatID, "Не удалось собрать календарь", err)
		return
	}

	events := make([]calendar.Event, 0, len(views))
	for _, view := range views {
		summary := "Отдых"
		description := fmt.Sprintf("КБЖУ: %d ккал, Б %d, Ж %d, У %d",
			view.Macros.Kcal, view.Macros.Protein, view.Macros.Fat, view.Macros.Carbs)
		if view.DayType == models.DayTypeTrain && view.Workout != nil {
			summary = "Тренировка: " + view.Workout.Title
		}
		events = append(events, calendar.Event{
			UID:         uuid.New().String(),
			Summary:     summary,
			Description: description,
			StartTime:   view.Date,
			AllDay:      true,
		})
	}

	content := calendar.GenerateICS(events)
	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{
		Name:  "trainings.ics",
		Bytes: []byte(content),
	})
	doc.Caption = fmt.Sprintf("План на %d дней цикла", len(events))
	if _, err := b.api.Send(doc); err != nil {
		b.sendError(chatID, "Не удалось отправить календарь", err)
	}
}
