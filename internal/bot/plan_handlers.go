package bot

import (
	"fmt"
	"log"
	"time"

	"fitbot/internal/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func dayKeyboard(view *models.DayPlanView) tgbotapi.InlineKeyboardMarkup {
	if view.DayType == models.DayTypeTrain {
		return tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("Легкая", "level:easy"),
				tgbotapi.NewInlineKeyboardButtonData("Средняя", "level:medium"),
				tgbotapi.NewInlineKeyboardButtonData("Сложная", "level:hard"),
			),
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("ДОБАВИТЬ ПРОГРЕССИЮ", "progression"),
			),
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("ЗАВЕРШИЛ ТРЕНИРОВКУ", "done:train"),
				tgbotapi.NewInlineKeyboardButtonData("Пропустил день", "skip:today"),
			),
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("Добавить прогресс", "progress:add"),
				tgbotapi.NewInlineKeyboardButtonData("Комментарий", "comment:today"),
			),
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("Календарь", "calendar"),
			),
		)
	}
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("ОТДЫХАЛ", "done:rest"),
			tgbotapi.NewInlineKeyboardButtonData("Пропустил день", "skip:today"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Добавить прогресс", "progress:add"),
			tgbotapi.NewInlineKeyboardButtonData("Комментарий", "comment:today"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Календарь", "calendar"),
		),
	)
}

func (b *Bot) handleToday(chatID int64, userID int) {
	view, err := b.svc.Materialize(userID, b.today())
	if err != nil {
		b.sendError(chatID, "Не удалось собрать план на сегодня", err)
		return
	}

	text := formatDayMessage(view.Plan)
	if view.DefaultStart {
		text += "\n\nДата начала цикла не задана, позиции считаются от 1970-01-01. Задай свою: /startdate 2026-02-02 или /startdate today"
	}
	b.sendMessageWithKeyboard(chatID, text, dayKeyboard(view.Plan))
}

func (b *Bot) handleStartDate(chatID int64, userID int, args string) {
	if args == "" {
		b.sendMessage(chatID, "Использование: /startdate 2026-02-02 или /startdate today")
		return
	}

	date, err := parseStartDate(args, b.today())
	if err != nil {
		b.sendMessage(chatID, err.Error())
		return
	}
	if err := b.svc.SetStartDate(userID, date); err != nil {
		b.sendError(chatID, "Не удалось сохранить дату", err)
		return
	}
	b.sendMessage(chatID, fmt.Sprintf("Стартовая дата установлена: %s", date.Format("2006-01-02")))
}

func (b *Bot) handleLevelCallback(query *tgbotapi.CallbackQuery, userID int, levelRaw string) {
	chatID := query.Message.Chat.ID

	if !models.ValidLevel(levelRaw) {
		b.answerCallback(query.ID, "Неизвестный уровень", true)
		return
	}
	level := models.Level(levelRaw)

	view, err := b.svc.Materialize(userID, b.today())
	if err != nil {
		b.answerCallback(query.ID, "Сначала запроси /today", true)
		return
	}
	if view.Plan.DayType != models.DayTypeTrain || view.Plan.Workout == nil {
		b.answerCallback(query.ID, "Сегодня не тренировочный день", true)
		return
	}

	if err := b.svc.SetDayLevel(userID, b.today(), level); err != nil {
		b.answerCallback(query.ID, "Не удалось сохранить уровень", true)
		return
	}
	// выбранный уровень становится уровнем по умолчанию
	if err := b.repo.User.SetLevel(userID, level); err != nil {
		log.Printf("Не удалось сохранить уровень пользователя %d: %v", userID, err)
	}

	b.sendMessage(chatID, formatWorkoutText(view.Plan.Workout, level))
	b.answerCallback(query.ID, "", false)
}

func (b *Bot) handleDoneCallback(query *tgbotapi.CallbackQuery, userID int) {
	chatID := query.Message.Chat.ID

	if _, err := b.svc.Materialize(userID, b.today()); err != nil {
		b.answerCallback(query.ID, "Сначала запроси /today", true)
		return
	}
	if err := b.svc.SetDayStatus(userID, b.today(), models.DayStatusDone); err != nil {
		b.answerCallback(query.ID, "Не удалось сохранить статус", true)
		return
	}

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Пропустить комментарий", "comment:skip"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Добавить прогресс", "progress:add"),
		),
	)
	setState(chatID, stateComment)
	b.sendMessageWithKeyboard(chatID, "Короткий комментарий по дню?", keyboard)
	b.answerCallback(query.ID, "", false)
}

func (b *Bot) handleSkipCallback(query *tgbotapi.CallbackQuery, userID int) {
	chatID := query.Message.Chat.ID

	if _, err := b.svc.Materialize(userID, b.today()); err != nil {
		b.answerCallback(query.ID, "Сначала запроси /today", true)
		return
	}
	if err := b.svc.SetDayStatus(userID, b.today(), models.DayStatusSkipped); err != nil {
		b.answerCallback(query.ID, "Не удалось сохранить статус", true)
		return
	}
	b.sendMessage(chatID, "Отметил как пропуск.")
	b.answerCallback(query.ID, "", false)
}

func (b *Bot) handleProgressionCallback(query *tgbotapi.CallbackQuery, userID int) {
	chatID := query.Message.Chat.ID

	view, err := b.svc.Materialize(userID, b.today())
	if err != nil || view.Plan.DayType != models.DayTypeTrain || view.Plan.Workout == nil {
		b.answerCallback(query.ID, "Сегодня нет тренировки", true)
		return
	}

	setState(chatID, statePrefixProgression+view.Plan.Workout.Key)
	b.sendMessage(chatID,
		"Добавить прогрессию: напиши в формате\n"+
			"упражнение | +2 повт или упражнение | +2.5 кг")
	b.answerCallback(query.ID, "", false)
}

func (b *Bot) handleProgressionInput(chatID int64, userID int, workoutKey, text string) {
	name, delta, err := parseProgressionInput(text)
	if err != nil {
		b.sendMessage(chatID, err.Error())
		return
	}

	if err := b.svc.SetOverride(userID, name, delta, time.Now()); err != nil {
		b.sendError(chatID, "Не удалось сохранить прогрессию", err)
		return
	}
	clearState(chatID)
	b.sendMessage(chatID, fmt.Sprintf("Прогрессия сохранена для «%s»: %s", name, delta))
}

func (b *Bot) handleOverridesList(chatID int64, userID int) {
	overrides, err := b.repo.Override.List(userID)
	if err != nil {
		b.sendError(chatID, "Не удалось получить прогрессии", err)
		return
	}
	if len(overrides) == 0 {
		b.sendMessage(chatID, "Прогрессий пока нет. Добавь через /today → ДОБАВИТЬ ПРОГРЕССИЮ.")
		return
	}

	text := "Текущие прогрессии:\n"
	for _, o := range overrides {
		text += fmt.Sprintf("- %s: %s\n", o.ExerciseName, o.DeltaText)
	}
	b.sendMessage(chatID, text)
}

func (b *Bot) handleCommentInput(chatID int64, userID int, text string) {
	day, err := b.repo.Calendar.Get(userID, b.today())
	if err != nil || day == nil {
		clearState(chatID)
		b.sendMessage(chatID, "Сначала запроси /today")
		return
	}

	if err := b.repo.Calendar.SetNote(userID, b.today(), text); err != nil {
		b.sendError(chatID, "Не удалось сохранить комментарий", err)
		return
	}
	clearState(chatID)
	b.sendMessage(chatID, "Комментарий сохранён.")
}
