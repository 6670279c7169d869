package bot

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	commandStart       = "start"
	commandToday       = "today"
	commandStartDate   = "startdate"
	commandCycleStart  = "cyclestart"
	commandOverrides   = "prog"
	commandAutoprog    = "autoprog"
	commandSyncPlan    = "syncplan"
	commandReminder    = "reminder"
	commandDailyReport = "dailyreport"
	commandProgress    = "progress"
	commandReport      = "report"
	commandCalendar    = "calendar"
	commandHelp        = "help"
)

// Состояния диалогов
const (
	statePrefixProgression = "progression:" // ожидается "упражнение | дельта"
	stateProgress          = "progress"     // ожидается строка замеров
	stateComment           = "comment"      // ожидается комментарий по дню
)

func (b *Bot) handleCommand(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	userID, err := b.resolveUser(message.From, chatID)
	if err != nil {
		b.sendError(chatID, "Ошибка регистрации, попробуй ещё раз", err)
		return
	}

	switch message.Command() {
	case commandStart:
		b.handleStart(chatID, userID)
	case commandToday:
		b.handleToday(chatID, userID)
	case commandStartDate, commandCycleStart:
		b.handleStartDate(chatID, userID, message.CommandArguments())
	case commandOverrides:
		b.handleOverridesList(chatID, userID)
	case commandAutoprog:
		b.handleAutoprog(chatID, userID, message.CommandArguments())
	case commandSyncPlan:
		b.handleSyncPlan(chatID, message.From.ID, message.CommandArguments())
	case commandReminder:
		b.handleReminder(chatID, userID, message.CommandArguments())
	case commandDailyReport:
		b.handleDailyReport(chatID, userID, message.CommandArguments())
	case commandProgress:
		b.handleProgress(chatID, userID, message.CommandArguments())
	case commandReport:
		b.handleReport(chatID, userID)
	case commandCalendar:
		b.handleCalendarExport(chatID, userID)
	case commandHelp:
		b.handleHelp(chatID)
	default:
		b.sendMessage(chatID, "Пока я такого не умею =(")
	}
}

func (b *Bot) handleMessage(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	state := getState(chatID)
	if state == "" {
		return
	}

	userID, err := b.resolveUser(message.From, chatID)
	if err != nil {
		b.sendError(chatID, "Ошибка регистрации, попробуй ещё раз", err)
		return
	}

	text := strings.TrimSpace(message.Text)
	if text == "Отмена" || text == "/cancel" {
		clearState(chatID)
		b.sendMessage(chatID, "Ок, отменил.")
		return
	}

	switch {
	case strings.HasPrefix(state, statePrefixProgression):
		b.handleProgressionInput(chatID, userID, strings.TrimPrefix(state, statePrefixProgression), text)
	case state == stateProgress:
		b.handleProgressInput(chatID, userID, text)
	case state == stateComment:
		b.handleCommentInput(chatID, userID, text)
	default:
		clearState(chatID)
	}
}

func (b *Bot) handleCallback(query *tgbotapi.CallbackQuery) {
	if query.Message == nil {
		b.answerCallback(query.ID, "", false)
		return
	}
	chatID := query.Message.Chat.ID

	userID, err := b.resolveUser(query.From, chatID)
	if err != nil {
		b.answerCallback(query.ID, "Ошибка регистрации", true)
		return
	}

	data := query.Data
	switch {
	case strings.HasPrefix(data, "level:"):
		b.handleLevelCallback(query, userID, strings.TrimPrefix(data, "level:"))
	case strings.HasPrefix(data, "done:"):
		b.handleDoneCallback(query, userID)
	case data == "skip:today":
		b.handleSkipCallback(query, userID)
	case data == "progression":
		b.handleProgressionCallback(query, userID)
	case data == "progress:add":
		b.handleProgressAddCallback(query)
	case data == "comment:today":
		b.handleCommentCallback(query)
	case data == "comment:skip":
		clearState(chatID)
		b.answerCallback(query.ID, "Ок", false)
	case data == "calendar":
		b.answerCallback(query.ID, "", false)
		b.handleCalendarExport(chatID, userID)
	case data == "syncplan:apply":
		b.handleSyncApplyCallback(query)
	default:
		b.answerCallback(query.ID, "", false)
	}
}

func (b *Bot) handleStart(chatID int64, userID int) {
	b.sendMessage(chatID,
		"Привет! Я готов вести твой календарь тренировок, КБЖУ и прогресс.\n"+
			"Начни с /startdate — дата первого дня цикла, потом /today.\n"+
			"Полный список команд: /help")
}

func (b *Bot) handleHelp(chatID int64) {
	b.sendMessage(chatID,
		"/today — план на сегодня\n"+
			"/startdate 2026-02-02 — дата начала цикла\n"+
			"/prog — мои прогрессии\n"+
			"/autoprog — правила автопрогрессии\n"+
			"/progress — замеры тела\n"+
			"/report — отчёт Excel\n"+
			"/calendar — экспорт в календарь (.ics)\n"+
			"/reminder — напоминания\n"+
			"/dailyreport — ежедневный отчёт\n"+
			"/syncplan — синхронизация плана из Google Sheets")
}
