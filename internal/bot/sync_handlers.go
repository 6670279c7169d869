package bot

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"fitbot/internal/gsheets"
	"fitbot/internal/plan"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// handleSyncPlan загружает план из Google Sheets в ожидающий файл.
// Применяется отдельным шагом, чтобы ошибочный план не затёр рабочий
func (b *Bot) handleSyncPlan(chatID, tgID int64, args string) {
	if !b.config.IsAdmin(tgID) {
		b.sendMessage(chatID, "Команда доступна только администратору.")
		return
	}

	args = strings.ToLower(strings.TrimSpace(args))
	if args == "apply" || args == "confirm" {
		b.applyPendingPlan(chatID)
		return
	}

	if b.sheets == nil {
		b.sendMessage(chatID, "Google Sheets не настроен. Задай SHEET_ID и GOOGLE_CREDENTIALS_PATH в .env")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	def, err := b.sheets.FetchDefinition(ctx, gsheets.TabNames{
		Plan:   b.config.PlanTab,
		Macros: b.config.MacrosTab,
		Cycle:  b.config.CycleTab,
	})
	if err != nil {
		b.sendError(chatID, fmt.Sprintf("Не удалось синхронизировать план: %v", err), err)
		return
	}

	pendingPath := plan.PendingPath(b.config.PlanPath)
	if err := plan.WriteFile(*def, pendingPath); err != nil {
		b.sendError(chatID, "Не удалось записать ожидающий план", err)
		return
	}

	exercises := 0
	for _, content := range def.Workouts {
		for _, entries := range content.Levels {
			exercises += len(entries)
		}
	}

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Применить", "syncplan:apply"),
		),
	)
	b.sendMessageWithKeyboard(chatID, fmt.Sprintf(
		"План загружен в ожидании применения. Упражнений: %d, дней в цикле: %d.\n"+
			"Применить: /syncplan apply", exercises, len(def.CycleOrder)), keyboard)
}

func (b *Bot) handleSyncApplyCallback(query *tgbotapi.CallbackQuery) {
	chatID := query.Message.Chat.ID
	if !b.config.IsAdmin(query.From.ID) {
		b.answerCallback(query.ID, "Только для администратора", true)
		return
	}
	b.answerCallback(query.ID, "", false)
	b.applyPendingPlan(chatID)
}

func (b *Bot) applyPendingPlan(chatID int64) {
	pendingPath := plan.PendingPath(b.config.PlanPath)
	if _, err := os.Stat(pendingPath); err != nil {
		b.sendMessage(chatID, "Нет ожидающего плана. Сначала /syncplan")
		return
	}

	snap, err := b.store.ApplyPending(b.config.PlanPath)
	if err != nil {
		b.sendError(chatID, fmt.Sprintf("Не удалось применить план: %v", err), err)
		return
	}
	b.sendMessage(chatID, fmt.Sprintf("План применен. Дней в цикле: %d.", snap.CycleLength()))
}
