package bot

import (
	"fmt"
	"os"
	"strings"

	"fitbot/internal/excel"
	"fitbot/internal/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (b *Bot) handleProgress(chatID int64, userID int, args string) {
	if strings.TrimSpace(strings.ToLower(args)) == "add" {
		setState(chatID, stateProgress)
		b.sendMessage(chatID,
			"Введи прогресс одной строкой: вес, талия, живот, бицепс, грудь.\n"+
				"Пример: 92.5, 84, 89, 36, 102")
		return
	}

	entries, err := b.repo.Progress.List(userID)
	if err != nil {
		b.sendError(chatID, "Не удалось получить замеры", err)
		return
	}

	lines := []string{"Последние записи прогресса:"}
	if len(entries) == 0 {
		lines = append(lines, "Пока нет данных.")
	} else {
		// последние пять, от новых к старым
		start := len(entries) - 5
		if start < 0 {
			start = 0
		}
		for i := len(entries) - 1; i >= start; i-- {
			lines = append(lines, formatProgressEntry(entries[i]))
		}
	}

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Добавить прогресс", "progress:add"),
		),
	)
	b.sendMessageWithKeyboard(chatID, strings.Join(lines, "\n"), keyboard)
}

func (b *Bot) handleProgressAddCallback(query *tgbotapi.CallbackQuery) {
	chatID := query.Message.Chat.ID
	setState(chatID, stateProgress)
	b.sendMessage(chatID,
		"Введи прогресс одной строкой: вес, талия, живот, бицепс, грудь.\n"+
			"Пример: 92.5, 84, 89, 36, 102")
	b.answerCallback(query.ID, "", false)
}

func (b *Bot) handleCommentCallback(query *tgbotapi.CallbackQuery) {
	chatID := query.Message.Chat.ID
	setState(chatID, stateComment)
	b.sendMessage(chatID, "Напиши комментарий по дню:")
	b.answerCallback(query.ID, "", false)
}

func (b *Bot) handleProgressInput(chatID int64, userID int, text string) {
	values, err := parseProgressLine(strings.ReplaceAll(text, ";", ","))
	if err != nil {
		b.sendMessage(chatID, err.Error())
		return
	}

	entry := models.ProgressEntry{
		UserID: userID,
		Date:   b.today(),
		Weight: values[0],
		Waist:  values[1],
		Belly:  values[2],
		Biceps: values[3],
		Chest:  values[4],
	}
	if _, err := b.repo.Progress.Add(entry); err != nil {
		b.sendError(chatID, "Не удалось сохранить замер", err)
		return
	}
	clearState(chatID)
	b.sendMessage(chatID, "Прогресс записан.")
}

// handleReport собирает Excel-отчёт с замерами и планом цикла
func (b *Bot) handleReport(chatID int64, userID int) {
	entries, err := b.repo.Progress.List(userID)
	if err != nil {
		b.sendError(chatID, "Не удалось получить замеры", err)
		return
	}

	snap, err := b.store.Snapshot()
	if err != nil {
		b.sendError(chatID, "План не загружен", err)
		return
	}

	path, err := excel.BuildReport(snap, entries)
	if err != nil {
		b.sendError(chatID, "Не удалось собрать отчёт", err)
		return
	}
	defer os.Remove(path)

	doc := tgbotapi.NewDocument(chatID, tgbotapi.FilePath(path))
	doc.Caption = fmt.Sprintf("Отчёт на %s", b.today().Format("02.01.2006"))
	if _, err := b.api.Send(doc); err != nil {
		b.sendError(chatID, "Не удалось отправить отчёт", err)
	}
}
