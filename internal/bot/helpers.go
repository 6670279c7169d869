package bot

import (
	"log"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

var userStates = struct {
	sync.RWMutex
	states map[int64]string
}{states: make(map[int64]string)}

// setState sets user state with proper locking
func setState(chatID int64, state string) {
	userStates.Lock()
	userStates.states[chatID] = state
	userStates.Unlock()
}

// getState gets user state with proper locking
func getState(chatID int64) string {
	userStates.RLock()
	defer userStates.RUnlock()
	return userStates.states[chatID]
}

// clearState clears user state
func clearState(chatID int64) {
	userStates.Lock()
	delete(userStates.states, chatID)
	userStates.Unlock()
}

// sendError sends error message to user and logs it
func (b *Bot) sendError(chatID int64, userMessage string, err error) {
	if err != nil {
		log.Printf("Error [chat=%d]: %v", chatID, err)
	}
	msg := tgbotapi.NewMessage(chatID, userMessage)
	if _, sendErr := b.api.Send(msg); sendErr != nil {
		log.Printf("Failed to send error message [chat=%d]: %v", chatID, sendErr)
	}
}

// sendMessage sends message to user with error logging
func (b *Bot) sendMessage(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	_, err := b.api.Send(msg)
	if err != nil {
		log.Printf("Failed to send message [chat=%d]: %v", chatID, err)
	}
	return err
}

// sendMessageWithKeyboard sends message with inline keyboard
func (b *Bot) sendMessageWithKeyboard(chatID int64, text string, keyboard tgbotapi.InlineKeyboardMarkup) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = keyboard
	_, err := b.api.Send(msg)
	if err != nil {
		log.Printf("Failed to send message with keyboard [chat=%d]: %v", chatID, err)
	}
	return err
}

// answerCallback closes the callback spinner, optionally with an alert
func (b *Bot) answerCallback(callbackID, text string, alert bool) {
	cb := tgbotapi.NewCallback(callbackID, text)
	cb.ShowAlert = alert
	if _, err := b.api.Request(cb); err != nil {
		log.Printf("Failed to answer callback: %v", err)
	}
}
