package bot

import (
	"fmt"
	"sort"
	"strings"
)

const autoprogUsage = "Команды:\n" +
	"/autoprog list\n" +
	"/autoprog set workout_key | упражнение | +1 повт | 7\n" +
	"/autoprog del workout_key | упражнение"

func (b *Bot) handleAutoprog(chatID int64, userID int, args string) {
	args = strings.TrimSpace(args)
	if args == "" {
		b.sendMessage(chatID, autoprogUsage)
		return
	}

	action := args
	payload := ""
	if idx := strings.IndexAny(args, " \t"); idx >= 0 {
		action = args[:idx]
		payload = strings.TrimSpace(args[idx+1:])
	}

	switch strings.ToLower(action) {
	case "list":
		rules, err := b.repo.Rule.ListByUser(userID)
		if err != nil {
			b.sendError(chatID, "Не удалось получить правила", err)
			return
		}
		b.sendMessage(chatID, formatRules(rules))

	case "set":
		workoutKey, exerciseName, deltaText, intervalDays, err := parseAutoprogInput(payload)
		if err != nil {
			b.sendMessage(chatID, err.Error())
			return
		}
		if !b.knownWorkoutKey(workoutKey) {
			b.sendMessage(chatID, fmt.Sprintf("Нет такого workout_key. Доступны: %s", strings.Join(b.workoutKeys(), ", ")))
			return
		}
		if err := b.repo.Rule.Upsert(userID, workoutKey, exerciseName, deltaText, intervalDays); err != nil {
			b.sendError(chatID, "Не удалось сохранить правило", err)
			return
		}
		b.sendMessage(chatID, fmt.Sprintf("Ок, правило сохранено: %s | %s | %s | %dд",
			workoutKey, exerciseName, deltaText, intervalDays))

	case "del":
		fields := splitFields(payload)
		if len(fields) < 2 {
			b.sendMessage(chatID, "Формат: /autoprog del workout_key | упражнение")
			return
		}
		if err := b.repo.Rule.Delete(userID, fields[0], fields[1]); err != nil {
			b.sendError(chatID, "Не удалось удалить правило", err)
			return
		}
		b.sendMessage(chatID, fmt.Sprintf("Правило для «%s» удалено.", fields[1]))

	default:
		b.sendMessage(chatID, autoprogUsage)
	}
}

func splitFields(payload string) []string {
	var fields []string
	for _, f := range strings.Split(payload, "|") {
		if f = strings.TrimSpace(f); f != "" {
			fields = append(fields, f)
		}
	}
	return fields
}

func (b *Bot) workoutKeys() []string {
	snap, err := b.store.Snapshot()
	if err != nil {
		return nil
	}
	keys := make([]string, 0, len(snap.Def.Workouts))
	for key := range snap.Def.Workouts {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func (b *Bot) knownWorkoutKey(key string) bool {
	for _, k := range b.workoutKeys() {
		if k == key {
			return true
		}
	}
	return false
}
