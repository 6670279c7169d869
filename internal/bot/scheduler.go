package bot

import (
	"fmt"
	"log"
	"strings"
	"sync"

	"fitbot/internal/calendar"
	"fitbot/internal/models"

	"github.com/robfig/cron"
)

// Scheduler ведёт cron-задачи: автопрогрессию и напоминания.
// Библиотека не умеет снимать отдельные задачи, поэтому при любом
// изменении настроек расписание пересобирается целиком
type Scheduler struct {
	mu   sync.Mutex
	bot  *Bot
	cron *cron.Cron
}

// NewScheduler создаёт планировщик
func NewScheduler(b *Bot) *Scheduler {
	return &Scheduler{bot: b}
}

// Rebuild останавливает старое расписание и собирает новое
// из настроек всех пользователей
func (s *Scheduler) Rebuild() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cron != nil {
		s.cron.Stop()
	}
	c := cron.NewWithLocation(s.bot.loc)

	// Автопрогрессия раз в сутки, до первых утренних запросов
	if err := c.AddFunc("0 5 0 * * *", func() {
		s.bot.svc.RunAutoprogression(s.bot.today())
	}); err != nil {
		log.Printf("Не удалось запланировать автопрогрессию: %v", err)
	}

	ids, err := s.bot.repo.User.ListIDs()
	if err != nil {
		log.Printf("Планировщик: не удалось получить пользователей: %v", err)
	}
	jobs := 1
	for _, userID := range ids {
		jobs += s.scheduleUser(c, userID)
	}

	c.Start()
	s.cron = c
	log.Printf("Расписание пересобрано: %d задач", jobs)
}

func (s *Scheduler) scheduleUser(c *cron.Cron, userID int) int {
	settings, err := s.bot.repo.User.GetSettings(userID)
	if err != nil {
		log.Printf("Планировщик: настройки пользователя %d: %v", userID, err)
		return 0
	}
	reminders := userReminders(settings)

	jobs := 0
	for key, cfg := range reminders {
		if !cfg.Enabled || cfg.Time == "" {
			continue
		}
		hour, minute, err := calendar.ParseTime(cfg.Time)
		if err != nil {
			log.Printf("Планировщик: время «%s» пользователя %d: %v", cfg.Time, userID, err)
			continue
		}

		spec := fmt.Sprintf("0 %d %d * * *", minute, hour)
		if cfg.Day != "" {
			if !validWeekday(cfg.Day) {
				log.Printf("Планировщик: день «%s» пользователя %d не распознан", cfg.Day, userID)
				continue
			}
			spec = fmt.Sprintf("0 %d %d * * %s", minute, hour, strings.ToLower(cfg.Day))
		}

		uid, rKey := userID, key
		if err := c.AddFunc(spec, func() { s.fire(uid, rKey) }); err != nil {
			log.Printf("Планировщик: задача %s пользователя %d: %v", key, userID, err)
			continue
		}
		jobs++
	}
	return jobs
}

// fire отправляет напоминание или отчёт одного типа
func (s *Scheduler) fire(userID int, key string) {
	user, err := s.bot.repo.User.GetByID(userID)
	if err != nil || user.ChatID == 0 {
		return
	}

	switch key {
	case reminderDailyReport:
		s.bot.sendMessage(user.ChatID, s.bot.buildDailyReport(userID))
	case reminderWeeklyReport:
		s.bot.sendMessage(user.ChatID, s.bot.buildWeeklySummary(userID))
		s.bot.handleReport(user.ChatID, userID)
	default:
		text, ok := reminderTexts[key]
		if !ok {
			text = "Напоминание."
		}
		s.bot.sendMessage(user.ChatID, text)
	}
}

// buildWeeklySummary собирает сводку по календарю за последние 7 дней
func (b *Bot) buildWeeklySummary(userID int) string {
	today := b.today()
	days, err := b.repo.Calendar.ListRange(userID, today.AddDate(0, 0, -6), today)
	if err != nil {
		log.Printf("Недельная сводка пользователя %d: %v", userID, err)
		return "Итоги недели: данных по календарю нет."
	}

	var done, skipped int
	var notes []string
	for _, day := range days {
		switch day.Status {
		case models.DayStatusDone:
			done++
		case models.DayStatusSkipped:
			skipped++
		}
		if day.Note != "" {
			notes = append(notes, fmt.Sprintf("%s: %s", day.Date.Format("02.01"), day.Note))
		}
	}

	lines := []string{
		fmt.Sprintf("Итоги недели (%s — %s)", today.AddDate(0, 0, -6).Format("02.01"), today.Format("02.01")),
		fmt.Sprintf("Выполнено дней: %d, пропущено: %d", done, skipped),
	}
	if len(notes) > 0 {
		lines = append(lines, "Комментарии:")
		lines = append(lines, notes...)
	}
	return strings.Join(lines, "\n")
}

// buildDailyReport собирает текст ежедневного отчёта
func (b *Bot) buildDailyReport(userID int) string {
	lines := []string{fmt.Sprintf("Ежедневный отчет — %s", b.today().Format("2006-01-02"))}

	view, err := b.svc.Materialize(userID, b.today())
	if err != nil {
		lines = append(lines, "План на сегодня недоступен: "+err.Error())
		return strings.Join(lines, "\n")
	}
	lines = append(lines, formatDayMessage(view.Plan))
	lines = append(lines, "Статус: "+string(view.Status))

	if day, err := b.repo.Calendar.Get(userID, b.today()); err == nil && day != nil && day.Note != "" {
		lines = append(lines, "Комментарий: "+day.Note)
	}

	if last, err := b.repo.Progress.Latest(userID); err == nil && last != nil {
		lines = append(lines, "Последний прогресс — "+formatProgressEntry(*last))
	}

	if settings, err := b.repo.User.GetSettings(userID); err == nil {
		var remLines []string
		for _, key := range reminderTypeNames() {
			if cfg, ok := userReminders(settings)[key]; ok && cfg.Enabled && cfg.Time != "" {
				remLines = append(remLines, fmt.Sprintf("%s: %s", key, cfg.Time))
			}
		}
		if len(remLines) > 0 {
			lines = append(lines, "Напоминания: "+strings.Join(remLines, ", "))
		}
	}

	return strings.Join(lines, "\n")
}
