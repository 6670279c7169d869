package bot

import (
	"log"
	"time"

	"fitbot/internal/config"
	"fitbot/internal/gsheets"
	"fitbot/internal/plan"
	"fitbot/internal/repository"
	"fitbot/internal/service"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Bot представляет Telegram бота
type Bot struct {
	api       *tgbotapi.BotAPI
	repo      *repository.Repository
	store     *plan.Store
	svc       *service.DayService
	config    *config.Config
	sheets    *gsheets.Client
	scheduler *Scheduler
	loc       *time.Location
}

// New создаёт новый экземпляр бота
func New(api *tgbotapi.BotAPI, repo *repository.Repository, store *plan.Store, cfg *config.Config) *Bot {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Printf("Предупреждение: таймзона %s не найдена, используется UTC", cfg.Timezone)
		loc = time.UTC
	}

	// Инициализируем Google Sheets клиент
	var sheetsClient *gsheets.Client
	if cfg.SheetID != "" {
		sheetsClient, err = gsheets.NewClient(cfg.GoogleCredentialsPath, cfg.SheetID)
		if err != nil {
			log.Printf("Предупреждение: Google Sheets не инициализирован: %v", err)
		} else {
			log.Println("Google Sheets клиент инициализирован")
		}
	}

	b := &Bot{
		api:    api,
		repo:   repo,
		store:  store,
		svc:    service.NewDayService(repo, store),
		config: cfg,
		sheets: sheetsClient,
		loc:    loc,
	}
	b.scheduler = NewScheduler(b)
	return b
}

// Start запускает планировщик и цикл обработки обновлений
func (b *Bot) Start() error {
	b.scheduler.Rebuild()

	updates := b.initUpdatesChannel()
	b.handleUpdates(updates)
	return nil
}

func (b *Bot) handleUpdates(updates tgbotapi.UpdatesChannel) {
	for update := range updates {
		if update.CallbackQuery != nil {
			b.handleCallback(update.CallbackQuery)
			continue
		}
		if update.Message == nil {
			continue
		}

		if update.Message.IsCommand() {
			b.handleCommand(update.Message)
			continue
		}
		b.handleMessage(update.Message)
	}
}

func (b *Bot) initUpdatesChannel() tgbotapi.UpdatesChannel {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30

	return b.api.GetUpdatesChan(u)
}

// today возвращает сегодняшнюю дату в таймзоне бота
func (b *Bot) today() time.Time {
	now := time.Now().In(b.loc)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// resolveUser регистрирует пользователя при первом обращении
func (b *Bot) resolveUser(from *tgbotapi.User, chatID int64) (int, error) {
	name := from.FirstName
	if from.LastName != "" {
		name += " " + from.LastName
	}
	return b.repo.User.GetOrCreate(from.ID, name, b.config.Timezone, chatID)
}
