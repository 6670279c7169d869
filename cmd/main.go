package main

import (
	"database/sql"
	"log"

	"fitbot/internal/bot"
	"fitbot/internal/config"
	"fitbot/internal/plan"
	"fitbot/internal/repository"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	_ "github.com/lib/pq"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Ошибка конфигурации: %v", err)
	}

	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		log.Fatalf("Ошибка подключения к базе: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("База недоступна: %v", err)
	}
	if err := repository.InitSchema(db); err != nil {
		log.Fatalf("Ошибка инициализации схемы: %v", err)
	}
	repo := repository.New(db)

	store := plan.NewStore()
	if snap, err := store.LoadFile(cfg.PlanPath); err != nil {
		log.Printf("Предупреждение: план %s не загружен: %v", cfg.PlanPath, err)
	} else {
		log.Printf("План загружен: %d дней в цикле", snap.CycleLength())
	}

	// Перечитываем план при изменении файла
	watcher := plan.NewWatcher(store, cfg.PlanPath)
	go watcher.StartWatching()

	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		log.Fatalf("Ошибка создания бота: %v", err)
	}
	log.Printf("Бот авторизован как @%s", api.Self.UserName)

	telegramBot := bot.New(api, repo, store, cfg)
	if err := telegramBot.Start(); err != nil {
		log.Fatal(err)
	}
}
