package main

import (
	"database/sql"
	"log"

	"fitbot/internal/api"
	"fitbot/internal/config"
	"fitbot/internal/plan"
	"fitbot/internal/repository"

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

	watcher := plan.NewWatcher(store, cfg.PlanPath)
	go watcher.StartWatching()

	server := api.NewServer(cfg, repo, store)
	log.Printf("API слушает %s", cfg.APIAddr)
	if err := server.Run(); err != nil {
		log.Fatal(err)
	}
}
