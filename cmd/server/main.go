package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"scoring-api/internal/config"
	"scoring-api/internal/handlers"
	appmiddleware "scoring-api/internal/middleware"
	"scoring-api/internal/repository"
	"scoring-api/internal/services"
)

const (
	defaultReadTimeout  = 10 * time.Second
	defaultWriteTimeout = 10 * time.Second
	defaultIdleTimeout  = 30 * time.Second
)

// main - точка входа. Вызывает run и обрабатывает ошибку.
func main() {
	if err := run(); err != nil {
		log.Printf("Ошибка выполнения сервера: %v", err)
		os.Exit(1)
	}
}

// run содержит основную логику запуска сервера и возвращает ошибку.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}
	parseFlags(cfg)

	if err = setupLog(cfg.LogFile); err != nil {
		return err
	}

	log.Println("Запуск scoring API...")

	// Инициализация хранилища и ядра диспетчеризации
	store, closeStore, err := setupStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	dispatcher := services.NewDispatcher(services.NewScoringService(store), cfg.Salt, cfg.AdminSalt)
	methodHandler := handlers.NewMethodHandler(dispatcher)

	r := setupRouter(methodHandler)

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      r,
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
		IdleTimeout:  defaultIdleTimeout,
	}

	log.Printf("Запуск HTTP-сервера на %s...", cfg.Addr)
	if err = server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("ошибка запуска HTTP-сервера: %w", err)
	}
	return nil
}

// setupLog направляет лог в файл, если он задан в конфигурации.
func setupLog(logFile string) error {
	if logFile == "" {
		return nil
	}
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("ошибка открытия файла лога: %w", err)
	}
	log.SetOutput(f)
	return nil
}

// setupStore выбирает реализацию хранилища: PostgreSQL, если задана
// строка подключения, иначе хранилище в памяти процесса.
func setupStore(cfg *config.Config) (repository.Store, func(), error) {
	if cfg.DatabaseDSN == "" {
		log.Println("DATABASE_DSN не задан, используется хранилище в памяти.")
		return repository.NewMemoryStore(), func() {}, nil
	}

	db, err := repository.NewPostgresDB(cfg.DatabaseDSN)
	if err != nil {
		return nil, nil, fmt.Errorf("ошибка инициализации БД: %w", err)
	}
	if err = repository.EnsureSchema(context.Background(), db); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			log.Printf("Ошибка закрытия соединения с БД: %v", closeErr)
		}
		return nil, nil, err
	}

	closeStore := func() {
		if closeErr := db.Close(); closeErr != nil {
			log.Printf("Ошибка закрытия соединения с БД: %v", closeErr)
		}
	}
	return repository.NewPostgresStore(db), closeStore, nil
}

// setupRouter настраивает и возвращает роутер chi.
func setupRouter(methodHandler *handlers.MethodHandler) *chi.Mux {
	r := chi.NewRouter()
	r.Use(appmiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)

	// Неизвестные пути и HTTP-методы тоже получают JSON-конверт ошибки.
	r.NotFound(handlers.NotFound)
	r.MethodNotAllowed(handlers.MethodNotAllowed)

	// --- Маршруты --- //
	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("pong\n"))
	})

	r.Post("/method", methodHandler.Handle)
	return r
}
