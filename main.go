// Файл: main.go
package main

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"ShiftTracker/internal/api"
	"ShiftTracker/internal/config"
	"ShiftTracker/internal/constants"
	"ShiftTracker/internal/ledger"
	"ShiftTracker/internal/notify"
	"ShiftTracker/internal/session"
	"ShiftTracker/internal/store"
)

func main() {
	// --- Загрузка конфигурации ---
	err := godotenv.Load()
	if err != nil {
		log.Println("Предупреждение: не удалось загрузить файл .env. Используются системные переменные окружения.")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Критическая ошибка загрузки конфигурации: %v", err)
	}

	// --- Инициализация хранилища ---
	var st store.Store
	if cfg.DatabaseURL != "" {
		pgStore, errDb := store.NewPostgresStore(cfg.DatabaseURL)
		if errDb != nil {
			log.Fatalf("Критическая ошибка: не удалось инициализировать базу данных: %v", errDb)
		}
		defer pgStore.Close()
		st = pgStore
	} else {
		log.Println("Предупреждение: используется хранилище в памяти, данные не переживут перезапуск.")
		st = store.NewMemoryStore()
	}

	// --- Инициализация уведомлений ---
	var notifier notify.Notifier
	if cfg.TelegramToken != "" && cfg.NotifyChatID != 0 {
		tgNotifier, errTg := notify.NewTelegramNotifier(cfg.TelegramToken, cfg.NotifyChatID, cfg.AppEnv != "production")
		if errTg != nil {
			log.Printf("Предупреждение: не удалось инициализировать Telegram уведомления: %v. Уведомления пишутся в лог.", errTg)
			notifier = notify.NewLogNotifier()
		} else {
			notifier = tgNotifier
		}
	} else {
		notifier = notify.NewLogNotifier()
	}

	// --- Инициализация журналов и кассы ---
	shifts := ledger.NewShiftLedger(st, notifier)
	deliveries := ledger.NewDeliveryLedger(st, notifier)
	checkout := ledger.NewCheckout(st, notifier)
	if err := checkout.Load(); err != nil {
		log.Fatalf("Критическая ошибка: не удалось выполнить сверку платежей при старте: %v", err)
	}

	sessions := session.NewManager(constants.CLEAR_ALL_COOLDOWN_SECONDS * time.Second)

	// --- Настройка HTTP-сервера ---
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Api-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	api.SetupRoutes(r, api.ApiDependencies{
		Config:     cfg,
		Shifts:     shifts,
		Deliveries: deliveries,
		Checkout:   checkout,
		Sessions:   sessions,
	})

	// Браузеры запрашивают favicon, отвечаем пустым телом, чтобы не засорять лог
	r.Get("/favicon.ico", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("HTTP сервер запускается на порту %s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatalf("Критическая ошибка HTTP сервера: %v", err)
	}
}
