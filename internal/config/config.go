// internal/config/config.go
package config

import (
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"

	"ShiftTracker/internal/constants"
)

// Config хранит все конфигурационные параметры приложения.
type Config struct {
	DatabaseURL   string
	AppEnv        string
	Port          string
	APIToken      string
	HourlyRate    float64
	TelegramToken string
	NotifyChatID  int64
	PayeeVPA      string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
}

// LoadConfig загружает конфигурацию из переменных окружения.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		AppEnv:        os.Getenv("ENV"),
		Port:          os.Getenv("PORT"),
		APIToken:      os.Getenv("API_TOKEN"),
		TelegramToken: os.Getenv("TELEGRAM_APITOKEN"),
		PayeeVPA:      os.Getenv("UPI_VPA"),
	}

	var err error
	cfg.NotifyChatID, err = strconv.ParseInt(os.Getenv("NOTIFY_CHAT_ID"), 10, 64)
	if err != nil {
		log.Printf("Предупреждение: не удалось прочитать NOTIFY_CHAT_ID: %v. Установлено в 0.", err)
		cfg.NotifyChatID = 0
	}

	hourlyRateStr := os.Getenv("HOURLY_RATE")
	if hourlyRateStr == "" {
		log.Printf("Предупреждение: HOURLY_RATE не установлена, используется значение по умолчанию %.0f.", constants.DEFAULT_HOURLY_RATE)
		cfg.HourlyRate = constants.DEFAULT_HOURLY_RATE
	} else {
		hourlyRate, errParse := strconv.ParseFloat(hourlyRateStr, 64)
		if errParse != nil || hourlyRate <= 0 {
			log.Printf("Предупреждение: некорректное значение для HOURLY_RATE ('%s'): %v. Используется значение по умолчанию %.0f.", hourlyRateStr, errParse, constants.DEFAULT_HOURLY_RATE)
			cfg.HourlyRate = constants.DEFAULT_HOURLY_RATE
		} else {
			cfg.HourlyRate = hourlyRate
		}
	}

	if cfg.TelegramToken == "" {
		log.Println("Предупреждение: TELEGRAM_APITOKEN не установлен. Уведомления будут писаться только в лог.")
	}
	if cfg.APIToken == "" {
		log.Println("Предупреждение: API_TOKEN не установлен. API доступно без авторизации.")
	}
	if cfg.PayeeVPA == "" {
		log.Println("Предупреждение: UPI_VPA не установлен. Генерация QR-кода оплаты не будет работать.")
	}

	if cfg.DatabaseURL == "" {
		log.Println("Предупреждение: DATABASE_URL не установлена. Будет использовано хранилище в памяти.")
	} else {
		parsedURL, parseErr := url.Parse(cfg.DatabaseURL)
		if parseErr != nil {
			log.Printf("Критическая ошибка: ошибка парсинга DATABASE_URL: %v", parseErr)
		} else {
			cfg.DBHost = parsedURL.Hostname()
			cfg.DBPort = parsedURL.Port()
			if cfg.DBPort == "" {
				cfg.DBPort = "5432"
			}
			cfg.DBUser = parsedURL.User.Username()
			cfg.DBPassword, _ = parsedURL.User.Password()
			cfg.DBName = strings.TrimPrefix(parsedURL.Path, "/")
		}
	}

	log.Println("Конфигурация загружена.")
	return cfg, nil
}
