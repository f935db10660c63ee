package api

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.temporal.io/sdk/client"

	menucatalog "github.com/Apurer/bites-ordering-api/internal/domains/menu/adapters/catalog"
	"github.com/Apurer/bites-ordering-api/internal/domains/ordering/adapters/notify"
)

// Config carries environment-driven settings for the API process.
type Config struct {
	Port                     string
	PostgresDSN              string
	MenuPreset               string
	MenuFile                 string
	AdminPassword            string
	AdminPasswordBcrypt      string
	CORSAllowedOrigins       []string
	CartIdleTTLMinutes       int
	CartPurgeIntervalMinutes int
	TemporalAddress          string
	TemporalNamespace        string
	TemporalDisabled         bool
	RabbitMQURL              string
	RabbitMQExchange         string
	TelegramBotToken         string
	TelegramChatID           int64
	LogLevel                 string
	LogFile                  string
}

// LoadConfig reads environment variables, applies defaults, and validates basic constraints.
func LoadConfig() (Config, error) {
	cfg := Config{
		Port:                     envDefault("PORT", "8080"),
		PostgresDSN:              strings.TrimSpace(os.Getenv("POSTGRES_DSN")),
		MenuPreset:               envDefault("MENU_PRESET", menucatalog.DefaultPreset),
		MenuFile:                 strings.TrimSpace(os.Getenv("MENU_FILE")),
		AdminPassword:            strings.TrimSpace(os.Getenv("ADMIN_PASSWORD")),
		AdminPasswordBcrypt:      strings.TrimSpace(os.Getenv("ADMIN_PASSWORD_BCRYPT")),
		CORSAllowedOrigins:       splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
		CartIdleTTLMinutes:       120,
		CartPurgeIntervalMinutes: 10,
		TemporalAddress:          envDefault("TEMPORAL_ADDRESS", client.DefaultHostPort),
		TemporalNamespace:        envDefault("TEMPORAL_NAMESPACE", client.DefaultNamespace),
		TemporalDisabled:         isTruthy(os.Getenv("TEMPORAL_DISABLED")),
		RabbitMQURL:              strings.TrimSpace(os.Getenv("RABBITMQ_URL")),
		RabbitMQExchange:         envDefault("RABBITMQ_EXCHANGE", notify.DefaultExchange),
		TelegramBotToken:         strings.TrimSpace(os.Getenv("TELEGRAM_BOT_TOKEN")),
		LogLevel:                 envDefault("LOG_LEVEL", "info"),
		LogFile:                  strings.TrimSpace(os.Getenv("LOG_FILE")),
	}
	if raw := strings.TrimSpace(os.Getenv("CART_IDLE_TTL_MINUTES")); raw != "" {
		minutes, err := strconv.Atoi(raw)
		if err != nil || minutes < 0 {
			return Config{}, fmt.Errorf("CART_IDLE_TTL_MINUTES must be a non-negative integer")
		}
		cfg.CartIdleTTLMinutes = minutes
	}
	if raw := strings.TrimSpace(os.Getenv("CART_PURGE_INTERVAL_MINUTES")); raw != "" {
		minutes, err := strconv.Atoi(raw)
		if err != nil || minutes <= 0 {
			return Config{}, fmt.Errorf("CART_PURGE_INTERVAL_MINUTES must be a positive integer")
		}
		cfg.CartPurgeIntervalMinutes = minutes
	}
	if raw := strings.TrimSpace(os.Getenv("TELEGRAM_CHAT_ID")); raw != "" {
		chatID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("TELEGRAM_CHAT_ID must be an integer")
		}
		cfg.TelegramChatID = chatID
	}
	if cfg.TelegramBotToken != "" && cfg.TelegramChatID == 0 {
		return Config{}, fmt.Errorf("TELEGRAM_CHAT_ID is required when TELEGRAM_BOT_TOKEN is set")
	}
	return cfg, nil
}

func envDefault(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}

func isTruthy(value string) bool {
	value = strings.TrimSpace(strings.ToLower(value))
	return value == "1" || value == "true" || value == "yes"
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
