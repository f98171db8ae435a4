// groop-admin/config/config.go

package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

var (
	// PlatformAPIURL - базовый адрес платформенного API (например, https://api.groop.uz).
	PlatformAPIURL string

	// Port - порт, на котором слушает сам шлюз.
	Port string

	// DraftTTL - время жизни незавершённого черновика группы в памяти.
	DraftTTL time.Duration
)

// Load читает конфигурацию из переменных окружения.
func Load() {
	PlatformAPIURL = os.Getenv("PLATFORM_API_URL")
	if PlatformAPIURL == "" {
		slog.Error("Критическая ошибка: переменная окружения PLATFORM_API_URL не установлена.")
		os.Exit(1)
	}

	Port = os.Getenv("PORT")
	if Port == "" {
		Port = "8080"
	}

	DraftTTL = 30 * time.Minute
	if v := os.Getenv("DRAFT_TTL_MINUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			DraftTTL = time.Duration(n) * time.Minute
		} else {
			slog.Warn("Некорректное значение DRAFT_TTL_MINUTES, используется значение по умолчанию", "value", v)
		}
	}
}
