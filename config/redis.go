// groop-admin/config/redis.go
package config

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// RDB - необязательный кэш. Сейчас в нём живут только списки преподавателей,
// которые форма создания группы запрашивает при каждом открытии.
var RDB *redis.Client
var Ctx = context.Background()

func ConnectRedis() {
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		slog.Warn("Переменная окружения REDIS_ADDR не установлена, кэширование будет отключено.")
		return
	}

	RDB = redis.NewClient(&redis.Options{
		Addr: redisAddr,
	})

	if _, err := RDB.Ping(Ctx).Result(); err != nil {
		slog.Error("Не удалось подключиться к Redis", "error", err)
		RDB = nil // Обнуляем клиент, чтобы приложение не пыталось его использовать
		return
	}

	slog.Info("Успешное подключение к Redis!")
}

// CacheGet читает значение из кэша. Второй результат false, если кэш
// отключён, ключа нет или чтение не удалось.
func CacheGet(key string) (string, bool) {
	if RDB == nil {
		return "", false
	}
	val, err := RDB.Get(Ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			slog.Error("Ошибка чтения кэша", "key", key, "error", err)
		}
		return "", false
	}
	return val, true
}

// CacheSet кладёт значение в кэш с TTL. Без Redis - тихий no-op.
func CacheSet(key string, value any, ttl time.Duration) {
	if RDB == nil {
		return
	}
	if err := RDB.Set(Ctx, key, value, ttl).Err(); err != nil {
		slog.Warn("Не удалось записать в кэш", "key", key, "error", err)
	}
}
