// groop-admin/main.go
package main

import (
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/zafarich/groop-admin/config"
	"github.com/zafarich/groop-admin/internal/handlers"
	"github.com/zafarich/groop-admin/internal/platform"
	"github.com/zafarich/groop-admin/internal/routes"
	"github.com/zafarich/groop-admin/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("Файл .env не найден, используются переменные окружения")
	}

	config.Load()
	config.ConnectRedis()

	api := platform.NewClient(config.PlatformAPIURL)
	drafts := store.NewRegistry(config.DraftTTL)

	r := gin.Default()
	routes.SetupRoutes(r, handlers.NewGroupFormHandler(drafts, api), handlers.NewTeacherHandler(api))

	addr := ":" + config.Port
	slog.Info("Админ-шлюз groop запущен", "addr", addr, "platform", config.PlatformAPIURL)
	if err := r.Run(addr); err != nil {
		slog.Error("Ошибка запуска HTTP-сервера", "error", err)
		os.Exit(1)
	}
}
