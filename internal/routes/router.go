// groop-admin/internal/routes/router.go
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/zafarich/groop-admin/internal/handlers"
	"github.com/zafarich/groop-admin/internal/middleware"
)

// SetupRoutes инициализирует все маршруты приложения.
func SetupRoutes(r *gin.Engine, gf *handlers.GroupFormHandler, teachers *handlers.TeacherHandler) {
	// Проверка живости, без аутентификации.
	r.GET("/healthz", handlers.HealthHandler)

	// Все API-маршруты требуют токен вызывающего: шлюз пробрасывает его
	// на платформу как есть.
	authRequired := r.Group("/")
	authRequired.Use(middleware.TokenMiddleware())
	{
		RegisterAPIRoutes(authRequired, gf, teachers)
	}
}
