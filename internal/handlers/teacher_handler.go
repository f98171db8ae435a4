// groop-admin/internal/handlers/teacher_handler.go
package handlers

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zafarich/groop-admin/config"
	"github.com/zafarich/groop-admin/internal/platform"
	"github.com/zafarich/groop-admin/models"
)

const teachersCacheTTL = 5 * time.Minute

// TeacherHandler отдаёт список преподавателей для выпадающего списка формы.
type TeacherHandler struct {
	API *platform.Client
}

// NewTeacherHandler создает новый экземпляр TeacherHandler.
func NewTeacherHandler(api *platform.Client) *TeacherHandler {
	return &TeacherHandler{API: api}
}

// teachersCacheKey строит ключ кэша для конкретного вызывающего. Платформа
// отвечает списком преподавателей учебного центра, которому принадлежит
// токен, поэтому ключ дискриминируется токеном: чужой кэш не виден.
func teachersCacheKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return fmt.Sprintf("teachers:options:%x", sum[:8])
}

// ListTeachersHandler возвращает преподавателей учебного центра вызывающего
// в виде опций {value, title}. Ответ кэшируется в Redis на несколько минут
// отдельно для каждого токена; без Redis каждый запрос идёт на платформу.
func (h *TeacherHandler) ListTeachersHandler(c *gin.Context) {
	token := c.GetString("platformToken")
	cacheKey := teachersCacheKey(token)

	if cached, ok := config.CacheGet(cacheKey); ok {
		var options []models.TeacherOption
		if json.Unmarshal([]byte(cached), &options) == nil {
			c.JSON(http.StatusOK, gin.H{"success": true, "data": options})
			return
		}
		slog.Warn("Не удалось разобрать кэш списка преподавателей", "key", cacheKey)
	}

	teachers, err := h.API.ListTeachers(c.Request.Context(), token)
	if err != nil {
		slog.Error("Ошибка загрузки списка преподавателей", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{
			"success": false,
			"message": "O'qituvchilar ro'yxatini yuklashda xatolik",
		})
		return
	}

	options := make([]models.TeacherOption, 0, len(teachers))
	for _, t := range teachers {
		options = append(options, models.TeacherOption{Value: t.ID, Title: t.Label()})
	}

	if raw, err := json.Marshal(options); err == nil {
		config.CacheSet(cacheKey, raw, teachersCacheTTL)
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": options})
}
