// groop-admin/internal/platform/teachers.go
package platform

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/zafarich/groop-admin/models"
)

// teachersPage - форма data в ответе GET /v1/teachers: список лежит во
// вложенном поле data.
type teachersPage struct {
	Data []models.Teacher `json:"data"`
}

// ListTeachers возвращает реестр преподавателей. Форма запрашивает его один
// раз при открытии, поэтому страница фиксированная и заведомо ёмкая.
func (c *Client) ListTeachers(ctx context.Context, token string) ([]models.Teacher, error) {
	env, err := c.do(ctx, http.MethodGet, "/v1/teachers?page=1&limit=200", token, nil)
	if err != nil {
		return nil, err
	}

	var page teachersPage
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &page); err != nil {
			// Допускаем и плоский список без обёртки.
			if err2 := json.Unmarshal(env.Data, &page.Data); err2 != nil {
				return nil, fmt.Errorf("ошибка разбора списка преподавателей: %w", err)
			}
		}
	}
	return page.Data, nil
}
