// groop-admin/internal/platform/groups.go
package platform

import (
	"context"
	"net/http"

	"github.com/zafarich/groop-admin/models"
)

// CreateGroup отправляет собранный формой запрос POST /v1/groups.
// Вызов одиночный и атомарный с точки зрения клиента: повторов нет, ошибка
// возвращается как есть (APIError несёт сообщение платформы). При успехе
// платформа присылает инструкции подключения Telegram-ресурса; она может
// опустить их или их часть - это решает вызывающая сторона.
func (c *Client) CreateGroup(ctx context.Context, token string, payload models.CreateGroupRequest) (*models.SetupInstructions, error) {
	env, err := c.do(ctx, http.MethodPost, "/v1/groups", token, payload)
	if err != nil {
		return nil, err
	}
	return env.SetupInstructions, nil
}
