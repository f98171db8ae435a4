// groop-admin/internal/platform/client.go
package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/zafarich/groop-admin/models"
)

// Client - тонкий REST-клиент платформенного API. Схема API для шлюза
// непрозрачна: все ответы приходят в конверте {success, data, message},
// токен вызывающего пробрасывается без изменений.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient создаёт клиент с таймаутом на каждый запрос.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// envelope - стандартный конверт ответов платформы. setupInstructions
// приходит на верхнем уровне только в ответе на создание группы.
type envelope struct {
	Success           bool                      `json:"success"`
	Message           string                    `json:"message"`
	Data              json.RawMessage           `json:"data"`
	SetupInstructions *models.SetupInstructions `json:"setupInstructions"`
}

// APIError - ответ платформы с success=false или ошибочным статусом.
// Message предназначен для показа пользователю как есть.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("platform: статус %d: %s", e.StatusCode, e.Message)
}

// UserMessage возвращает человекочитаемый текст ошибки платформы.
func (e *APIError) UserMessage() string { return e.Message }

// do выполняет запрос и разбирает конверт. Не-JSON ответ и success=false
// сворачиваются в APIError.
func (c *Client) do(ctx context.Context, method, path, token string, body any) (*envelope, error) {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("ошибка сериализации тела запроса: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса к платформе: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ошибка запроса к платформе: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения ответа платформы: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		slog.Warn("Платформа вернула не-JSON ответ", "status", resp.StatusCode, "path", path)
		return nil, &APIError{StatusCode: resp.StatusCode}
	}

	if resp.StatusCode >= 400 || !env.Success {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: env.Message}
	}
	return &env, nil
}
