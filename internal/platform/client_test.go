package platform

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zafarich/groop-admin/models"
)

func TestListTeachers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1/teachers", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		assert.Equal(t, "200", r.URL.Query().Get("limit"))
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"success": true,
			"data": {"data": [
				{"id": 1, "specialty": "Ingliz tili", "user": {"firstName": "Aziz", "lastName": "Karimov"}},
				{"id": 2, "user": {"firstName": "Malika"}}
			]}
		}`))
	}))
	defer srv.Close()

	teachers, err := NewClient(srv.URL).ListTeachers(context.Background(), "tok-1")
	require.NoError(t, err)
	require.Len(t, teachers, 2)
	assert.Equal(t, "Aziz Karimov (Ingliz tili)", teachers[0].Label())
	assert.Equal(t, "Malika", teachers[1].Label())
}

func TestCreateGroupSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/groups", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var payload map[string]json.RawMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Contains(t, payload, "name")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"success": true,
			"setupInstructions": {
				"botUsername": "groop_bot",
				"telegramResourceType": "PRIVATE_GROUP",
				"connectToken": "abc-123"
			}
		}`))
	}))
	defer srv.Close()

	setup, err := NewClient(srv.URL).CreateGroup(context.Background(), "tok-1", models.CreateGroupRequest{
		Name:                 "Test",
		MonthlyPrice:         100000,
		TelegramResourceType: models.ResourcePrivateGroup,
	})
	require.NoError(t, err)
	require.NotNil(t, setup)
	assert.Equal(t, "groop_bot", setup.BotUsername)
	assert.Equal(t, "abc-123", setup.ConnectToken)
}

// success=false сворачивается в APIError, сообщение платформы сохраняется
// для показа пользователю.
func TestCreateGroupPlatformRejects(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"success": false, "message": "Guruh nomi band"}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).CreateGroup(context.Background(), "tok-1", models.CreateGroupRequest{})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Guruh nomi band", apiErr.UserMessage())
}

// Не-JSON ответ тоже становится APIError, а не паникой разбора.
func TestNonJSONResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("Bad Gateway"))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).ListTeachers(context.Background(), "tok-1")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Empty(t, apiErr.UserMessage())
}
