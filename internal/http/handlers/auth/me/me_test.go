package me

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/translation-proxy/internal/http/middlewarectx"
	"github.com/magabrotheeeer/translation-proxy/internal/models"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) CurrentUser(ctx context.Context, userID string) (*models.PublicUser, error) {
	args := m.Called(ctx, userID)
	user, _ := args.Get(0).(*models.PublicUser)
	return user, args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func newRequest(userID string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	ctx := context.WithValue(req.Context(), middleware.RequestIDKey, "reqid123")
	if userID != "" {
		ctx = context.WithValue(ctx, middlewarectx.UserID, userID)
	}
	return req.WithContext(ctx)
}

func TestMeHandler_Authenticated(t *testing.T) {
	svcMock := new(ServiceMock)
	svcMock.On("CurrentUser", mock.Anything, "u1").
		Return(&models.PublicUser{UUID: "u1", Email: "alice@example.com", Name: "alice"}, nil).Once()

	handler := New(newNoopLogger(), svcMock)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, newRequest("u1"))

	assert.Equal(t, http.StatusOK, rec.Code)

	var got map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, "u1", got["id"])
	assert.Equal(t, "alice@example.com", got["email"])

	svcMock.AssertExpectations(t)
}

func TestMeHandler_AnonymousReturnsNull(t *testing.T) {
	svcMock := new(ServiceMock)
	handler := New(newNoopLogger(), svcMock)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, newRequest(""))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null\n", rec.Body.String())

	svcMock.AssertNotCalled(t, "CurrentUser", mock.Anything, mock.Anything)
}

func TestMeHandler_StaleSessionReturnsNull(t *testing.T) {
	// Сессия есть, но пользователя в хранилище уже нет.
	svcMock := new(ServiceMock)
	svcMock.On("CurrentUser", mock.Anything, "gone").Return(nil, nil).Once()

	handler := New(newNoopLogger(), svcMock)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, newRequest("gone"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null\n", rec.Body.String())
}
