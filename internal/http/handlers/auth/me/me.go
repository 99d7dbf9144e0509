// Package me реализует HTTP-обработчик чтения текущего пользователя.
// Анонимный запрос не ошибка: в этом случае возвращается JSON null,
// как и для сессии, чей пользователь уже отсутствует в хранилище.
package me

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/translation-proxy/internal/http/middlewarectx"
	"github.com/magabrotheeeer/translation-proxy/internal/http/response"
	"github.com/magabrotheeeer/translation-proxy/internal/lib/sl"
	"github.com/magabrotheeeer/translation-proxy/internal/models"
)

// Service описывает интерфейс чтения текущего пользователя.
type Service interface {
	CurrentUser(ctx context.Context, userID string) (*models.PublicUser, error)
}

// Handler обрабатывает HTTP-запросы чтения текущего пользователя.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.me"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userID, ok := middlewarectx.UserIDFromContext(r.Context())
	if !ok {
		render.JSON(w, r, nil)
		return
	}

	user, err := h.service.CurrentUser(r.Context(), userID)
	if err != nil {
		log.Error("failed to read current user", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error(response.CodeStorage, "failed to read current user"))
		return
	}
	if user == nil {
		render.JSON(w, r, nil)
		return
	}

	render.JSON(w, r, user)
}
