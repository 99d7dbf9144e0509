// Package history реализует HTTP-обработчик чтения истории переводов.
// Конечная точка закрыта middleware RequireUser: анонимный запрос
// завершается статусом 401 раньше обработчика.
package history

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

// Service описывает интерфейс бизнес-логики истории переводов.
type Service interface {
	History(ctx context.Context, userID string) ([]models.HistoryEntry, error)
}

// Handler обрабатывает HTTP-запросы чтения истории.
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
	const op = "handlers.history"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userID, ok := middlewarectx.UserIDFromContext(r.Context())
	if !ok {
		log.Error("user identification missing")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error(response.CodeAuth, "not authenticated"))
		return
	}

	items, err := h.service.History(r.Context(), userID)
	if err != nil {
		log.Error("failed to list history", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error(response.CodeStorage, "failed to list history"))
		return
	}

	log.Info("listed history", slog.Int("count", len(items)))
	render.JSON(w, r, items)
}
