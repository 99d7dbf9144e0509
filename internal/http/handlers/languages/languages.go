// Package languages реализует HTTP-обработчик списка целевых языков провайдера.
package languages

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/translation-proxy/internal/http/response"
	"github.com/magabrotheeeer/translation-proxy/internal/lib/sl"
	"github.com/magabrotheeeer/translation-proxy/internal/models"
	"github.com/magabrotheeeer/translation-proxy/internal/translator"
)

// Service описывает интерфейс бизнес-логики списка языков.
type Service interface {
	Languages(ctx context.Context) ([]models.Language, error)
}

// Handler обрабатывает HTTP-запросы списка языков.
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
	const op = "handlers.languages"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	languages, err := h.service.Languages(r.Context())
	if err != nil {
		var provErr *translator.ProviderError
		if errors.As(err, &provErr) {
			log.Error("provider rejected languages request",
				slog.Int("status", provErr.StatusCode), sl.Err(err))
			w.WriteHeader(provErr.StatusCode)
			render.JSON(w, r, response.ErrorWithDetails(response.CodeProvider, "failed to fetch languages", provErr.Body))
			return
		}
		log.Error("languages request failed", sl.Err(err))
		w.WriteHeader(http.StatusBadGateway)
		render.JSON(w, r, response.Error(response.CodeTransport, "languages request failed"))
		return
	}

	log.Info("listed target languages", slog.Int("count", len(languages)))
	render.JSON(w, r, languages)
}
