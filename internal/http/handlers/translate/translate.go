// Package translate реализует HTTP-обработчик перевода текста.
//
// Обработчик валидирует вход до обращения к провайдеру: запрос без text
// или to завершается статусом 400, провайдер при этом не вызывается.
// Ошибка провайдера возвращается клиенту с исходным статусом и телом,
// сетевая ошибка — статусом 502.
package translate

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/translation-proxy/internal/http/middlewarectx"
	"github.com/magabrotheeeer/translation-proxy/internal/http/response"
	"github.com/magabrotheeeer/translation-proxy/internal/lib/sl"
	"github.com/magabrotheeeer/translation-proxy/internal/translator"
)

// Request — входные данные для перевода.
type Request struct {
	Text string `json:"text" validate:"required"`
	To   string `json:"to" validate:"required"`
}

// Response — результат перевода: текст первого перевода и полное
// тело ответа провайдера как есть.
type Response struct {
	TranslatedText string          `json:"translatedText"`
	Raw            json.RawMessage `json:"raw"`
}

// Service описывает интерфейс бизнес-логики перевода.
type Service interface {
	Translate(ctx context.Context, userID, text, targetLang string) (*translator.Result, error)
}

// Handler обрабатывает HTTP-запросы перевода.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.translate"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error(response.CodeValidation, "missing required fields: text and to"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	// Для анонимного запроса userID пустой, история не пишется.
	userID, _ := middlewarectx.UserIDFromContext(r.Context())

	result, err := h.service.Translate(r.Context(), userID, req.Text, req.To)
	if err != nil {
		var provErr *translator.ProviderError
		if errors.As(err, &provErr) {
			log.Error("provider rejected translation",
				slog.Int("status", provErr.StatusCode), sl.Err(err))
			w.WriteHeader(provErr.StatusCode)
			render.JSON(w, r, response.ErrorWithDetails(response.CodeProvider, "translation failed", provErr.Body))
			return
		}
		log.Error("translation request failed", sl.Err(err))
		w.WriteHeader(http.StatusBadGateway)
		render.JSON(w, r, response.Error(response.CodeTransport, "translation request failed"))
		return
	}

	log.Info("translated text", slog.String("target_lang", req.To), slog.Bool("authenticated", userID != ""))
	render.JSON(w, r, Response{
		TranslatedText: result.TranslatedText,
		Raw:            result.Raw,
	})
}
