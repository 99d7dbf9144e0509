// Package login реализует HTTP-обработчик для запросов аутентификации пользователей.
//
// В нём определяется структура Request для входных данных, выполняется
// декодирование JSON, проверка и валидация полей, а также делегирование
// операции входа сервису. При успешной аутентификации открывается сессия
// и возвращается публичное представление пользователя; неверные учетные
// данные дают HTTP 401 без уточнения, что именно не совпало.
package login

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/translation-proxy/internal/http/response"
	"github.com/magabrotheeeer/translation-proxy/internal/lib/sl"
	"github.com/magabrotheeeer/translation-proxy/internal/models"
	"github.com/magabrotheeeer/translation-proxy/internal/services/auth"
	"github.com/magabrotheeeer/translation-proxy/internal/session"
)

// Request — структура входных данных для входа.
type Request struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Service описывает интерфейс бизнес-логики аутентификации.
type Service interface {
	Login(ctx context.Context, email, password string) (*models.PublicUser, error)
}

// Handler обрабатывает HTTP-запросы входа.
type Handler struct {
	log      *slog.Logger
	service  Service
	sessions session.Store
	ttl      time.Duration
	validate *validator.Validate
}

// New создает новый экземпляр Handler с указанными логгером, сервисом
// и хранилищем сессий.
func New(log *slog.Logger, service Service, sessions session.Store, ttl time.Duration) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		sessions: sessions,
		ttl:      ttl,
		validate: validator.New(),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.login"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error(response.CodeValidation, "invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	user, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			log.Error("invalid credentials", slog.String("email", req.Email))
			w.WriteHeader(http.StatusUnauthorized)
			render.JSON(w, r, response.Error(response.CodeAuth, "invalid credentials"))
			return
		}
		log.Error("login failed", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error(response.CodeStorage, "login failed"))
		return
	}

	sessionID, err := h.sessions.Create(r.Context(), user.UUID)
	if err != nil {
		log.Error("failed to create session", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error(response.CodeStorage, "failed to create session"))
		return
	}
	session.SetCookie(w, sessionID, h.ttl)

	log.Info("login success", slog.String("user_id", user.UUID))
	render.JSON(w, r, user)
}
