// Package middlewarectx содержит HTTP middleware для разрешения сессии
// из cookie и защиты конечных точек, требующих аутентификации.
//
// SessionMiddleware разрешает cookie в идентификатор пользователя и кладет
// его в контекст запроса; отсутствие сессии не является ошибкой.
// RequireUser возвращает HTTP 401, если пользователь в контексте отсутствует.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/translation-proxy/internal/http/response"
	"github.com/magabrotheeeer/translation-proxy/internal/lib/sl"
	"github.com/magabrotheeeer/translation-proxy/internal/session"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

const (
	// UserID — ключ для идентификатора пользователя в контексте
	UserID Key = "user_id"
	// SessionID — ключ для идентификатора сессии в контексте
	SessionID Key = "session_id"
)

// UserIDFromContext возвращает идентификатор аутентифицированного
// пользователя из контекста. Для анонимного запроса ok=false.
func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserID).(string)
	return userID, ok && userID != ""
}

// SessionIDFromContext возвращает идентификатор сессии из контекста.
func SessionIDFromContext(ctx context.Context) (string, bool) {
	sessionID, ok := ctx.Value(SessionID).(string)
	return sessionID, ok && sessionID != ""
}

// SessionMiddleware возвращает HTTP middleware, который разрешает cookie
// сессии в идентификатор пользователя и добавляет его в контекст запроса.
//
// Запрос без cookie или с неизвестной сессией проходит дальше анонимным.
// Отказ хранилища сессий — ошибка сервера, запрос завершается статусом 500.
func SessionMiddleware(store session.Store, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.SessionMiddleware"

			sessionID := session.FromRequest(r)
			if sessionID == "" {
				next.ServeHTTP(w, r)
				return
			}

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			userID, ok, err := store.Get(r.Context(), sessionID)
			if err != nil {
				log.Error("session store lookup failed", sl.Err(err))
				w.WriteHeader(http.StatusInternalServerError)
				render.JSON(w, r, response.Error(response.CodeStorage, "session lookup failed"))
				return
			}
			if !ok {
				// Истекшая или чужая cookie: запрос продолжается анонимным.
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), UserID, userID)
			ctx = context.WithValue(ctx, SessionID, sessionID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireUser возвращает HTTP middleware, который пропускает только
// аутентифицированные запросы, иначе возвращает 401.
func RequireUser(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.RequireUser"

			if _, ok := UserIDFromContext(r.Context()); !ok {
				log.With(
					slog.String("op", op),
					slog.String("request_id", middleware.GetReqID(r.Context())),
				).Error("request is not authenticated")
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error(response.CodeAuth, "not authenticated"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
