// Package logout реализует HTTP-обработчик завершения сессии.
// Сессия удаляется из хранилища, cookie стирается у клиента.
// Выход без открытой сессии не ошибка: ответ всегда {ok:true}.
package logout

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/translation-proxy/internal/http/middlewarectx"
	"github.com/magabrotheeeer/translation-proxy/internal/http/response"
	"github.com/magabrotheeeer/translation-proxy/internal/lib/sl"
	"github.com/magabrotheeeer/translation-proxy/internal/session"
)

// Handler обрабатывает HTTP-запросы выхода.
type Handler struct {
	log      *slog.Logger
	sessions session.Store
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, sessions session.Store) *Handler {
	return &Handler{
		log:      log,
		sessions: sessions,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.logout"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	if sessionID, ok := middlewarectx.SessionIDFromContext(r.Context()); ok {
		if err := h.sessions.Delete(r.Context(), sessionID); err != nil {
			log.Error("failed to delete session", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(response.CodeStorage, "failed to delete session"))
			return
		}
	}
	session.ClearCookie(w)

	render.JSON(w, r, response.OK())
}
