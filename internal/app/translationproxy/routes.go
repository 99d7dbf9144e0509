// Package translationproxy предоставляет маршруты для основного приложения.
package translationproxy

import (
	"log/slog"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/magabrotheeeer/translation-proxy/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/translation-proxy/internal/http/handlers/auth/logout"
	"github.com/magabrotheeeer/translation-proxy/internal/http/handlers/auth/me"
	"github.com/magabrotheeeer/translation-proxy/internal/http/handlers/auth/register"
	"github.com/magabrotheeeer/translation-proxy/internal/http/handlers/health"
	"github.com/magabrotheeeer/translation-proxy/internal/http/handlers/history"
	"github.com/magabrotheeeer/translation-proxy/internal/http/handlers/languages"
	"github.com/magabrotheeeer/translation-proxy/internal/http/handlers/translate"
	"github.com/magabrotheeeer/translation-proxy/internal/http/middlewarectx"
	authservice "github.com/magabrotheeeer/translation-proxy/internal/services/auth"
	translationservice "github.com/magabrotheeeer/translation-proxy/internal/services/translation"
	"github.com/magabrotheeeer/translation-proxy/internal/session"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger,
	authService *authservice.AuthService,
	translationService *translationservice.TranslationService,
	sessions session.Store, sessionTTL time.Duration) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)
	// Сессия разрешается для всех маршрутов: перевод пишет историю
	// аутентифицированным пользователям, но открыт и анонимным.
	r.Use(middlewarectx.SessionMiddleware(sessions, logger))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", health.New(logger).ServeHTTP)
		r.Get("/languages", languages.New(logger, translationService).ServeHTTP)

		r.With(middlewarectx.RateLimitMiddleware(logger)).
			Post("/translate", translate.New(logger, translationService).ServeHTTP)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", register.New(logger, authService, sessions, sessionTTL).ServeHTTP)
			r.Post("/login", login.New(logger, authService, sessions, sessionTTL).ServeHTTP)
			r.Post("/logout", logout.New(logger, sessions).ServeHTTP)
			r.Get("/me", me.New(logger, authService).ServeHTTP)
		})

		// Группа, требующая аутентификации
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.RequireUser(logger))
			r.Get("/history", history.New(logger, translationService).ServeHTTP)
		})
	})

	r.Handle("/metrics", promhttp.Handler())
}
