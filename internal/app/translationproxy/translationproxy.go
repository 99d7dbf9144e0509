// Package translationproxy собирает приложение: хранилище, сессии,
// клиент провайдера, сервисы и HTTP-сервер с graceful shutdown.
package translationproxy

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/translation-proxy/internal/config"
	authservice "github.com/magabrotheeeer/translation-proxy/internal/services/auth"
	translationservice "github.com/magabrotheeeer/translation-proxy/internal/services/translation"
	"github.com/magabrotheeeer/translation-proxy/internal/session"
	"github.com/magabrotheeeer/translation-proxy/internal/storage/jsonfile"
	"github.com/magabrotheeeer/translation-proxy/internal/translator"
)

type App struct {
	server *http.Server
	logger *slog.Logger
}

// New инициализирует зависимости и возвращает готовое приложение.
// Сессии живут в redis, если адрес задан в конфиге, иначе в памяти процесса.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := jsonfile.New(cfg.StorageDir)
	if err != nil {
		return nil, err
	}

	var sessions session.Store
	if cfg.AddressRedis != "" {
		sessions, err = session.NewRedisStore(ctx, cfg.RedisConnection, cfg.TTL)
		if err != nil {
			return nil, err
		}
	} else {
		sessions = session.NewMemoryStore(cfg.TTL)
	}

	providerClient := translator.NewClient(cfg.Endpoint, cfg.APIKey, cfg.DeepL.Timeout)

	authService := authservice.NewAuthService(db)
	translationService := translationservice.NewTranslationService(providerClient, db, logger)

	router := chi.NewRouter()

	RegisterRoutes(router, logger, authService, translationService, sessions, cfg.TTL)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
	}, nil
}

// Run запускает HTTP-сервер и останавливает его при отмене контекста.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		return a.server.Shutdown(timeoutCtx)
	}
}
