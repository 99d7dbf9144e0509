// Package translation содержит бизнес-логику перевода текста и ведения истории.
package translation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/magabrotheeeer/translation-proxy/internal/lib/sl"
	"github.com/magabrotheeeer/translation-proxy/internal/models"
	"github.com/magabrotheeeer/translation-proxy/internal/translator"
)

// Translator описывает контракт клиента провайдера перевода.
type Translator interface {
	// Translate переводит текст на целевой язык.
	Translate(ctx context.Context, text, targetLang string) (*translator.Result, error)
	// ListTargetLanguages возвращает поддерживаемые целевые языки.
	ListTargetLanguages(ctx context.Context) ([]models.Language, error)
}

// HistoryRepository описывает контракт для работы с историей переводов в хранилище.
type HistoryRepository interface {
	// AppendHistory добавляет запись в начало истории пользователя.
	AppendHistory(ctx context.Context, userID string, entry models.HistoryEntry) error
	// ListHistory возвращает историю пользователя от новых записей к старым.
	ListHistory(ctx context.Context, userID string) ([]models.HistoryEntry, error)
}

// TranslationService реализует перевод с записью истории для
// аутентифицированных пользователей.
type TranslationService struct {
	client  Translator
	history HistoryRepository
	log     *slog.Logger
}

// NewTranslationService создает новый экземпляр TranslationService.
func NewTranslationService(client Translator, history HistoryRepository, log *slog.Logger) *TranslationService {
	return &TranslationService{
		client:  client,
		history: history,
		log:     log,
	}
}

// Translate переводит текст и для аутентифицированного пользователя
// (userID не пустой) добавляет запись в историю. Неудачная запись истории
// не отменяет перевод: ошибка логируется, результат возвращается.
// Для анонимного запроса история не пишется вовсе.
func (s *TranslationService) Translate(ctx context.Context, userID, text, targetLang string) (*translator.Result, error) {
	const op = "services.translation.Translate"

	targetLang = strings.ToUpper(targetLang)
	result, err := s.client.Translate(ctx, text, targetLang)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if userID != "" {
		entry := models.HistoryEntry{
			OriginalText:   text,
			TranslatedText: result.TranslatedText,
			TargetLang:     targetLang,
			CreatedAt:      time.Now().UTC(),
		}
		if err := s.history.AppendHistory(ctx, userID, entry); err != nil {
			s.log.Warn("failed to append history", slog.String("user_id", userID), sl.Err(err))
		}
	}
	return result, nil
}

// Languages возвращает поддерживаемые целевые языки провайдера.
func (s *TranslationService) Languages(ctx context.Context) ([]models.Language, error) {
	const op = "services.translation.Languages"

	languages, err := s.client.ListTargetLanguages(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return languages, nil
}

// History возвращает историю переводов пользователя от новых записей к старым.
func (s *TranslationService) History(ctx context.Context, userID string) ([]models.HistoryEntry, error) {
	const op = "services.translation.History"

	items, err := s.history.ListHistory(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return items, nil
}
