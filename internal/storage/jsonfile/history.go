package jsonfile

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/translation-proxy/internal/models"
)

// AppendHistory вставляет запись в начало истории пользователя
// и обрезает список до models.HistoryCap последних записей.
// Список пользователя создается при первой записи.
func (s *Storage) AppendHistory(ctx context.Context, userID string, entry models.HistoryEntry) error {
	const op = "storage.AppendHistory"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	all := make(map[string][]models.HistoryEntry)
	if err := readJSON(s.path(historyFile), &all); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	items := append([]models.HistoryEntry{entry}, all[userID]...)
	if len(items) > models.HistoryCap {
		items = items[:models.HistoryCap]
	}
	all[userID] = items
	if err := writeJSONAtomic(s.path(historyFile), all); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// ListHistory возвращает историю пользователя от новых записей к старым.
// Для пользователя без истории возвращается пустой список.
func (s *Storage) ListHistory(ctx context.Context, userID string) ([]models.HistoryEntry, error) {
	const op = "storage.ListHistory"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	all := make(map[string][]models.HistoryEntry)
	if err := readJSON(s.path(historyFile), &all); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	items := all[userID]
	if items == nil {
		return []models.HistoryEntry{}, nil
	}
	return items, nil
}
