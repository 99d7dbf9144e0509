// Package session реализует серверные сессии: отображение идентификатора
// сессии из cookie на идентификатор пользователя с ограниченным временем жизни.
// Хранилище сессий — явная зависимость, оно внедряется в middleware и
// обработчики, а не держится в глобальном состоянии.
package session

import (
	"context"

	"github.com/google/uuid"
)

// CookieName — имя cookie, в которой клиенту выдается идентификатор сессии.
const CookieName = "tp_session"

// Store описывает контракт хранилища сессий.
type Store interface {
	// Create создает сессию для пользователя и возвращает ее идентификатор.
	Create(ctx context.Context, userID string) (string, error)
	// Get возвращает идентификатор пользователя по сессии.
	// Для неизвестной или истекшей сессии возвращает ok=false без ошибки.
	Get(ctx context.Context, sessionID string) (userID string, ok bool, err error)
	// Delete удаляет сессию. Удаление отсутствующей сессии — не ошибка.
	Delete(ctx context.Context, sessionID string) error
}

func newSessionID() string {
	return uuid.NewString()
}
