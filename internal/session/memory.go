package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore хранит сессии в памяти процесса.
// Используется в тестах и в развертываниях без redis.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]memorySession
	ttl      time.Duration
	now      func() time.Time
}

type memorySession struct {
	userID    string
	expiresAt time.Time
}

// NewMemoryStore создает хранилище сессий в памяти с заданным временем жизни.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]memorySession),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Create создает сессию для пользователя и возвращает ее идентификатор.
func (m *MemoryStore) Create(_ context.Context, userID string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := newSessionID()
	m.sessions[id] = memorySession{
		userID:    userID,
		expiresAt: m.now().Add(m.ttl),
	}
	return id, nil
}

// Get возвращает идентификатор пользователя по сессии.
// Истекшие сессии удаляются лениво при обращении.
func (m *MemoryStore) Get(_ context.Context, sessionID string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess, ok := m.sessions[sessionID]
	if !ok {
		return "", false, nil
	}
	if m.now().After(sess.expiresAt) {
		delete(m.sessions, sessionID)
		return "", false, nil
	}
	return sess.userID, true, nil
}

// Delete удаляет сессию.
func (m *MemoryStore) Delete(_ context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, sessionID)
	return nil
}
