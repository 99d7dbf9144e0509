package session

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/magabrotheeeer/translation-proxy/internal/config"
)

// RedisStore хранит сессии в redis с TTL.
// Ключ — "session:<id>", значение — идентификатор пользователя.
type RedisStore struct {
	db  *redis.Client
	ttl time.Duration
}

// NewRedisStore подключается к redis и возвращает хранилище сессий.
func NewRedisStore(ctx context.Context, cfg config.RedisConnection, ttl time.Duration) (*RedisStore, error) {
	const op = "session.NewRedisStore"
	db := redis.NewClient(&redis.Options{
		Addr:         cfg.AddressRedis,
		Password:     cfg.Password,
		DB:           cfg.DB,
		Username:     cfg.User,
		MaxRetries:   cfg.MaxRetries,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.TimeoutRedis,
		WriteTimeout: cfg.TimeoutRedis,
	})

	if err := db.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &RedisStore{db: db, ttl: ttl}, nil
}

func sessionKey(id string) string {
	return "session:" + id
}

// Create создает сессию для пользователя и возвращает ее идентификатор.
func (s *RedisStore) Create(ctx context.Context, userID string) (string, error) {
	const op = "session.RedisStore.Create"
	id := newSessionID()
	if err := s.db.Set(ctx, sessionKey(id), userID, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return id, nil
}

// Get возвращает идентификатор пользователя по сессии.
// TTL истекшие ключи redis удаляет сам, для них возвращается ok=false.
func (s *RedisStore) Get(ctx context.Context, sessionID string) (string, bool, error) {
	const op = "session.RedisStore.Get"
	userID, err := s.db.Get(ctx, sessionKey(sessionID)).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%s: %w", op, err)
	}
	return userID, true, nil
}

// Delete удаляет сессию.
func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	const op = "session.RedisStore.Delete"
	if err := s.db.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
