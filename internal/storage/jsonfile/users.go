package jsonfile

import (
	"context"
	"fmt"
	"strings"

	"github.com/magabrotheeeer/translation-proxy/internal/models"
)

// FindUserByEmail возвращает пользователя по email без учета регистра
// или nil, если пользователь не найден. Отсутствие записи — не ошибка.
func (s *Storage) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "storage.FindUserByEmail"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var users []models.User
	if err := readJSON(s.path(usersFile), &users); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	for i := range users {
		if strings.EqualFold(users[i].Email, email) {
			u := users[i]
			return &u, nil
		}
	}
	return nil, nil
}

// FindUserByID возвращает пользователя по его идентификатору
// или nil, если пользователь не найден.
func (s *Storage) FindUserByID(ctx context.Context, id string) (*models.User, error) {
	const op = "storage.FindUserByID"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var users []models.User
	if err := readJSON(s.path(usersFile), &users); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	for i := range users {
		if users[i].UUID == id {
			u := users[i]
			return &u, nil
		}
	}
	return nil, nil
}

// CreateUser добавляет пользователя и атомарно перезаписывает файл.
// Уникальность email проверяет вызывающий до вызова, хранилище
// повторную проверку не делает.
func (s *Storage) CreateUser(ctx context.Context, user models.User) error {
	const op = "storage.CreateUser"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var users []models.User
	if err := readJSON(s.path(usersFile), &users); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	users = append(users, user)
	if err := writeJSONAtomic(s.path(usersFile), users); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
