// Package auth содержит логику бизнес-уровня для работы с пользователями и аутентификацией.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/translation-proxy/internal/lib/password"
	"github.com/magabrotheeeer/translation-proxy/internal/models"
)

// ErrEmailTaken возвращается при попытке регистрации с занятым email.
var ErrEmailTaken = errors.New("email already registered")

// ErrInvalidCredentials возвращается при неверном email или пароле.
// Наружу не сообщается, что именно не совпало.
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserRepository описывает контракт для работы с пользователями в хранилище.
type UserRepository interface {
	// FindUserByEmail возвращает пользователя по email без учета регистра, nil если не найден.
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)

	// FindUserByID возвращает пользователя по идентификатору, nil если не найден.
	FindUserByID(ctx context.Context, id string) (*models.User, error)

	// CreateUser сохраняет нового пользователя.
	CreateUser(ctx context.Context, user models.User) error
}

// AuthService отвечает за регистрацию, вход и чтение текущего пользователя.
type AuthService struct {
	users UserRepository
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository) *AuthService {
	return &AuthService{users: users}
}

// Register создает нового пользователя с хэшированием пароля.
// Имя по умолчанию — локальная часть email. Проверка занятости email
// выполняется до записи; одновременные регистрации между процессами
// эта проверка не сериализует.
func (s *AuthService) Register(ctx context.Context, email, rawPassword, name string) (*models.PublicUser, error) {
	const op = "services.auth.Register"

	existing, err := s.users.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if name == "" {
		name = models.DefaultName(email)
	}
	user := models.User{
		UUID:         uuid.NewString(),
		Email:        email,
		Name:         name,
		PasswordHash: hashed,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return user.Public(), nil
}

// Login проверяет пароль пользователя и возвращает публичное представление.
func (s *AuthService) Login(ctx context.Context, email, rawPassword string) (*models.PublicUser, error) {
	const op = "services.auth.Login"

	user, err := s.users.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user.Public(), nil
}

// CurrentUser возвращает публичное представление пользователя по идентификатору
// или nil, если пользователь не найден.
func (s *AuthService) CurrentUser(ctx context.Context, userID string) (*models.PublicUser, error) {
	const op = "services.auth.CurrentUser"

	user, err := s.users.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if user == nil {
		return nil, nil
	}
	return user.Public(), nil
}
