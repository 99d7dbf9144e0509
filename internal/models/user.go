// Package models содержит доменные модели сервиса перевода:
// пользователя, запись истории переводов и целевой язык провайдера.
package models

import (
	"strings"
	"time"
)

// User представляет зарегистрированного пользователя сервиса.
type User struct {
	UUID         string    `json:"id"`           // Уникальный идентификатор пользователя
	Email        string    `json:"email"`        // Электронная почта, уникальна без учета регистра
	Name         string    `json:"name"`         // Отображаемое имя
	PasswordHash string    `json:"passwordHash"` // bcrypt-хэш пароля, наружу не отдается
	CreatedAt    time.Time `json:"createdAt"`    // Дата регистрации
}

// PublicUser — публичное представление пользователя без хэша пароля.
// Именно оно уходит в HTTP-ответы.
type PublicUser struct {
	UUID      string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// Public возвращает публичное представление пользователя.
func (u *User) Public() *PublicUser {
	return &PublicUser{
		UUID:      u.UUID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
}

// DefaultName возвращает имя по умолчанию — локальную часть email.
func DefaultName(email string) string {
	if i := strings.IndexByte(email, '@'); i > 0 {
		return email[:i]
	}
	return email
}
