package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/translation-proxy/internal/models"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	s, err := New(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestStorage_FindUserByEmail_CaseInsensitive(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.CreateUser(ctx, models.User{
		UUID:      "u1",
		Email:     "Alice@Example.com",
		Name:      "alice",
		CreatedAt: time.Now().UTC(),
	}))

	tests := []struct {
		name  string
		email string
	}{
		{name: "exact", email: "Alice@Example.com"},
		{name: "lower", email: "alice@example.com"},
		{name: "upper", email: "ALICE@EXAMPLE.COM"},
		{name: "mixed", email: "aLiCe@eXaMpLe.CoM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.FindUserByEmail(ctx, tt.email)
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, "u1", got.UUID)
		})
	}
}

func TestStorage_FindUserByEmail_Absent(t *testing.T) {
	s := newTestStorage(t)

	got, err := s.FindUserByEmail(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStorage_FindUserByID(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.CreateUser(ctx, models.User{UUID: "u1", Email: "a@example.com"}))
	require.NoError(t, s.CreateUser(ctx, models.User{UUID: "u2", Email: "b@example.com"}))

	got, err := s.FindUserByID(ctx, "u2")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "b@example.com", got.Email)

	got, err = s.FindUserByID(ctx, "u3")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStorage_CreateUser_NeverStoresPlaintext(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.CreateUser(ctx, models.User{
		UUID:         "u1",
		Email:        "a@example.com",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
	}))

	raw, err := os.ReadFile(filepath.Join(s.Dir(), "users.json"))
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(raw), "$2a$10$"))
	assert.False(t, strings.Contains(string(raw), "secret-password"))
}
