package translation

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/translation-proxy/internal/models"
	"github.com/magabrotheeeer/translation-proxy/internal/storage/jsonfile"
	"github.com/magabrotheeeer/translation-proxy/internal/translator"
)

type TranslatorMock struct {
	mock.Mock
}

func (m *TranslatorMock) Translate(ctx context.Context, text, targetLang string) (*translator.Result, error) {
	args := m.Called(ctx, text, targetLang)
	res, _ := args.Get(0).(*translator.Result)
	return res, args.Error(1)
}

func (m *TranslatorMock) ListTargetLanguages(ctx context.Context) ([]models.Language, error) {
	args := m.Called(ctx)
	res, _ := args.Get(0).([]models.Language)
	return res, args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func newTestService(t *testing.T, client Translator) (*TranslationService, *jsonfile.Storage) {
	t.Helper()
	store, err := jsonfile.New(t.TempDir())
	require.NoError(t, err)
	return NewTranslationService(client, store, newNoopLogger()), store
}

func TestTranslationService_Translate_AuthenticatedAppendsHistory(t *testing.T) {
	clientMock := new(TranslatorMock)
	clientMock.On("Translate", mock.Anything, "Hello", "ES").
		Return(&translator.Result{TranslatedText: "Hola", Raw: []byte(`{"translations":[{"text":"Hola"}]}`)}, nil).Once()

	svc, store := newTestService(t, clientMock)
	ctx := context.Background()

	result, err := svc.Translate(ctx, "u1", "Hello", "es")
	require.NoError(t, err)
	assert.Equal(t, "Hola", result.TranslatedText)

	items, err := store.ListHistory(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Hello", items[0].OriginalText)
	assert.Equal(t, "Hola", items[0].TranslatedText)
	assert.Equal(t, "ES", items[0].TargetLang, "target language is stored uppercased")
	assert.False(t, items[0].CreatedAt.IsZero())

	clientMock.AssertExpectations(t)
}

func TestTranslationService_Translate_AnonymousSkipsHistory(t *testing.T) {
	clientMock := new(TranslatorMock)
	clientMock.On("Translate", mock.Anything, "Hello", "ES").
		Return(&translator.Result{TranslatedText: "Hola"}, nil).Once()

	svc, store := newTestService(t, clientMock)
	ctx := context.Background()

	_, err := svc.Translate(ctx, "", "Hello", "ES")
	require.NoError(t, err)

	items, err := store.ListHistory(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestTranslationService_Translate_ProviderErrorPropagates(t *testing.T) {
	provErr := &translator.ProviderError{StatusCode: 456, Body: "quota exceeded"}
	clientMock := new(TranslatorMock)
	clientMock.On("Translate", mock.Anything, "Hello", "ES").Return(nil, provErr).Once()

	svc, store := newTestService(t, clientMock)
	ctx := context.Background()

	_, err := svc.Translate(ctx, "u1", "Hello", "ES")
	require.Error(t, err)

	var got *translator.ProviderError
	require.True(t, errors.As(err, &got))
	assert.Equal(t, 456, got.StatusCode)

	// Неудачный перевод не оставляет записи в истории.
	items, err := store.ListHistory(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestTranslationService_Languages(t *testing.T) {
	want := []models.Language{
		{Code: "EN-US", DisplayName: "English (American)"},
		{Code: "ES", DisplayName: "Spanish"},
	}
	clientMock := new(TranslatorMock)
	clientMock.On("ListTargetLanguages", mock.Anything).Return(want, nil).Once()

	svc, _ := newTestService(t, clientMock)

	got, err := svc.Languages(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestTranslationService_History(t *testing.T) {
	svc, store := newTestService(t, new(TranslatorMock))
	ctx := context.Background()

	require.NoError(t, store.AppendHistory(ctx, "u1", models.HistoryEntry{OriginalText: "one", TargetLang: "FR"}))
	require.NoError(t, store.AppendHistory(ctx, "u1", models.HistoryEntry{OriginalText: "two", TargetLang: "FR"}))

	items, err := svc.History(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "two", items[0].OriginalText)
}
