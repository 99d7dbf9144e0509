package translator

import (
	"encoding/json"
	"fmt"
)

// Result — разобранный успешный ответ провайдера на перевод.
// Форма ответа провайдера: { "translations": [ { "detected_source_language", "text" } ] }.
type Result struct {
	TranslatedText string          // Текст первого перевода
	Raw            json.RawMessage // Полное тело ответа провайдера как есть
}

// translateResponse — тело успешного ответа провайдера.
type translateResponse struct {
	Translations []struct {
		DetectedSourceLanguage string `json:"detected_source_language"`
		Text                   string `json:"text"`
	} `json:"translations"`
}

// languagesResponse — элемент ответа провайдера на запрос списка языков.
type languagesResponse struct {
	Language          string `json:"language"`
	Name              string `json:"name"`
	SupportsFormality bool   `json:"supports_formality"`
}

// ProviderError — ответ провайдера со статусом вне 2xx.
// Статус и тело ответа передаются вызывающему без изменений.
type ProviderError struct {
	StatusCode int
	Body       string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider returned status %d: %s", e.StatusCode, e.Body)
}
