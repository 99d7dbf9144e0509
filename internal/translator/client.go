// Package translator реализует клиент внешнего провайдера перевода (DeepL API).
// Клиент — тонкая обертка запрос-ответ: без повторов, без отложенных попыток,
// ошибки провайдера передаются вызывающему без изменений.
package translator

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/magabrotheeeer/translation-proxy/internal/models"
)

// Client — клиент DeepL API.
type Client struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
}

// NewClient создаёт новый клиент провайдера перевода.
// Завершающий слэш в endpoint обрезается.
func NewClient(endpoint, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		endpoint:   strings.TrimRight(endpoint, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.endpoint+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "DeepL-Auth-Key "+c.apiKey)
	return req, nil
}

// Translate отправляет текст провайдеру и возвращает разобранный результат.
// Код целевого языка приводится к верхнему регистру, язык источника
// не передается — провайдер определяет его сам.
//
// Ответ вне 2xx — *ProviderError со статусом и телом ответа;
// сетевая ошибка возвращается обернутой, без повторов.
func (c *Client) Translate(ctx context.Context, text, targetLang string) (*Result, error) {
	const op = "translator.Translate"

	form := url.Values{}
	form.Set("text", text)
	form.Set("target_lang", strings.ToUpper(targetLang))

	req, err := c.newRequest(ctx, http.MethodPost, "/v2/translate", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &ProviderError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var parsed translateResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	result := &Result{Raw: raw}
	if len(parsed.Translations) > 0 {
		result.TranslatedText = parsed.Translations[0].Text
	}
	return result, nil
}

// ListTargetLanguages возвращает список целевых языков провайдера.
// Режимы отказа те же, что у Translate.
func (c *Client) ListTargetLanguages(ctx context.Context) ([]models.Language, error) {
	const op = "translator.ListTargetLanguages"

	req, err := c.newRequest(ctx, http.MethodGet, "/v2/languages?type=target", nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &ProviderError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var parsed []languagesResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	languages := make([]models.Language, 0, len(parsed))
	for _, l := range parsed {
		languages = append(languages, models.Language{
			Code:        l.Language,
			DisplayName: l.Name,
		})
	}
	return languages, nil
}
