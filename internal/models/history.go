package models

import "time"

// HistoryCap — максимальное число записей истории на пользователя.
// Старые записи вытесняются при превышении.
const HistoryCap = 100

// HistoryEntry представляет одну запись истории переводов пользователя.
// Записи неизменяемы: создаются при успешном переводе и удаляются
// только вытеснением по лимиту.
type HistoryEntry struct {
	OriginalText   string    `json:"originalText"`   // Исходный текст
	TranslatedText string    `json:"translatedText"` // Переведенный текст
	TargetLang     string    `json:"targetLang"`     // Код целевого языка в верхнем регистре
	CreatedAt      time.Time `json:"createdAt"`      // Момент перевода
}
