package models

// Language описывает целевой язык, поддерживаемый провайдером перевода.
type Language struct {
	Code        string `json:"code"`        // Код языка, например "EN" или "ES"
	DisplayName string `json:"displayName"` // Человекочитаемое название
}
