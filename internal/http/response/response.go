// Package response содержит вспомогательные типы и функции для формирования
// унифицированных JSON‑ответов об ошибках. Успешные ответы обработчики
// отдают напрямую — их форма зафиксирована контрактом API; ошибки же
// всегда несут машиночитаемую категорию и человекочитаемое сообщение.
package response

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator"
)

// Категории ошибок, передаваемые клиенту в поле code.
const (
	// CodeValidation — отсутствующие или некорректные входные данные.
	CodeValidation = "validation_error"
	// CodeAuth — неверные учетные данные или отсутствующая сессия.
	CodeAuth = "auth_error"
	// CodeConflict — email уже зарегистрирован.
	CodeConflict = "conflict"
	// CodeProvider — провайдер перевода ответил статусом вне 2xx.
	CodeProvider = "provider_error"
	// CodeTransport — запрос к провайдеру не удалось отправить или получить.
	CodeTransport = "transport_error"
	// CodeStorage — нечитаемый или поврежденный файл хранилища.
	CodeStorage = "storage_error"
)

const (
	// StatusOK — значение статуса для успешного ответа.
	StatusOK = "OK"
	// StatusError — значение статуса для ответа с ошибкой.
	StatusError = "Error"
)

// ErrorResponse описывает структуру JSON‑ответа с ошибкой.
// Details несет тело ответа провайдера, когда ошибка пришла от него.
type ErrorResponse struct {
	Status  string `json:"status"`
	Code    string `json:"code"`
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// OKResponse — ответ вида {ok:true} для health и logout.
type OKResponse struct {
	OK bool `json:"ok"`
}

// OK возвращает ответ {ok:true}.
func OK() OKResponse {
	return OKResponse{OK: true}
}

// Error возвращает ErrorResponse с категорией и переданным сообщением.
func Error(code, msg string) ErrorResponse {
	return ErrorResponse{
		Status: StatusError,
		Code:   code,
		Error:  msg,
	}
}

// ErrorWithDetails возвращает ErrorResponse с категорией, сообщением
// и телом ответа провайдера, переданным без изменений.
func ErrorWithDetails(code, msg, details string) ErrorResponse {
	return ErrorResponse{
		Status:  StatusError,
		Code:    code,
		Error:   msg,
		Details: details,
	}
}

// ValidationError формирует ответ с категорией validation_error на основе
// ошибок валидации. Каждое нарушение превращается в человеко‑читаемый текст,
// объединённый через запятую.
func ValidationError(errs validator.ValidationErrors) ErrorResponse {
	var errsMsgs []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is a required field", err.Field()))
		case "email":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be a valid email", err.Field()))
		case "min":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is too short", err.Field()))
		default:
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is not a valid", err.Field()))
		}
	}
	return ErrorResponse{
		Status: StatusError,
		Code:   CodeValidation,
		Error:  strings.Join(errsMsgs, ", "),
	}
}
