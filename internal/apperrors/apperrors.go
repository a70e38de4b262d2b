package apperrors

import (
	"errors"
	"fmt"
)

// Kind — категория ошибки, определяет HTTP-статус и то, что увидит пользователь
type Kind int

const (
	// KindValidation — неверная форма/диапазон/формат входных данных
	KindValidation Kind = iota
	// KindConflict — имя пользователя уже занято
	KindConflict
	// KindStore — сетевая ошибка или ошибка хранилища; повтор только вручную
	KindStore
	// KindNotFound — запрошенная запись не существует
	KindNotFound
)

// Сообщения для пользователя всегда локализованы; внутренние детали
// ошибок остаются в логах и наружу не уходят.
const (
	MsgStoreFailure    = "일시적인 오류가 발생했습니다. 잠시 후 다시 시도해주세요"
	MsgUsernameTaken   = "이미 사용 중인 이름입니다"
	MsgProductNotFound = "상품을 찾을 수 없습니다"
)

// Error — ошибка приложения с категорией и локализованным сообщением
type Error struct {
	Kind    Kind
	Message string // сообщение для пользователя (ko-KR)
	Err     error  // внутренняя причина, только для логов
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Validation создаёт ошибку валидации с готовым сообщением
func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// Conflict создаёт ошибку конфликта (занятое имя)
func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// Store оборачивает ошибку хранилища, скрывая детали от пользователя
func Store(err error) *Error {
	return &Error{Kind: KindStore, Message: MsgStoreFailure, Err: err}
}

// NotFound создаёт ошибку отсутствующей записи
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// KindOf возвращает категорию ошибки; для неизвестных ошибок — KindStore
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindStore
}

// UserMessage возвращает локализованное сообщение для пользователя
func UserMessage(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return MsgStoreFailure
}

// HTTPStatus сопоставляет категорию ошибки HTTP-статусу
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return 400
	case KindConflict:
		return 409
	case KindNotFound:
		return 404
	default:
		return 500
	}
}
