package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindValidation, KindOf(Validation("잘못된 값")))
	assert.Equal(t, KindConflict, KindOf(Conflict(MsgUsernameTaken)))
	assert.Equal(t, KindStore, KindOf(Store(errors.New("boom"))))
	assert.Equal(t, KindNotFound, KindOf(NotFound(MsgProductNotFound)))

	// Неизвестные ошибки считаются ошибками хранилища
	assert.Equal(t, KindStore, KindOf(errors.New("plain")))
}

func TestKindOfWrapped(t *testing.T) {
	err := fmt.Errorf("запрос не прошёл: %w", Conflict(MsgUsernameTaken))
	assert.Equal(t, KindConflict, KindOf(err))
	assert.Equal(t, MsgUsernameTaken, UserMessage(err))
}

func TestUserMessageHidesInternalDetail(t *testing.T) {
	err := Store(errors.New("pq: connection refused at 10.0.0.5"))

	// Внутренняя причина остаётся для логов, пользователю — общее сообщение
	assert.Equal(t, MsgStoreFailure, UserMessage(err))
	assert.Contains(t, err.Error(), "connection refused")
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, 400, HTTPStatus(Validation("잘못된 값")))
	assert.Equal(t, 409, HTTPStatus(Conflict(MsgUsernameTaken)))
	assert.Equal(t, 404, HTTPStatus(NotFound(MsgProductNotFound)))
	assert.Equal(t, 500, HTTPStatus(Store(errors.New("boom"))))
	assert.Equal(t, 500, HTTPStatus(errors.New("plain")))
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("boom")
	assert.ErrorIs(t, Store(cause), cause)
}
