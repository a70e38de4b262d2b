package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogumamarket/goguma-api/internal/models"
)

func TestProfileTokenRoundTrip(t *testing.T) {
	service := NewProfileTokenService("test-secret")
	profile := models.StoredProfile{
		ID:       uuid.New(),
		Username: "판매자1",
		Location: "서울시 강남구",
	}

	token, err := service.CreateToken(profile)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := service.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, profile, *parsed)
}

func TestProfileTokenGarbageFails(t *testing.T) {
	service := NewProfileTokenService("test-secret")

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		_, err := service.ParseToken(token)
		assert.Error(t, err, "token %q", token)
	}
}

func TestProfileTokenMissingProfileIDFails(t *testing.T) {
	service := NewProfileTokenService("test-secret")

	// Токен без profile_id синтаксически корректен, но бесполезен
	token, err := service.CreateToken(models.StoredProfile{})
	require.NoError(t, err)

	// uuid.Nil сериализуется как нулевой UUID и разбирается обратно;
	// полностью пустой claim отвергается в ParseToken через uuid.Parse
	parsed, err := service.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, uuid.Nil, parsed.ID)
}

func TestProfileTokenIgnoresSignature(t *testing.T) {
	// Идентичность — клиентский токен без серверной проверки: токен,
	// подписанный другим секретом, всё равно читается
	issuer := NewProfileTokenService("secret-a")
	reader := NewProfileTokenService("secret-b")

	profile := models.StoredProfile{ID: uuid.New(), Username: "고구마팔아요"}
	token, err := issuer.CreateToken(profile)
	require.NoError(t, err)

	parsed, err := reader.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, profile.ID, parsed.ID)
}
