package upload

import (
	"crypto/sha1"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gogumamarket/goguma-api/internal/config"
)

func newTestService(secret string) *UploadService {
	return NewUploadService(&config.Config{
		CloudinaryConfig: config.CloudinaryConfig{APISecret: secret},
	})
}

func TestGenerateSignatureSortsKeys(t *testing.T) {
	s := newTestService("secret")

	params := map[string]string{
		"upload_preset": "goguma_mvp",
		"timestamp":     "1700000000",
	}

	h := sha1.Sum([]byte("timestamp=1700000000&upload_preset=goguma_mvp" + "secret"))
	expected := hex.EncodeToString(h[:])

	assert.Equal(t, expected, s.GenerateSignature(params))
	// Повторный вызов детерминирован
	assert.Equal(t, expected, s.GenerateSignature(params))
}

func TestGenerateSignatureDependsOnSecret(t *testing.T) {
	params := map[string]string{"timestamp": "1700000000"}

	a := newTestService("secret-a").GenerateSignature(params)
	b := newTestService("secret-b").GenerateSignature(params)

	assert.NotEqual(t, a, b)
}

func TestEnabled(t *testing.T) {
	assert.True(t, newTestService("secret").Enabled())
	assert.False(t, newTestService("").Enabled())
}
