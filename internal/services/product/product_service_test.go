package product

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogumamarket/goguma-api/internal/apperrors"
	"github.com/gogumamarket/goguma-api/internal/cache"
	"github.com/gogumamarket/goguma-api/internal/config"
)

func newTestService() *ProductService {
	cfg := &config.Config{ProfileTokenSecret: "test-secret"}
	return NewProductService(cfg, cache.NewFeedCache(time.Minute))
}

func TestLoadProductInvalidIDIsNotFound(t *testing.T) {
	svc := newTestService()

	// Некорректный UUID отсекается до обращения к базе
	for _, rawID := range []string{"", "not-a-uuid", "12345"} {
		result, err := svc.LoadProduct(rawID)

		require.Error(t, err, "id %q", rawID)
		assert.Nil(t, result)
		assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
		assert.Equal(t, apperrors.MsgProductNotFound, apperrors.UserMessage(err))
	}
}
