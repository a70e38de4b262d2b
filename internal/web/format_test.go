package web

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/gogumamarket/goguma-api/internal/models"
)

func TestFormatWon(t *testing.T) {
	assert.Equal(t, "0", FormatWon(0))
	assert.Equal(t, "15,000", FormatWon(15000))
	assert.Equal(t, "999,999,999", FormatWon(999_999_999))
}

func TestTimeAgo(t *testing.T) {
	now := time.Now()

	assert.Equal(t, "방금 전", TimeAgo(now.Add(-30*time.Second)))
	assert.Equal(t, "5분 전", TimeAgo(now.Add(-5*time.Minute)))
	assert.Equal(t, "3시간 전", TimeAgo(now.Add(-3*time.Hour)))
	assert.Equal(t, "2일 전", TimeAgo(now.Add(-49*time.Hour)))
	assert.Equal(t, "2개월 전", TimeAgo(now.Add(-61*24*time.Hour)))
	assert.Equal(t, "1년 전", TimeAgo(now.Add(-400*24*time.Hour)))
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "판매중", StatusLabel(models.StatusAvailable))
	assert.Equal(t, "예약중", StatusLabel(models.StatusReserved))
	assert.Equal(t, "판매완료", StatusLabel(models.StatusSold))
	assert.Equal(t, "판매중", StatusLabel(""))
}
