package web

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogumamarket/goguma-api/internal/models"
)

var koPrinter = message.NewPrinter(language.Korean)

// FormatWon форматирует сумму с разделителями разрядов: 15000 → "15,000"
func FormatWon(amount int64) string {
	return koPrinter.Sprintf("%d", amount)
}

// TimeAgo возвращает относительное время по-корейски
func TimeAgo(t time.Time) string {
	d := time.Since(t)

	switch {
	case d < time.Minute:
		return "방금 전"
	case d < time.Hour:
		return fmt.Sprintf("%d분 전", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%d시간 전", int(d.Hours()))
	case d < 30*24*time.Hour:
		return fmt.Sprintf("%d일 전", int(d.Hours()/24))
	case d < 365*24*time.Hour:
		return fmt.Sprintf("%d개월 전", int(d.Hours()/(24*30)))
	default:
		return fmt.Sprintf("%d년 전", int(d.Hours()/(24*365)))
	}
}

// StatusLabel возвращает отображаемое название статуса товара
func StatusLabel(status string) string {
	switch status {
	case models.StatusReserved:
		return "예약중"
	case models.StatusSold:
		return "판매완료"
	default:
		return "판매중"
	}
}
