package models

import (
	"time"

	"github.com/google/uuid"
)

// Статусы товара. Переходы available → reserved → sold нигде не
// форсируются, состояние просто отображается как есть.
const (
	StatusAvailable = "available"
	StatusReserved  = "reserved"
	StatusSold      = "sold"
)

// Product представляет товар (объявление) в системе
type Product struct {
	ID          uuid.UUID  `json:"id"`
	SellerID    *uuid.UUID `json:"seller_id,omitempty"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Price       int64      `json:"price"`
	Category    string     `json:"category,omitempty"`
	Location    string     `json:"location,omitempty"`
	Status      string     `json:"status"`
	Images      []string   `json:"images"`
	ViewCount   int64      `json:"view_count"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ProductWithProfile — товар вместе с профилем продавца (детальная страница)
type ProductWithProfile struct {
	Product
	Seller *Profile `json:"seller,omitempty"`
}

// Thumbnail возвращает первое изображение товара или пустую строку
func (p Product) Thumbnail() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}
