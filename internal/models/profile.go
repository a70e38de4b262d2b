package models

import (
	"time"

	"github.com/google/uuid"
)

// Profile представляет профиль продавца
type Profile struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	Location  string    `json:"location,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// StoredProfile — кешируемая на клиенте часть профиля. Хранится целиком
// в одном слоте (cookie), читается и перезаписывается только как единое целое.
type StoredProfile struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Location string    `json:"location,omitempty"`
}
