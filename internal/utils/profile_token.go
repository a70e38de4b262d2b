package utils

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/gogumamarket/goguma-api/internal/models"
)

// ProfileTokenService кодирует кешируемый на клиенте профиль в токен.
// Токен — это идентичность без серверной аутентификации: при чтении подпись
// не проверяется, битый или чужой токен просто означает "профиля нет".
type ProfileTokenService struct {
	secretKey string
}

// NewProfileTokenService создаёт новый экземпляр ProfileTokenService
func NewProfileTokenService(secretKey string) *ProfileTokenService {
	return &ProfileTokenService{secretKey: secretKey}
}

// CreateToken сериализует профиль в подписанный токен
func (s *ProfileTokenService) CreateToken(profile models.StoredProfile) (string, error) {
	claims := jwt.MapClaims{
		"profile_id": profile.ID.String(),
		"username":   profile.Username,
		"location":   profile.Location,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secretKey))
}

// ParseToken восстанавливает профиль из токена без проверки подписи
func (s *ProfileTokenService) ParseToken(tokenString string) (*models.StoredProfile, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return nil, fmt.Errorf("ошибка при разборе токена профиля: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("неожиданный формат claims токена профиля")
	}

	rawID, _ := claims["profile_id"].(string)
	profileID, err := uuid.Parse(rawID)
	if err != nil {
		return nil, fmt.Errorf("неверный идентификатор профиля в токене: %w", err)
	}

	username, _ := claims["username"].(string)
	location, _ := claims["location"].(string)

	return &models.StoredProfile{
		ID:       profileID,
		Username: username,
		Location: location,
	}, nil
}
