package profile

import (
	"log"

	"github.com/gofiber/fiber/v3"

	"github.com/gogumamarket/goguma-api/internal/apperrors"
	"github.com/gogumamarket/goguma-api/internal/config"
	"github.com/gogumamarket/goguma-api/internal/db"
	"github.com/gogumamarket/goguma-api/internal/middleware"
	"github.com/gogumamarket/goguma-api/internal/models"
	"github.com/gogumamarket/goguma-api/internal/utils"
	"github.com/gogumamarket/goguma-api/internal/validation"
)

// ProfileService представляет сервис для работы с профилями продавцов
type ProfileService struct {
	cfg          *config.Config
	tokenService *utils.ProfileTokenService
}

// NewProfileService создает новый экземпляр ProfileService
func NewProfileService(cfg *config.Config) *ProfileService {
	return &ProfileService{
		cfg:          cfg,
		tokenService: utils.NewProfileTokenService(cfg.ProfileTokenSecret),
	}
}

// CheckUsername проверяет доступность имени пользователя
func (s *ProfileService) CheckUsername(c fiber.Ctx) error {
	data, err := validation.ValidateProfile(validation.ProfileInput{
		Username: c.Query("username"),
	})
	if err != nil {
		return c.Status(apperrors.HTTPStatus(err)).JSON(fiber.Map{
			"error": apperrors.UserMessage(err),
		})
	}

	taken, err := db.UsernameTaken(data.Username)
	if err != nil {
		log.Printf("Ошибка проверки имени пользователя: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": apperrors.MsgStoreFailure,
		})
	}

	return c.JSON(fiber.Map{"available": !taken})
}

// CreateProfile создаёт профиль продавца и выдаёт cookie с токеном
func (s *ProfileService) CreateProfile(c fiber.Ctx) error {
	var requestData validation.ProfileInput
	if err := c.Bind().Body(&requestData); err != nil {
		log.Printf("Ошибка декодирования тела запроса: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "요청 형식이 올바르지 않습니다",
		})
	}

	data, err := validation.ValidateProfile(requestData)
	if err != nil {
		return c.Status(apperrors.HTTPStatus(err)).JSON(fiber.Map{
			"error": apperrors.UserMessage(err),
		})
	}

	taken, err := db.UsernameTaken(data.Username)
	if err != nil {
		log.Printf("Ошибка проверки имени пользователя: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": apperrors.MsgStoreFailure,
		})
	}
	if taken {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": apperrors.MsgUsernameTaken,
		})
	}

	created, err := db.InsertProfile(data.Username, data.Location)
	if err != nil {
		log.Printf("Ошибка создания профиля: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": apperrors.MsgStoreFailure,
		})
	}

	stored := models.StoredProfile{
		ID:       created.ID,
		Username: created.Username,
		Location: created.Location,
	}

	token, err := s.tokenService.CreateToken(stored)
	if err != nil {
		log.Printf("Ошибка создания токена профиля: %v", err)
	} else {
		c.Cookie(&fiber.Cookie{
			Name:     middleware.ProfileCookie,
			Value:    token,
			Path:     "/",
			MaxAge:   365 * 24 * 60 * 60,
			HTTPOnly: false,
			SameSite: "Lax",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"profile": stored,
	})
}

// ResetProfile стирает слот кешированного профиля
func (s *ProfileService) ResetProfile(c fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:   middleware.ProfileCookie,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})
	return c.JSON(fiber.Map{"success": true})
}
