package profile

import (
	"github.com/gofiber/fiber/v3"
)

// SetupRoutes настраивает маршруты API профилей
func (s *ProfileService) SetupRoutes(app *fiber.App) {
	api := app.Group("/api/profiles")

	api.Get("/check", s.CheckUsername)
	api.Post("/", s.CreateProfile)
	api.Post("/reset", s.ResetProfile)
}
