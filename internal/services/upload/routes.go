package upload

import (
	"github.com/gofiber/fiber/v3"
)

// SetupRoutes настраивает маршруты для получения параметров загрузки
func (s *UploadService) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	api.Get("/upload/params", s.GenerateUploadParams)
}
