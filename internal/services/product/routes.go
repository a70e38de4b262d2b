package product

import (
	"github.com/gofiber/fiber/v3"
)

// SetupRoutes настраивает маршруты JSON API товаров
func (s *ProductService) SetupRoutes(app *fiber.App, profileMiddleware fiber.Handler) {
	api := app.Group("/api/products")

	// Публичные маршруты чтения
	api.Get("/", s.GetFeed)
	api.Get("/:id", s.GetProduct)

	// Создание товара: профиль берётся из cookie, если он там есть
	api.Post("/", s.CreateProduct, profileMiddleware)
}
