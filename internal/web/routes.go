package web

import (
	"github.com/gofiber/fiber/v3"
)

// SetupRoutes настраивает страницы приложения. Конкретный маршрут
// /products/new регистрируется раньше параметризованного /products/:id.
func (s *WebService) SetupRoutes(app *fiber.App, profileMiddleware fiber.Handler) {
	app.Get("/", s.Feed)
	app.Get("/products/new", s.NewProduct, profileMiddleware)
	app.Get("/products/:id", s.Detail)
}
