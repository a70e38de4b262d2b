package main

import (
	"log"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/gogumamarket/goguma-api/internal/cache"
	"github.com/gogumamarket/goguma-api/internal/config"
	"github.com/gogumamarket/goguma-api/internal/db"
	"github.com/gogumamarket/goguma-api/internal/middleware"
	"github.com/gogumamarket/goguma-api/internal/services/product"
	"github.com/gogumamarket/goguma-api/internal/services/profile"
	"github.com/gogumamarket/goguma-api/internal/services/upload"
	"github.com/gogumamarket/goguma-api/internal/utils"
	"github.com/gogumamarket/goguma-api/internal/web"
)

func main() {
	// Загружаем конфигурацию
	cfg := config.LoadConfig()

	// Инициализируем базу данных
	if err := db.InitDB(cfg); err != nil {
		log.Fatalf("❌ Ошибка при инициализации базы данных: %v", err)
	}
	defer db.CloseDB()

	// Создаём экземпляр Fiber
	app := fiber.New(fiber.Config{
		AppName:      "Goguma Market (MVP)",
		ErrorHandler: errorHandler,
	})

	// Добавляем middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowCredentials: false,
	}))

	// Кеш ленты и middleware профиля общие для API и страниц
	feedCache := cache.NewFeedCache(cfg.FeedCacheTTL)
	tokenService := utils.NewProfileTokenService(cfg.ProfileTokenSecret)
	profileMiddleware := middleware.ProfileMiddleware(tokenService)

	// Создаём сервисы
	productService := product.NewProductService(cfg, feedCache)
	profileService := profile.NewProfileService(cfg)
	uploadService := upload.NewUploadService(cfg)
	webService := web.NewWebService(cfg, productService)

	// Регистрируем маршруты
	productService.SetupRoutes(app, profileMiddleware)
	profileService.SetupRoutes(app)
	uploadService.SetupRoutes(app)
	webService.SetupRoutes(app, profileMiddleware)

	// Запускаем сервер
	log.Printf("✅ Goguma Market API запущен на порту %s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}

// errorHandler обрабатывает ошибки Fiber
func errorHandler(c fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	// Проверяем, является ли ошибка из Fiber
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	// Отправляем ошибку в JSON
	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
	})
}
