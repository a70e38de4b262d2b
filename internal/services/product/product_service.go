package product

import (
	"log"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/gogumamarket/goguma-api/internal/apperrors"
	"github.com/gogumamarket/goguma-api/internal/cache"
	"github.com/gogumamarket/goguma-api/internal/config"
	"github.com/gogumamarket/goguma-api/internal/db"
	"github.com/gogumamarket/goguma-api/internal/middleware"
	"github.com/gogumamarket/goguma-api/internal/models"
	"github.com/gogumamarket/goguma-api/internal/utils"
	"github.com/gogumamarket/goguma-api/internal/validation"
)

// FeedLimit — размер страницы ленты
const FeedLimit = 20

// ProductService представляет сервис для работы с товарами
type ProductService struct {
	cfg          *config.Config
	store        Store
	feedCache    *cache.FeedCache
	tokenService *utils.ProfileTokenService
}

// NewProductService создает новый экземпляр ProductService
func NewProductService(cfg *config.Config, feedCache *cache.FeedCache) *ProductService {
	return &ProductService{
		cfg:          cfg,
		store:        pgStore{},
		feedCache:    feedCache,
		tokenService: utils.NewProfileTokenService(cfg.ProfileTokenSecret),
	}
}

// GetFeed возвращает ленту доступных товаров (сначала новые)
func (s *ProductService) GetFeed(c fiber.Ctx) error {
	products, err := s.LoadFeed()
	if err != nil {
		log.Printf("Ошибка получения ленты товаров: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": apperrors.MsgStoreFailure,
		})
	}

	return c.JSON(fiber.Map{
		"products": products,
		"limit":    FeedLimit,
	})
}

// LoadFeed отдаёт ленту из кеша либо загружает её из базы. Версия
// поколения, увиденная при промахе, передаётся в Set: если создание товара
// сбросило кеш, пока шёл запрос, устаревшая выборка не кешируется.
func (s *ProductService) LoadFeed() ([]models.Product, error) {
	products, version, ok := s.feedCache.Get()
	if ok {
		return products, nil
	}

	products, err := db.GetAvailableProducts(FeedLimit)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []models.Product{}
	}

	s.feedCache.Set(products, version)
	return products, nil
}

// LoadProduct загружает товар с профилем продавца. Неразборчивый
// идентификатор и отсутствующая запись возвращаются как NotFound.
func (s *ProductService) LoadProduct(rawID string) (*models.ProductWithProfile, error) {
	productID, err := uuid.Parse(rawID)
	if err != nil {
		return nil, apperrors.NotFound(apperrors.MsgProductNotFound)
	}

	result, err := db.GetProductWithProfile(productID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NotFound(apperrors.MsgProductNotFound)
		}
		return nil, apperrors.Store(err)
	}

	return result, nil
}

// GetProduct возвращает детальную информацию о товаре вместе с продавцом
func (s *ProductService) GetProduct(c fiber.Ctx) error {
	result, err := s.LoadProduct(c.Params("id"))
	if err != nil {
		if apperrors.KindOf(err) == apperrors.KindStore {
			log.Printf("Ошибка получения товара: %v", err)
		}
		return c.Status(apperrors.HTTPStatus(err)).JSON(fiber.Map{
			"error": apperrors.UserMessage(err),
		})
	}

	s.BumpViewCount(result.ID)

	return c.JSON(fiber.Map{
		"product": result.Product,
		"seller":  result.Seller,
	})
}

// BumpViewCount увеличивает счётчик просмотров без ожидания результата:
// просмотр страницы не должен ждать записи, потерянные инкременты допустимы,
// ошибка только логируется
func (s *ProductService) BumpViewCount(id uuid.UUID) {
	go func() {
		if err := db.IncrementViewCount(id); err != nil {
			log.Printf("Ошибка обновления счётчика просмотров %s: %v", id, err)
		}
	}()
}

// CreateProduct обрабатывает создание нового товара. При отсутствии
// кешированного профиля сначала создаётся профиль продавца.
func (s *ProductService) CreateProduct(c fiber.Ctx) error {
	var requestData struct {
		Username       string `json:"username"`
		SellerLocation string `json:"seller_location"`
		validation.ProductInput
	}

	if err := c.Bind().Body(&requestData); err != nil {
		log.Printf("Ошибка декодирования тела запроса: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "요청 형식이 올바르지 않습니다",
		})
	}

	var cachedProfile *models.StoredProfile
	if profile, ok := c.Locals("profile").(*models.StoredProfile); ok {
		cachedProfile = profile
	}

	result, err := createListing(s.store, s.feedCache, CreateRequest{
		Profile:        cachedProfile,
		Username:       requestData.Username,
		SellerLocation: requestData.SellerLocation,
		Product:        requestData.ProductInput,
	})
	if err != nil {
		if apperrors.KindOf(err) == apperrors.KindStore {
			log.Printf("Ошибка создания товара: %v", err)
		}
		return c.Status(apperrors.HTTPStatus(err)).JSON(fiber.Map{
			"error": apperrors.UserMessage(err),
		})
	}

	response := fiber.Map{
		"success":    true,
		"product_id": result.ProductID,
		"message":    "상품이 등록되었습니다",
	}

	// Свежесозданный профиль выдаём клиенту в cookie для повторного
	// использования при следующих публикациях
	if result.NewProfile != nil {
		token, err := s.tokenService.CreateToken(*result.NewProfile)
		if err != nil {
			log.Printf("Ошибка создания токена профиля: %v", err)
		} else {
			c.Cookie(profileCookie(token))
		}
		response["profile"] = result.NewProfile
	}

	return c.Status(fiber.StatusCreated).JSON(response)
}

// profileCookie собирает cookie со слотом кешированного профиля
func profileCookie(token string) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     middleware.ProfileCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   365 * 24 * 60 * 60,
		HTTPOnly: false, // клиентский скрипт формы читает слот сам
		SameSite: "Lax",
	}
}
