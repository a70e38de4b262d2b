package web

import (
	"bytes"
	"embed"
	"html/template"
	"log"

	"github.com/gofiber/fiber/v3"

	"github.com/gogumamarket/goguma-api/internal/apperrors"
	"github.com/gogumamarket/goguma-api/internal/config"
	"github.com/gogumamarket/goguma-api/internal/models"
	"github.com/gogumamarket/goguma-api/internal/services/product"
	"github.com/gogumamarket/goguma-api/internal/validation"
)

//go:embed templates/*.html
var templateFS embed.FS

// WebService отрисовывает страницы: лента, карточка товара, форма публикации
type WebService struct {
	cfg      *config.Config
	products *product.ProductService
	tmpl     *template.Template
}

// NewWebService создает новый экземпляр WebService
func NewWebService(cfg *config.Config, products *product.ProductService) *WebService {
	tmpl := template.Must(template.New("").Funcs(template.FuncMap{
		"won":         FormatWon,
		"timeAgo":     TimeAgo,
		"statusLabel": StatusLabel,
	}).ParseFS(templateFS, "templates/*.html"))

	return &WebService{
		cfg:      cfg,
		products: products,
		tmpl:     tmpl,
	}
}

// Feed отрисовывает ленту доступных товаров
func (s *WebService) Feed(c fiber.Ctx) error {
	products, err := s.products.LoadFeed()
	if err != nil {
		log.Printf("Ошибка получения ленты товаров: %v", err)
		return s.render(c, fiber.StatusOK, "feed.html", fiber.Map{
			"Error": true,
		})
	}

	return s.render(c, fiber.StatusOK, "feed.html", fiber.Map{
		"Products": products,
	})
}

// Detail отрисовывает страницу товара с галереей и профилем продавца
func (s *WebService) Detail(c fiber.Ctx) error {
	result, err := s.products.LoadProduct(c.Params("id"))
	if err != nil {
		if apperrors.KindOf(err) == apperrors.KindNotFound {
			return s.render(c, fiber.StatusNotFound, "notfound.html", nil)
		}
		log.Printf("Ошибка получения товара: %v", err)
		return s.render(c, fiber.StatusOK, "feed.html", fiber.Map{"Error": true})
	}

	s.products.BumpViewCount(result.ID)

	return s.render(c, fiber.StatusOK, "detail.html", fiber.Map{
		"Product": result.Product,
		"Seller":  result.Seller,
	})
}

// NewProduct отрисовывает форму публикации. Блок данных продавца
// показывается только когда в cookie нет кешированного профиля.
func (s *WebService) NewProduct(c fiber.Ctx) error {
	var profile *models.StoredProfile
	if p, ok := c.Locals("profile").(*models.StoredProfile); ok {
		profile = p
	}

	return s.render(c, fiber.StatusOK, "new.html", fiber.Map{
		"Profile":    profile,
		"Categories": validation.Categories,
	})
}

// NotFound отрисовывает страницу отсутствующего товара
func (s *WebService) NotFound(c fiber.Ctx) error {
	return s.render(c, fiber.StatusNotFound, "notfound.html", nil)
}

// render исполняет шаблон и отдаёт его как HTML
func (s *WebService) render(c fiber.Ctx, status int, name string, data any) error {
	var buf bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		log.Printf("Ошибка отрисовки шаблона %s: %v", name, err)
		return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(status).Send(buf.Bytes())
}
