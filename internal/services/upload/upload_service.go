package upload

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/gogumamarket/goguma-api/internal/config"
)

// UploadService выдаёт клиенту подписанные параметры для прямой загрузки
// изображений в Cloudinary. Сам хостинг изображений — внешний сервис,
// здесь только подпись запроса.
type UploadService struct {
	cfg *config.Config
}

// NewUploadService создает новый экземпляр UploadService
func NewUploadService(cfg *config.Config) *UploadService {
	return &UploadService{cfg: cfg}
}

// Enabled сообщает, настроен ли Cloudinary
func (s *UploadService) Enabled() bool {
	return s.cfg.CloudinaryConfig.APISecret != ""
}

// GenerateSignature создаёт подпись для Cloudinary
func (s *UploadService) GenerateSignature(params map[string]string) string {
	var keys []string
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var signParts []string
	for _, k := range keys {
		signParts = append(signParts, fmt.Sprintf("%s=%s", k, params[k]))
	}
	signatureString := strings.Join(signParts, "&")
	signatureString += s.cfg.CloudinaryConfig.APISecret

	h := sha1.New()
	h.Write([]byte(signatureString))
	return hex.EncodeToString(h.Sum(nil))
}

// GenerateUploadParams создаёт параметры для загрузки изображений
func (s *UploadService) GenerateUploadParams(c fiber.Ctx) error {
	if !s.Enabled() {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "이미지 업로드가 설정되지 않았습니다",
		})
	}

	timestamp := fmt.Sprintf("%d", time.Now().Unix())

	params := map[string]string{
		"timestamp":     timestamp,
		"upload_preset": s.cfg.CloudinaryConfig.UploadPreset,
	}
	signature := s.GenerateSignature(params)

	return c.JSON(fiber.Map{
		"timestamp":     timestamp,
		"signature":     signature,
		"api_key":       s.cfg.CloudinaryConfig.APIKey,
		"cloud_name":    s.cfg.CloudinaryConfig.CloudName,
		"upload_preset": s.cfg.CloudinaryConfig.UploadPreset,
	})
}
