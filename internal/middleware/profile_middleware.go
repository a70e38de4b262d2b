package middleware

import (
	"github.com/gofiber/fiber/v3"

	"github.com/gogumamarket/goguma-api/internal/utils"
)

// ProfileCookie — единственный слот клиентского состояния: cookie с токеном
// кешированного профиля продавца.
const ProfileCookie = "goguma_profile"

// ProfileMiddleware читает токен профиля из cookie и кладёт профиль в
// контекст запроса. Отсутствующий или битый токен — это не ошибка,
// а просто "профиля нет": запрос продолжается без него.
func ProfileMiddleware(tokenService *utils.ProfileTokenService) fiber.Handler {
	return func(c fiber.Ctx) error {
		tokenString := c.Cookies(ProfileCookie)
		if tokenString == "" {
			return c.Next()
		}

		profile, err := tokenService.ParseToken(tokenString)
		if err != nil {
			return c.Next()
		}

		c.Locals("profile", profile)
		return c.Next()
	}
}
