package middleware

import (
	"smartedu/backend/config"
	"smartedu/backend/utils"

	"github.com/gofiber/fiber/v2"
)

// SessionMiddleware требует токен сессии и кладёт её идентификатор
// в locals для обработчиков пользовательского состояния.
func SessionMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessionID, err := utils.ExtractSessionID(c, cfg)
		if err != nil {
			return utils.Unauthorized(c, "Missing or invalid session token")
		}
		c.Locals("session_id", sessionID)
		return c.Next()
	}
}

// SessionID возвращает идентификатор сессии, сохранённый middleware.
func SessionID(c *fiber.Ctx) string {
	sessionID, _ := c.Locals("session_id").(string)
	return sessionID
}
