package middlewares

import (
	"errors"

	t_token "video_transcode_trigger/pkg/token"

	"github.com/gofiber/fiber/v2"
)

const (
	//QueryToken token in query name
	QueryToken = "auth"

	//TokenSource get source form token, set c.locals name
	TokenSource = "source"
)

// JWTMiddleware validates JWT in the Authorization header, query "auth" as fallback
func JWTMiddleware(secret []byte) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			header = c.Query(QueryToken)
		}

		claims, err := t_token.ParseAuthorization(header, secret)
		if errors.Is(err, t_token.ErrMissingToken) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Missing token",
			})
		}
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid token",
			})
		}

		c.Locals(TokenSource, claims.Source)
		return c.Next()
	}
}
