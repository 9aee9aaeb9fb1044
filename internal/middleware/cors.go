package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type Middleware struct {
	allowOrigins string
}

func NewMiddleware(allowOrigins string) Middleware {
	if strings.TrimSpace(allowOrigins) == "" {
		allowOrigins = "*"
	}
	return Middleware{allowOrigins: allowOrigins}
}

func (m Middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: m.allowOrigins,
		AllowMethods: strings.Join([]string{
			fiber.MethodGet, fiber.MethodHead, fiber.MethodPost,
			fiber.MethodPut, fiber.MethodDelete, fiber.MethodOptions,
		}, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	})
}
