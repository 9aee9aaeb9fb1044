package presenters

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"recipe-catalog/domain"
)

type Response struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func SuccessResponse(c *fiber.Ctx, data any, code int, message string) error {
	return c.Status(code).JSON(Response{
		Status:  code,
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *fiber.Ctx, code int, message string, err error) error {
	res := Response{
		Status:  code,
		Message: message,
	}
	if err != nil {
		res.Error = err.Error()
	}
	return c.Status(code).JSON(res)
}

// FailureResponse derives the status from a typed domain error. The typed
// message wins over fallback; untyped errors become 500.
func FailureResponse(c *fiber.Ctx, fallback string, err error) error {
	message := fallback
	var typed *domain.Error
	if errors.As(err, &typed) && typed.Message != "" {
		message = typed.Message
	}
	return ErrorResponse(c, domain.StatusCode(err), message, err)
}
