package presenters

import (
	"recipe-book/domain"

	"github.com/gofiber/fiber/v2"
)

type Response struct {
	Status  bool               `json:"status"`
	Message string             `json:"message"`
	Data    interface{}        `json:"data,omitempty"`
	Error   string             `json:"error,omitempty"`
	Errors  []domain.FieldError `json:"errors,omitempty"`
}

func SuccessResponse(c *fiber.Ctx, data interface{}, code int, message string) error {
	return c.Status(code).JSON(Response{
		Status:  true,
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *fiber.Ctx, code int, message string, err error) error {
	res := Response{
		Status:  false,
		Message: message,
	}
	if err != nil {
		res.Error = err.Error()
	}
	return c.Status(code).JSON(res)
}

// ValidationErrorResponse carries per-field messages so clients can attach
// each one to the offending input.
func ValidationErrorResponse(c *fiber.Ctx, message string, fields []domain.FieldError) error {
	return c.Status(fiber.StatusBadRequest).JSON(Response{
		Status:  false,
		Message: message,
		Errors:  fields,
	})
}
