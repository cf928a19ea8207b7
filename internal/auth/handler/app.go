package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/lyzehq/auth-service/internal/auth/dto"
	autherror "github.com/lyzehq/auth-service/internal/errors"
)

// NewApp builds the fiber app with the uniform failure boundary: panics and
// unhandled errors become a generic 500 body, never a stack trace.
func NewApp() *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok && e.Code != fiber.StatusInternalServerError {
				return c.Status(e.Code).JSON(fiber.Map{"message": e.Message})
			}
			return c.Status(code).JSON(dto.AuthResponse{
				Success: false,
				Message: autherror.MsgInternalError,
			})
		},
	})
	app.Use(recover.New())

	return app
}
