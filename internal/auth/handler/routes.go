package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *AuthHandler) {
	app.Post("/api/login", h.Login)
	app.Post("/api/signup", h.Signup)
	app.Post("/api/logout", h.Logout)

	// Anything but POST gets a 405 with a hint, matching the public API
	// contract of the site.
	app.Get("/api/login", methodNotAllowed("Use POST to login."))
	app.Get("/api/signup", methodNotAllowed("Use POST to create an account."))
	app.Get("/api/logout", methodNotAllowed("Use POST to logout."))
}

func methodNotAllowed(hint string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusMethodNotAllowed).JSON(fiber.Map{
			"message": "Method not allowed. " + hint,
		})
	}
}
