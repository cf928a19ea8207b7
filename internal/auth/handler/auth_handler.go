package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/lyzehq/auth-service/internal/auth/dto"
	"github.com/lyzehq/auth-service/internal/auth/service"
	autherror "github.com/lyzehq/auth-service/internal/errors"
)

const CookieName = "auth-token"

type AuthHandler struct {
	authService  *service.AuthService
	cookieMaxAge time.Duration
	secureCookie bool
}

func NewAuthHandler(authService *service.AuthService, cookieMaxAge time.Duration, secureCookie bool) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		cookieMaxAge: cookieMaxAge,
		secureCookie: secureCookie,
	}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		// Unparseable bodies hit the app's failure boundary and come back
		// as the generic 500, same as any other unexpected error.
		return err
	}

	result := h.authService.Login(c.UserContext(), input)
	if !result.Success {
		return c.Status(fiber.StatusUnauthorized).JSON(result)
	}

	h.setSessionCookie(c, result.Token)

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var input dto.SignupInput
	if err := c.BodyParser(&input); err != nil {
		return err
	}

	result := h.authService.Signup(c.UserContext(), input)
	if !result.Success {
		return c.Status(fiber.StatusBadRequest).JSON(result)
	}

	h.setSessionCookie(c, result.Token)

	return c.Status(fiber.StatusCreated).JSON(result)
}

// Logout clears the session cookie. The token itself stays valid until its
// natural expiry; there is nothing server-side to revoke.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.clearSessionCookie(c)

	return c.Status(fiber.StatusOK).JSON(dto.AuthResponse{
		Success: true,
		Message: autherror.MsgLogoutSuccess,
	})
}

func (h *AuthHandler) setSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    token,
		MaxAge:   int(h.cookieMaxAge.Seconds()),
		HTTPOnly: true,
		Secure:   h.secureCookie,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func (h *AuthHandler) clearSessionCookie(c *fiber.Ctx) {
	// fasthttp only writes Max-Age when it is positive, so the cookie is
	// deleted via an epoch Expires instead of a literal Max-Age=0. Per RFC
	// 6265 section 5.3 both forms make the user agent drop it immediately.
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    "",
		MaxAge:   0,
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		Secure:   h.secureCookie,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
