package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"

	"chatjpt/internal/models"
)

// Session keys written by the OIDC callback.
const (
	SessionUserSub   = "user_sub"
	SessionUserEmail = "user_email"
	SessionUserName  = "user_name"
	SessionRedirect  = "redirect_after_login"
)

// AuthMiddleware gates the chat behind an OIDC login when enabled.
type AuthMiddleware struct {
	enabled bool
}

// NewAuthMiddleware creates a new auth middleware instance. When enabled is
// false every request passes through.
func NewAuthMiddleware(enabled bool) *AuthMiddleware {
	return &AuthMiddleware{enabled: enabled}
}

// RequireAuth ensures the user is signed in. Pages redirect to /login; API
// calls get a 401.
func (m *AuthMiddleware) RequireAuth(c fiber.Ctx) error {
	if !m.enabled {
		return c.Next()
	}

	sess := session.FromContext(c)
	if user := userFromSession(sess); user != nil {
		c.Locals("user", user)
		return c.Next()
	}

	if strings.HasPrefix(c.Path(), "/api/") {
		return c.Status(fiber.StatusUnauthorized).JSON(models.Envelope{Status: "error", Error: "unauthorized"})
	}

	if sess != nil && c.Method() == fiber.MethodGet {
		sess.Set(SessionRedirect, c.OriginalURL())
	}
	return c.Redirect().To("/login")
}

// userFromSession rebuilds the signed-in user, or nil.
func userFromSession(sess *session.Middleware) *models.User {
	if sess == nil {
		return nil
	}
	sub, _ := sess.Get(SessionUserSub).(string)
	if sub == "" {
		return nil
	}
	email, _ := sess.Get(SessionUserEmail).(string)
	name, _ := sess.Get(SessionUserName).(string)
	return &models.User{Sub: sub, Email: email, Name: name}
}
