package middleware

import (
	"errors"
	"log"
	"strings"

	"lapak/internal/models"
	"lapak/internal/services"

	"github.com/gofiber/fiber/v2"
)

// currentUserKey is the fiber Locals key holding the authenticated user.
const currentUserKey = "currentUser"

// TokenRequired is a Fiber middleware that resolves the Authorization
// header to a user and stores it in the request locals, so downstream
// handlers never re-query the session. The header may carry the bare
// token or the "Bearer <token>" form.
func TokenRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		credential := c.Get("Authorization")
		if after, ok := strings.CutPrefix(credential, "Bearer "); ok {
			credential = after
		}

		user, err := authService.Authenticate(credential)
		if err != nil {
			if errors.Is(err, services.ErrUnauthenticated) {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": "Not authorized",
				})
			}
			log.Printf("Error authenticating request: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Could not authenticate request",
			})
		}

		c.Locals(currentUserKey, user)
		return c.Next()
	}
}

// CurrentUser returns the user stored by TokenRequired, or nil when the
// route is not behind it.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(currentUserKey).(*models.User)
	return user
}
