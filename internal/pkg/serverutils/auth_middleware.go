package serverutils

import (
	"context"

	"ai-recipe-be/internal/entity"

	"github.com/gofiber/fiber/v2"
)

const SessionCookieName = "session"

// TokenResolver resolves a presented token to an account, or nil when
// the token is missing, expired, revoked, or belongs to an inactive
// account. It never distinguishes which.
type TokenResolver interface {
	CurrentUser(ctx context.Context, token string) (*entity.User, error)
}

// TokenFromRequest reads the login token, preferring the Authorization
// header over the session cookie.
func TokenFromRequest(ctx *fiber.Ctx) string {
	authHeader := ctx.Get("Authorization")
	if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
		return authHeader[7:]
	}
	return ctx.Cookies(SessionCookieName)
}

// NewAuthMiddleware guards routes that require an authenticated account.
func NewAuthMiddleware(resolver TokenResolver) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		token := TokenFromRequest(ctx)
		if token == "" {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"code":    401,
				"message": "Missing token",
			})
		}

		user, err := resolver.CurrentUser(ctx.Context(), token)
		if err != nil || user == nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"code":    401,
				"message": "Invalid or expired session",
			})
		}

		ctx.Locals("user_id", user.Id)
		return ctx.Next()
	}
}
