package middleware

import (
	"cinema_booking/constants"
	"cinema_booking/helper"
	"cinema_booking/utils"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Protected authenticates the request via JWT (cookie or bearer header) and
// enforces the sliding inactivity logout for non-admin sessions. A bad or
// expired token is reported as a typed 401, never silently ignored.
func Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies("access_token")

		if token == "" {
			auth := c.Get("Authorization")
			if strings.HasPrefix(auth, "Bearer ") {
				token = strings.TrimPrefix(auth, "Bearer ")
			}
		}

		if token == "" {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.UNAUTHENTICATED, errors.New("no token"))
		}

		jwtToken, err := helper.ParseToken(token)
		if err != nil || !jwtToken.Valid {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.UNAUTHENTICATED, err)
		}

		claim, err := helper.ClaimFromToken(jwtToken)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.UNAUTHENTICATED, err)
		}

		// Admins are exempt from the inactivity logout.
		if !claim.IsAdmin {
			alive, err := helper.TouchSession(c.Context(), claim.AccountId, claim.SessionId)
			if err != nil {
				return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
			}
			if !alive {
				return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.SESSION_EXPIRED, errors.New("session not found"))
			}
		}

		c.Locals("claims", claim)
		return c.Next()
	}
}

// AdminOnly requires an authenticated admin principal. Must run after
// Protected.
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claim, ok := helper.ClaimsFromCtx(c)
		if !ok {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.UNAUTHENTICATED, errors.New("no claims"))
		}
		if !claim.IsAdmin {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("admin required"))
		}
		return c.Next()
	}
}
