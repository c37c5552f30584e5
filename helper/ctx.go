package helper

import (
	"cinema_booking/model"

	"github.com/gofiber/fiber/v2"
)

// ClaimsFromCtx returns the authenticated principal set by the auth
// middleware.
func ClaimsFromCtx(c *fiber.Ctx) (model.TokenClaim, bool) {
	claim, ok := c.Locals("claims").(model.TokenClaim)
	return claim, ok
}
