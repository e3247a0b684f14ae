package middleware

import (
	"errors"
	"strings"

	"restaurant_backend/constants"
	"restaurant_backend/helper"
	"restaurant_backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func tokenFromRequest(c *fiber.Ctx) string {
	token := c.Cookies(constants.ACCESS_COOKIE)
	if token == "" {
		// check header Authorization: Bearer xxx
		auth := c.Get(fiber.HeaderAuthorization)
		if strings.HasPrefix(auth, "Bearer ") {
			token = strings.TrimPrefix(auth, "Bearer ")
		}
	}
	return token
}

func Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := tokenFromRequest(c)
		if token == "" {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.MISSING_TOKEN, errors.New("no token"))
		}

		jwtToken, err := helper.ParseToken(token)
		if err != nil || !jwtToken.Valid {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_TOKEN, err)
		}

		c.Locals(constants.LOCALS_USER, jwtToken)
		return c.Next()
	}
}

// StaffOnly must run after Protected.
func StaffOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, _ := c.Locals(constants.LOCALS_USER).(*jwt.Token)
		claim, err := helper.ClaimFromToken(token)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_TOKEN, err)
		}
		if claim.Role != constants.ROLE_ADMIN && claim.Role != constants.ROLE_STAFF {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_STAFF, errors.New("role "+claim.Role))
		}
		return c.Next()
	}
}
