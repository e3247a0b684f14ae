package handler

import (
	"time"

	"restaurant_backend/constants"
	"restaurant_backend/helper"
	"restaurant_backend/model"
	"restaurant_backend/utils"
	"restaurant_backend/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func accountView(acc *model.Account) fiber.Map {
	return fiber.Map{
		"id":       acc.ID,
		"username": acc.Username,
		"role":     acc.Role,
	}
}

func (h *Handler) Login(c *fiber.Ctx) error {
	input, ok := validate.Input[model.LoginInput](c)
	if !ok {
		return missingLocals(c)
	}

	acc, token, err := h.Auth.Login(c.UserContext(), input)
	if err != nil {
		return h.fail(c, constants.INVALID_CREDENTIALS, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     constants.ACCESS_COOKIE,
		Value:    token,
		Expires:  time.Now().Add(time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"access_token": token,
		"account":      accountView(acc),
	})
}

func (h *Handler) Logout(c *fiber.Ctx) error {
	c.ClearCookie(constants.ACCESS_COOKIE)
	return utils.SuccessResponse(c, fiber.StatusOK, nil)
}

func (h *Handler) Me(c *fiber.Ctx) error {
	token, _ := c.Locals(constants.LOCALS_USER).(*jwt.Token)
	claim, err := helper.ClaimFromToken(token)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_TOKEN, err)
	}

	acc, err := h.Auth.Me(c.UserContext(), claim.AccountId)
	if err != nil {
		return h.fail(c, constants.INVALID_TOKEN, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, accountView(acc))
}
