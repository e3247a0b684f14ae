package validate

import (
	"encoding/json"
	"errors"
	"strings"

	"restaurant_backend/constants"
	"restaurant_backend/model"
	"restaurant_backend/utils"

	"github.com/gofiber/fiber/v2"
)

func ListProducts() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var filter model.ProductFilter
		if err := c.QueryParser(&filter); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		c.Locals(constants.LOCALS_INPUT, filter)
		return c.Next()
	}
}

// PriceQuote accepts an empty body as a quote without extras.
func PriceQuote() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.PriceQuoteInput
		if len(c.Body()) > 0 {
			if err := json.Unmarshal(c.Body(), &input); err != nil {
				var typeErr *json.UnmarshalTypeError
				if errors.As(err, &typeErr) && strings.HasPrefix(typeErr.Field, "extra_ids") {
					return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.EXTRA_IDS_MUST_BE_LIST, err)
				}
				return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
			}
		}

		c.Locals(constants.LOCALS_INPUT, input)
		return c.Next()
	}
}
