package validate

import (
	"restaurant_backend/constants"
	"restaurant_backend/model"
	"restaurant_backend/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateOrder only decodes the body. Field checks happen in the order
// service so that every problem is reported in one response.
func CreateOrder() fiber.Handler {
	return Parse[model.CreateOrderInput]()
}

func ListOrders() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var filter model.OrderFilter
		if err := c.QueryParser(&filter); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		c.Locals(constants.LOCALS_INPUT, filter)
		return c.Next()
	}
}
