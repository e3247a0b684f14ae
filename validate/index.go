package validate

import (
	"errors"
	"strconv"

	"restaurant_backend/constants"
	"restaurant_backend/helper"
	"restaurant_backend/model"
	"restaurant_backend/utils"

	"github.com/gofiber/fiber/v2"
)

var validate = helper.Validator

func GetById(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseUint(c.Params(key), 10, 32)
		if err != nil || id == 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		c.Locals(constants.LOCALS_ID, uint(id))
		return c.Next()
	}
}

func Delete() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ArrayId
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.EMPTY_DELETE_IDS, err)
		}

		c.Locals(constants.LOCALS_DELETE, input.IDs)
		return c.Next()
	}
}

// Body parses the JSON body into T, runs the struct tags and stores the
// value under LOCALS_INPUT.
func Body[T any]() fiber.Handler {
	return func(c *fiber.Ctx) error {
		input := new(T)
		if err := c.BodyParser(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		c.Locals(constants.LOCALS_INPUT, *input)
		return c.Next()
	}
}

// Input returns the value stored by Body.
func Input[T any](c *fiber.Ctx) (T, bool) {
	v, ok := c.Locals(constants.LOCALS_INPUT).(T)
	return v, ok
}

func Id(c *fiber.Ctx) (uint, bool) {
	v, ok := c.Locals(constants.LOCALS_ID).(uint)
	return v, ok
}

func DeleteIds(c *fiber.Ctx) ([]uint, bool) {
	v, ok := c.Locals(constants.LOCALS_DELETE).([]uint)
	return v, ok
}

// Parse decodes the body into T without running struct tags. Used where the
// service reports field errors itself.
func Parse[T any]() fiber.Handler {
	return func(c *fiber.Ctx) error {
		input := new(T)
		if err := c.BodyParser(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		c.Locals(constants.LOCALS_INPUT, *input)
		return c.Next()
	}
}
