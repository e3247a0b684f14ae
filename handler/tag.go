package handler

import (
	"restaurant_backend/constants"
	"restaurant_backend/model"
	"restaurant_backend/utils"
	"restaurant_backend/validate"

	"github.com/gofiber/fiber/v2"
)

// GetTags lists tags, narrowed to one product with ?product_id=.
func (h *Handler) GetTags(c *fiber.Ctx) error {
	productID := c.QueryInt("product_id", 0)
	if productID < 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, nil)
	}

	tags, err := h.Catalog.ListTags(c.UserContext(), uint(productID))
	if err != nil {
		return h.fail(c, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, tags)
}

func (h *Handler) CreateTag(c *fiber.Ctx) error {
	input, ok := validate.Input[model.TagInput](c)
	if !ok {
		return missingLocals(c)
	}

	tag, err := h.Catalog.CreateTag(c.UserContext(), input)
	if err != nil {
		return h.fail(c, constants.ERROR_CREATE, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, tag)
}

func (h *Handler) DeleteTags(c *fiber.Ctx) error {
	ids, ok := validate.DeleteIds(c)
	if !ok {
		return missingLocals(c)
	}

	deleted, err := h.Catalog.DeleteTags(c.UserContext(), ids)
	if err != nil {
		return h.fail(c, constants.ERROR_DELETE, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": deleted})
}
