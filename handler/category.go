package handler

import (
	"restaurant_backend/constants"
	"restaurant_backend/model"
	"restaurant_backend/utils"
	"restaurant_backend/validate"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) GetCategories(c *fiber.Ctx) error {
	categories, err := h.Catalog.ListCategories(c.UserContext())
	if err != nil {
		return h.fail(c, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, categories)
}

func (h *Handler) GetCategoryById(c *fiber.Ctx) error {
	id, ok := validate.Id(c)
	if !ok {
		return missingLocals(c)
	}

	category, err := h.Catalog.GetCategory(c.UserContext(), id)
	if err != nil {
		return h.fail(c, constants.CATEGORY_NOT_FOUND, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, category)
}

func (h *Handler) GetCategoryProducts(c *fiber.Ctx) error {
	id, ok := validate.Id(c)
	if !ok {
		return missingLocals(c)
	}

	products, err := h.Catalog.CategoryProducts(c.UserContext(), id)
	if err != nil {
		return h.fail(c, constants.CATEGORY_NOT_FOUND, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, products)
}

func (h *Handler) CreateCategory(c *fiber.Ctx) error {
	input, ok := validate.Input[model.CategoryInput](c)
	if !ok {
		return missingLocals(c)
	}

	category, err := h.Catalog.CreateCategory(c.UserContext(), input)
	if err != nil {
		return h.fail(c, constants.ERROR_CREATE, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, category)
}

func (h *Handler) EditCategory(c *fiber.Ctx) error {
	id, ok := validate.Id(c)
	if !ok {
		return missingLocals(c)
	}
	input, ok := validate.Input[model.CategoryInput](c)
	if !ok {
		return missingLocals(c)
	}

	category, err := h.Catalog.UpdateCategory(c.UserContext(), id, input)
	if err != nil {
		return h.fail(c, constants.ERROR_EDIT, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, category)
}

func (h *Handler) DeleteCategories(c *fiber.Ctx) error {
	ids, ok := validate.DeleteIds(c)
	if !ok {
		return missingLocals(c)
	}

	deleted, err := h.Catalog.DeleteCategories(c.UserContext(), ids)
	if err != nil {
		return h.fail(c, constants.ERROR_DELETE, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": deleted})
}
