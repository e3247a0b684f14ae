package handler

import (
	"restaurant_backend/constants"
	"restaurant_backend/model"
	"restaurant_backend/utils"
	"restaurant_backend/validate"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) GetIngredients(c *fiber.Ctx) error {
	ingredients, err := h.Catalog.ListIngredients(c.UserContext(), !c.QueryBool("all", false))
	if err != nil {
		return h.fail(c, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, ingredients)
}

func (h *Handler) GetIngredientById(c *fiber.Ctx) error {
	id, ok := validate.Id(c)
	if !ok {
		return missingLocals(c)
	}

	ingredient, err := h.Catalog.GetIngredient(c.UserContext(), id)
	if err != nil {
		return h.fail(c, constants.INGREDIENT_NOT_FOUND, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, ingredient)
}

func (h *Handler) CreateIngredient(c *fiber.Ctx) error {
	input, ok := validate.Input[model.IngredientInput](c)
	if !ok {
		return missingLocals(c)
	}

	ingredient, err := h.Catalog.CreateIngredient(c.UserContext(), input)
	if err != nil {
		return h.fail(c, constants.ERROR_CREATE, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, ingredient)
}

func (h *Handler) EditIngredient(c *fiber.Ctx) error {
	id, ok := validate.Id(c)
	if !ok {
		return missingLocals(c)
	}
	input, ok := validate.Input[model.IngredientInput](c)
	if !ok {
		return missingLocals(c)
	}

	ingredient, err := h.Catalog.UpdateIngredient(c.UserContext(), id, input)
	if err != nil {
		return h.fail(c, constants.ERROR_EDIT, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, ingredient)
}

func (h *Handler) DeleteIngredients(c *fiber.Ctx) error {
	ids, ok := validate.DeleteIds(c)
	if !ok {
		return missingLocals(c)
	}

	deleted, err := h.Catalog.DeleteIngredients(c.UserContext(), ids)
	if err != nil {
		return h.fail(c, constants.ERROR_DELETE, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": deleted})
}
