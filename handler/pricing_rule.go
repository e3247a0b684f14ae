package handler

import (
	"restaurant_backend/constants"
	"restaurant_backend/model"
	"restaurant_backend/utils"
	"restaurant_backend/validate"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) GetPricingRules(c *fiber.Ctx) error {
	productID := c.QueryInt("product_id", 0)
	if productID < 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, nil)
	}

	rules, err := h.Catalog.ListPricingRules(c.UserContext(), uint(productID))
	if err != nil {
		return h.fail(c, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, rules)
}

func (h *Handler) CreatePricingRule(c *fiber.Ctx) error {
	input, ok := validate.Input[model.PricingRuleInput](c)
	if !ok {
		return missingLocals(c)
	}

	rule, err := h.Catalog.CreatePricingRule(c.UserContext(), input)
	if err != nil {
		return h.fail(c, constants.ERROR_CREATE, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, rule)
}

func (h *Handler) EditPricingRule(c *fiber.Ctx) error {
	id, ok := validate.Id(c)
	if !ok {
		return missingLocals(c)
	}
	input, ok := validate.Input[model.ProductIngredientInput](c)
	if !ok {
		return missingLocals(c)
	}

	rule, err := h.Catalog.UpdatePricingRule(c.UserContext(), id, input)
	if err != nil {
		return h.fail(c, constants.ERROR_EDIT, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, rule)
}

func (h *Handler) DeletePricingRules(c *fiber.Ctx) error {
	ids, ok := validate.DeleteIds(c)
	if !ok {
		return missingLocals(c)
	}

	deleted, err := h.Catalog.DeletePricingRules(c.UserContext(), ids)
	if err != nil {
		return h.fail(c, constants.ERROR_DELETE, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": deleted})
}
