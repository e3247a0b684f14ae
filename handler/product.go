package handler

import (
	"restaurant_backend/constants"
	"restaurant_backend/model"
	"restaurant_backend/utils"
	"restaurant_backend/validate"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) GetProducts(c *fiber.Ctx) error {
	filter, ok := validate.Input[model.ProductFilter](c)
	if !ok {
		return missingLocals(c)
	}

	products, total, err := h.Catalog.ListProducts(c.UserContext(), filter)
	if err != nil {
		return h.fail(c, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       products,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: total,
	})
}

func (h *Handler) SearchProducts(c *fiber.Ctx) error {
	products, err := h.Catalog.SearchProducts(c.UserContext(), c.Query("q"))
	if err != nil {
		return h.fail(c, constants.SEARCH_QUERY_REQUIRED, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, products)
}

func (h *Handler) GetFeaturedProducts(c *fiber.Ctx) error {
	products, err := h.Catalog.FeaturedProducts(c.UserContext())
	if err != nil {
		return h.fail(c, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, products)
}

func (h *Handler) GetProductById(c *fiber.Ctx) error {
	id, ok := validate.Id(c)
	if !ok {
		return missingLocals(c)
	}

	product, err := h.Catalog.GetProduct(c.UserContext(), id)
	if err != nil {
		return h.fail(c, constants.PRODUCT_NOT_FOUND, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, product)
}

// CalculatePrice quotes base price plus optional extras without creating an order.
func (h *Handler) CalculatePrice(c *fiber.Ctx) error {
	id, ok := validate.Id(c)
	if !ok {
		return missingLocals(c)
	}
	input, ok := validate.Input[model.PriceQuoteInput](c)
	if !ok {
		return missingLocals(c)
	}

	quote, err := h.Catalog.CalculatePrice(c.UserContext(), id, input)
	if err != nil {
		return h.fail(c, constants.ERROR_INPUT, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, quote)
}

func (h *Handler) CreateProduct(c *fiber.Ctx) error {
	input, ok := validate.Input[model.CreateProductInput](c)
	if !ok {
		return missingLocals(c)
	}

	product, err := h.Catalog.CreateProduct(c.UserContext(), input)
	if err != nil {
		return h.fail(c, constants.ERROR_CREATE, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, product)
}

func (h *Handler) EditProduct(c *fiber.Ctx) error {
	id, ok := validate.Id(c)
	if !ok {
		return missingLocals(c)
	}
	input, ok := validate.Input[model.UpdateProductInput](c)
	if !ok {
		return missingLocals(c)
	}

	product, err := h.Catalog.UpdateProduct(c.UserContext(), id, input)
	if err != nil {
		return h.fail(c, constants.ERROR_EDIT, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, product)
}

func (h *Handler) DeleteProducts(c *fiber.Ctx) error {
	ids, ok := validate.DeleteIds(c)
	if !ok {
		return missingLocals(c)
	}

	deleted, err := h.Catalog.DeleteProducts(c.UserContext(), ids)
	if err != nil {
		return h.fail(c, constants.ERROR_DELETE, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": deleted})
}
