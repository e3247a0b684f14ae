package handler

import (
	"restaurant_backend/constants"
	"restaurant_backend/model"
	"restaurant_backend/utils"
	"restaurant_backend/validate"

	"github.com/gofiber/fiber/v2"
)

const (
	defaultOrderLimit = 20
	maxOrderLimit     = 100
	qrSize            = 256
)

func (h *Handler) PlaceOrder(c *fiber.Ctx) error {
	input, ok := validate.Input[model.CreateOrderInput](c)
	if !ok {
		return missingLocals(c)
	}

	order, err := h.Orders.PlaceOrder(c.UserContext(), input)
	if err != nil {
		return h.fail(c, constants.ORDER_VALIDATION_FAILED, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, order)
}

func (h *Handler) GetOrders(c *fiber.Ctx) error {
	filter, ok := validate.Input[model.OrderFilter](c)
	if !ok {
		return missingLocals(c)
	}

	limit := defaultOrderLimit
	page := 1
	if filter.Limit != nil && *filter.Limit > 0 {
		limit = min(*filter.Limit, maxOrderLimit)
	}
	if filter.Page != nil && *filter.Page > 0 {
		page = *filter.Page
	}

	orders, total, err := h.Orders.ListOrders(c.UserContext(), filter.Status, limit, utils.Offset(&limit, &page))
	if err != nil {
		return h.fail(c, constants.ERROR_INPUT, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       orders,
		Limit:      &limit,
		Page:       &page,
		TotalCount: total,
	})
}

func (h *Handler) GetOrderById(c *fiber.Ctx) error {
	id, ok := validate.Id(c)
	if !ok {
		return missingLocals(c)
	}

	order, err := h.Orders.GetOrder(c.UserContext(), id)
	if err != nil {
		return h.fail(c, constants.ORDER_NOT_FOUND, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, order)
}

func (h *Handler) UpdateOrderStatus(c *fiber.Ctx) error {
	id, ok := validate.Id(c)
	if !ok {
		return missingLocals(c)
	}
	input, ok := validate.Input[model.UpdateOrderStatusInput](c)
	if !ok {
		return missingLocals(c)
	}

	order, err := h.Orders.UpdateStatus(c.UserContext(), id, input.Status)
	if err != nil {
		return h.fail(c, constants.ERROR_EDIT, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, order)
}

// GetOrderQRCode renders the order number as a PNG for the confirmation page.
func (h *Handler) GetOrderQRCode(c *fiber.Ctx) error {
	order, err := h.Orders.GetOrderByNumber(c.UserContext(), c.Params("orderNumber"))
	if err != nil {
		return h.fail(c, constants.ORDER_NOT_FOUND, err)
	}

	png, err := utils.GenerateQRCode(order.OrderNumber, qrSize)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.QR_GENERATION_FAILED, err)
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Status(fiber.StatusOK).Send(png)
}
