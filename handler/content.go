package handler

import (
	"restaurant_backend/constants"
	"restaurant_backend/model"
	"restaurant_backend/service"
	"restaurant_backend/utils"
	"restaurant_backend/validate"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ContentHandler serves one home page section type.
type ContentHandler[T model.Section] struct {
	svc *service.ContentService[T]
	log *zap.Logger
}

func NewContentHandler[T model.Section](svc *service.ContentService[T], log *zap.Logger) *ContentHandler[T] {
	if log == nil {
		log = zap.NewNop()
	}
	return &ContentHandler[T]{svc: svc, log: log}
}

func (h *ContentHandler[T]) List(c *fiber.Ctx) error {
	items, err := h.svc.List(c.UserContext())
	if err != nil {
		return fail(c, h.log, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, items)
}

func (h *ContentHandler[T]) Active(c *fiber.Ctx) error {
	item, err := h.svc.Active(c.UserContext())
	if err != nil {
		return fail(c, h.log, constants.CONTENT_NOT_FOUND, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, item)
}

func (h *ContentHandler[T]) Get(c *fiber.Ctx) error {
	id, ok := validate.Id(c)
	if !ok {
		return missingLocals(c)
	}

	item, err := h.svc.Get(c.UserContext(), id)
	if err != nil {
		return fail(c, h.log, constants.NOT_FOUND_RECORDS, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, item)
}

func (h *ContentHandler[T]) Create(c *fiber.Ctx) error {
	input, ok := validate.Input[T](c)
	if !ok {
		return missingLocals(c)
	}

	item, err := h.svc.Create(c.UserContext(), input)
	if err != nil {
		return fail(c, h.log, constants.ERROR_CREATE, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, item)
}

func (h *ContentHandler[T]) Edit(c *fiber.Ctx) error {
	id, ok := validate.Id(c)
	if !ok {
		return missingLocals(c)
	}
	input, ok := validate.Input[T](c)
	if !ok {
		return missingLocals(c)
	}

	item, err := h.svc.Update(c.UserContext(), id, input)
	if err != nil {
		return fail(c, h.log, constants.ERROR_EDIT, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, item)
}

func (h *ContentHandler[T]) Delete(c *fiber.Ctx) error {
	ids, ok := validate.DeleteIds(c)
	if !ok {
		return missingLocals(c)
	}

	deleted, err := h.svc.Delete(c.UserContext(), ids)
	if err != nil {
		return fail(c, h.log, constants.ERROR_DELETE, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": deleted})
}
