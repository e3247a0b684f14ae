package handler

import (
	"context"
	"errors"
	"io"

	"restaurant_backend/constants"
	"restaurant_backend/helper"
	"restaurant_backend/model"
	"restaurant_backend/service"
	"restaurant_backend/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type OrderService interface {
	PlaceOrder(ctx context.Context, in model.CreateOrderInput) (*model.Order, error)
	GetOrder(ctx context.Context, id uint) (*model.Order, error)
	GetOrderByNumber(ctx context.Context, number string) (*model.Order, error)
	ListOrders(ctx context.Context, status string, limit, offset int) ([]model.Order, int64, error)
	UpdateStatus(ctx context.Context, id uint, status string) (*model.Order, error)
}

type AuthService interface {
	Login(ctx context.Context, in model.LoginInput) (*model.Account, string, error)
	Me(ctx context.Context, accountID uint) (*model.Account, error)
}

type ImageUploader interface {
	Upload(ctx context.Context, file io.Reader, folder string) (*helper.UploadedImage, error)
	Destroy(ctx context.Context, publicID string) error
}

type Handler struct {
	Orders  OrderService
	Auth    AuthService
	Catalog *service.CatalogService
	Images  ImageUploader
	log     *zap.Logger
}

func New(orders OrderService, auth AuthService, catalog *service.CatalogService, images ImageUploader, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{Orders: orders, Auth: auth, Catalog: catalog, Images: images, log: log}
}

var notFound = map[error]string{
	service.ErrOrderNotFound:       constants.ORDER_NOT_FOUND,
	service.ErrProductNotFound:     constants.PRODUCT_NOT_FOUND,
	service.ErrCategoryNotFound:    constants.CATEGORY_NOT_FOUND,
	service.ErrIngredientNotFound:  constants.INGREDIENT_NOT_FOUND,
	service.ErrPricingRuleNotFound: constants.PRICING_RULE_NOT_FOUND,
	service.ErrContentNotFound:     constants.CONTENT_NOT_FOUND,
}

// fail maps service errors onto the response envelope.
func fail(c *fiber.Ctx, log *zap.Logger, message string, err error) error {
	if ve, ok := service.IsValidation(err); ok {
		return utils.ErrorResponseWithDetails(c, fiber.StatusBadRequest, message, err, ve.Errors)
	}
	for sentinel, msg := range notFound {
		if errors.Is(err, sentinel) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, msg, err)
		}
	}
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_CREDENTIALS, err)
	case errors.Is(err, service.ErrAccountInactive):
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.ACCOUNT_NOT_ACTIVE, err)
	case errors.Is(err, service.ErrNotStaff):
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_STAFF, err)
	case errors.Is(err, service.ErrEmptyIDs):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.EMPTY_DELETE_IDS, err)
	}

	log.Error("request failed",
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Error(err))
	return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
}

func (h *Handler) fail(c *fiber.Ctx, message string, err error) error {
	return fail(c, h.log, message, err)
}

func missingLocals(c *fiber.Ctx) error {
	return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("missing request data"))
}
