package handler

import (
	"errors"
	"slices"

	"restaurant_backend/constants"
	"restaurant_backend/helper"
	"restaurant_backend/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const maxImageSize = 5 * 1024 * 1024

var imageFolders = []string{"products", "categories", "content"}

type destroyImageInput struct {
	PublicID string `json:"public_id"`
	URL      string `json:"url"`
}

// UploadImage stores a multipart "file" in Cloudinary and returns its URL.
func (h *Handler) UploadImage(c *fiber.Ctx) error {
	if h.Images == nil {
		return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, constants.IMAGE_UPLOAD_FAILED, errors.New("image storage is not configured"))
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.IMAGE_REQUIRED, err)
	}
	if fileHeader.Size > maxImageSize {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.IMAGE_TOO_LARGE, nil)
	}

	folder := c.FormValue("folder", "products")
	if !slices.Contains(imageFolders, folder) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("unknown folder "+folder))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.IMAGE_REQUIRED, err)
	}
	defer file.Close()

	img, err := h.Images.Upload(c.UserContext(), file, folder)
	if err != nil {
		h.log.Error("image upload failed", zap.String("folder", folder), zap.Error(err))
		return utils.ErrorResponse(c, fiber.StatusBadGateway, constants.IMAGE_UPLOAD_FAILED, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, img)
}

func (h *Handler) DestroyImage(c *fiber.Ctx) error {
	if h.Images == nil {
		return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, constants.IMAGE_UPLOAD_FAILED, errors.New("image storage is not configured"))
	}

	var input destroyImageInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	if input.PublicID == "" {
		input.PublicID = helper.ExtractPublicID(input.URL)
	}
	if input.PublicID == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("public_id or url is required"))
	}

	if err := h.Images.Destroy(c.UserContext(), input.PublicID); err != nil {
		h.log.Error("image delete failed", zap.String("public_id", input.PublicID), zap.Error(err))
		return utils.ErrorResponse(c, fiber.StatusBadGateway, constants.ERROR_DELETE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, nil)
}
