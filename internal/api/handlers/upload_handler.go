package handlers

import (
	"restaurant-directory/domain"
	"restaurant-directory/internal/api/presenters"
	"restaurant-directory/pkg/upload"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	UploadHandler interface {
		UploadImage(c *fiber.Ctx) error
	}

	uploadHandler struct {
		uploadService upload.UploadService
		validator     *validator.Validate
	}
)

func NewUploadHandler(uploadService upload.UploadService, validator *validator.Validate) UploadHandler {
	return &uploadHandler{
		uploadService: uploadService,
		validator:     validator,
	}
}

func (h *uploadHandler) UploadImage(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedNoFile, err)
	}

	req := domain.UploadImageRequest{
		RestaurantName: c.FormValue("restaurantName"),
		ItemName:       c.FormValue("itemName"),
		File:           file,
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadFields, err)
	}

	res, err := h.uploadService.UploadMenuImage(c.Context(), req)
	if err != nil {
		return failure(c, domain.MessageFailedUploadImage, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUploadImage)
}
