package domain

import (
	"errors"
	"mime/multipart"
)

var (
	MessageSuccessUploadImage = "image uploaded successfully"
	MessageFailedUploadImage  = "failed to upload image"
	MessageFailedNoFile       = "no file uploaded"
	MessageFailedUploadFields = "missing required fields"

	ErrInvalidImageFormat  = errors.New("invalid image format")
	ErrMissingUploadFields = errors.New("restaurantName, itemName and file are required")
)

type (
	UploadImageRequest struct {
		RestaurantName string                `form:"restaurantName" validate:"required"`
		ItemName       string                `form:"itemName" validate:"required"`
		File           *multipart.FileHeader `form:"file" validate:"required"`
	}

	UploadImageResponse struct {
		FileURL string `json:"fileUrl"`
		Key     string `json:"key"`
	}
)
