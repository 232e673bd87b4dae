package handlers

import (
	"restaurant-directory/domain"
	"restaurant-directory/internal/api/presenters"
	"restaurant-directory/pkg/restaurant"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RestaurantHandler interface {
		CreateRestaurant(c *fiber.Ctx) error
		GetRestaurants(c *fiber.Ctx) error
		GetRestaurantByID(c *fiber.Ctx) error
		UpdateRestaurant(c *fiber.Ctx) error
		UpdateMenuStatus(c *fiber.Ctx) error
	}

	restaurantHandler struct {
		restaurantService restaurant.RestaurantService
		validator         *validator.Validate
	}
)

func NewRestaurantHandler(restaurantService restaurant.RestaurantService, validator *validator.Validate) RestaurantHandler {
	return &restaurantHandler{
		restaurantService: restaurantService,
		validator:         validator,
	}
}

func (h *restaurantHandler) CreateRestaurant(c *fiber.Ctx) error {
	req := new(domain.CreateRestaurantRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	req.Trim()
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedValidateRestaurant, err)
	}

	res, err := h.restaurantService.CreateRestaurant(c.Context(), *req)
	if err != nil {
		return failure(c, domain.MessageFailedCreateRestaurant, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateRestaurant)
}

func (h *restaurantHandler) GetRestaurants(c *fiber.Ctx) error {
	onlineOnly := c.Query("online") == "true"

	res, err := h.restaurantService.GetRestaurants(c.Context(), onlineOnly)
	if err != nil {
		return failure(c, domain.MessageFailedGetRestaurants, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRestaurants)
}

func (h *restaurantHandler) GetRestaurantByID(c *fiber.Ctx) error {
	res, err := h.restaurantService.GetRestaurantByID(c.Context(), c.Params("id"))
	if err != nil {
		return failure(c, domain.MessageFailedGetRestaurant, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRestaurant)
}

func (h *restaurantHandler) UpdateRestaurant(c *fiber.Ctx) error {
	req := new(domain.UpdateRestaurantRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	req.Trim()
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedValidateRestaurant, err)
	}

	res, err := h.restaurantService.UpdateRestaurant(c.Context(), c.Params("id"), *req)
	if err != nil {
		return failure(c, domain.MessageFailedUpdateRestaurant, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateRestaurant)
}

func (h *restaurantHandler) UpdateMenuStatus(c *fiber.Ctx) error {
	res, err := h.restaurantService.MarkMenuUploaded(c.Context(), c.Params("id"))
	if err != nil {
		return failure(c, domain.MessageFailedUpdateMenuStatus, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateMenuStatus)
}
