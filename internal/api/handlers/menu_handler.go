package handlers

import (
	"restaurant-directory/domain"
	"restaurant-directory/internal/api/presenters"
	"restaurant-directory/pkg/menu"

	"github.com/gofiber/fiber/v2"
)

type (
	MenuHandler interface {
		GetMenu(c *fiber.Ctx) error
		UpsertMenu(c *fiber.Ctx) error
	}

	menuHandler struct {
		menuService menu.MenuService
	}
)

func NewMenuHandler(menuService menu.MenuService) MenuHandler {
	return &menuHandler{
		menuService: menuService,
	}
}

func (h *menuHandler) GetMenu(c *fiber.Ctx) error {
	res, err := h.menuService.GetMenu(c.Context(), c.Params("id"))
	if err != nil {
		return failure(c, domain.MessageFailedGetMenu, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMenu)
}

func (h *menuHandler) UpsertMenu(c *fiber.Ctx) error {
	req := new(domain.UpsertMenuRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.menuService.UpsertMenu(c.Context(), c.Params("id"), *req)
	if err != nil {
		return failure(c, domain.MessageFailedUpdateMenu, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateMenu)
}
