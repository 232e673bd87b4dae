package routes

import (
	"restaurant-directory/domain"
	"restaurant-directory/internal/api/handlers"
	"restaurant-directory/internal/api/presenters"
	"restaurant-directory/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App               *fiber.App
	RestaurantHandler handlers.RestaurantHandler
	MenuHandler       handlers.MenuHandler
	UploadHandler     handlers.UploadHandler
	ChatHandler       handlers.ChatHandler
	Middleware        middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.RecoverMiddleware())
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Restaurants()
	c.Uploads()
	c.Chat()
	c.GuestRoute()
}

func (c *Config) Restaurants() {
	restaurants := c.App.Group("/api/restaurants")
	{
		restaurants.Post("", c.RestaurantHandler.CreateRestaurant)
		restaurants.Get("", c.RestaurantHandler.GetRestaurants)
		restaurants.Get("/:id", c.RestaurantHandler.GetRestaurantByID)
		restaurants.Put("/:id", c.RestaurantHandler.UpdateRestaurant)
		restaurants.Put("/:id/menu-status", c.RestaurantHandler.UpdateMenuStatus)

		restaurants.Get("/:id/menu", c.MenuHandler.GetMenu)
		restaurants.Put("/:id/menu", c.MenuHandler.UpsertMenu)
	}
}

func (c *Config) Uploads() {
	c.App.Post("/api/upload", c.UploadHandler.UploadImage)
}

func (c *Config) Chat() {
	c.App.Post("/api/openai/chat", c.ChatHandler.Complete)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessPing)
	})
}
