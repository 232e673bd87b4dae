package config

import (
	"context"
	"fmt"
	"os"
	"restaurant-directory/internal/api/handlers"
	"restaurant-directory/internal/api/routes"
	"restaurant-directory/internal/middleware"
	"restaurant-directory/internal/utils"
	"restaurant-directory/internal/utils/storage"
	"restaurant-directory/pkg/chat"
	"restaurant-directory/pkg/menu"
	"restaurant-directory/pkg/registry"
	"restaurant-directory/pkg/restaurant"
	"restaurant-directory/pkg/upload"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"go.uber.org/zap"
)

func NewApp(ctx context.Context, stores *Stores, log *zap.SugaredLogger) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: utils.IsDebug(),
	})
	middlewares := middleware.NewMiddleware(log)
	validator := utils.Validate

	// setting up access logging and limiter
	if err := os.MkdirAll("./logs", os.ModePerm); err != nil {
		return nil, fmt.Errorf("error creating logs directory: %w", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		return nil, fmt.Errorf("error opening access log: %w", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Local",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        utils.GetRateLimitMax(),
		Expiration: 1 * time.Second,
	}))

	// utils
	s3, err := storage.NewAwsS3(ctx)
	if err != nil {
		return nil, err
	}
	identifierRegistry := registry.NewIdentifierRegistry()

	// Service
	restaurantService := restaurant.NewRestaurantService(stores.Restaurants, identifierRegistry, log)
	menuService := menu.NewMenuService(stores.Menus, stores.Restaurants, identifierRegistry, log)
	uploadService := upload.NewUploadService(s3, log)
	chatService := chat.NewChatService(utils.GetConfig("OPENAI_API_KEY"), utils.GetConfig("OPENAI_BASE_URL"), log)

	// Handler
	restaurantHandler := handlers.NewRestaurantHandler(restaurantService, validator)
	menuHandler := handlers.NewMenuHandler(menuService)
	uploadHandler := handlers.NewUploadHandler(uploadService, validator)
	chatHandler := handlers.NewChatHandler(chatService, validator)

	// routes
	routesConfig := routes.Config{
		App:               app,
		RestaurantHandler: restaurantHandler,
		MenuHandler:       menuHandler,
		UploadHandler:     uploadHandler,
		ChatHandler:       chatHandler,
		Middleware:        middlewares,
	}
	routesConfig.Setup()
	return app, nil
}
