package config

import (
	"context"
	"fmt"
	migration "restaurant-directory/cmd/database/migrate"
	"restaurant-directory/internal/utils"
	"restaurant-directory/pkg/menu"
	"restaurant-directory/pkg/restaurant"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
)

// Stores holds the repositories of the selected storage driver.
type Stores struct {
	Restaurants restaurant.RestaurantRepository
	Menus       menu.MenuRepository
	Close       func(ctx context.Context) error
}

func ConnectDB() (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		utils.GetConfig("DB_HOST"),
		utils.GetConfig("DB_USER"),
		utils.GetConfig("DB_PASSWORD"),
		utils.GetConfig("DB_NAME"),
		utils.GetConfig("DB_PORT"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	return db, nil
}

func ConnectMongo(ctx context.Context) (*mongo.Client, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(utils.GetConfig("MONGODB_URI")))
	if err != nil {
		return nil, fmt.Errorf("mongo connection failed: %w", err)
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo ping failed: %w", err)
	}
	return client, nil
}

// ConnectStores opens the backend named by STORAGE_DRIVER and brings its schema up to date.
func ConnectStores(ctx context.Context, logger *zap.SugaredLogger) (*Stores, error) {
	driver := utils.GetConfig("STORAGE_DRIVER")

	switch driver {
	case DriverPostgres:
		db, err := ConnectDB()
		if err != nil {
			return nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		if err := migration.Migrate(db); err != nil {
			_ = sqlDB.Close()
			return nil, err
		}

		logger.Infow("storage connected", "driver", driver, "host", utils.GetConfig("DB_HOST"))
		return &Stores{
			Restaurants: restaurant.NewRestaurantRepository(db),
			Menus:       menu.NewMenuRepository(db),
			Close:       func(context.Context) error { return sqlDB.Close() },
		}, nil

	case DriverMongo:
		client, err := ConnectMongo(ctx)
		if err != nil {
			return nil, err
		}
		db := client.Database(utils.GetConfig("MONGODB_DATABASE"))
		if err := migration.MigrateMongo(ctx, db); err != nil {
			_ = client.Disconnect(ctx)
			return nil, err
		}

		logger.Infow("storage connected", "driver", driver, "database", db.Name())
		return &Stores{
			Restaurants: restaurant.NewRestaurantMongoRepository(db),
			Menus:       menu.NewMenuMongoRepository(db),
			Close:       client.Disconnect,
		}, nil

	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q", driver)
	}
}
