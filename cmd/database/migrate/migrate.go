package migration

import (
	"context"
	"fmt"
	"restaurant-directory/entities"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.Restaurant{}); err != nil {
		return fmt.Errorf("error migrating restaurant database: %w", err)
	}
	if err := db.AutoMigrate(&entities.RestaurantMenu{}); err != nil {
		return fmt.Errorf("error migrating restaurant menu database: %w", err)
	}
	return nil
}

// MigrateMongo creates the unique indexes that keep one restaurant and one menu per identifier.
func MigrateMongo(ctx context.Context, db *mongo.Database) error {
	for _, collection := range []string{entities.RestaurantCollection, entities.RestaurantMenuCollection} {
		_, err := db.Collection(collection).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "restaurantId", Value: 1}},
			Options: options.Index().SetUnique(true),
		})
		if err != nil {
			return fmt.Errorf("error creating %s index: %w", collection, err)
		}
	}

	_, err := db.Collection(entities.RestaurantCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "isOnline", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("error creating restaurant online index: %w", err)
	}
	return nil
}
