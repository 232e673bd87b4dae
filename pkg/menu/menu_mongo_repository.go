package menu

import (
	"context"
	"errors"
	"fmt"
	"restaurant-directory/domain"
	"restaurant-directory/entities"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type menuMongoRepository struct {
	menus       *mongo.Collection
	restaurants *mongo.Collection
}

func NewMenuMongoRepository(db *mongo.Database) MenuRepository {
	return &menuMongoRepository{
		menus:       db.Collection(entities.RestaurantMenuCollection),
		restaurants: db.Collection(entities.RestaurantCollection),
	}
}

func (r *menuMongoRepository) GetMenuByRestaurantID(ctx context.Context, restaurantID string) (*entities.RestaurantMenu, error) {
	var menu entities.RestaurantMenu
	if err := r.menus.FindOne(ctx, bson.M{"restaurantId": restaurantID}).Decode(&menu); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMenuNotFound
		}
		return nil, fmt.Errorf("get menu: %w", err)
	}
	return &menu, nil
}

// UpsertMenu writes the menu, then the restaurant flag. The two writes are not atomic: a failure of the
// second leaves the menu stored while menuUploaded stays false until the next successful upsert.
func (r *menuMongoRepository) UpsertMenu(ctx context.Context, menu *entities.RestaurantMenu) (*entities.RestaurantMenu, error) {
	now := time.Now()
	update := bson.M{
		"$set": bson.M{
			"restaurantName": menu.RestaurantName,
			"items":          menu.Items,
			"lastUpdated":    menu.LastUpdated,
			"updatedAt":      now,
		},
		"$setOnInsert": bson.M{"createdAt": now},
	}
	filter := bson.M{"restaurantId": menu.RestaurantID}
	if _, err := r.menus.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true)); err != nil {
		return nil, fmt.Errorf("upsert menu: %w", err)
	}

	res, err := r.restaurants.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"menuUploaded": true, "updatedAt": now}})
	if err != nil {
		return nil, fmt.Errorf("update menu status: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrRestaurantNotFound
	}

	return r.GetMenuByRestaurantID(ctx, menu.RestaurantID)
}
