package restaurant

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

type restaurantMongoRepository struct {
	collection *mongo.Collection
}

func NewRestaurantMongoRepository(db *mongo.Database) RestaurantRepository {
	return &restaurantMongoRepository{collection: db.Collection(entities.RestaurantCollection)}
}

func (r *restaurantMongoRepository) CreateRestaurant(ctx context.Context, restaurant *entities.Restaurant) error {
	now := time.Now()
	restaurant.CreatedAt = now
	restaurant.UpdatedAt = now

	if _, err := r.collection.InsertOne(ctx, restaurant); err != nil {
		return fmt.Errorf("create restaurant: %w", err)
	}
	return nil
}

func (r *restaurantMongoRepository) GetRestaurantByID(ctx context.Context, id string) (*entities.Restaurant, error) {
	var restaurant entities.Restaurant
	if err := r.collection.FindOne(ctx, bson.M{"restaurantId": id}).Decode(&restaurant); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRestaurantNotFound
		}
		return nil, fmt.Errorf("get restaurant: %w", err)
	}
	return &restaurant, nil
}

func (r *restaurantMongoRepository) GetRestaurants(ctx context.Context, onlineOnly bool) ([]*entities.Restaurant, error) {
	filter := bson.M{}
	if onlineOnly {
		filter["isOnline"] = true
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "restaurantId", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list restaurants: %w", err)
	}

	var found []entities.Restaurant
	if err := cursor.All(ctx, &found); err != nil {
		return nil, fmt.Errorf("decode restaurants: %w", err)
	}

	restaurants := make([]*entities.Restaurant, 0, len(found))
	for i := range found {
		restaurants = append(restaurants, &found[i])
	}
	return restaurants, nil
}

// UpdateRestaurant sets only the supplied fields in a single update.
func (r *restaurantMongoRepository) UpdateRestaurant(ctx context.Context, id string, changes RestaurantChanges) error {
	set := bson.M{"updatedAt": time.Now()}
	if changes.Name != nil {
		set["name"] = *changes.Name
	}
	if changes.ContactNo != nil {
		set["contactNo"] = *changes.ContactNo
	}
	if changes.Address != nil {
		set["address"] = *changes.Address
	}
	if changes.MenuSummary != nil {
		set["menuSummary"] = *changes.MenuSummary
	}
	if changes.IsOnline != nil {
		set["isOnline"] = *changes.IsOnline
	}
	if changes.Location != nil {
		set["location"] = changes.Location
	}

	res, err := r.collection.UpdateOne(ctx, bson.M{"restaurantId": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update restaurant: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrRestaurantNotFound
	}
	return nil
}

func (r *restaurantMongoRepository) SetMenuUploaded(ctx context.Context, id string, uploaded bool) (*entities.Restaurant, error) {
	update := bson.M{"$set": bson.M{"menuUploaded": uploaded, "updatedAt": time.Now()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var restaurant entities.Restaurant
	if err := r.collection.FindOneAndUpdate(ctx, bson.M{"restaurantId": id}, update, opts).Decode(&restaurant); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRestaurantNotFound
		}
		return nil, fmt.Errorf("update menu status: %w", err)
	}
	return &restaurant, nil
}
