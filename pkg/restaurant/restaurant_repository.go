package restaurant

import (
	"context"
	"errors"
	"fmt"
	"restaurant-directory/domain"
	"restaurant-directory/entities"
	"time"

	"gorm.io/gorm"
)

type (
	RestaurantRepository interface {
		CreateRestaurant(ctx context.Context, restaurant *entities.Restaurant) error
		GetRestaurantByID(ctx context.Context, id string) (*entities.Restaurant, error)
		GetRestaurants(ctx context.Context, onlineOnly bool) ([]*entities.Restaurant, error)
		UpdateRestaurant(ctx context.Context, id string, changes RestaurantChanges) error
		SetMenuUploaded(ctx context.Context, id string, uploaded bool) (*entities.Restaurant, error)
	}

	// RestaurantChanges lists the fields of a partial update. Nil fields are left as stored.
	RestaurantChanges struct {
		Name        *string
		ContactNo   *string
		Address     *string
		MenuSummary *string
		IsOnline    *bool
		Location    *entities.GeoPoint
	}

	restaurantRepository struct {
		db *gorm.DB
	}
)

func NewRestaurantRepository(db *gorm.DB) RestaurantRepository {
	return &restaurantRepository{db: db}
}

func (r *restaurantRepository) CreateRestaurant(ctx context.Context, restaurant *entities.Restaurant) error {
	if err := r.db.WithContext(ctx).Create(restaurant).Error; err != nil {
		return fmt.Errorf("create restaurant: %w", err)
	}
	return nil
}

func (r *restaurantRepository) GetRestaurantByID(ctx context.Context, id string) (*entities.Restaurant, error) {
	var restaurant entities.Restaurant
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&restaurant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRestaurantNotFound
		}
		return nil, fmt.Errorf("get restaurant: %w", err)
	}
	return &restaurant, nil
}

func (r *restaurantRepository) GetRestaurants(ctx context.Context, onlineOnly bool) ([]*entities.Restaurant, error) {
	var restaurants []*entities.Restaurant

	query := r.db.WithContext(ctx)
	if onlineOnly {
		query = query.Where("is_online = ?", true)
	}

	if err := query.Order("created_at asc").Order("id asc").Find(&restaurants).Error; err != nil {
		return nil, fmt.Errorf("list restaurants: %w", err)
	}
	return restaurants, nil
}

// UpdateRestaurant writes only the supplied columns in a single statement.
func (r *restaurantRepository) UpdateRestaurant(ctx context.Context, id string, changes RestaurantChanges) error {
	values := entities.Restaurant{Timestamp: entities.Timestamp{UpdatedAt: time.Now()}}
	columns := []string{"updated_at"}

	if changes.Name != nil {
		values.Name = *changes.Name
		columns = append(columns, "name")
	}
	if changes.ContactNo != nil {
		values.ContactNo = *changes.ContactNo
		columns = append(columns, "contact_no")
	}
	if changes.Address != nil {
		values.Address = *changes.Address
		columns = append(columns, "address")
	}
	if changes.MenuSummary != nil {
		values.MenuSummary = *changes.MenuSummary
		columns = append(columns, "menu_summary")
	}
	if changes.IsOnline != nil {
		values.IsOnline = *changes.IsOnline
		columns = append(columns, "is_online")
	}
	if changes.Location != nil {
		values.Location = changes.Location
		columns = append(columns, "location")
	}

	res := r.db.WithContext(ctx).
		Model(&entities.Restaurant{}).
		Where("id = ?", id).
		Select(columns).
		Updates(&values)
	if res.Error != nil {
		return fmt.Errorf("update restaurant: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrRestaurantNotFound
	}
	return nil
}

func (r *restaurantRepository) SetMenuUploaded(ctx context.Context, id string, uploaded bool) (*entities.Restaurant, error) {
	res := r.db.WithContext(ctx).
		Model(&entities.Restaurant{}).
		Where("id = ?", id).
		Update("menu_uploaded", uploaded)
	if res.Error != nil {
		return nil, fmt.Errorf("update menu status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrRestaurantNotFound
	}
	return r.GetRestaurantByID(ctx, id)
}
