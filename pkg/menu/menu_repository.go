package menu

import (
	"context"
	"errors"
	"fmt"
	"restaurant-directory/domain"
	"restaurant-directory/entities"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	MenuRepository interface {
		GetMenuByRestaurantID(ctx context.Context, restaurantID string) (*entities.RestaurantMenu, error)
		// UpsertMenu replaces the whole menu of menu.RestaurantID and marks the restaurant as having
		// an uploaded menu.
		UpsertMenu(ctx context.Context, menu *entities.RestaurantMenu) (*entities.RestaurantMenu, error)
	}

	menuRepository struct {
		db *gorm.DB
	}
)

func NewMenuRepository(db *gorm.DB) MenuRepository {
	return &menuRepository{db: db}
}

func (r *menuRepository) GetMenuByRestaurantID(ctx context.Context, restaurantID string) (*entities.RestaurantMenu, error) {
	var menu entities.RestaurantMenu
	if err := r.db.WithContext(ctx).Where("restaurant_id = ?", restaurantID).First(&menu).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMenuNotFound
		}
		return nil, fmt.Errorf("get menu: %w", err)
	}
	return &menu, nil
}

// UpsertMenu writes the menu and the restaurant flag in one transaction.
func (r *menuRepository) UpsertMenu(ctx context.Context, menu *entities.RestaurantMenu) (*entities.RestaurantMenu, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "restaurant_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"restaurant_name", "items", "last_updated", "updated_at"}),
		}).Create(menu).Error; err != nil {
			return fmt.Errorf("upsert menu: %w", err)
		}

		res := tx.Model(&entities.Restaurant{}).
			Where("id = ?", menu.RestaurantID).
			Update("menu_uploaded", true)
		if res.Error != nil {
			return fmt.Errorf("update menu status: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return domain.ErrRestaurantNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.GetMenuByRestaurantID(ctx, menu.RestaurantID)
}
