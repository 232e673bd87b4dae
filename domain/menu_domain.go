package domain

import (
	"errors"
	"restaurant-directory/entities"
	"time"
)

var (
	MessageSuccessGetMenu    = "menu retrieved successfully"
	MessageSuccessUpdateMenu = "menu updated successfully"
	MessageFailedGetMenu     = "failed to fetch menu"
	MessageFailedUpdateMenu  = "failed to update menu"

	ErrMenuNotFound = errors.New("menu not found for the given restaurant")
)

type (
	// UpsertMenuRequest carries raw submissions. Fields of each object are coerced during the merge,
	// so the objects are kept untyped here.
	UpsertMenuRequest struct {
		MenuItems      []map[string]any `json:"menuItems"`
		Customisations []map[string]any `json:"customisations"`
	}

	MenuResponse struct {
		ID             *int                `json:"id"`
		RestaurantID   string              `json:"restaurantId"`
		RestaurantName string              `json:"restaurantName"`
		Items          []entities.MenuItem `json:"items"`
		LastUpdated    time.Time           `json:"lastUpdated"`
		CreatedAt      time.Time           `json:"createdAt"`
		UpdatedAt      time.Time           `json:"updatedAt"`
	}

	RestaurantMenuResponse struct {
		Restaurant RestaurantResponse `json:"restaurant"`
		Menu       MenuResponse       `json:"menu"`
	}
)
