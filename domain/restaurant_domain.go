package domain

import (
	"errors"
	"strings"
	"time"
)

var (
	MessageSuccessCreateRestaurant  = "restaurant created successfully"
	MessageSuccessGetRestaurants    = "restaurants retrieved successfully"
	MessageSuccessGetRestaurant     = "restaurant retrieved successfully"
	MessageSuccessUpdateRestaurant  = "restaurant updated successfully"
	MessageSuccessUpdateMenuStatus  = "menu status updated successfully"
	MessageFailedCreateRestaurant   = "error creating restaurant"
	MessageFailedGetRestaurants     = "error fetching restaurants"
	MessageFailedGetRestaurant      = "error fetching restaurant"
	MessageFailedUpdateRestaurant   = "error updating restaurant"
	MessageFailedUpdateMenuStatus   = "error updating menu status"
	MessageFailedValidateRestaurant = "invalid restaurant data"
	ErrRestaurantNotFound           = errors.New("restaurant not found")
)

type (
	LocationRequest struct {
		Latitude  *float64 `json:"latitude" validate:"omitnil,latitude"`
		Longitude *float64 `json:"longitude" validate:"omitnil,longitude"`
	}

	CreateRestaurantRequest struct {
		Name        string           `json:"name" validate:"required"`
		ContactNo   string           `json:"contactNo" validate:"required,contact_no"`
		Address     string           `json:"address" validate:"required"`
		MenuSummary string           `json:"menuSummary" validate:"required"`
		IsOnline    *bool            `json:"isOnline"`
		Location    *LocationRequest `json:"location"`
	}

	// UpdateRestaurantRequest replaces only the fields that are present.
	UpdateRestaurantRequest struct {
		Name        *string          `json:"name" validate:"omitnil,min=1"`
		ContactNo   *string          `json:"contactNo" validate:"omitnil,contact_no"`
		Address     *string          `json:"address" validate:"omitnil,min=1"`
		MenuSummary *string          `json:"menuSummary" validate:"omitnil,min=1"`
		IsOnline    *bool            `json:"isOnline"`
		Location    *LocationRequest `json:"location"`
	}

	RestaurantResponse struct {
		ID           *int      `json:"id"`
		RestaurantID string    `json:"restaurantId"`
		Name         string    `json:"name"`
		ContactNo    string    `json:"contactNo"`
		Address      string    `json:"address"`
		MenuSummary  string    `json:"menuSummary"`
		IsOnline     bool      `json:"isOnline"`
		MenuUploaded bool      `json:"menuUploaded"`
		Location     *Location `json:"location,omitempty"`
		CreatedAt    time.Time `json:"createdAt"`
		UpdatedAt    time.Time `json:"updatedAt"`
	}
)

// Complete reports whether both coordinates were supplied. A partial location is ignored.
func (l *LocationRequest) Complete() bool {
	return l != nil && l.Latitude != nil && l.Longitude != nil
}

func (r *CreateRestaurantRequest) Trim() {
	r.Name = strings.TrimSpace(r.Name)
	r.ContactNo = strings.TrimSpace(r.ContactNo)
	r.Address = strings.TrimSpace(r.Address)
	r.MenuSummary = strings.TrimSpace(r.MenuSummary)
}

func (r *UpdateRestaurantRequest) Trim() {
	for _, field := range []*string{r.Name, r.ContactNo, r.Address, r.MenuSummary} {
		if field != nil {
			*field = strings.TrimSpace(*field)
		}
	}
}
