package entities

import (
	"time"

	"gorm.io/datatypes"
)

const (
	DefaultCaffeineLevel = "None"

	RestaurantMenuCollection = "restaurantmenus"
)

type AddOnItem struct {
	Name  string  `json:"name" bson:"name"`
	Price float64 `json:"price" bson:"price"`
}

type AddOnCategory struct {
	CategoryName string      `json:"categoryName" bson:"categoryName"`
	MinQuantity  int         `json:"minQuantity" bson:"minQuantity"`
	MaxQuantity  int         `json:"maxQuantity" bson:"maxQuantity"`
	Items        []AddOnItem `json:"items" bson:"items"`
}

type ItemCustomisation struct {
	Categories []AddOnCategory `json:"categories" bson:"categories"`
}

type MenuItem struct {
	ID                int               `json:"id" bson:"id"`
	Name              string            `json:"name" bson:"name"`
	Description       string            `json:"description" bson:"description"`
	Category          string            `json:"category" bson:"category"`
	Price             float64           `json:"price" bson:"price"`
	Image             string            `json:"image" bson:"image"`
	SpicinessLevel    float64           `json:"spicinessLevel" bson:"spicinessLevel"`
	SweetnessLevel    float64           `json:"sweetnessLevel" bson:"sweetnessLevel"`
	DietaryPreference []string          `json:"dietaryPreference" bson:"dietaryPreference"`
	HealthinessScore  float64           `json:"healthinessScore" bson:"healthinessScore"`
	CaffeineLevel     string            `json:"caffeineLevel" bson:"caffeineLevel"`
	SufficientFor     float64           `json:"sufficientFor" bson:"sufficientFor"`
	Available         bool              `json:"available" bson:"available"`
	Customisation     ItemCustomisation `json:"customisation" bson:"customisation"`
}

// RestaurantMenu holds every item of one restaurant. There is at most one per RestaurantID.
type RestaurantMenu struct {
	ID             string                        `gorm:"type:varchar(36);primary_key" json:"-" bson:"-"`
	RestaurantID   string                        `gorm:"type:varchar(36);uniqueIndex;not null" json:"restaurantId" bson:"restaurantId"`
	RestaurantName string                        `gorm:"not null" json:"restaurantName" bson:"restaurantName"`
	Items          datatypes.JSONSlice[MenuItem] `json:"items" bson:"items"`
	LastUpdated    time.Time                     `json:"lastUpdated" bson:"lastUpdated"`

	Timestamp `bson:",inline"`
}
