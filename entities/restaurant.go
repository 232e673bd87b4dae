package entities

const (
	GeoPointType = "Point"

	RestaurantCollection = "restaurants"
)

// GeoPoint is a GeoJSON point. Coordinates are stored longitude first.
type GeoPoint struct {
	Type        string    `json:"type" bson:"type"`
	Coordinates []float64 `json:"coordinates" bson:"coordinates"`
}

func NewGeoPoint(latitude, longitude float64) *GeoPoint {
	return &GeoPoint{
		Type:        GeoPointType,
		Coordinates: []float64{longitude, latitude},
	}
}

type Restaurant struct {
	ID           string    `gorm:"type:varchar(36);primary_key" json:"restaurantId" bson:"restaurantId"`
	Name         string    `gorm:"not null" json:"name" bson:"name"`
	ContactNo    string    `gorm:"type:varchar(10);not null" json:"contactNo" bson:"contactNo"`
	Address      string    `gorm:"not null" json:"address" bson:"address"`
	MenuSummary  string    `gorm:"not null" json:"menuSummary" bson:"menuSummary"`
	Location     *GeoPoint `gorm:"serializer:json" json:"location,omitempty" bson:"location,omitempty"`
	IsOnline     bool      `gorm:"index;default:false" json:"isOnline" bson:"isOnline"`
	MenuUploaded bool      `gorm:"default:false" json:"menuUploaded" bson:"menuUploaded"`

	Timestamp `bson:",inline"`
}
