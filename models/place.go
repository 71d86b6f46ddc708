// File: /models/place.go
package models

import (
	"time"
)

type Place struct {
	ID          string    `json:"id" gorm:"primaryKey;size:191"`
	CityName    string    `json:"city_name" gorm:"not null;size:200;uniqueIndex:uk_places_city_country"`
	CountryCode string    `json:"country_code" gorm:"not null;size:3;uniqueIndex:uk_places_city_country"`
	GeonameID   *int      `json:"geoname_id" gorm:"uniqueIndex"`
	Latitude    float64   `json:"latitude" gorm:"not null;type:decimal(9,6)"`
	Longitude   float64   `json:"longitude" gorm:"not null;type:decimal(9,6)"`
	CreatedAt   time.Time `json:"created_at"`

	// Relationships
	Country    Country    `json:"country" gorm:"foreignKey:CountryCode"`
	Trips      []Trip     `json:"trips,omitempty" gorm:"foreignKey:PlaceID"`
	Favorites  []Favorite `json:"favorites,omitempty" gorm:"foreignKey:PlaceID"`
	Activities []Activity `json:"activities,omitempty" gorm:"foreignKey:PlaceID"`

	// Computed, not stored
	AverageRating *float64 `json:"average_rating,omitempty" gorm:"-"`
	TripCount     int64    `json:"trip_count,omitempty" gorm:"-"`
}
