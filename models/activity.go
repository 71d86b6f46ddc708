// File: /models/activity.go
package models

import (
	"time"
)

// Activity categories
const (
	ActivityCulture       = "culture"
	ActivityNature        = "nature"
	ActivityFood          = "food"
	ActivityFastFood      = "fast_food"
	ActivitySport         = "sport"
	ActivityEntertainment = "entertainment"
	ActivityShopping      = "shopping"
	ActivityWellness      = "wellness"
	ActivityOther         = "other"
)

// ActivityCategories lists the accepted category values.
var ActivityCategories = []string{
	ActivityCulture,
	ActivityNature,
	ActivityFood,
	ActivityFastFood,
	ActivitySport,
	ActivityEntertainment,
	ActivityShopping,
	ActivityWellness,
	ActivityOther,
}

// Activity is a user-contributed point of interest tied to a place. Only
// users holding at least one trip to the place may create one.
type Activity struct {
	ID              string    `json:"id" gorm:"primaryKey;size:191"`
	Title           string    `json:"title" gorm:"not null;size:200"`
	Description     string    `json:"description" gorm:"type:text"`
	PlaceID         string    `json:"place_id" gorm:"not null;size:191;index"`
	CreatorID       string    `json:"creator_id" gorm:"not null;size:191;index"`
	EstimatedPrice  *float64  `json:"estimated_price" gorm:"type:decimal(8,2)"`
	MinimumAge      *int      `json:"minimum_age"`
	Category        string    `json:"category" gorm:"not null;size:20;default:'other'"`
	Address         string    `json:"address" gorm:"size:500"`
	PublicTransport bool      `json:"public_transport" gorm:"default:false"`
	BookingRequired bool      `json:"booking_required" gorm:"default:false"`
	CreatedAt       time.Time `json:"created_at"`

	Place   Place            `json:"place" gorm:"foreignKey:PlaceID"`
	Creator User             `json:"creator" gorm:"foreignKey:CreatorID"`
	Ratings []ActivityRating `json:"ratings,omitempty" gorm:"foreignKey:ActivityID"`
	Media   []ActivityMedia  `json:"media,omitempty" gorm:"foreignKey:ActivityID"`

	// Computed, not stored
	AverageRating *float64 `json:"average_rating,omitempty" gorm:"-"`
	RatingCount   int64    `json:"rating_count" gorm:"-"`
	CanRate       bool     `json:"can_rate" gorm:"-"`
}

// IsValidCategory reports whether the given category value is accepted.
func IsValidCategory(category string) bool {
	for _, c := range ActivityCategories {
		if c == category {
			return true
		}
	}
	return false
}

// ActivityRating is a 1-5 rating given by a user to an activity.
// (activity_id, user_id) is unique; a second attempt is rejected.
type ActivityRating struct {
	ID         string    `json:"id" gorm:"primaryKey;size:191"`
	ActivityID string    `json:"activity_id" gorm:"not null;size:191;index"`
	UserID     string    `json:"user_id" gorm:"not null;size:191;index"`
	Rating     int       `json:"rating" gorm:"not null"` // 1-5
	Comment    string    `json:"comment" gorm:"type:text"`
	CreatedAt  time.Time `json:"created_at"`

	Activity Activity `json:"activity" gorm:"foreignKey:ActivityID"`
	User     User     `json:"user" gorm:"foreignKey:UserID"`
}
