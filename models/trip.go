// File: /models/trip.go
package models

import (
	"time"
)

// Trip records a visit of a place by a user. A user may log several trips
// to the same place; the existence of any trip is what marks the place as
// visited.
type Trip struct {
	ID        string     `json:"id" gorm:"primaryKey;size:191"`
	UserID    string     `json:"user_id" gorm:"not null;size:191;index"`
	PlaceID   string     `json:"place_id" gorm:"not null;size:191;index"`
	StartDate time.Time  `json:"start_date" gorm:"not null"`
	EndDate   *time.Time `json:"end_date"`
	Rating    *int       `json:"rating"` // 1-5, optional
	Comment   string     `json:"comment" gorm:"type:text"`
	CreatedAt time.Time  `json:"created_at"`

	User  User        `json:"user" gorm:"foreignKey:UserID"`
	Place Place       `json:"place" gorm:"foreignKey:PlaceID"`
	Media []TripMedia `json:"media,omitempty" gorm:"foreignKey:TripID"`
}
