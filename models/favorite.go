// File: /models/favorite.go
package models

import (
	"time"
)

// Favorite marks a place of interest for a user, independent of having
// visited it. (user_id, place_id) is unique; re-adding is a no-op.
type Favorite struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"not null;size:191"`
	PlaceID   string    `json:"place_id" gorm:"not null;size:191"`
	CreatedAt time.Time `json:"created_at"`

	User  User  `json:"user" gorm:"foreignKey:UserID"`
	Place Place `json:"place" gorm:"foreignKey:PlaceID"`
}
