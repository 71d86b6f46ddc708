// File: /models/media.go
package models

import (
	"time"
)

// Media types
const (
	MediaImage = "image"
	MediaVideo = "video"
)

// TripMedia is an image or video attached to a trip. A row is created when
// an upload URL is issued and confirmed once the client finishes the upload;
// unconfirmed rows are swept by the media cleanup job.
type TripMedia struct {
	ID           string    `json:"id" gorm:"primaryKey;size:191"`
	TripID       string    `json:"trip_id" gorm:"not null;size:191;index"`
	ObjectKey    string    `json:"object_key" gorm:"not null;size:500"`
	URL          string    `json:"url" gorm:"size:500"`
	MediaType    string    `json:"media_type" gorm:"not null;size:10"`
	Title        string    `json:"title" gorm:"size:200"`
	Description  string    `json:"description" gorm:"type:text"`
	DisplayOrder int       `json:"display_order" gorm:"default:0"`
	Confirmed    bool      `json:"confirmed" gorm:"default:false"`
	CreatedAt    time.Time `json:"created_at"`

	Trip Trip `json:"trip" gorm:"foreignKey:TripID"`
}

func (TripMedia) TableName() string { return "trip_media" }

// ActivityMedia is an image or video attached to an activity.
type ActivityMedia struct {
	ID           string    `json:"id" gorm:"primaryKey;size:191"`
	ActivityID   string    `json:"activity_id" gorm:"not null;size:191;index"`
	ObjectKey    string    `json:"object_key" gorm:"not null;size:500"`
	URL          string    `json:"url" gorm:"size:500"`
	MediaType    string    `json:"media_type" gorm:"not null;size:10"`
	Title        string    `json:"title" gorm:"size:200"`
	Description  string    `json:"description" gorm:"type:text"`
	DisplayOrder int       `json:"display_order" gorm:"default:0"`
	Confirmed    bool      `json:"confirmed" gorm:"default:false"`
	CreatedAt    time.Time `json:"created_at"`

	Activity Activity `json:"activity" gorm:"foreignKey:ActivityID"`
}

func (ActivityMedia) TableName() string { return "activity_media" }
