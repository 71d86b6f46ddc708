// File: /repositories/activity_repository.go
package repositories

import (
	"gorm.io/gorm"
	"travelmap-api/models"
)

// ActivityRepository implements the reads behind the eligibility checks and
// the activity rating aggregates.
type ActivityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// HasTrip reports whether the user has at least one trip to the place.
func (r *ActivityRepository) HasTrip(userID, placeID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Trip{}).
		Where("user_id = ? AND place_id = ?", userID, placeID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// HasRating reports whether the user has already rated the activity.
func (r *ActivityRepository) HasRating(activityID, userID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.ActivityRating{}).
		Where("activity_id = ? AND user_id = ?", activityID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// RatingStats returns the average rating and rating count for an activity.
// The average is nil when the activity has no ratings yet.
func (r *ActivityRepository) RatingStats(activityID string) (*float64, int64, error) {
	var count int64
	err := r.db.Model(&models.ActivityRating{}).
		Where("activity_id = ?", activityID).
		Count(&count).Error
	if err != nil {
		return nil, 0, err
	}
	if count == 0 {
		return nil, 0, nil
	}

	var avg float64
	err = r.db.Model(&models.ActivityRating{}).
		Where("activity_id = ?", activityID).
		Select("AVG(rating)").
		Scan(&avg).Error
	if err != nil {
		return nil, 0, err
	}
	return &avg, count, nil
}
