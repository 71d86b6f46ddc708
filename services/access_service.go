// File: /services/access_service.go
package services

import (
	"travelmap-api/models"
)

// Rating rejection reasons, surfaced to clients as diagnostics.
const (
	ReasonNotAuthenticated = "authentication required"
	ReasonOwnActivity      = "you cannot rate your own activity"
	ReasonNoTrip           = "you must have a trip to this place"
	ReasonAlreadyRated     = "you have already rated this activity"
)

// AccessStore is the read contract the eligibility checks need from the
// database layer.
type AccessStore interface {
	HasTrip(userID, placeID string) (bool, error)
	HasRating(activityID, userID string) (bool, error)
}

// AccessService decides whether a user may create an activity at a place or
// rate an existing activity. Both the can_* response flags and the write
// handlers go through this service, so check and enforcement cannot drift
// apart. Eligibility is always re-derived from current trip/rating rows,
// never cached.
type AccessService struct {
	store AccessStore
}

func NewAccessService(store AccessStore) *AccessService {
	return &AccessService{store: store}
}

// CanCreateActivity reports whether the user has at least one trip to the
// place. Nothing else matters: repeat trips, dates and ratings are ignored.
func (as *AccessService) CanCreateActivity(userID, placeID string) (bool, error) {
	if userID == "" {
		return false, nil
	}
	return as.store.HasTrip(userID, placeID)
}

// CanRateActivity reports whether the user may rate the activity, with a
// reason when not. Conditions are checked in order and short-circuit:
// authenticated, not the creator, has a trip to the activity's place, has
// not already rated it.
func (as *AccessService) CanRateActivity(userID string, activity *models.Activity) (bool, string, error) {
	if userID == "" {
		return false, ReasonNotAuthenticated, nil
	}

	if activity.CreatorID == userID {
		return false, ReasonOwnActivity, nil
	}

	hasTrip, err := as.store.HasTrip(userID, activity.PlaceID)
	if err != nil {
		return false, "", err
	}
	if !hasTrip {
		return false, ReasonNoTrip, nil
	}

	hasRating, err := as.store.HasRating(activity.ID, userID)
	if err != nil {
		return false, "", err
	}
	if hasRating {
		return false, ReasonAlreadyRated, nil
	}

	return true, "", nil
}
