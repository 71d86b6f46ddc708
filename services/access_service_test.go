// File: /services/access_service_test.go
package services

import (
	"testing"

	"travelmap-api/models"
)

type fakeAccessStore struct {
	trips   map[string]bool // userID|placeID
	ratings map[string]bool // activityID|userID
}

func newFakeAccessStore() *fakeAccessStore {
	return &fakeAccessStore{
		trips:   make(map[string]bool),
		ratings: make(map[string]bool),
	}
}

func (f *fakeAccessStore) addTrip(userID, placeID string) {
	f.trips[userID+"|"+placeID] = true
}

func (f *fakeAccessStore) addRating(activityID, userID string) {
	f.ratings[activityID+"|"+userID] = true
}

func (f *fakeAccessStore) HasTrip(userID, placeID string) (bool, error) {
	return f.trips[userID+"|"+placeID], nil
}

func (f *fakeAccessStore) HasRating(activityID, userID string) (bool, error) {
	return f.ratings[activityID+"|"+userID], nil
}

func TestCanCreateActivity(t *testing.T) {
	store := newFakeAccessStore()
	store.addTrip("alice", "paris")

	svc := NewAccessService(store)

	tests := []struct {
		name    string
		userID  string
		placeID string
		want    bool
	}{
		{"has trip", "alice", "paris", true},
		{"no trip to place", "alice", "tokyo", false},
		{"other users trips do not count", "bob", "paris", false},
		{"unauthenticated", "", "paris", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.CanCreateActivity(tt.userID, tt.placeID)
			if err != nil {
				t.Fatalf("CanCreateActivity returned error: %v", err)
			}
			if got != tt.want {
				t.Errorf("CanCreateActivity(%q, %q) = %v, want %v", tt.userID, tt.placeID, got, tt.want)
			}
		})
	}
}

func TestCanRateActivity(t *testing.T) {
	activity := &models.Activity{ID: "act1", PlaceID: "paris", CreatorID: "alice"}

	store := newFakeAccessStore()
	store.addTrip("alice", "paris")
	store.addTrip("bob", "paris")
	store.addTrip("carol", "paris")
	store.addRating("act1", "carol")

	svc := NewAccessService(store)

	tests := []struct {
		name       string
		userID     string
		want       bool
		wantReason string
	}{
		{"eligible visitor", "bob", true, ""},
		{"unauthenticated", "", false, ReasonNotAuthenticated},
		{"creator cannot rate own activity", "alice", false, ReasonOwnActivity},
		{"no trip to the activity place", "dave", false, ReasonNoTrip},
		{"already rated", "carol", false, ReasonAlreadyRated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, reason, err := svc.CanRateActivity(tt.userID, activity)
			if err != nil {
				t.Fatalf("CanRateActivity returned error: %v", err)
			}
			if got != tt.want || reason != tt.wantReason {
				t.Errorf("CanRateActivity(%q) = (%v, %q), want (%v, %q)", tt.userID, got, reason, tt.want, tt.wantReason)
			}
		})
	}
}

// The creator check runs before the trip check: a creator with a trip and no
// rating is still rejected for being the creator.
func TestCanRateActivityCreatorCheckedFirst(t *testing.T) {
	activity := &models.Activity{ID: "act1", PlaceID: "paris", CreatorID: "alice"}

	store := newFakeAccessStore()
	store.addTrip("alice", "paris")

	svc := NewAccessService(store)
	ok, reason, err := svc.CanRateActivity("alice", activity)
	if err != nil {
		t.Fatalf("CanRateActivity returned error: %v", err)
	}
	if ok || reason != ReasonOwnActivity {
		t.Errorf("got (%v, %q), want (false, %q)", ok, reason, ReasonOwnActivity)
	}
}

// A second rating attempt after a successful one is rejected, not merged.
func TestCanRateActivityRejectsSecondRating(t *testing.T) {
	activity := &models.Activity{ID: "act1", PlaceID: "paris", CreatorID: "alice"}

	store := newFakeAccessStore()
	store.addTrip("bob", "paris")

	svc := NewAccessService(store)

	ok, _, err := svc.CanRateActivity("bob", activity)
	if err != nil || !ok {
		t.Fatalf("first check should pass, got (%v, %v)", ok, err)
	}

	store.addRating("act1", "bob")

	ok, reason, err := svc.CanRateActivity("bob", activity)
	if err != nil {
		t.Fatalf("CanRateActivity returned error: %v", err)
	}
	if ok || reason != ReasonAlreadyRated {
		t.Errorf("got (%v, %q), want (false, %q)", ok, reason, ReasonAlreadyRated)
	}
}
