// File: /services/suggestion_service_test.go
package services

import (
	"sort"
	"strings"
	"testing"
	"time"

	"travelmap-api/models"
)

// fakeSuggestionStore is an in-memory stand-in for the gorm-backed store.
type fakeSuggestionStore struct {
	places    []models.Place            // insertion order is the query order
	favorites map[string][]models.Favorite
	trips     map[string][]string // userID -> place IDs (with repeats)
}

func newFakeSuggestionStore() *fakeSuggestionStore {
	return &fakeSuggestionStore{
		favorites: make(map[string][]models.Favorite),
		trips:     make(map[string][]string),
	}
}

func (f *fakeSuggestionStore) addPlace(id, city, countryCode, countryName string) models.Place {
	p := models.Place{
		ID:       id,
		CityName: city,
		Country:  models.Country{Code: countryCode, Name: countryName},
	}
	p.CountryCode = countryCode
	f.places = append(f.places, p)
	return p
}

func (f *fakeSuggestionStore) addFavorite(userID, placeID string) {
	for _, p := range f.places {
		if p.ID == placeID {
			f.favorites[userID] = append(f.favorites[userID], models.Favorite{
				UserID:    userID,
				PlaceID:   placeID,
				Place:     p,
				CreatedAt: time.Now(),
			})
			return
		}
	}
	panic("addFavorite: unknown place " + placeID)
}

func (f *fakeSuggestionStore) addTrip(userID, placeID string) {
	f.trips[userID] = append(f.trips[userID], placeID)
}

func (f *fakeSuggestionStore) FavoritesOf(userID string) ([]models.Favorite, error) {
	return f.favorites[userID], nil
}

func (f *fakeSuggestionStore) VisitedPlaceIDs(userID string) ([]string, error) {
	seen := make(map[string]bool)
	var ids []string
	for _, id := range f.trips[userID] {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (f *fakeSuggestionStore) PlacesByCountry(countryCode string, excludePlaceIDs []string, limit int) ([]models.Place, error) {
	excluded := toSet(excludePlaceIDs)
	var out []models.Place
	for _, p := range f.places {
		if len(out) >= limit {
			break
		}
		if p.CountryCode == countryCode && !excluded[p.ID] {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeSuggestionStore) PlacesByCountries(countryCodes []string, excludeCountry string, excludePlaceIDs []string, limit int) ([]models.Place, error) {
	inSet := toSet(countryCodes)
	excluded := toSet(excludePlaceIDs)
	var out []models.Place
	for _, p := range f.places {
		if len(out) >= limit {
			break
		}
		if inSet[p.CountryCode] && p.CountryCode != excludeCountry && !excluded[p.ID] {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeSuggestionStore) TopPlacesByTripCount(limit int) ([]models.Place, error) {
	counts := make(map[string]int)
	for _, ids := range f.trips {
		for _, id := range ids {
			counts[id]++
		}
	}
	ranked := make([]models.Place, len(f.places))
	copy(ranked, f.places)
	sort.SliceStable(ranked, func(i, j int) bool {
		return counts[ranked[i].ID] > counts[ranked[j].ID]
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}

func toSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

func suggestionIDs(places []models.Place) map[string]bool {
	ids := make(map[string]bool, len(places))
	for _, p := range places {
		ids[p.ID] = true
	}
	return ids
}

func TestSuggestNoFavoritesFallsBackToPopularity(t *testing.T) {
	store := newFakeSuggestionStore()
	store.addPlace("p1", "Paris", "FRA", "France")
	store.addPlace("p2", "Lyon", "FRA", "France")
	store.addPlace("p3", "Tokyo", "JPN", "Japan")

	// p3 is the most visited, then p1
	store.addTrip("other1", "p3")
	store.addTrip("other2", "p3")
	store.addTrip("other1", "p1")

	svc := NewSuggestionService(store)
	places, message, err := svc.Suggest("user")
	if err != nil {
		t.Fatalf("Suggest returned error: %v", err)
	}

	if len(places) != 3 {
		t.Fatalf("expected 3 suggestions, got %d", len(places))
	}
	if places[0].ID != "p3" {
		t.Errorf("expected most-visited place first, got %s", places[0].ID)
	}
	if message != "Discover popular destinations for your next trip" {
		t.Errorf("unexpected message: %q", message)
	}
}

func TestSuggestNeverReturnsVisitedPlaces(t *testing.T) {
	store := newFakeSuggestionStore()
	store.addPlace("p1", "Paris", "FRA", "France")
	store.addPlace("p2", "Lyon", "FRA", "France")
	store.addPlace("p3", "Nice", "FRA", "France")
	store.addPlace("p4", "Rome", "ITA", "Italy")
	store.addPlace("p5", "Milan", "ITA", "Italy")

	store.addFavorite("user", "p1")
	store.addTrip("user", "p2")
	store.addTrip("user", "p4")
	for _, id := range []string{"p1", "p2", "p3", "p4", "p5"} {
		store.addTrip("crowd", id)
	}

	svc := NewSuggestionService(store)
	places, _, err := svc.Suggest("user")
	if err != nil {
		t.Fatalf("Suggest returned error: %v", err)
	}

	ids := suggestionIDs(places)
	if ids["p2"] || ids["p4"] {
		t.Errorf("visited places suggested: %v", ids)
	}
}

func TestSuggestBoundedAndUnique(t *testing.T) {
	store := newFakeSuggestionStore()
	// Enough candidates in one country and continent to overflow the cap.
	cities := []string{"Paris", "Lyon", "Nice", "Lille", "Nantes"}
	for i, c := range cities {
		store.addPlace("fr"+string(rune('1'+i)), c, "FRA", "France")
	}
	store.addPlace("it1", "Rome", "ITA", "Italy")
	store.addPlace("it2", "Milan", "ITA", "Italy")
	store.addPlace("de1", "Berlin", "DEU", "Germany")
	store.addPlace("es1", "Madrid", "ESP", "Spain")

	// Two favorites in the same country produce overlapping stage-1 sets.
	store.addFavorite("user", "fr1")
	store.addFavorite("user", "fr2")

	svc := NewSuggestionService(store)
	places, _, err := svc.Suggest("user")
	if err != nil {
		t.Fatalf("Suggest returned error: %v", err)
	}

	if len(places) > MaxSuggestions {
		t.Fatalf("expected at most %d suggestions, got %d", MaxSuggestions, len(places))
	}
	seen := make(map[string]bool)
	for _, p := range places {
		if seen[p.ID] {
			t.Errorf("duplicate suggestion %s", p.ID)
		}
		seen[p.ID] = true
	}
}

func TestSuggestSameCountryStage(t *testing.T) {
	// One favorite in France; 5 other French places of which 2 are visited.
	// Stage 1 must surface the remaining 3.
	store := newFakeSuggestionStore()
	store.addPlace("fav", "Paris", "FRA", "France")
	store.addPlace("v1", "Lyon", "FRA", "France")
	store.addPlace("v2", "Nice", "FRA", "France")
	store.addPlace("u1", "Lille", "FRA", "France")
	store.addPlace("u2", "Nantes", "FRA", "France")
	store.addPlace("u3", "Toulouse", "FRA", "France")

	store.addFavorite("user", "fav")
	store.addTrip("user", "v1")
	store.addTrip("user", "v2")

	svc := NewSuggestionService(store)
	places, message, err := svc.Suggest("user")
	if err != nil {
		t.Fatalf("Suggest returned error: %v", err)
	}

	ids := suggestionIDs(places)
	for _, want := range []string{"u1", "u2", "u3"} {
		if !ids[want] {
			t.Errorf("expected unvisited place %s in suggestions, got %v", want, ids)
		}
	}
	if ids["v1"] || ids["v2"] {
		t.Errorf("visited places suggested: %v", ids)
	}
	if message != "Based on your favorites in France" {
		t.Errorf("unexpected message: %q", message)
	}
}

func TestSuggestSkipsPopularityWhenAffinityFills(t *testing.T) {
	store := newFakeSuggestionStore()
	for i := 0; i < 4; i++ {
		store.addPlace("fr"+string(rune('1'+i)), "City"+string(rune('A'+i)), "FRA", "France")
	}
	store.addPlace("it1", "Rome", "ITA", "Italy")
	store.addPlace("it2", "Milan", "ITA", "Italy")
	store.addPlace("it3", "Turin", "ITA", "Italy")
	// A wildly popular place outside Europe that only stage 3 could add.
	store.addPlace("jp1", "Tokyo", "JPN", "Japan")
	for i := 0; i < 20; i++ {
		store.addTrip("crowd"+string(rune('a'+i)), "jp1")
	}

	// Two favorites: 3 same-country + 2+2 same-continent candidates fill 6.
	store.addFavorite("user", "fr1")
	store.addFavorite("user", "it1")

	svc := NewSuggestionService(store)
	places, _, err := svc.Suggest("user")
	if err != nil {
		t.Fatalf("Suggest returned error: %v", err)
	}

	if len(places) < MaxSuggestions {
		t.Fatalf("expected affinity stages to fill %d slots, got %d", MaxSuggestions, len(places))
	}
	if suggestionIDs(places)["jp1"] {
		t.Error("popularity fallback ran although affinity stages filled the quota")
	}
}

func TestSuggestTwoCountryMessage(t *testing.T) {
	store := newFakeSuggestionStore()
	store.addPlace("p1", "Paris", "FRA", "France")
	store.addPlace("p2", "Tokyo", "JPN", "Japan")

	store.addFavorite("user", "p1")
	store.addFavorite("user", "p2")

	svc := NewSuggestionService(store)
	_, message, err := svc.Suggest("user")
	if err != nil {
		t.Fatalf("Suggest returned error: %v", err)
	}

	if !strings.Contains(message, "France") || !strings.Contains(message, "Japan") {
		t.Errorf("expected both countries in message, got %q", message)
	}
}

func TestSuggestEverythingVisited(t *testing.T) {
	store := newFakeSuggestionStore()
	store.addPlace("p1", "Paris", "FRA", "France")
	store.addPlace("p2", "Lyon", "FRA", "France")

	store.addFavorite("user", "p1")
	store.addTrip("user", "p1")
	store.addTrip("user", "p2")

	svc := NewSuggestionService(store)
	places, message, err := svc.Suggest("user")
	if err != nil {
		t.Fatalf("Suggest returned error: %v", err)
	}

	if len(places) != 0 {
		t.Errorf("expected no suggestions for a user who visited everything, got %d", len(places))
	}
	if message == "" {
		t.Error("expected a message even with an empty candidate list")
	}
}
