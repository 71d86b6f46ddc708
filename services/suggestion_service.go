// File: /services/suggestion_service.go
package services

import (
	"fmt"

	"travelmap-api/geo"
	"travelmap-api/models"
)

const (
	// MaxSuggestions caps the number of places returned per call.
	MaxSuggestions = 6

	sameCountryLimit   = 3
	sameContinentLimit = 2
	popularPoolSize    = 10
)

// SuggestionStore is the read contract the suggestion engine needs from the
// database layer.
type SuggestionStore interface {
	// FavoritesOf returns the user's favorites, newest first, with the
	// favorited place and its country loaded.
	FavoritesOf(userID string) ([]models.Favorite, error)
	// VisitedPlaceIDs returns the distinct place IDs the user has trips to.
	VisitedPlaceIDs(userID string) ([]string, error)
	// PlacesByCountry returns up to limit places in the given country,
	// skipping the excluded place IDs.
	PlacesByCountry(countryCode string, excludePlaceIDs []string, limit int) ([]models.Place, error)
	// PlacesByCountries returns up to limit places whose country is in the
	// given set but not excludeCountry, skipping the excluded place IDs.
	PlacesByCountries(countryCodes []string, excludeCountry string, excludePlaceIDs []string, limit int) ([]models.Place, error)
	// TopPlacesByTripCount returns up to limit places ranked by total trip
	// count, most visited first. Places with no trips rank last.
	TopPlacesByTripCount(limit int) ([]models.Place, error)
}

// SuggestionService recommends destinations from the user's favorites, the
// country/continent classification and global trip popularity.
type SuggestionService struct {
	store SuggestionStore
}

func NewSuggestionService(store SuggestionStore) *SuggestionService {
	return &SuggestionService{store: store}
}

// Suggest returns up to MaxSuggestions unique places the user has never
// visited, plus a message explaining where the suggestions come from.
//
// Candidates are collected in three stages: places in the same countries as
// the user's favorites, places on the same continents, and, when those two
// stages leave the list short, globally popular places. Duplicates are
// removed keeping first occurrence, so affinity candidates always precede
// popularity candidates.
func (ss *SuggestionService) Suggest(userID string) ([]models.Place, string, error) {
	favorites, err := ss.store.FavoritesOf(userID)
	if err != nil {
		return nil, "", err
	}

	visitedIDs, err := ss.store.VisitedPlaceIDs(userID)
	if err != nil {
		return nil, "", err
	}

	var candidates []models.Place

	// Stage 1: same-country affinity. The favorited place itself is skipped
	// along with visited places; only its neighbours are worth suggesting.
	for _, fav := range favorites {
		exclude := append(append([]string{}, visitedIDs...), fav.PlaceID)
		places, err := ss.store.PlacesByCountry(fav.Place.CountryCode, exclude, sameCountryLimit)
		if err != nil {
			return nil, "", err
		}
		candidates = append(candidates, places...)
	}

	// Stage 2: same-continent affinity
	for _, fav := range favorites {
		continent := geo.ContinentOf(fav.Place.CountryCode)
		countries := geo.CountriesIn(continent)
		if len(countries) == 0 {
			continue
		}
		places, err := ss.store.PlacesByCountries(countries, fav.Place.CountryCode, visitedIDs, sameContinentLimit)
		if err != nil {
			return nil, "", err
		}
		candidates = append(candidates, places...)
	}

	suggestions := dedupePlaces(candidates)

	// Stage 3: popularity fallback, only when affinity left the list short
	if len(suggestions) < MaxSuggestions {
		popular, err := ss.store.TopPlacesByTripCount(popularPoolSize)
		if err != nil {
			return nil, "", err
		}

		seen := make(map[string]bool, len(suggestions)+len(visitedIDs))
		for _, p := range suggestions {
			seen[p.ID] = true
		}
		for _, id := range visitedIDs {
			seen[id] = true
		}

		for _, p := range popular {
			if len(suggestions) >= MaxSuggestions {
				break
			}
			if seen[p.ID] {
				continue
			}
			seen[p.ID] = true
			suggestions = append(suggestions, p)
		}
	}

	if len(suggestions) > MaxSuggestions {
		suggestions = suggestions[:MaxSuggestions]
	}

	return suggestions, suggestionMessage(favorites), nil
}

// dedupePlaces removes duplicate places keeping the first occurrence, so the
// output order stays deterministic across stage boundaries.
func dedupePlaces(places []models.Place) []models.Place {
	seen := make(map[string]bool, len(places))
	unique := make([]models.Place, 0, len(places))
	for _, p := range places {
		if seen[p.ID] {
			continue
		}
		seen[p.ID] = true
		unique = append(unique, p)
	}
	return unique
}

// suggestionMessage names the countries of the user's first one or two
// favorites, or falls back to a generic message.
func suggestionMessage(favorites []models.Favorite) string {
	if len(favorites) == 0 {
		return "Discover popular destinations for your next trip"
	}

	var countries []string
	seen := make(map[string]bool)
	for _, fav := range favorites {
		name := fav.Place.Country.Name
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		countries = append(countries, name)
		if len(countries) == 2 {
			break
		}
	}

	switch len(countries) {
	case 2:
		return fmt.Sprintf("Based on your favorites in %s and %s", countries[0], countries[1])
	case 1:
		return fmt.Sprintf("Based on your favorites in %s", countries[0])
	default:
		return "Discover popular destinations for your next trip"
	}
}
