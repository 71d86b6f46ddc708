// File: /repositories/suggestion_repository.go
package repositories

import (
	"gorm.io/gorm"
	"travelmap-api/models"
)

// SuggestionRepository implements the read queries behind the suggestion
// engine. Popularity ranking is computed as an aggregate query on every
// call; it is never cached in-process.
type SuggestionRepository struct {
	db *gorm.DB
}

func NewSuggestionRepository(db *gorm.DB) *SuggestionRepository {
	return &SuggestionRepository{db: db}
}

// FavoritesOf returns the user's favorites, newest first, with place and
// country preloaded.
func (r *SuggestionRepository) FavoritesOf(userID string) ([]models.Favorite, error) {
	var favorites []models.Favorite
	err := r.db.Preload("Place").Preload("Place.Country").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favorites).Error
	if err != nil {
		return nil, err
	}
	return favorites, nil
}

// VisitedPlaceIDs returns the distinct place IDs the user has trips to.
func (r *SuggestionRepository) VisitedPlaceIDs(userID string) ([]string, error) {
	var ids []string
	err := r.db.Model(&models.Trip{}).
		Where("user_id = ?", userID).
		Distinct().
		Pluck("place_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// PlacesByCountry returns up to limit places in the given country, skipping
// the excluded place IDs.
func (r *SuggestionRepository) PlacesByCountry(countryCode string, excludePlaceIDs []string, limit int) ([]models.Place, error) {
	query := r.db.Preload("Country").Where("country_code = ?", countryCode)
	if len(excludePlaceIDs) > 0 {
		query = query.Where("id NOT IN ?", excludePlaceIDs)
	}

	var places []models.Place
	if err := query.Limit(limit).Find(&places).Error; err != nil {
		return nil, err
	}
	return places, nil
}

// PlacesByCountries returns up to limit places whose country is in the given
// set but not excludeCountry, skipping the excluded place IDs.
func (r *SuggestionRepository) PlacesByCountries(countryCodes []string, excludeCountry string, excludePlaceIDs []string, limit int) ([]models.Place, error) {
	if len(countryCodes) == 0 {
		return nil, nil
	}

	query := r.db.Preload("Country").
		Where("country_code IN ?", countryCodes).
		Where("country_code <> ?", excludeCountry)
	if len(excludePlaceIDs) > 0 {
		query = query.Where("id NOT IN ?", excludePlaceIDs)
	}

	var places []models.Place
	if err := query.Limit(limit).Find(&places).Error; err != nil {
		return nil, err
	}
	return places, nil
}

// TopPlacesByTripCount ranks places by total trip count, most visited first.
// Places with no trips rank last, so a small catalog still yields results.
func (r *SuggestionRepository) TopPlacesByTripCount(limit int) ([]models.Place, error) {
	var places []models.Place
	err := r.db.Preload("Country").
		Select("places.*").
		Joins("LEFT JOIN trips ON trips.place_id = places.id").
		Group("places.id").
		Order("COUNT(trips.id) DESC").
		Limit(limit).
		Find(&places).Error
	if err != nil {
		return nil, err
	}
	return places, nil
}
