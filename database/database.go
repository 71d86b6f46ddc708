// File: /database/database.go
package database

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"travelmap-api/models"
)

func Initialize(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Info),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	// Auto migrate all models
	err := db.AutoMigrate(
		&models.User{},
		&models.Country{},
		&models.Place{},
		&models.Trip{},
		&models.Favorite{},
		&models.Activity{},
		&models.ActivityRating{},
		&models.TripMedia{},
		&models.ActivityMedia{},
	)

	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	// Add custom indexes for better performance
	if err := addCustomIndexes(db); err != nil {
		return fmt.Errorf("failed to add custom indexes: %w", err)
	}

	// Add uniqueness constraints the handlers rely on
	if err := addDatabaseConstraints(db); err != nil {
		return fmt.Errorf("failed to add database constraints: %w", err)
	}

	return nil
}

func addCustomIndexes(db *gorm.DB) error {
	// Visited-place exclusion and popularity ranking both scan trips
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_trips_user_place ON trips(user_id, place_id)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for trips: %v\n", err)
	}

	// Suggestion stage 1/2 queries filter places by country
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_places_country ON places(country_code)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for places: %v\n", err)
	}

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_favorites_user_created ON favorites(user_id, created_at DESC)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for favorites: %v\n", err)
	}

	return nil
}

func addDatabaseConstraints(db *gorm.DB) error {
	// A favorite is unique per (user, place); the add handler is a no-op on repeats
	if err := db.Exec("ALTER TABLE favorites ADD CONSTRAINT uk_favorites_user_place UNIQUE (user_id, place_id)").Error; err != nil {
		// Ignore error if constraint already exists
		fmt.Printf("Warning: Could not add unique constraint for favorites: %v\n", err)
	}

	// A user rates an activity at most once; duplicates are rejected
	if err := db.Exec("ALTER TABLE activity_ratings ADD CONSTRAINT uk_activity_ratings_activity_user UNIQUE (activity_id, user_id)").Error; err != nil {
		fmt.Printf("Warning: Could not add unique constraint for activity_ratings: %v\n", err)
	}

	if err := db.Exec("ALTER TABLE activity_ratings ADD CONSTRAINT ck_activity_ratings_range CHECK (rating BETWEEN 1 AND 5)").Error; err != nil {
		fmt.Printf("Warning: Could not add check constraint for activity_ratings: %v\n", err)
	}

	return nil
}

// SeedData can be used to populate the database with initial data for development/testing
func SeedData(db *gorm.DB) error {
	// Check if we already have countries
	var countryCount int64
	db.Model(&models.Country{}).Count(&countryCount)

	if countryCount > 0 {
		fmt.Println("Database already has data, skipping seed")
		return nil
	}

	countries := []models.Country{
		{Code: "FRA", Name: "France"},
		{Code: "ITA", Name: "Italy"},
		{Code: "ESP", Name: "Spain"},
		{Code: "JPN", Name: "Japan"},
		{Code: "THA", Name: "Thailand"},
		{Code: "USA", Name: "United States"},
		{Code: "MAR", Name: "Morocco"},
		{Code: "AUS", Name: "Australia"},
	}

	for _, country := range countries {
		if err := db.Create(&country).Error; err != nil {
			fmt.Printf("Warning: Could not create country %s: %v\n", country.Code, err)
		}
	}

	places := []models.Place{
		{ID: uuid.New().String(), CityName: "Paris", CountryCode: "FRA", Latitude: 48.8566, Longitude: 2.3522},
		{ID: uuid.New().String(), CityName: "Lyon", CountryCode: "FRA", Latitude: 45.7640, Longitude: 4.8357},
		{ID: uuid.New().String(), CityName: "Nice", CountryCode: "FRA", Latitude: 43.7102, Longitude: 7.2620},
		{ID: uuid.New().String(), CityName: "Rome", CountryCode: "ITA", Latitude: 41.9028, Longitude: 12.4964},
		{ID: uuid.New().String(), CityName: "Florence", CountryCode: "ITA", Latitude: 43.7696, Longitude: 11.2558},
		{ID: uuid.New().String(), CityName: "Barcelona", CountryCode: "ESP", Latitude: 41.3874, Longitude: 2.1686},
		{ID: uuid.New().String(), CityName: "Tokyo", CountryCode: "JPN", Latitude: 35.6762, Longitude: 139.6503},
		{ID: uuid.New().String(), CityName: "Kyoto", CountryCode: "JPN", Latitude: 35.0116, Longitude: 135.7681},
		{ID: uuid.New().String(), CityName: "Bangkok", CountryCode: "THA", Latitude: 13.7563, Longitude: 100.5018},
		{ID: uuid.New().String(), CityName: "New York", CountryCode: "USA", Latitude: 40.7128, Longitude: -74.0060},
		{ID: uuid.New().String(), CityName: "Marrakesh", CountryCode: "MAR", Latitude: 31.6295, Longitude: -7.9811},
		{ID: uuid.New().String(), CityName: "Sydney", CountryCode: "AUS", Latitude: -33.8688, Longitude: 151.2093},
	}

	for _, place := range places {
		if err := db.Create(&place).Error; err != nil {
			fmt.Printf("Warning: Could not create place %s: %v\n", place.CityName, err)
		}
	}

	fmt.Println("Database seeded with countries and places")
	return nil
}
