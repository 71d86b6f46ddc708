// File: /controllers/place_controller.go
package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"net/http"
	"strconv"
	"travelmap-api/models"
	"travelmap-api/utils"
)

type PlaceController struct {
	db *gorm.DB
}

func NewPlaceController(db *gorm.DB) *PlaceController {
	return &PlaceController{db: db}
}

type CreatePlaceRequest struct {
	CityName    string  `json:"city_name" binding:"required,max=200"`
	CountryCode string  `json:"country_code" binding:"required"`
	GeonameID   *int    `json:"geoname_id"`
	Latitude    float64 `json:"latitude" binding:"required"`
	Longitude   float64 `json:"longitude" binding:"required"`
}

// GetPlaces returns places, paginated, optionally filtered by country.
func (pc *PlaceController) GetPlaces(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	query := pc.db.Model(&models.Place{}).Preload("Country")

	if country := c.Query("country"); country != "" {
		query = query.Where("country_code = ?", country)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch places")
		return
	}

	var places []models.Place
	err := query.Order("city_name ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&places).Error
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch places")
		return
	}

	utils.SendPaginated(c, places, page, limit, total)
}

// CreatePlace registers a new place. (city, country) is unique, so creating
// an existing city returns the stored row instead of failing.
func (pc *PlaceController) CreatePlace(c *gin.Context) {
	var req CreatePlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	if !utils.IsValidCountryCode(req.CountryCode) {
		utils.SendValidationError(c, "country_code must be an ISO 3166-1 alpha-3 code")
		return
	}
	if !utils.IsValidLatitude(req.Latitude) || !utils.IsValidLongitude(req.Longitude) {
		utils.SendValidationError(c, "coordinates out of range")
		return
	}

	var country models.Country
	if err := pc.db.Where("code = ?", req.CountryCode).First(&country).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Country not found")
		return
	}

	var place models.Place
	err := pc.db.Where("city_name = ? AND country_code = ?", req.CityName, req.CountryCode).
		Attrs(models.Place{
			ID:        uuid.New().String(),
			GeonameID: req.GeonameID,
			Latitude:  req.Latitude,
			Longitude: req.Longitude,
		}).
		FirstOrCreate(&place).Error
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to create place")
		return
	}

	place.Country = country
	utils.SendCreated(c, "Place registered", place)
}

// GetPlaceDetail returns a place with its country, aggregate trip stats and,
// for authenticated callers, whether the place is among their favorites.
func (pc *PlaceController) GetPlaceDetail(c *gin.Context) {
	placeID := c.Param("id")

	var place models.Place
	if err := pc.db.Preload("Country").Where("id = ?", placeID).First(&place).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Place not found")
		return
	}

	// Aggregate trip stats
	var tripCount int64
	pc.db.Model(&models.Trip{}).Where("place_id = ?", placeID).Count(&tripCount)
	place.TripCount = tripCount

	var ratedCount int64
	pc.db.Model(&models.Trip{}).Where("place_id = ? AND rating IS NOT NULL", placeID).Count(&ratedCount)
	if ratedCount > 0 {
		var avg float64
		pc.db.Model(&models.Trip{}).
			Where("place_id = ? AND rating IS NOT NULL", placeID).
			Select("AVG(rating)").
			Scan(&avg)
		place.AverageRating = &avg
	}

	var activityCount int64
	pc.db.Model(&models.Activity{}).Where("place_id = ?", placeID).Count(&activityCount)

	// is_favorite only means something for authenticated callers
	isFavorite := false
	if userID := c.GetString("user_id"); userID != "" {
		var favCount int64
		pc.db.Model(&models.Favorite{}).
			Where("user_id = ? AND place_id = ?", userID, placeID).
			Count(&favCount)
		isFavorite = favCount > 0
	}

	c.JSON(http.StatusOK, gin.H{
		"place":          place,
		"is_favorite":    isFavorite,
		"activity_count": activityCount,
	})
}

// GetPlaceTrips returns the trips logged at a place, newest first.
func (pc *PlaceController) GetPlaceTrips(c *gin.Context) {
	placeID := c.Param("id")

	var place models.Place
	if err := pc.db.Where("id = ?", placeID).First(&place).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Place not found")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	var total int64
	pc.db.Model(&models.Trip{}).Where("place_id = ?", placeID).Count(&total)

	var trips []models.Trip
	err := pc.db.Preload("User").
		Where("place_id = ?", placeID).
		Order("start_date DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&trips).Error
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch trips")
		return
	}

	// Strip private user fields
	for i := range trips {
		trips[i].User.Email = ""
		trips[i].User.EmailVerified = false
	}

	utils.SendPaginated(c, trips, page, limit, total)
}

// SearchPlaces searches places by city name, capped at 10 results.
func (pc *PlaceController) SearchPlaces(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		utils.SendError(c, http.StatusBadRequest, "Search query is required")
		return
	}

	var places []models.Place
	err := pc.db.Preload("Country").
		Where("city_name LIKE ?", "%"+q+"%").
		Order("city_name ASC").
		Limit(10).
		Find(&places).Error
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Search failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"places": places})
}
