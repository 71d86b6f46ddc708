// File: /controllers/trip_controller.go
package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"net/http"
	"strconv"
	"time"
	"travelmap-api/models"
	"travelmap-api/utils"
)

type TripController struct {
	db *gorm.DB
}

func NewTripController(db *gorm.DB) *TripController {
	return &TripController{db: db}
}

type CreateTripRequest struct {
	PlaceID   string     `json:"place_id" binding:"required"`
	StartDate time.Time  `json:"start_date" binding:"required"`
	EndDate   *time.Time `json:"end_date"`
	Rating    *int       `json:"rating"`
	Comment   string     `json:"comment"`
}

type UpdateTripRequest struct {
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
	Rating    *int       `json:"rating"`
	Comment   *string    `json:"comment"`
}

// GetTrips returns the authenticated user's trips, newest first.
func (tc *TripController) GetTrips(c *gin.Context) {
	userID := c.GetString("user_id")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	var total int64
	tc.db.Model(&models.Trip{}).Where("user_id = ?", userID).Count(&total)

	var trips []models.Trip
	err := tc.db.Preload("Place").Preload("Place.Country").
		Preload("Media", "confirmed = ?", true).
		Where("user_id = ?", userID).
		Order("start_date DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&trips).Error
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch trips")
		return
	}

	utils.SendPaginated(c, trips, page, limit, total)
}

// CreateTrip logs a visit to a place. Several trips to the same place are
// allowed; any one of them marks the place as visited.
func (tc *TripController) CreateTrip(c *gin.Context) {
	userID := c.GetString("user_id")

	var req CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	if req.EndDate != nil && req.EndDate.Before(req.StartDate) {
		utils.SendValidationError(c, "end_date must not be before start_date")
		return
	}
	if req.Rating != nil && !utils.IsValidRating(*req.Rating) {
		utils.SendValidationError(c, "rating must be between 1 and 5")
		return
	}

	var place models.Place
	if err := tc.db.Preload("Country").Where("id = ?", req.PlaceID).First(&place).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Place not found")
		return
	}

	trip := models.Trip{
		ID:        uuid.New().String(),
		UserID:    userID,
		PlaceID:   req.PlaceID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}

	if err := tc.db.Create(&trip).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to create trip")
		return
	}

	trip.Place = place
	utils.SendCreated(c, "Trip logged", trip)
}

// GetTrip returns one of the authenticated user's trips.
func (tc *TripController) GetTrip(c *gin.Context) {
	userID := c.GetString("user_id")
	tripID := c.Param("id")

	var trip models.Trip
	err := tc.db.Preload("Place").Preload("Place.Country").
		Preload("Media", "confirmed = ?", true).
		Where("id = ? AND user_id = ?", tripID, userID).
		First(&trip).Error
	if err != nil {
		utils.SendError(c, http.StatusNotFound, "Trip not found")
		return
	}

	c.JSON(http.StatusOK, trip)
}

// GetPublicTrip returns a trip for unauthenticated viewers, with the
// traveler's public profile instead of the full user record.
func (tc *TripController) GetPublicTrip(c *gin.Context) {
	tripID := c.Param("id")

	var trip models.Trip
	err := tc.db.Preload("Place").Preload("Place.Country").Preload("User").
		Preload("Media", "confirmed = ?", true).
		Where("id = ?", tripID).
		First(&trip).Error
	if err != nil {
		utils.SendError(c, http.StatusNotFound, "Trip not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":         trip.ID,
		"place":      trip.Place,
		"user":       trip.User.PublicProfile(),
		"start_date": trip.StartDate,
		"end_date":   trip.EndDate,
		"rating":     trip.Rating,
		"comment":    trip.Comment,
		"media":      trip.Media,
		"created_at": trip.CreatedAt,
	})
}

// UpdateTrip updates a trip the authenticated user owns.
func (tc *TripController) UpdateTrip(c *gin.Context) {
	userID := c.GetString("user_id")
	tripID := c.Param("id")

	var trip models.Trip
	if err := tc.db.Where("id = ? AND user_id = ?", tripID, userID).First(&trip).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Trip not found")
		return
	}

	var req UpdateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	if req.Rating != nil && !utils.IsValidRating(*req.Rating) {
		utils.SendValidationError(c, "rating must be between 1 and 5")
		return
	}

	updates := map[string]interface{}{}
	if req.StartDate != nil {
		updates["start_date"] = *req.StartDate
	}
	if req.EndDate != nil {
		updates["end_date"] = *req.EndDate
	}
	if req.Rating != nil {
		updates["rating"] = *req.Rating
	}
	if req.Comment != nil {
		updates["comment"] = *req.Comment
	}

	start := trip.StartDate
	if req.StartDate != nil {
		start = *req.StartDate
	}
	end := trip.EndDate
	if req.EndDate != nil {
		end = req.EndDate
	}
	if end != nil && end.Before(start) {
		utils.SendValidationError(c, "end_date must not be before start_date")
		return
	}

	if len(updates) > 0 {
		if err := tc.db.Model(&trip).Updates(updates).Error; err != nil {
			utils.SendError(c, http.StatusInternalServerError, "Failed to update trip")
			return
		}
	}

	tc.db.Preload("Place").Preload("Place.Country").Where("id = ?", tripID).First(&trip)
	utils.SendSuccess(c, "Trip updated", trip)
}

// DeleteTrip removes a trip the authenticated user owns, along with its
// media rows. Eligibility derived from this trip (activities, ratings) is
// re-evaluated on the next check, not retroactively revoked.
func (tc *TripController) DeleteTrip(c *gin.Context) {
	userID := c.GetString("user_id")
	tripID := c.Param("id")

	var trip models.Trip
	if err := tc.db.Where("id = ? AND user_id = ?", tripID, userID).First(&trip).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Trip not found")
		return
	}

	err := tc.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("trip_id = ?", tripID).Delete(&models.TripMedia{}).Error; err != nil {
			return err
		}
		return tx.Delete(&trip).Error
	})
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to delete trip")
		return
	}

	utils.SendSuccess(c, "Trip deleted", nil)
}
