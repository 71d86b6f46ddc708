// File: /controllers/activity_controller.go
package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"net/http"
	"strconv"
	"travelmap-api/models"
	"travelmap-api/repositories"
	"travelmap-api/services"
	"travelmap-api/utils"
)

type ActivityController struct {
	db            *gorm.DB
	accessService *services.AccessService
	activityRepo  *repositories.ActivityRepository
}

func NewActivityController(db *gorm.DB, accessService *services.AccessService, activityRepo *repositories.ActivityRepository) *ActivityController {
	return &ActivityController{
		db:            db,
		accessService: accessService,
		activityRepo:  activityRepo,
	}
}

type CreateActivityRequest struct {
	Title           string   `json:"title" binding:"required,max=200"`
	Description     string   `json:"description"`
	PlaceID         string   `json:"place_id" binding:"required"`
	EstimatedPrice  *float64 `json:"estimated_price"`
	MinimumAge      *int     `json:"minimum_age"`
	Category        string   `json:"category"`
	Address         string   `json:"address"`
	PublicTransport bool     `json:"public_transport"`
	BookingRequired bool     `json:"booking_required"`
}

type UpdateActivityRequest struct {
	Title           *string  `json:"title"`
	Description     *string  `json:"description"`
	EstimatedPrice  *float64 `json:"estimated_price"`
	MinimumAge      *int     `json:"minimum_age"`
	Category        *string  `json:"category"`
	Address         *string  `json:"address"`
	PublicTransport *bool    `json:"public_transport"`
	BookingRequired *bool    `json:"booking_required"`
}

// GetActivities lists activities, optionally filtered by place or category.
func (ac *ActivityController) GetActivities(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	query := ac.db.Model(&models.Activity{}).Preload("Place").Preload("Place.Country")

	if placeID := c.Query("place_id"); placeID != "" {
		query = query.Where("place_id = ?", placeID)
	}
	if category := c.Query("category"); category != "" {
		if !models.IsValidCategory(category) {
			utils.SendValidationError(c, "unknown activity category")
			return
		}
		query = query.Where("category = ?", category)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch activities")
		return
	}

	var activities []models.Activity
	err := query.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&activities).Error
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch activities")
		return
	}

	for i := range activities {
		avg, count, err := ac.activityRepo.RatingStats(activities[i].ID)
		if err == nil {
			activities[i].AverageRating = avg
			activities[i].RatingCount = count
		}
	}

	utils.SendPaginated(c, activities, page, limit, total)
}

// GetActivity returns an activity with rating aggregates and, for the
// caller, whether they may rate it. Anonymous callers always get
// can_rate = false.
func (ac *ActivityController) GetActivity(c *gin.Context) {
	activityID := c.Param("id")

	var activity models.Activity
	err := ac.db.Preload("Place").Preload("Place.Country").Preload("Creator").
		Preload("Ratings").Preload("Ratings.User").
		Preload("Media", "confirmed = ?", true).
		Where("id = ?", activityID).
		First(&activity).Error
	if err != nil {
		utils.SendError(c, http.StatusNotFound, "Activity not found")
		return
	}

	avg, count, err := ac.activityRepo.RatingStats(activityID)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch rating stats")
		return
	}
	activity.AverageRating = avg
	activity.RatingCount = count

	userID := c.GetString("user_id")
	canRate, _, err := ac.accessService.CanRateActivity(userID, &activity)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to check rating eligibility")
		return
	}
	activity.CanRate = canRate

	// Strip private fields from nested users
	activity.Creator.Email = ""
	activity.Creator.EmailVerified = false
	for i := range activity.Ratings {
		activity.Ratings[i].User.Email = ""
		activity.Ratings[i].User.EmailVerified = false
	}

	c.JSON(http.StatusOK, activity)
}

// CreateActivity creates an activity at a place the user has visited.
// Users without a trip to the place get 403.
func (ac *ActivityController) CreateActivity(c *gin.Context) {
	userID := c.GetString("user_id")

	var req CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	category := req.Category
	if category == "" {
		category = models.ActivityOther
	}
	if !models.IsValidCategory(category) {
		utils.SendValidationError(c, "unknown activity category")
		return
	}
	if req.EstimatedPrice != nil && *req.EstimatedPrice < 0 {
		utils.SendValidationError(c, "estimated_price must not be negative")
		return
	}
	if req.MinimumAge != nil && (*req.MinimumAge < 0 || *req.MinimumAge > 120) {
		utils.SendValidationError(c, "minimum_age out of range")
		return
	}

	var place models.Place
	if err := ac.db.Preload("Country").Where("id = ?", req.PlaceID).First(&place).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Place not found")
		return
	}

	allowed, err := ac.accessService.CanCreateActivity(userID, req.PlaceID)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to check eligibility")
		return
	}
	if !allowed {
		utils.SendError(c, http.StatusForbidden, "You must have a trip to this place to suggest activities")
		return
	}

	activity := models.Activity{
		ID:              uuid.New().String(),
		Title:           req.Title,
		Description:     req.Description,
		PlaceID:         req.PlaceID,
		CreatorID:       userID,
		EstimatedPrice:  req.EstimatedPrice,
		MinimumAge:      req.MinimumAge,
		Category:        category,
		Address:         req.Address,
		PublicTransport: req.PublicTransport,
		BookingRequired: req.BookingRequired,
	}

	if err := ac.db.Create(&activity).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to create activity")
		return
	}

	activity.Place = place
	utils.SendCreated(c, "Activity created", activity)
}

// UpdateActivity updates an activity the user created.
func (ac *ActivityController) UpdateActivity(c *gin.Context) {
	userID := c.GetString("user_id")
	activityID := c.Param("id")

	var activity models.Activity
	if err := ac.db.Where("id = ?", activityID).First(&activity).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Activity not found")
		return
	}
	if activity.CreatorID != userID {
		utils.SendError(c, http.StatusForbidden, "Only the creator can update this activity")
		return
	}

	var req UpdateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.EstimatedPrice != nil {
		if *req.EstimatedPrice < 0 {
			utils.SendValidationError(c, "estimated_price must not be negative")
			return
		}
		updates["estimated_price"] = *req.EstimatedPrice
	}
	if req.MinimumAge != nil {
		updates["minimum_age"] = *req.MinimumAge
	}
	if req.Category != nil {
		if !models.IsValidCategory(*req.Category) {
			utils.SendValidationError(c, "unknown activity category")
			return
		}
		updates["category"] = *req.Category
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.PublicTransport != nil {
		updates["public_transport"] = *req.PublicTransport
	}
	if req.BookingRequired != nil {
		updates["booking_required"] = *req.BookingRequired
	}

	if len(updates) > 0 {
		if err := ac.db.Model(&activity).Updates(updates).Error; err != nil {
			utils.SendError(c, http.StatusInternalServerError, "Failed to update activity")
			return
		}
	}

	ac.db.Preload("Place").Preload("Place.Country").Where("id = ?", activityID).First(&activity)
	utils.SendSuccess(c, "Activity updated", activity)
}

// DeleteActivity removes an activity the user created, along with its
// ratings and media rows.
func (ac *ActivityController) DeleteActivity(c *gin.Context) {
	userID := c.GetString("user_id")
	activityID := c.Param("id")

	var activity models.Activity
	if err := ac.db.Where("id = ?", activityID).First(&activity).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Activity not found")
		return
	}
	if activity.CreatorID != userID {
		utils.SendError(c, http.StatusForbidden, "Only the creator can delete this activity")
		return
	}

	err := ac.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("activity_id = ?", activityID).Delete(&models.ActivityRating{}).Error; err != nil {
			return err
		}
		if err := tx.Where("activity_id = ?", activityID).Delete(&models.ActivityMedia{}).Error; err != nil {
			return err
		}
		return tx.Delete(&activity).Error
	})
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to delete activity")
		return
	}

	utils.SendSuccess(c, "Activity deleted", nil)
}
