// File: /controllers/rating_controller.go
package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"net/http"
	"travelmap-api/models"
	"travelmap-api/services"
	"travelmap-api/utils"
)

type RatingController struct {
	db            *gorm.DB
	accessService *services.AccessService
}

func NewRatingController(db *gorm.DB, accessService *services.AccessService) *RatingController {
	return &RatingController{
		db:            db,
		accessService: accessService,
	}
}

type CreateRatingRequest struct {
	ActivityID string `json:"activity_id" binding:"required"`
	Rating     int    `json:"rating" binding:"required"`
	Comment    string `json:"comment"`
}

type UpdateRatingRequest struct {
	Rating  *int    `json:"rating"`
	Comment *string `json:"comment"`
}

// CreateRating rates an activity. Eligibility is re-checked here even when
// the client already saw can_rate = true, so stale flags cannot produce
// invalid ratings. A second rating of the same activity returns 409.
func (rc *RatingController) CreateRating(c *gin.Context) {
	userID := c.GetString("user_id")

	var req CreateRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	if !utils.IsValidRating(req.Rating) {
		utils.SendValidationError(c, "rating must be between 1 and 5")
		return
	}

	var activity models.Activity
	if err := rc.db.Where("id = ?", req.ActivityID).First(&activity).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Activity not found")
		return
	}

	allowed, reason, err := rc.accessService.CanRateActivity(userID, &activity)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to check eligibility")
		return
	}
	if !allowed {
		status := http.StatusForbidden
		if reason == services.ReasonAlreadyRated {
			status = http.StatusConflict
		}
		utils.SendError(c, status, reason)
		return
	}

	rating := models.ActivityRating{
		ID:         uuid.New().String(),
		ActivityID: req.ActivityID,
		UserID:     userID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}

	if err := rc.db.Create(&rating).Error; err != nil {
		// Unique constraint catches the race two concurrent requests can win
		utils.SendError(c, http.StatusConflict, services.ReasonAlreadyRated)
		return
	}

	utils.SendCreated(c, "Rating saved", rating)
}

// UpdateRating updates a rating the user owns.
func (rc *RatingController) UpdateRating(c *gin.Context) {
	userID := c.GetString("user_id")
	ratingID := c.Param("id")

	var rating models.ActivityRating
	if err := rc.db.Where("id = ? AND user_id = ?", ratingID, userID).First(&rating).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Rating not found")
		return
	}

	var req UpdateRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	updates := map[string]interface{}{}
	if req.Rating != nil {
		if !utils.IsValidRating(*req.Rating) {
			utils.SendValidationError(c, "rating must be between 1 and 5")
			return
		}
		updates["rating"] = *req.Rating
	}
	if req.Comment != nil {
		updates["comment"] = *req.Comment
	}

	if len(updates) > 0 {
		if err := rc.db.Model(&rating).Updates(updates).Error; err != nil {
			utils.SendError(c, http.StatusInternalServerError, "Failed to update rating")
			return
		}
	}

	utils.SendSuccess(c, "Rating updated", rating)
}

// DeleteRating removes a rating the user owns. The user may rate the
// activity again afterwards.
func (rc *RatingController) DeleteRating(c *gin.Context) {
	userID := c.GetString("user_id")
	ratingID := c.Param("id")

	result := rc.db.Where("id = ? AND user_id = ?", ratingID, userID).
		Delete(&models.ActivityRating{})
	if result.Error != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to delete rating")
		return
	}
	if result.RowsAffected == 0 {
		utils.SendError(c, http.StatusNotFound, "Rating not found")
		return
	}

	utils.SendSuccess(c, "Rating deleted", nil)
}
