// File: /controllers/user_controller.go
package controllers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"net/http"
	"travelmap-api/models"
	"travelmap-api/utils"
)

type UserController struct {
	db *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{db: db}
}

type UpdateProfileRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Username  *string `json:"username"`
}

type ProfileStats struct {
	VisitedPlaces    int64 `json:"visited_places"`
	VisitedCountries int64 `json:"visited_countries"`
	TripCount        int64 `json:"trip_count"`
	FavoriteCount    int64 `json:"favorite_count"`
	ActivityCount    int64 `json:"activity_count"`
	TotalScore       int64 `json:"total_score"`
}

// GetProfile returns the authenticated user's account and travel stats.
func (uc *UserController) GetProfile(c *gin.Context) {
	userID := c.GetString("user_id")

	var user models.User
	if err := uc.db.Where("id = ?", userID).First(&user).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "User not found")
		return
	}

	stats, err := uc.statsFor(userID)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to compute stats")
		return
	}

	user.Password = ""
	c.JSON(http.StatusOK, gin.H{
		"user":  user,
		"stats": stats,
	})
}

// UpdateProfile updates the authenticated user's name fields.
func (uc *UserController) UpdateProfile(c *gin.Context) {
	userID := c.GetString("user_id")

	var user models.User
	if err := uc.db.Where("id = ?", userID).First(&user).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "User not found")
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	updates := map[string]interface{}{}
	if req.FirstName != nil {
		updates["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		updates["last_name"] = *req.LastName
	}
	if req.Username != nil {
		if len(*req.Username) < 3 {
			utils.SendValidationError(c, "username must be at least 3 characters")
			return
		}
		var existing models.User
		if err := uc.db.Where("username = ? AND id <> ?", *req.Username, userID).First(&existing).Error; err == nil {
			utils.SendError(c, http.StatusConflict, "Username already taken")
			return
		}
		updates["username"] = *req.Username
	}

	if len(updates) > 0 {
		if err := uc.db.Model(&user).Updates(updates).Error; err != nil {
			utils.SendError(c, http.StatusInternalServerError, "Failed to update profile")
			return
		}
	}

	uc.db.Where("id = ?", userID).First(&user)
	user.Password = ""
	utils.SendSuccess(c, "Profile updated", user)
}

// GetPublicProfile returns another user's public profile and travel stats.
func (uc *UserController) GetPublicProfile(c *gin.Context) {
	targetID := c.Param("id")

	var user models.User
	if err := uc.db.Where("id = ?", targetID).First(&user).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "User not found")
		return
	}

	stats, err := uc.statsFor(targetID)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to compute stats")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  user.PublicProfile(),
		"stats": stats,
	})
}

// statsFor derives travel stats from current trip and favorite rows.
func (uc *UserController) statsFor(userID string) (*ProfileStats, error) {
	stats := &ProfileStats{}

	err := uc.db.Model(&models.Trip{}).
		Where("user_id = ?", userID).
		Count(&stats.TripCount).Error
	if err != nil {
		return nil, err
	}

	err = uc.db.Model(&models.Trip{}).
		Where("user_id = ?", userID).
		Distinct("place_id").
		Count(&stats.VisitedPlaces).Error
	if err != nil {
		return nil, err
	}

	err = uc.db.Model(&models.Trip{}).
		Joins("JOIN places ON places.id = trips.place_id").
		Where("trips.user_id = ?", userID).
		Distinct("places.country_code").
		Count(&stats.VisitedCountries).Error
	if err != nil {
		return nil, err
	}

	err = uc.db.Model(&models.Favorite{}).
		Where("user_id = ?", userID).
		Count(&stats.FavoriteCount).Error
	if err != nil {
		return nil, err
	}

	err = uc.db.Model(&models.Activity{}).
		Where("creator_id = ?", userID).
		Count(&stats.ActivityCount).Error
	if err != nil {
		return nil, err
	}

	// Sum of trip ratings; NULL ratings contribute nothing
	err = uc.db.Model(&models.Trip{}).
		Where("user_id = ? AND rating IS NOT NULL", userID).
		Select("COALESCE(SUM(rating), 0)").
		Scan(&stats.TotalScore).Error
	if err != nil {
		return nil, err
	}

	return stats, nil
}
