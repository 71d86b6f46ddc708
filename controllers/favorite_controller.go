// File: /controllers/favorite_controller.go
package controllers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"net/http"
	"travelmap-api/models"
	"travelmap-api/utils"
)

type FavoriteController struct {
	db *gorm.DB
}

func NewFavoriteController(db *gorm.DB) *FavoriteController {
	return &FavoriteController{db: db}
}

type AddFavoriteRequest struct {
	PlaceID string `json:"place_id" binding:"required"`
}

// GetFavorites returns the user's favorites, newest first.
func (fc *FavoriteController) GetFavorites(c *gin.Context) {
	userID := c.GetString("user_id")

	var favorites []models.Favorite
	err := fc.db.Preload("Place").Preload("Place.Country").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favorites).Error
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch favorites")
		return
	}

	c.JSON(http.StatusOK, gin.H{"favorites": favorites})
}

// AddFavorite marks a place as favorite. Adding an already-favorited place
// is a no-op returning the existing row, never an error.
func (fc *FavoriteController) AddFavorite(c *gin.Context) {
	userID := c.GetString("user_id")

	var req AddFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	var place models.Place
	if err := fc.db.Preload("Country").Where("id = ?", req.PlaceID).First(&place).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Place not found")
		return
	}

	var favorite models.Favorite
	result := fc.db.Where(models.Favorite{UserID: userID, PlaceID: req.PlaceID}).
		FirstOrCreate(&favorite)
	if result.Error != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to add favorite")
		return
	}

	favorite.Place = place

	if result.RowsAffected == 0 {
		// Already favorited
		utils.SendSuccess(c, "Place already in favorites", favorite)
		return
	}

	utils.SendCreated(c, "Place added to favorites", favorite)
}

// RemoveFavorite removes a place from the user's favorites.
func (fc *FavoriteController) RemoveFavorite(c *gin.Context) {
	userID := c.GetString("user_id")
	placeID := c.Param("placeId")

	result := fc.db.Where("user_id = ? AND place_id = ?", userID, placeID).
		Delete(&models.Favorite{})
	if result.Error != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to remove favorite")
		return
	}
	if result.RowsAffected == 0 {
		utils.SendError(c, http.StatusNotFound, "Favorite not found")
		return
	}

	utils.SendSuccess(c, "Place removed from favorites", nil)
}
