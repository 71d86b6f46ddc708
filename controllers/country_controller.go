// File: /controllers/country_controller.go
package controllers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"net/http"
	"travelmap-api/geo"
	"travelmap-api/models"
	"travelmap-api/utils"
)

type CountryController struct {
	db *gorm.DB
}

func NewCountryController(db *gorm.DB) *CountryController {
	return &CountryController{db: db}
}

// GetCountries returns the full country catalog, optionally filtered by name.
func (cc *CountryController) GetCountries(c *gin.Context) {
	query := cc.db.Model(&models.Country{}).Order("name ASC")

	if search := c.Query("search"); search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}

	var countries []models.Country
	if err := query.Find(&countries).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch countries")
		return
	}

	c.JSON(http.StatusOK, gin.H{"countries": countries})
}

// SearchCountries searches countries by name, capped at 5 results.
func (cc *CountryController) SearchCountries(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		utils.SendError(c, http.StatusBadRequest, "Search query is required")
		return
	}

	var countries []models.Country
	err := cc.db.Where("name LIKE ?", "%"+q+"%").
		Order("name ASC").
		Limit(5).
		Find(&countries).Error
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Search failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"countries": countries})
}

// GetCountry returns a single country with its places and continent bucket.
func (cc *CountryController) GetCountry(c *gin.Context) {
	code := c.Param("code")
	if !utils.IsValidCountryCode(code) {
		utils.SendError(c, http.StatusBadRequest, "Invalid country code")
		return
	}

	var country models.Country
	if err := cc.db.Preload("Places").Where("code = ?", code).First(&country).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Country not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"country":   country,
		"continent": geo.ContinentOf(country.Code),
	})
}
