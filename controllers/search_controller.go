// File: /controllers/search_controller.go
package controllers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"net/http"
	"strings"
	"travelmap-api/models"
	"travelmap-api/utils"
)

type SearchController struct {
	db *gorm.DB
}

func NewSearchController(db *gorm.DB) *SearchController {
	return &SearchController{db: db}
}

// Search matches places and countries by name in one call. Results are
// capped at 10 places and 5 countries; the client is expected to narrow
// the query instead of paginating.
func (sc *SearchController) Search(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		utils.SendError(c, http.StatusBadRequest, "Search query is required")
		return
	}

	pattern := "%" + q + "%"

	var places []models.Place
	err := sc.db.Preload("Country").
		Where("city_name LIKE ?", pattern).
		Order("city_name ASC").
		Limit(10).
		Find(&places).Error
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Search failed")
		return
	}

	var countries []models.Country
	err = sc.db.Where("name LIKE ?", pattern).
		Order("name ASC").
		Limit(5).
		Find(&countries).Error
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Search failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"places":    places,
		"countries": countries,
	})
}
