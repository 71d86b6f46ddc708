// File: /controllers/suggestion_controller.go
package controllers

import (
	"github.com/gin-gonic/gin"
	"net/http"
	"travelmap-api/models"
	"travelmap-api/services"
	"travelmap-api/utils"
)

type SuggestionController struct {
	suggestionService *services.SuggestionService
}

func NewSuggestionController(suggestionService *services.SuggestionService) *SuggestionController {
	return &SuggestionController{suggestionService: suggestionService}
}

// GetSuggestions returns up to six unvisited destinations for the user plus
// a message explaining where they come from. A user with no favorites or an
// empty catalog still gets a 200 with whatever the engine found.
func (sc *SuggestionController) GetSuggestions(c *gin.Context) {
	userID := c.GetString("user_id")

	suggestions, message, err := sc.suggestionService.Suggest(userID)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to compute suggestions")
		return
	}

	// Empty list serializes as [], not null
	if suggestions == nil {
		suggestions = []models.Place{}
	}

	c.JSON(http.StatusOK, gin.H{
		"suggestions": suggestions,
		"message":     message,
	})
}
