// File: /controllers/media_controller.go
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

// Media attachment targets
const (
	TargetTrip     = "trip"
	TargetActivity = "activity"
)

type MediaController struct {
	db           *gorm.DB
	mediaService *services.MediaService
}

func NewMediaController(db *gorm.DB, mediaService *services.MediaService) *MediaController {
	return &MediaController{
		db:           db,
		mediaService: mediaService,
	}
}

type UploadURLRequest struct {
	TargetType  string `json:"target_type" binding:"required"` // trip or activity
	TargetID    string `json:"target_id" binding:"required"`
	FileName    string `json:"file_name" binding:"required"`
	ContentType string `json:"content_type" binding:"required"`
	MediaType   string `json:"media_type" binding:"required"` // image or video
	FileSize    int64  `json:"file_size" binding:"required"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type UploadURLResponse struct {
	MediaID   string `json:"media_id"`
	UploadURL string `json:"upload_url"`
	ObjectKey string `json:"object_key"`
	PublicURL string `json:"public_url"`
}

type ConfirmUploadRequest struct {
	TargetType string `json:"target_type" binding:"required"`
	MediaID    string `json:"media_id" binding:"required"`
}

// GetUploadURL issues a presigned PUT URL for a trip or activity media file
// and records an unconfirmed media row. The row stays invisible until the
// client confirms the upload; abandoned rows are swept by the cleanup job.
func (mc *MediaController) GetUploadURL(c *gin.Context) {
	userID := c.GetString("user_id")

	var req UploadURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	if !utils.IsValidMediaType(req.MediaType) {
		utils.SendValidationError(c, "media_type must be image or video")
		return
	}
	if err := mc.mediaService.ValidateUpload(req.ContentType, req.MediaType, req.FileSize); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	switch req.TargetType {
	case TargetTrip:
		var trip models.Trip
		if err := mc.db.Where("id = ? AND user_id = ?", req.TargetID, userID).First(&trip).Error; err != nil {
			utils.SendError(c, http.StatusNotFound, "Trip not found")
			return
		}

		key := mc.mediaService.GenerateObjectKey("trips", userID, req.FileName)
		uploadURL, err := mc.mediaService.PresignUpload(key, req.ContentType)
		if err != nil {
			utils.SendError(c, http.StatusInternalServerError, "Failed to create upload URL")
			return
		}

		media := models.TripMedia{
			ID:          uuid.New().String(),
			TripID:      trip.ID,
			ObjectKey:   key,
			MediaType:   req.MediaType,
			Title:       req.Title,
			Description: req.Description,
			Confirmed:   false,
		}
		if err := mc.db.Create(&media).Error; err != nil {
			utils.SendError(c, http.StatusInternalServerError, "Failed to record upload")
			return
		}

		c.JSON(http.StatusOK, UploadURLResponse{
			MediaID:   media.ID,
			UploadURL: uploadURL,
			ObjectKey: key,
			PublicURL: mc.mediaService.PublicURL(key),
		})

	case TargetActivity:
		var activity models.Activity
		if err := mc.db.Where("id = ? AND creator_id = ?", req.TargetID, userID).First(&activity).Error; err != nil {
			utils.SendError(c, http.StatusNotFound, "Activity not found")
			return
		}

		key := mc.mediaService.GenerateObjectKey("activities", userID, req.FileName)
		uploadURL, err := mc.mediaService.PresignUpload(key, req.ContentType)
		if err != nil {
			utils.SendError(c, http.StatusInternalServerError, "Failed to create upload URL")
			return
		}

		media := models.ActivityMedia{
			ID:          uuid.New().String(),
			ActivityID:  activity.ID,
			ObjectKey:   key,
			MediaType:   req.MediaType,
			Title:       req.Title,
			Description: req.Description,
			Confirmed:   false,
		}
		if err := mc.db.Create(&media).Error; err != nil {
			utils.SendError(c, http.StatusInternalServerError, "Failed to record upload")
			return
		}

		c.JSON(http.StatusOK, UploadURLResponse{
			MediaID:   media.ID,
			UploadURL: uploadURL,
			ObjectKey: key,
			PublicURL: mc.mediaService.PublicURL(key),
		})

	default:
		utils.SendValidationError(c, "target_type must be trip or activity")
	}
}

// ConfirmUpload marks a media row confirmed after verifying the object is
// actually in the bucket.
func (mc *MediaController) ConfirmUpload(c *gin.Context) {
	userID := c.GetString("user_id")

	var req ConfirmUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	switch req.TargetType {
	case TargetTrip:
		var media models.TripMedia
		err := mc.db.Joins("JOIN trips ON trips.id = trip_media.trip_id").
			Where("trip_media.id = ? AND trips.user_id = ?", req.MediaID, userID).
			First(&media).Error
		if err != nil {
			utils.SendError(c, http.StatusNotFound, "Media not found")
			return
		}

		if !mc.mediaService.ObjectExists(media.ObjectKey) {
			utils.SendError(c, http.StatusBadRequest, "Upload not completed")
			return
		}

		updates := map[string]interface{}{
			"confirmed": true,
			"url":       mc.mediaService.PublicURL(media.ObjectKey),
		}
		if err := mc.db.Model(&media).Updates(updates).Error; err != nil {
			utils.SendError(c, http.StatusInternalServerError, "Failed to confirm upload")
			return
		}

		utils.SendSuccess(c, "Upload confirmed", media)

	case TargetActivity:
		var media models.ActivityMedia
		err := mc.db.Joins("JOIN activities ON activities.id = activity_media.activity_id").
			Where("activity_media.id = ? AND activities.creator_id = ?", req.MediaID, userID).
			First(&media).Error
		if err != nil {
			utils.SendError(c, http.StatusNotFound, "Media not found")
			return
		}

		if !mc.mediaService.ObjectExists(media.ObjectKey) {
			utils.SendError(c, http.StatusBadRequest, "Upload not completed")
			return
		}

		updates := map[string]interface{}{
			"confirmed": true,
			"url":       mc.mediaService.PublicURL(media.ObjectKey),
		}
		if err := mc.db.Model(&media).Updates(updates).Error; err != nil {
			utils.SendError(c, http.StatusInternalServerError, "Failed to confirm upload")
			return
		}

		utils.SendSuccess(c, "Upload confirmed", media)

	default:
		utils.SendValidationError(c, "target_type must be trip or activity")
	}
}

// DeleteMedia removes a media row the user owns and its stored object.
func (mc *MediaController) DeleteMedia(c *gin.Context) {
	userID := c.GetString("user_id")
	mediaID := c.Param("id")
	targetType := c.Query("target_type")

	switch targetType {
	case TargetTrip:
		var media models.TripMedia
		err := mc.db.Joins("JOIN trips ON trips.id = trip_media.trip_id").
			Where("trip_media.id = ? AND trips.user_id = ?", mediaID, userID).
			First(&media).Error
		if err != nil {
			utils.SendError(c, http.StatusNotFound, "Media not found")
			return
		}

		if err := mc.mediaService.DeleteObject(media.ObjectKey); err != nil {
			utils.SendError(c, http.StatusInternalServerError, "Failed to delete stored file")
			return
		}
		mc.db.Delete(&media)
		utils.SendSuccess(c, "Media deleted", nil)

	case TargetActivity:
		var media models.ActivityMedia
		err := mc.db.Joins("JOIN activities ON activities.id = activity_media.activity_id").
			Where("activity_media.id = ? AND activities.creator_id = ?", mediaID, userID).
			First(&media).Error
		if err != nil {
			utils.SendError(c, http.StatusNotFound, "Media not found")
			return
		}

		if err := mc.mediaService.DeleteObject(media.ObjectKey); err != nil {
			utils.SendError(c, http.StatusInternalServerError, "Failed to delete stored file")
			return
		}
		mc.db.Delete(&media)
		utils.SendSuccess(c, "Media deleted", nil)

	default:
		utils.SendValidationError(c, "target_type must be trip or activity")
	}
}
