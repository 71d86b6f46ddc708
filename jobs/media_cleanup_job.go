// File: /jobs/media_cleanup_job.go
package jobs

import (
	"fmt"
	"time"

	"gorm.io/gorm"
	"travelmap-api/models"
	"travelmap-api/services"
)

// MediaCleanupJob periodically removes media rows whose presigned upload was
// never confirmed, along with any partially uploaded objects.
type MediaCleanupJob struct {
	db           *gorm.DB
	mediaService *services.MediaService
	ticker       *time.Ticker
	done         chan bool
}

// Unconfirmed rows older than this are considered abandoned.
const pendingUploadMaxAge = 24 * time.Hour

// NewMediaCleanupJob creates a new media cleanup job
func NewMediaCleanupJob(db *gorm.DB, mediaService *services.MediaService, interval time.Duration) *MediaCleanupJob {
	return &MediaCleanupJob{
		db:           db,
		mediaService: mediaService,
		ticker:       time.NewTicker(interval),
		done:         make(chan bool),
	}
}

// Start begins the cleanup job
func (j *MediaCleanupJob) Start() {
	fmt.Println("Media cleanup job started")

	go func() {
		// Run immediately on start
		j.cleanup()

		// Then run on schedule
		for {
			select {
			case <-j.ticker.C:
				j.cleanup()
			case <-j.done:
				fmt.Println("Media cleanup job stopped")
				return
			}
		}
	}()
}

// Stop stops the cleanup job
func (j *MediaCleanupJob) Stop() {
	j.ticker.Stop()
	j.done <- true
}

// cleanup performs the actual cleanup
func (j *MediaCleanupJob) cleanup() {
	cutoff := time.Now().Add(-pendingUploadMaxAge)

	var tripMedia []models.TripMedia
	if err := j.db.Where("confirmed = ? AND created_at < ?", false, cutoff).Find(&tripMedia).Error; err != nil {
		fmt.Printf("Error during media cleanup: %v\n", err)
		return
	}
	for _, m := range tripMedia {
		if err := j.mediaService.DeleteObject(m.ObjectKey); err != nil {
			fmt.Printf("Warning: could not delete object %s: %v\n", m.ObjectKey, err)
		}
		j.db.Delete(&m)
	}

	var activityMedia []models.ActivityMedia
	if err := j.db.Where("confirmed = ? AND created_at < ?", false, cutoff).Find(&activityMedia).Error; err != nil {
		fmt.Printf("Error during media cleanup: %v\n", err)
		return
	}
	for _, m := range activityMedia {
		if err := j.mediaService.DeleteObject(m.ObjectKey); err != nil {
			fmt.Printf("Warning: could not delete object %s: %v\n", m.ObjectKey, err)
		}
		j.db.Delete(&m)
	}

	if n := len(tripMedia) + len(activityMedia); n > 0 {
		fmt.Printf("Media cleanup removed %d abandoned uploads\n", n)
	}
}
