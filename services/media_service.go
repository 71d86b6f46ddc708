// File: /services/media_service.go
package services

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"travelmap-api/config"
)

// MediaService issues presigned upload URLs against an S3-compatible bucket
// and verifies uploads before media records are confirmed.
type MediaService struct {
	client *s3.Client
	config *config.Config
}

func NewMediaService(cfg *config.Config) *MediaService {
	client := s3.New(s3.Options{
		BaseEndpoint: aws.String(cfg.S3Endpoint),
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKeyID,
			cfg.S3SecretAccessKey,
			"",
		),
		Region: cfg.S3Region,
	})

	return &MediaService{
		client: client,
		config: cfg,
	}
}

var validContentTypes = map[string][]string{
	"image": {"image/jpeg", "image/jpg", "image/png", "image/webp", "image/heic"},
	"video": {"video/mp4", "video/quicktime", "video/webm"},
}

var sizeLimits = map[string]int64{
	"image": 10 * 1024 * 1024,  // 10MB
	"video": 100 * 1024 * 1024, // 100MB
}

// ValidateUpload checks content type and size against the media type.
func (ms *MediaService) ValidateUpload(contentType, mediaType string, fileSize int64) error {
	allowed, exists := validContentTypes[mediaType]
	if !exists {
		return fmt.Errorf("unknown media type %q", mediaType)
	}

	valid := false
	for _, t := range allowed {
		if contentType == t {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("content type %q not allowed for %s uploads", contentType, mediaType)
	}

	if fileSize <= 0 || fileSize > sizeLimits[mediaType] {
		return fmt.Errorf("file size exceeds the %s limit", mediaType)
	}

	return nil
}

// GenerateObjectKey builds a unique bucket key, scoped by owner record.
// Format: {scope}/{ownerID}/{timestamp}_{uuid}{ext}
func (ms *MediaService) GenerateObjectKey(scope, ownerID, fileName string) string {
	ext := filepath.Ext(fileName)
	return fmt.Sprintf("%s/%s/%d_%s%s", scope, ownerID, time.Now().Unix(), uuid.New().String(), ext)
}

// PresignUpload returns a presigned PUT URL for the key, valid for one hour.
func (ms *MediaService) PresignUpload(key, contentType string) (string, error) {
	input := &s3.PutObjectInput{
		Bucket:      aws.String(ms.config.S3Bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}

	presigner := s3.NewPresignClient(ms.client)
	req, err := presigner.PresignPutObject(context.TODO(), input, func(opts *s3.PresignOptions) {
		opts.Expires = time.Hour
	})
	if err != nil {
		return "", err
	}

	return req.URL, nil
}

// PublicURL returns the public-facing URL for a stored object.
func (ms *MediaService) PublicURL(key string) string {
	return fmt.Sprintf("%s/%s", ms.config.S3PublicURL, key)
}

// ObjectExists checks whether the client completed the upload.
func (ms *MediaService) ObjectExists(key string) bool {
	input := &s3.HeadObjectInput{
		Bucket: aws.String(ms.config.S3Bucket),
		Key:    aws.String(key),
	}

	_, err := ms.client.HeadObject(context.TODO(), input)
	return err == nil
}

// DeleteObject removes a stored object, used when media records are deleted
// or pending uploads are swept.
func (ms *MediaService) DeleteObject(key string) error {
	input := &s3.DeleteObjectInput{
		Bucket: aws.String(ms.config.S3Bucket),
		Key:    aws.String(key),
	}

	_, err := ms.client.DeleteObject(context.TODO(), input)
	return err
}
