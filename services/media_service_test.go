// File: /services/media_service_test.go
package services

import (
	"strings"
	"testing"

	"travelmap-api/config"
)

func testMediaService() *MediaService {
	return NewMediaService(&config.Config{
		S3Endpoint:        "https://storage.example.com",
		S3AccessKeyID:     "test",
		S3SecretAccessKey: "test",
		S3Bucket:          "travelmap-media",
		S3PublicURL:       "https://media.example.com",
		S3Region:          "auto",
	})
}

func TestValidateUpload(t *testing.T) {
	ms := testMediaService()

	tests := []struct {
		name        string
		contentType string
		mediaType   string
		fileSize    int64
		wantErr     bool
	}{
		{"valid image", "image/jpeg", "image", 5 * 1024 * 1024, false},
		{"valid video", "video/mp4", "video", 50 * 1024 * 1024, false},
		{"image too large", "image/png", "image", 11 * 1024 * 1024, true},
		{"video too large", "video/mp4", "video", 101 * 1024 * 1024, true},
		{"zero size", "image/jpeg", "image", 0, true},
		{"wrong content type for image", "video/mp4", "image", 1024, true},
		{"unknown media type", "audio/mpeg", "audio", 1024, true},
	}

	for _, tt := range tests {
		err := ms.ValidateUpload(tt.contentType, tt.mediaType, tt.fileSize)
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: ValidateUpload() error = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
	}
}

func TestGenerateObjectKey(t *testing.T) {
	ms := testMediaService()

	key := ms.GenerateObjectKey("trips", "user-1", "beach.jpg")

	if !strings.HasPrefix(key, "trips/user-1/") {
		t.Errorf("key %q missing scope prefix", key)
	}
	if !strings.HasSuffix(key, ".jpg") {
		t.Errorf("key %q lost file extension", key)
	}

	// Keys are unique even for identical inputs
	other := ms.GenerateObjectKey("trips", "user-1", "beach.jpg")
	if key == other {
		t.Error("two generated keys are identical")
	}
}

func TestPublicURL(t *testing.T) {
	ms := testMediaService()

	got := ms.PublicURL("trips/user-1/123_abc.jpg")
	want := "https://media.example.com/trips/user-1/123_abc.jpg"
	if got != want {
		t.Errorf("PublicURL() = %q, want %q", got, want)
	}
}
