// File: /utils/validators_test.go
package utils

import (
	"testing"
)

func TestIsValidEmail(t *testing.T) {
	valid := []string{"user@example.com", "first.last@sub.domain.org", "a+b@test.io"}
	invalid := []string{"", "user", "user@", "@example.com", "user@example"}

	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidPassword(t *testing.T) {
	tests := []struct {
		password string
		want     bool
	}{
		{"Abc123", true},    // upper + lower + number
		{"abc123!", true},   // lower + number + special
		{"abcdef", false},   // single character type
		{"Ab1", false},      // too short
		{"", false},
		{"PASSWORD1!", true},
	}

	for _, tt := range tests {
		if got := IsValidPassword(tt.password); got != tt.want {
			t.Errorf("IsValidPassword(%q) = %v, want %v", tt.password, got, tt.want)
		}
	}
}

func TestCoordinateValidators(t *testing.T) {
	if !IsValidLatitude(48.8566) || !IsValidLatitude(-90) || !IsValidLatitude(90) {
		t.Error("valid latitudes rejected")
	}
	if IsValidLatitude(90.1) || IsValidLatitude(-91) {
		t.Error("out-of-range latitudes accepted")
	}
	if !IsValidLongitude(2.3522) || !IsValidLongitude(-180) || !IsValidLongitude(180) {
		t.Error("valid longitudes rejected")
	}
	if IsValidLongitude(181) || IsValidLongitude(-180.5) {
		t.Error("out-of-range longitudes accepted")
	}
}

func TestIsValidRating(t *testing.T) {
	for rating := 1; rating <= 5; rating++ {
		if !IsValidRating(rating) {
			t.Errorf("IsValidRating(%d) = false, want true", rating)
		}
	}
	for _, rating := range []int{0, 6, -1, 100} {
		if IsValidRating(rating) {
			t.Errorf("IsValidRating(%d) = true, want false", rating)
		}
	}
}

func TestIsValidCountryCode(t *testing.T) {
	for _, code := range []string{"FRA", "JPN", "USA"} {
		if !IsValidCountryCode(code) {
			t.Errorf("IsValidCountryCode(%q) = false, want true", code)
		}
	}
	for _, code := range []string{"", "FR", "FRAN", "fra", "F1A"} {
		if IsValidCountryCode(code) {
			t.Errorf("IsValidCountryCode(%q) = true, want false", code)
		}
	}
}

func TestIsValidMediaType(t *testing.T) {
	if !IsValidMediaType("image") || !IsValidMediaType("video") {
		t.Error("accepted media types rejected")
	}
	if IsValidMediaType("audio") || IsValidMediaType("") {
		t.Error("unknown media types accepted")
	}
}
