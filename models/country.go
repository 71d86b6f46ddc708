// File: /models/country.go
package models

type Country struct {
	Code string `json:"code" gorm:"primaryKey;size:3"`
	Name string `json:"name" gorm:"uniqueIndex;not null;size:100"`

	// Relationships
	Places []Place `json:"places,omitempty" gorm:"foreignKey:CountryCode"`
}
