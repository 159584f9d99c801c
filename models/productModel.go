package models

import "gorm.io/datatypes"

// Product is catalog reference data. Rows are seeded at startup and never
// mutated afterwards. Prices are integers in minor currency units.
type Product struct {
	ID              string         `json:"id" gorm:"primaryKey"`
	Name            string         `json:"name" gorm:"not null"`
	Description     string         `json:"description,omitempty"`
	LongDescription string         `json:"longDescription,omitempty"`
	Price           int            `json:"price" gorm:"not null"`
	OriginalPrice   int            `json:"originalPrice,omitempty"`
	Image           string         `json:"image"`
	Rating          float64        `json:"rating"`
	ReviewCount     int            `json:"reviewCount"`
	Badge           string         `json:"badge,omitempty"`
	Category        string         `json:"category" gorm:"index;not null"`
	Details         datatypes.JSON `json:"details,omitempty"`
}
