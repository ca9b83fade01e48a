package entity

import (
	"gorm.io/gorm"
)

// Merchandise is a store product. Price is in cents; color/size/image
// lists are stored as JSON columns.
type Merchandise struct {
	gorm.Model
	Name        string   `gorm:"not null" json:"name"`
	Price       int64    `gorm:"not null" json:"price"` // cents
	Description *string  `json:"description"`
	Colors      []string `gorm:"serializer:json" json:"colors"`
	Sizes       []string `gorm:"serializer:json" json:"sizes"`
	ImageURLs   []string `gorm:"serializer:json" json:"imageUrls"`
	IsActive    bool     `gorm:"not null;default:true" json:"isActive"`
}
