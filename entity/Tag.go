package entity

import (
	"gorm.io/gorm"
)

// Tag classifies a release (Single / Album / EP).
type Tag struct {
	gorm.Model
	Name string `gorm:"uniqueIndex;not null" json:"name"`

	Music []Music `gorm:"many2many:music_tags;" json:"-"`
}
