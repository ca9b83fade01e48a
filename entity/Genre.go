package entity

import (
	"gorm.io/gorm"
)

type Genre struct {
	gorm.Model
	Name string `gorm:"uniqueIndex;not null" json:"name"`

	Music []Music `gorm:"many2many:music_genres;" json:"-"`
}
