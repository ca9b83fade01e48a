package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Music is a catalog record (single, EP or album). The id is an opaque
// string so seeded records can use readable slugs like "toxicity-track".
type Music struct {
	ID            string     `gorm:"primaryKey;size:64" json:"id"`
	Title         string     `gorm:"not null" json:"title"`
	Description   *string    `json:"description"`
	ReleaseDate   *time.Time `json:"releaseDate"`
	Duration      *int       `json:"duration"` // seconds
	CoverImageURL *string    `json:"coverImageUrl"`
	Label         *string    `json:"label"`

	// Gates public listings only; direct fetch by id ignores it.
	IsActive bool `gorm:"not null;default:true" json:"isActive"`

	Genres []Genre     `gorm:"many2many:music_genres;" json:"genres"`
	Tags   []Tag       `gorm:"many2many:music_tags;" json:"tags"`
	Links  []MusicLink `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"links"`
	Tracks []Track     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"tracks"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (m *Music) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
