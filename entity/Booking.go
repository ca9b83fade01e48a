package entity

import (
	"time"

	"gorm.io/gorm"
)

// Booking is an inquiry submitted from the public booking form; no show
// is created until an admin follows up.
type Booking struct {
	gorm.Model
	Name      string     `gorm:"not null" json:"name"`
	Email     string     `gorm:"not null" json:"email"`
	EventDate *time.Time `json:"eventDate,omitempty"`
	EventType string     `json:"eventType"`
	Location  string     `json:"location"`
	Message   string     `json:"message"`

	// pending / contacted / closed
	Status string `gorm:"not null;default:pending" json:"status"`
}
