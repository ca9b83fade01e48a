package entity

import (
	"time"

	"gorm.io/gorm"
)

type Show struct {
	gorm.Model
	Date      time.Time `gorm:"not null" json:"date"`
	Country   string    `gorm:"not null" json:"country"`
	City      string    `gorm:"not null" json:"city"`
	Venue     string    `gorm:"not null" json:"venue"`
	TicketURL *string   `json:"ticketUrl,omitempty"`
}
