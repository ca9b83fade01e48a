package repository

import (
	"gorm.io/gorm"

	"github.com/Derescio/bugleworldmusic/entity"
)

type BookingRepository struct{ DB *gorm.DB }

func NewBookingRepository(db *gorm.DB) *BookingRepository { return &BookingRepository{DB: db} }

func (r *BookingRepository) Create(b *entity.Booking) error {
	return r.DB.Create(b).Error
}

// List returns inquiries newest-first, optionally filtered by status.
func (r *BookingRepository) List(status string) ([]entity.Booking, error) {
	q := r.DB.Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var bookings []entity.Booking
	err := q.Find(&bookings).Error
	return bookings, err
}

func (r *BookingRepository) UpdateStatus(id uint, status string) error {
	res := r.DB.Model(&entity.Booking{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
