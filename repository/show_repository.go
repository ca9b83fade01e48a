package repository

import (
	"gorm.io/gorm"

	"github.com/Derescio/bugleworldmusic/entity"
)

type ShowRepository struct{ DB *gorm.DB }

func NewShowRepository(db *gorm.DB) *ShowRepository { return &ShowRepository{DB: db} }

// List pages through shows soonest-first.
func (r *ShowRepository) List(page, limit int) ([]entity.Show, int64, error) {
	var total int64
	if err := r.DB.Model(&entity.Show{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var shows []entity.Show
	err := r.DB.
		Order("date ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&shows).Error
	return shows, total, err
}

func (r *ShowRepository) FindByID(id uint) (*entity.Show, error) {
	var s entity.Show
	if err := r.DB.First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *ShowRepository) Create(s *entity.Show) error {
	return r.DB.Create(s).Error
}

func (r *ShowRepository) Update(id uint, fields map[string]any) error {
	res := r.DB.Model(&entity.Show{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ShowRepository) Delete(id uint) error {
	res := r.DB.Delete(&entity.Show{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
