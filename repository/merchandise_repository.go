package repository

import (
	"gorm.io/gorm"

	"github.com/Derescio/bugleworldmusic/entity"
)

type MerchandiseRepository struct{ DB *gorm.DB }

func NewMerchandiseRepository(db *gorm.DB) *MerchandiseRepository {
	return &MerchandiseRepository{DB: db}
}

func (r *MerchandiseRepository) List(page, limit int, activeOnly bool) ([]entity.Merchandise, int64, error) {
	q := r.DB.Model(&entity.Merchandise{})
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var merch []entity.Merchandise
	err := q.
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&merch).Error
	return merch, total, err
}

func (r *MerchandiseRepository) FindByID(id uint) (*entity.Merchandise, error) {
	var m entity.Merchandise
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MerchandiseRepository) Create(m *entity.Merchandise) error {
	return r.DB.Create(m).Error
}

func (r *MerchandiseRepository) Save(m *entity.Merchandise) error {
	return r.DB.Save(m).Error
}

func (r *MerchandiseRepository) Delete(id uint) error {
	res := r.DB.Delete(&entity.Merchandise{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
