package repository

import (
	"gorm.io/gorm"

	"github.com/Derescio/bugleworldmusic/entity"
)

type TagRepository struct{ DB *gorm.DB }

func NewTagRepository(db *gorm.DB) *TagRepository { return &TagRepository{DB: db} }

func (r *TagRepository) List() ([]entity.Tag, error) {
	var tags []entity.Tag
	err := r.DB.Order("name ASC").Find(&tags).Error
	return tags, err
}

func (r *TagRepository) Create(t *entity.Tag) error {
	return r.DB.Create(t).Error
}
