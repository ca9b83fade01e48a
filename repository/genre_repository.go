package repository

import (
	"gorm.io/gorm"

	"github.com/Derescio/bugleworldmusic/entity"
)

type GenreRepository struct{ DB *gorm.DB }

func NewGenreRepository(db *gorm.DB) *GenreRepository { return &GenreRepository{DB: db} }

func (r *GenreRepository) List() ([]entity.Genre, error) {
	var genres []entity.Genre
	err := r.DB.Order("name ASC").Find(&genres).Error
	return genres, err
}

func (r *GenreRepository) Create(g *entity.Genre) error {
	return r.DB.Create(g).Error
}
