package services

import (
	"strings"

	"github.com/Derescio/bugleworldmusic/entity"
	"github.com/Derescio/bugleworldmusic/repository"
)

type MerchandiseIn struct {
	Name        string   `json:"name"`
	Price       int64    `json:"price"` // cents
	Description *string  `json:"description"`
	Colors      []string `json:"colors"`
	Sizes       []string `json:"sizes"`
	ImageURLs   []string `json:"imageUrls"`
	IsActive    *bool    `json:"isActive"`
}

type MerchandiseService struct {
	Repo *repository.MerchandiseRepository
}

func NewMerchandiseService(repo *repository.MerchandiseRepository) *MerchandiseService {
	return &MerchandiseService{Repo: repo}
}

func validateMerchandiseIn(in *MerchandiseIn) error {
	var fields []FieldError
	if strings.TrimSpace(in.Name) == "" {
		fields = append(fields, FieldError{Field: "name", Message: "Name is required"})
	}
	if in.Price < 0 {
		fields = append(fields, FieldError{Field: "price", Message: "Price must be positive"})
	}
	if len(in.Colors) == 0 {
		fields = append(fields, FieldError{Field: "colors", Message: "At least one color is required"})
	}
	if len(in.Sizes) == 0 {
		fields = append(fields, FieldError{Field: "sizes", Message: "At least one size is required"})
	}
	if len(in.ImageURLs) == 0 {
		fields = append(fields, FieldError{Field: "imageUrls", Message: "At least one image is required"})
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func (s *MerchandiseService) Create(in *MerchandiseIn) (*entity.Merchandise, error) {
	if err := validateMerchandiseIn(in); err != nil {
		return nil, err
	}

	m := &entity.Merchandise{
		Name:        strings.TrimSpace(in.Name),
		Price:       in.Price,
		Description: in.Description,
		Colors:      in.Colors,
		Sizes:       in.Sizes,
		ImageURLs:   in.ImageURLs,
		IsActive:    true,
	}
	if in.IsActive != nil {
		m.IsActive = *in.IsActive
	}
	if err := s.Repo.Create(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *MerchandiseService) Update(id uint, in *MerchandiseIn) (*entity.Merchandise, error) {
	if err := validateMerchandiseIn(in); err != nil {
		return nil, err
	}

	m, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	m.Name = strings.TrimSpace(in.Name)
	m.Price = in.Price
	m.Description = in.Description
	m.Colors = in.Colors
	m.Sizes = in.Sizes
	m.ImageURLs = in.ImageURLs
	if in.IsActive != nil {
		m.IsActive = *in.IsActive
	}

	if err := s.Repo.Save(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *MerchandiseService) Get(id uint) (*entity.Merchandise, error) {
	return s.Repo.FindByID(id)
}

func (s *MerchandiseService) List(page, limit int, activeOnly bool) ([]entity.Merchandise, *Pagination, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	merch, total, err := s.Repo.List(page, limit, activeOnly)
	if err != nil {
		return nil, nil, err
	}
	pages := int((total + int64(limit) - 1) / int64(limit))
	return merch, &Pagination{Page: page, Limit: limit, Total: total, Pages: pages}, nil
}

func (s *MerchandiseService) Delete(id uint) error {
	return s.Repo.Delete(id)
}
