package services

import (
	"strings"

	"github.com/Derescio/bugleworldmusic/entity"
	"github.com/Derescio/bugleworldmusic/repository"
)

type BookingIn struct {
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	EventDate *string `json:"eventDate"`
	EventType string  `json:"eventType"`
	Location  string  `json:"location"`
	Message   string  `json:"message"`
}

type BookingService struct {
	Repo *repository.BookingRepository
}

func NewBookingService(repo *repository.BookingRepository) *BookingService {
	return &BookingService{Repo: repo}
}

func (s *BookingService) Create(in *BookingIn) (*entity.Booking, error) {
	var fields []FieldError
	if strings.TrimSpace(in.Name) == "" {
		fields = append(fields, FieldError{Field: "name", Message: "Name is required"})
	}
	email := strings.TrimSpace(in.Email)
	if email == "" || !strings.Contains(email, "@") {
		fields = append(fields, FieldError{Field: "email", Message: "A valid email is required"})
	}

	b := &entity.Booking{
		Name:      strings.TrimSpace(in.Name),
		Email:     email,
		EventType: in.EventType,
		Location:  in.Location,
		Message:   in.Message,
		Status:    "pending",
	}
	if in.EventDate != nil && *in.EventDate != "" {
		t, err := parseReleaseDate(*in.EventDate)
		if err != nil {
			fields = append(fields, FieldError{Field: "eventDate", Message: "Invalid date"})
		} else {
			b.EventDate = t
		}
	}

	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}
	if err := s.Repo.Create(b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *BookingService) List(status string) ([]entity.Booking, error) {
	return s.Repo.List(status)
}

func (s *BookingService) UpdateStatus(id uint, status string) error {
	switch status {
	case "pending", "contacted", "closed":
	default:
		return &ValidationError{Fields: []FieldError{{Field: "status", Message: "Unknown status"}}}
	}
	return s.Repo.UpdateStatus(id, status)
}
