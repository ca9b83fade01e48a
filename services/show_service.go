package services

import (
	"strings"
	"time"

	"github.com/Derescio/bugleworldmusic/entity"
	"github.com/Derescio/bugleworldmusic/repository"
)

type ShowIn struct {
	Date      string  `json:"date"`
	Country   string  `json:"country"`
	City      string  `json:"city"`
	Venue     string  `json:"venue"`
	TicketURL *string `json:"ticketUrl"`
}

type ShowService struct {
	Repo *repository.ShowRepository
}

func NewShowService(repo *repository.ShowRepository) *ShowService {
	return &ShowService{Repo: repo}
}

func validateShowIn(in *ShowIn) (time.Time, error) {
	var fields []FieldError
	if strings.TrimSpace(in.Date) == "" {
		fields = append(fields, FieldError{Field: "date", Message: "Date is required"})
	}
	if strings.TrimSpace(in.Country) == "" {
		fields = append(fields, FieldError{Field: "country", Message: "Country is required"})
	}
	if strings.TrimSpace(in.City) == "" {
		fields = append(fields, FieldError{Field: "city", Message: "City is required"})
	}
	if strings.TrimSpace(in.Venue) == "" {
		fields = append(fields, FieldError{Field: "venue", Message: "Venue is required"})
	}

	var date time.Time
	if len(fields) == 0 {
		parsed, err := parseReleaseDate(in.Date)
		if err != nil || parsed == nil {
			fields = append(fields, FieldError{Field: "date", Message: "Invalid date"})
		} else {
			date = *parsed
		}
	}

	if len(fields) > 0 {
		return time.Time{}, &ValidationError{Fields: fields}
	}
	return date, nil
}

func (s *ShowService) Create(in *ShowIn) (*entity.Show, error) {
	date, err := validateShowIn(in)
	if err != nil {
		return nil, err
	}

	show := &entity.Show{
		Date:    date,
		Country: in.Country,
		City:    in.City,
		Venue:   in.Venue,
	}
	// zod treats "" as "no ticket link"
	if in.TicketURL != nil && *in.TicketURL != "" {
		show.TicketURL = in.TicketURL
	}
	if err := s.Repo.Create(show); err != nil {
		return nil, err
	}
	return show, nil
}

func (s *ShowService) Update(id uint, in *ShowIn) (*entity.Show, error) {
	date, err := validateShowIn(in)
	if err != nil {
		return nil, err
	}

	fields := map[string]any{
		"date":    date,
		"country": in.Country,
		"city":    in.City,
		"venue":   in.Venue,
	}
	if in.TicketURL != nil && *in.TicketURL != "" {
		fields["ticket_url"] = *in.TicketURL
	} else {
		fields["ticket_url"] = nil
	}

	if err := s.Repo.Update(id, fields); err != nil {
		return nil, err
	}
	return s.Repo.FindByID(id)
}

func (s *ShowService) List(page, limit int) ([]entity.Show, *Pagination, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	shows, total, err := s.Repo.List(page, limit)
	if err != nil {
		return nil, nil, err
	}
	pages := int((total + int64(limit) - 1) / int64(limit))
	return shows, &Pagination{Page: page, Limit: limit, Total: total, Pages: pages}, nil
}

func (s *ShowService) Delete(id uint) error {
	return s.Repo.Delete(id)
}
