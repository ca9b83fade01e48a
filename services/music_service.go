package services

import (
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/Derescio/bugleworldmusic/entity"
	"github.com/Derescio/bugleworldmusic/repository"
)

// FieldError is one per-field validation problem, reported to the caller
// as part of the details list.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string { return "validation failed" }

type LinkIn struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

type TrackIn struct {
	Title    string `json:"title"`
	Duration *int   `json:"duration"` // seconds, defaults to 0
	Position *int   `json:"position"` // falls back to array index
}

// MusicIn is the create/update payload. Association lists are pointers:
// a nil list means "leave the existing associations alone", a non-nil
// empty list means "clear them". Optional scalars follow the same rule;
// an empty ReleaseDate string clears the stored date.
type MusicIn struct {
	Title         string     `json:"title"`
	Description   *string    `json:"description"`
	ReleaseDate   *string    `json:"releaseDate"` // RFC 3339 or YYYY-MM-DD
	Duration      *int       `json:"duration"`
	CoverImageURL *string    `json:"coverImageUrl"`
	Label         *string    `json:"label"`
	IsActive      *bool      `json:"isActive"`
	Genres        *[]uint    `json:"genres"`
	Tags          *[]uint    `json:"tags"`
	Links         *[]LinkIn  `json:"links"`
	Tracks        *[]TrackIn `json:"tracks"`
}

// MusicService owns the catalog: creation, full-replace updates of a
// record's genre/tag/link/track associations, and the read paths.
type MusicService struct {
	DB   *gorm.DB
	Repo *repository.MusicRepository
}

func NewMusicService(db *gorm.DB, repo *repository.MusicRepository) *MusicService {
	return &MusicService{DB: db, Repo: repo}
}

func validateMusicIn(in *MusicIn) error {
	var fields []FieldError
	if strings.TrimSpace(in.Title) == "" {
		fields = append(fields, FieldError{Field: "title", Message: "Title is required"})
	}
	if in.Links != nil {
		for _, l := range *in.Links {
			if strings.TrimSpace(l.Platform) == "" {
				fields = append(fields, FieldError{Field: "links.platform", Message: "Platform is required"})
				break
			}
			if strings.TrimSpace(l.URL) == "" {
				fields = append(fields, FieldError{Field: "links.url", Message: "URL is required"})
				break
			}
		}
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// parseReleaseDate accepts RFC 3339 timestamps or bare dates.
func parseReleaseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Create inserts the record and its initial associations in one
// transaction, then returns it hydrated.
func (s *MusicService) Create(in *MusicIn) (*entity.Music, error) {
	if err := validateMusicIn(in); err != nil {
		return nil, err
	}

	m := entity.Music{
		Title:         strings.TrimSpace(in.Title),
		Description:   in.Description,
		Duration:      in.Duration,
		CoverImageURL: in.CoverImageURL,
		Label:         in.Label,
		IsActive:      true,
	}
	if in.IsActive != nil {
		m.IsActive = *in.IsActive
	}
	if in.ReleaseDate != nil {
		t, err := parseReleaseDate(*in.ReleaseDate)
		if err != nil {
			return nil, &ValidationError{Fields: []FieldError{{Field: "releaseDate", Message: "Invalid date"}}}
		}
		m.ReleaseDate = t
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.Create(tx, &m); err != nil {
			return err
		}
		if in.Genres != nil {
			if err := s.Repo.ReplaceGenres(tx, m.ID, *in.Genres); err != nil {
				return err
			}
		}
		if in.Tags != nil {
			if err := s.Repo.ReplaceTags(tx, m.ID, *in.Tags); err != nil {
				return err
			}
		}
		if in.Links != nil {
			if err := s.Repo.ReplaceLinks(tx, m.ID, toLinks(*in.Links)); err != nil {
				return err
			}
		}
		if in.Tracks != nil {
			if err := s.Repo.ReplaceTracks(tx, m.ID, toTracks(*in.Tracks)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.Repo.FindByID(m.ID)
}

func (s *MusicService) Get(id string) (*entity.Music, error) {
	return s.Repo.FindByID(id)
}

// Update applies the scalar fields and replaces every association
// collection present in the payload. The whole thing runs in a single
// transaction: a half-applied replace must never be observable.
func (s *MusicService) Update(id string, in *MusicIn) (*entity.Music, error) {
	if err := validateMusicIn(in); err != nil {
		return nil, err
	}

	fields := map[string]any{"title": strings.TrimSpace(in.Title)}
	if in.Description != nil {
		fields["description"] = in.Description
	}
	if in.ReleaseDate != nil {
		t, err := parseReleaseDate(*in.ReleaseDate)
		if err != nil {
			return nil, &ValidationError{Fields: []FieldError{{Field: "releaseDate", Message: "Invalid date"}}}
		}
		fields["release_date"] = t
	}
	if in.Duration != nil {
		fields["duration"] = in.Duration
	}
	if in.CoverImageURL != nil {
		fields["cover_image_url"] = in.CoverImageURL
	}
	if in.Label != nil {
		fields["label"] = in.Label
	}
	if in.IsActive != nil {
		fields["is_active"] = *in.IsActive
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.UpdateScalars(tx, id, fields); err != nil {
			return err
		}
		if in.Genres != nil {
			if err := s.Repo.ReplaceGenres(tx, id, *in.Genres); err != nil {
				return err
			}
		}
		if in.Tags != nil {
			if err := s.Repo.ReplaceTags(tx, id, *in.Tags); err != nil {
				return err
			}
		}
		if in.Links != nil {
			if err := s.Repo.ReplaceLinks(tx, id, toLinks(*in.Links)); err != nil {
				return err
			}
		}
		if in.Tracks != nil {
			if err := s.Repo.ReplaceTracks(tx, id, toTracks(*in.Tracks)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.Repo.FindByID(id)
}

// Delete removes the record and all four association kinds atomically.
func (s *MusicService) Delete(id string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.Delete(tx, id)
	})
}

type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

func (s *MusicService) List(page, limit int, activeOnly bool) ([]entity.Music, *Pagination, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	music, total, err := s.Repo.List(page, limit, activeOnly)
	if err != nil {
		return nil, nil, err
	}
	pages := int((total + int64(limit) - 1) / int64(limit))
	return music, &Pagination{Page: page, Limit: limit, Total: total, Pages: pages}, nil
}

func (s *MusicService) Search(query string) ([]entity.Music, error) {
	return s.Repo.Search(query)
}

func (s *MusicService) Featured(limit int) ([]entity.Music, error) {
	if limit < 1 {
		limit = 6
	}
	return s.Repo.Featured(limit)
}

func (s *MusicService) ByType(tagName string) ([]entity.Music, error) {
	return s.Repo.FindByTagName(tagName)
}

func toLinks(in []LinkIn) []entity.MusicLink {
	links := make([]entity.MusicLink, 0, len(in))
	for _, l := range in {
		links = append(links, entity.MusicLink{Platform: l.Platform, URL: l.URL})
	}
	return links
}

// toTracks fills in defaults: position falls back to the array index,
// duration to zero.
func toTracks(in []TrackIn) []entity.Track {
	tracks := make([]entity.Track, 0, len(in))
	for i, t := range in {
		track := entity.Track{Title: t.Title, Position: i}
		if t.Position != nil {
			track.Position = *t.Position
		}
		if t.Duration != nil {
			track.Duration = *t.Duration
		}
		tracks = append(tracks, track)
	}
	return tracks
}
