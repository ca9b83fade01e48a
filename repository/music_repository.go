package repository

import (
	"gorm.io/gorm"

	"github.com/Derescio/bugleworldmusic/entity"
)

type MusicRepository struct{ DB *gorm.DB }

func NewMusicRepository(db *gorm.DB) *MusicRepository { return &MusicRepository{DB: db} }

// hydrated preloads every association; tracks come back ordered by
// position, which is the contract for all read paths.
func hydrated(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Genres").
		Preload("Tags").
		Preload("Links").
		Preload("Tracks", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") })
}

// FindByID returns the fully hydrated record; isActive does not gate
// direct fetches.
func (r *MusicRepository) FindByID(id string) (*entity.Music, error) {
	var m entity.Music
	if err := hydrated(r.DB).First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// List pages through records newest-first. activeOnly is set on public
// listings; admin sees everything.
func (r *MusicRepository) List(page, limit int, activeOnly bool) ([]entity.Music, int64, error) {
	q := r.DB.Model(&entity.Music{})
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var music []entity.Music
	err := hydrated(q).
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&music).Error
	return music, total, err
}

// Search matches active records on title or description substring.
func (r *MusicRepository) Search(query string) ([]entity.Music, error) {
	var music []entity.Music
	like := "%" + query + "%"
	err := hydrated(r.DB).
		Where("is_active = ?", true).
		Where("title LIKE ? OR description LIKE ?", like, like).
		Order("release_date DESC").
		Find(&music).Error
	return music, err
}

// Featured returns the most recent active releases.
func (r *MusicRepository) Featured(limit int) ([]entity.Music, error) {
	var music []entity.Music
	err := hydrated(r.DB).
		Where("is_active = ?", true).
		Order("release_date DESC").
		Order("created_at DESC").
		Limit(limit).
		Find(&music).Error
	return music, err
}

// FindByTagName lists active records carrying the given release-type tag
// (album / single / ep), case-insensitive.
func (r *MusicRepository) FindByTagName(name string) ([]entity.Music, error) {
	var music []entity.Music
	err := hydrated(r.DB).
		Where("is_active = ?", true).
		Where("id IN (?)",
			r.DB.Model(&entity.MusicTag{}).
				Select("music_tags.music_id").
				Joins("JOIN tags ON tags.id = music_tags.tag_id").
				Where("LOWER(tags.name) = LOWER(?)", name),
		).
		Order("release_date DESC").
		Find(&music).Error
	return music, err
}

func (r *MusicRepository) Create(tx *gorm.DB, m *entity.Music) error {
	return tx.Create(m).Error
}

// UpdateScalars writes the scalar columns only; associations are handled
// by the Replace* helpers.
func (r *MusicRepository) UpdateScalars(tx *gorm.DB, id string, fields map[string]any) error {
	res := tx.Model(&entity.Music{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ReplaceGenres drops every genre association for the record and inserts
// one row per submitted id. An empty list therefore clears the set.
func (r *MusicRepository) ReplaceGenres(tx *gorm.DB, musicID string, genreIDs []uint) error {
	if err := tx.Where("music_id = ?", musicID).Delete(&entity.MusicGenre{}).Error; err != nil {
		return err
	}
	if len(genreIDs) == 0 {
		return nil
	}
	rows := make([]entity.MusicGenre, 0, len(genreIDs))
	for _, id := range genreIDs {
		rows = append(rows, entity.MusicGenre{MusicID: musicID, GenreID: id})
	}
	return tx.Create(&rows).Error
}

func (r *MusicRepository) ReplaceTags(tx *gorm.DB, musicID string, tagIDs []uint) error {
	if err := tx.Where("music_id = ?", musicID).Delete(&entity.MusicTag{}).Error; err != nil {
		return err
	}
	if len(tagIDs) == 0 {
		return nil
	}
	rows := make([]entity.MusicTag, 0, len(tagIDs))
	for _, id := range tagIDs {
		rows = append(rows, entity.MusicTag{MusicID: musicID, TagID: id})
	}
	return tx.Create(&rows).Error
}

func (r *MusicRepository) ReplaceLinks(tx *gorm.DB, musicID string, links []entity.MusicLink) error {
	if err := tx.Where("music_id = ?", musicID).Delete(&entity.MusicLink{}).Error; err != nil {
		return err
	}
	if len(links) == 0 {
		return nil
	}
	for i := range links {
		links[i].ID = 0
		links[i].MusicID = musicID
	}
	return tx.Create(&links).Error
}

func (r *MusicRepository) ReplaceTracks(tx *gorm.DB, musicID string, tracks []entity.Track) error {
	if err := tx.Where("music_id = ?", musicID).Delete(&entity.Track{}).Error; err != nil {
		return err
	}
	if len(tracks) == 0 {
		return nil
	}
	for i := range tracks {
		tracks[i].ID = 0
		tracks[i].MusicID = musicID
	}
	return tx.Create(&tracks).Error
}

// Delete removes all four association kinds and then the record. Callers
// wrap it in a transaction so it is all-or-nothing.
func (r *MusicRepository) Delete(tx *gorm.DB, id string) error {
	if err := tx.Where("music_id = ?", id).Delete(&entity.MusicGenre{}).Error; err != nil {
		return err
	}
	if err := tx.Where("music_id = ?", id).Delete(&entity.MusicTag{}).Error; err != nil {
		return err
	}
	if err := tx.Where("music_id = ?", id).Delete(&entity.MusicLink{}).Error; err != nil {
		return err
	}
	if err := tx.Where("music_id = ?", id).Delete(&entity.Track{}).Error; err != nil {
		return err
	}
	res := tx.Delete(&entity.Music{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
