package entity

type MusicGenre struct {
	MusicID string `gorm:"primaryKey;size:64" json:"musicId"`
	GenreID uint   `gorm:"primaryKey" json:"genreId"`
}
