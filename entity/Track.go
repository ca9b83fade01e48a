package entity

// Track is one entry of an album/EP tracklist, ordered by Position.
type Track struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	MusicID  string `gorm:"size:64;index;not null" json:"musicId"`
	Title    string `gorm:"not null" json:"title"`
	Duration int    `gorm:"not null;default:0" json:"duration"` // seconds
	Position int    `gorm:"not null;default:0" json:"position"`
}
