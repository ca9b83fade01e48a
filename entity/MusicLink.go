package entity

// MusicLink is a streaming link (Spotify, YouTube, ...) owned by a record.
// Replaced wholesale on update, so no soft delete here.
type MusicLink struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	MusicID  string `gorm:"size:64;index;not null" json:"musicId"`
	Platform string `gorm:"not null" json:"platform"`
	URL      string `gorm:"not null" json:"url"`
}
