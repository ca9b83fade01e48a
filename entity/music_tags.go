package entity

type MusicTag struct {
	MusicID string `gorm:"primaryKey;size:64" json:"musicId"`
	TagID   uint   `gorm:"primaryKey" json:"tagId"`
}
