package configs

import (
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Derescio/bugleworldmusic/entity"
)

// SeedAdmin creates the first admin account from env, once.
func SeedAdmin(cfg *Config) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", cfg.AdminEmail).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", cfg.AdminEmail)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Email:    cfg.AdminEmail,
		Password: string(hash),
		Name:     "Bugle Admin",
		Role:     "admin",
	}
	return db.Create(&admin).Error
}

// SeedLookups inserts the default genres and release-type tags.
func SeedLookups() error {
	for _, name := range []string{"Reggae", "Dancehall", "Hip Hop"} {
		db.FirstOrCreate(&entity.Genre{}, entity.Genre{Name: name})
	}
	for _, name := range []string{"Single", "Album", "EP"} {
		db.FirstOrCreate(&entity.Tag{}, entity.Tag{Name: name})
	}

	log.Println("lookup tables seeded")
	return nil
}

// SeedCatalog inserts a sample release so a fresh install has something
// to show. Skipped once the record exists.
func SeedCatalog() error {
	var count int64
	db.Model(&entity.Music{}).Where("id = ?", "toxicity-track").Count(&count)
	if count > 0 {
		return nil
	}

	var reggae, dancehall entity.Genre
	if err := db.Where("name = ?", "Reggae").First(&reggae).Error; err != nil {
		return err
	}
	if err := db.Where("name = ?", "Dancehall").First(&dancehall).Error; err != nil {
		return err
	}
	var single entity.Tag
	if err := db.Where("name = ?", "Single").First(&single).Error; err != nil {
		return err
	}

	desc := "A powerful reggae track exploring themes of social consciousness and personal growth."
	release := time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC)
	duration := 245
	cover := "/images/Albums/Toxicity.png"
	label := "Bugle World Music"

	music := entity.Music{
		ID:            "toxicity-track",
		Title:         "Toxicity",
		Description:   &desc,
		ReleaseDate:   &release,
		Duration:      &duration,
		CoverImageURL: &cover,
		Label:         &label,
		Genres:        []entity.Genre{reggae, dancehall},
		Tags:          []entity.Tag{single},
		Links: []entity.MusicLink{
			{Platform: "Spotify", URL: "https://open.spotify.com/track/toxicity"},
			{Platform: "YouTube", URL: "https://youtube.com/watch?v=toxicity"},
			{Platform: "Apple Music", URL: "https://music.apple.com/track/toxicity"},
		},
	}
	if err := db.Create(&music).Error; err != nil {
		return err
	}

	log.Println("sample catalog seeded")
	return nil
}
