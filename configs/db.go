package configs

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Derescio/bugleworldmusic/entity"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

// ConnectionDB opens the database selected by DB_DRIVER. sqlite is the
// default for local dev; postgres is what deployments use.
func ConnectionDB(cfg *Config) error {
	var (
		database *gorm.DB
		err      error
	)
	switch cfg.DBDriver {
	case "postgres":
		database, err = gorm.Open(postgres.Open(cfg.DBSource), &gorm.Config{})
	case "sqlite":
		database, err = gorm.Open(sqlite.Open(cfg.DBSource), &gorm.Config{})
	default:
		return fmt.Errorf("unsupported DB_DRIVER: %s", cfg.DBDriver)
	}
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	db = database
	return nil
}

func SetupDatabase() error {
	// Explicit join entities must be registered before AutoMigrate so the
	// join tables get composite primary keys instead of surrogate ids.
	if err := db.SetupJoinTable(&entity.Music{}, "Genres", &entity.MusicGenre{}); err != nil {
		return err
	}
	if err := db.SetupJoinTable(&entity.Music{}, "Tags", &entity.MusicTag{}); err != nil {
		return err
	}

	return db.AutoMigrate(
		&entity.User{},
		&entity.Genre{}, &entity.Tag{},
		&entity.Music{}, &entity.MusicLink{}, &entity.Track{},
		&entity.Show{},
		&entity.Merchandise{},
		&entity.Booking{},
	)
}
