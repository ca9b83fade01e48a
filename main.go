package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/Derescio/bugleworldmusic/configs"
	"github.com/Derescio/bugleworldmusic/middlewares"
	"github.com/Derescio/bugleworldmusic/routes"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	if err := configs.ConnectionDB(cfg); err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	db := configs.DB()

	// migrate (registers the music_genres/music_tags join tables first)
	if err := configs.SetupDatabase(); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	if err := configs.SeedAdmin(cfg); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if err := configs.SeedLookups(); err != nil {
		log.Fatalf("seed lookups failed: %v", err)
	}
	if err := configs.SeedCatalog(); err != nil {
		log.Fatalf("seed catalog failed: %v", err)
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, db, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
