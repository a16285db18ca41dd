package main

import (
	"log"

	"github.com/rossim-dev/scoutbase/config"
	_ "github.com/rossim-dev/scoutbase/docs"
	"github.com/rossim-dev/scoutbase/internal/player"
	"github.com/rossim-dev/scoutbase/internal/user"
	"github.com/rossim-dev/scoutbase/internal/video"
	"github.com/rossim-dev/scoutbase/routes"
)

// @title ScoutBase REST API
// @version 1.0
// @description Youth sports talent-scouting platform: player profiles, videos, access requests.
// @host localhost:8080
// @BasePath /
func main() {
	if err := config.Initialize(); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	cfg := config.GetConfig()

	err := config.DB.AutoMigrate(
		&user.User{},
		&player.Player{}, &player.PlayerParent{}, &player.AccessRequest{},
		&video.Video{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
	log.Println("AutoMigrate successful")

	if err := video.EnsureUploadDir(cfg.Upload.Dir); err != nil {
		log.Fatalf("Failed to create upload directory: %v", err)
	}

	r := routes.SetupRoutes(config.DB, cfg)

	log.Printf("Starting server on port %s in %s mode\n", cfg.App.Port, cfg.App.Env)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
