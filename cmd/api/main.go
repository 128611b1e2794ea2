package main

import (
	"log"

	"github.com/nithin-dev/bizmate-golang/internal/auth"
	"github.com/nithin-dev/bizmate-golang/internal/config"
	"github.com/nithin-dev/bizmate-golang/internal/database"
	"github.com/nithin-dev/bizmate-golang/internal/handlers"
	"github.com/nithin-dev/bizmate-golang/internal/routes"
)

func main() {
	cfg := config.Load()

	auth.SetSecret(cfg.JWTSecret)

	db, err := database.OpenDB(cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	app := &handlers.Handlers{
		DB:  db,
		Cfg: cfg,
	}

	router := routes.SetupRouter(app)

	log.Printf("Starting BizMate API server on port %s...", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
