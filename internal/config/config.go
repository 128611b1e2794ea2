package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds every externally tunable setting. Everything has a sane
// local-development default so the API can start with an empty environment.
type Config struct {
	// DatabaseDSN is the MySQL connection string. clientFoundRows=true makes
	// UPDATE report matched rows instead of changed rows, so a no-op update
	// on an existing key is still a success rather than a 404.
	DatabaseDSN string
	ServerPort  string
	BaseURL     string
	UploadDir   string
	JWTSecret   string
}

// Load reads configuration from the environment (and .env, if present).
func Load() *Config {
	godotenv.Load()

	return &Config{
		DatabaseDSN: getEnv("DB_DSN", "root:password@tcp(127.0.0.1:3306)/bizmate?parseTime=true&clientFoundRows=true"),
		ServerPort:  getEnv("SERVER_PORT", "8080"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:8080"),
		UploadDir:   getEnv("UPLOAD_DIR", "./uploads"),
		JWTSecret:   getEnv("JWT_SECRET", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
