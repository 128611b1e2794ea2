package handlers

import (
	"database/sql"

	"github.com/nithin-dev/bizmate-golang/internal/config"
)

// Handlers struct holds all dependencies for our handlers.
type Handlers struct {
	DB  *sql.DB
	Cfg *config.Config
}
