package cmd

import (
	"os"

	"github.com/Abhinay9346/portfolio/internal/config"
	"github.com/Abhinay9346/portfolio/internal/db"
	"github.com/Abhinay9346/portfolio/internal/logger"
	"github.com/jmoiron/sqlx"
)

// loadConfig reads the same environment as the server. Logs go to stderr so
// command output stays clean.
func loadConfig() *config.Config {
	cfg := config.Load()
	logger.Init(logger.Options{
		Development: cfg.IsDevelopment(),
		Environment: cfg.AppEnv,
		Output:      os.Stderr,
	})
	return cfg
}

func openDB(cfg *config.Config) (*sqlx.DB, error) {
	return db.Init(cfg.DBDriver, cfg.DBConnection)
}
