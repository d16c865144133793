package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/P3RALT/SysEstoque/internal/database/migration"

	"go.uber.org/zap"
)

// RunMigrations applies pending migrations from migrationsDir at startup.
func RunMigrations(db *sql.DB, migrationsDir string) error {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is not set")
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	absPath, err := filepath.Abs(migrationsDir)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}
	migrationsURL := "file://" + absPath

	return migration.Migrate(dbURL, migrationsURL, true, logger)
}
