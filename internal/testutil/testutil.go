// Package testutil prepares the Postgres database shared by the integration tests.
package testutil

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"

	"clinicdesk/internal/config"
)

// entityTables lists every table a test may write to.
var entityTables = []string{"appointments", "customers", "faqs", "message_templates"}

// SetupTestDB connects with the settings in envRelPath and migrates to the latest version.
// Callers treat an error as "no database" and skip their integration tests.
func SetupTestDB(envRelPath, migrationsRelPath string) (*sqlx.DB, error) {
	_ = godotenv.Overload(envRelPath)
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := sqlx.ConnectContext(ctx, "postgres", cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", cfg.Database.Name, err)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db.DB, os.DirFS(migrationsRelPath))
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("load migrations: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply migrations: %w", err)
	}

	return db, nil
}

func RequireDB(t *testing.T, db *sqlx.DB) {
	t.Helper()
	if db == nil {
		t.Skip("Test database not initialized")
	}
}

// ResetTables empties every entity table and restarts the id sequences.
func ResetTables(t *testing.T, db *sqlx.DB) {
	t.Helper()
	query := "TRUNCATE " + strings.Join(entityTables, ", ") + " RESTART IDENTITY"
	if _, err := db.Exec(query); err != nil {
		t.Fatalf("reset tables: %v", err)
	}
}
