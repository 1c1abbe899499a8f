package main

import (
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/lib/pq"
	"github.com/pressly/goose/v3"

	"clinicdesk/internal/config"
	"clinicdesk/internal/logging"
)

const (
	pqInvalidCatalogName = "3D000"
	pqDuplicateDatabase  = "42P04"
)

func main() {
	_ = godotenv.Load()

	command := flag.String("command", "up", "Migration command: up, down, down-to, status, create")
	name := flag.String("name", "", "Migration name (required for create)")
	targetVersion := flag.Int64("version", 0, "Target version for down-to command")
	dir := flag.String("dir", "migrations", "Migrations directory")
	flag.Parse()

	cfg := config.Load()
	logger := logging.New("clinicdesk-migrate", cfg.LogLevel)

	if err := run(cfg, logger, *command, *dir, *name, *targetVersion); err != nil {
		logger.Error("migration failed", "command", *command, "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger, command, dir, name string, version int64) error {
	db, err := open(cfg.Database.DSN())
	if err != nil {
		if command != "up" || !hasPQCode(err, pqInvalidCatalogName) {
			return fmt.Errorf("connect: %w", err)
		}
		if err := createDatabase(cfg, logger); err != nil {
			return err
		}
		if db, err = open(cfg.Database.DSN()); err != nil {
			return fmt.Errorf("connect: %w", err)
		}
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}

	switch command {
	case "up":
		if err := goose.Up(db, dir); err != nil {
			return err
		}
		logger.Info("migrations applied")
	case "down":
		if err := goose.Down(db, dir); err != nil {
			return err
		}
		logger.Info("last migration rolled back")
	case "down-to":
		if err := goose.DownTo(db, dir, version); err != nil {
			return err
		}
		logger.Info("migrations rolled back", "version", version)
	case "status":
		return goose.Status(db, dir)
	case "create":
		if name == "" {
			return errors.New("migration name is required for create")
		}
		if err := goose.Create(db, dir, name, "sql"); err != nil {
			return err
		}
		logger.Info("migration created", "name", name)
	default:
		return fmt.Errorf("unknown command %q", command)
	}
	return nil
}

func open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func hasPQCode(err error, code pq.ErrorCode) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == code
}

// createDatabase connects to the maintenance database and creates the configured one.
func createDatabase(cfg *config.Config, logger *slog.Logger) error {
	admin := cfg.Database
	admin.Name = "postgres"

	db, err := open(admin.DSN())
	if err != nil {
		return fmt.Errorf("connect to postgres database: %w", err)
	}
	defer db.Close()

	_, err = db.Exec(fmt.Sprintf("CREATE DATABASE %s", pq.QuoteIdentifier(cfg.Database.Name)))
	if err != nil && !hasPQCode(err, pqDuplicateDatabase) {
		return fmt.Errorf("create database: %w", err)
	}

	logger.Info("database created", "name", cfg.Database.Name)
	return nil
}
