// Package migrations embeds the goose SQL migrations of every supported
// dialect and applies them on start-up.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// migration directories keyed by database/sql driver name
var dialectDirs = map[string]string{
	"pgx":     "postgres",
	"sqlite3": "sqlite",
}

var errNilDB = errors.New("db is nil")

// Migrate applies all pending migrations for driver ("pgx" or "sqlite3").
func Migrate(db *sql.DB, driver string) error {
	if db == nil {
		return errNilDB
	}

	dir, ok := dialectDirs[driver]
	if !ok {
		return fmt.Errorf("migration error: unsupported driver %q", driver)
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(driver); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
