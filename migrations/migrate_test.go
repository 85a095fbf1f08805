// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_DBError(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// goose queries the version table itself; sqlmock rejects every
	// unexpected call
	err = Migrate(db, "pgx")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db, "pgx")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "db is nil")
}

func TestMigrate_UnsupportedDriver(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	err = Migrate(db, "mysql")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported driver")
}

func TestEmbeddedMigrations_BothDialectsInSync(t *testing.T) {
	names := func(dir string) []string {
		entries, err := fs.ReadDir(embedMigrations, dir)
		require.NoError(t, err)

		out := make([]string, 0, len(entries))
		for _, e := range entries {
			out = append(out, e.Name())
		}
		return out
	}

	pg := names("postgres")
	require.NotEmpty(t, pg)
	assert.Equal(t, pg, names("sqlite"))

	for _, name := range pg {
		body, err := fs.ReadFile(embedMigrations, "postgres/"+name)
		require.NoError(t, err)
		assert.True(t, strings.Contains(string(body), "-- +goose Up"), name)
		assert.True(t, strings.Contains(string(body), "-- +goose Down"), name)
	}
}

func TestMigrate_SQLite(t *testing.T) {
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "notes.db"))
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, Migrate(db, "sqlite3"))
	// second run is a no-op
	require.NoError(t, Migrate(db, "sqlite3"))

	for _, table := range []string{"users", "notes"} {
		var name string
		err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		require.NoError(t, err)
		assert.Equal(t, table, name)
	}
}
