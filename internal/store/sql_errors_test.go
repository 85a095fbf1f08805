package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "unique", err: pgError(pgerrcode.UniqueViolation), want: ErrUniqueViolation},
		{name: "wrapped unique", err: fmt.Errorf("insert: %w", pgError(pgerrcode.UniqueViolation)), want: ErrUniqueViolation},
		{name: "foreign key", err: pgError(pgerrcode.ForeignKeyViolation), want: ErrForeignKeyViolation},
		{name: "other sqlstate", err: pgError(pgerrcode.SerializationFailure)},
		{name: "not a pg error", err: errors.New("boom")},
		{name: "nil", err: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestSQLiteErrorClassifier_Classify(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "unique", err: sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}, want: ErrUniqueViolation},
		{name: "primary key", err: sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey}, want: ErrUniqueViolation},
		{name: "foreign key", err: sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey}, want: ErrForeignKeyViolation},
		{name: "not null", err: sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintNotNull}},
		{name: "not a sqlite error", err: errors.New("boom")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestSqliteDSN(t *testing.T) {
	assert.Equal(t, "notes.db?_foreign_keys=on", sqliteDSN("notes.db"))
	assert.Equal(t, "file:notes.db?cache=shared&_foreign_keys=on", sqliteDSN("file:notes.db?cache=shared"))
	assert.Equal(t, "notes.db?_fk=1", sqliteDSN("notes.db?_fk=1"))
}
