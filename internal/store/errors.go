package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when registering a user whose email
	// is already stored.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when a user lookup matches no row, or when
	// a note references a user that does not exist.
	ErrUserNotFound = errors.New("user was not found")

	// ErrNoteNotFound is returned when a note lookup, update or delete
	// matches no row.
	ErrNoteNotFound = errors.New("note was not found")
)

// Constraint classes produced by [ErrorClassificator] implementations.
var (
	ErrUniqueViolation     = errors.New("unique constraint violation")
	ErrForeignKeyViolation = errors.New("foreign key constraint violation")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrUnsupportedDriver is returned when the configured driver is neither
	// PostgreSQL nor SQLite.
	ErrUnsupportedDriver = errors.New("unsupported database driver")

	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT, UPDATE or
	// DELETE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
