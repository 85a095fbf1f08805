package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// userRepository is the database/sql implementation of [UserRepository].
// It handles user account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
	ids    *utils.UUIDGenerator
	now    func() time.Time
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
		ids:    utils.NewUUIDGenerator(),
		now:    utcNow,
	}
}

// CreateUser persists a new user record and returns it with the store-assigned
// UserID and CreatedAt.
//
// Error handling:
//   - unique violation on email → [ErrEmailAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingStatement].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.UserID = r.ids.Generate()
	user.CreatedAt = r.now()

	query, args, err := buildCreateUserQuery(r.db.builder(), user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")

		if errors.Is(r.db.classify(err), ErrUniqueViolation) {
			return models.User{}, ErrEmailAlreadyExists
		}
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return user, nil
}

// FindUserByEmail retrieves the user registered with email.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	query, args, err := buildFindUserByEmailQuery(r.db.builder(), email)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.findUser(ctx, "*userRepository.FindUserByEmail", query, args)
}

// FindUserByID retrieves the user with the given id.
func (r *userRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	query, args, err := buildFindUserByIDQuery(r.db.builder(), userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.FindUserByID").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.findUser(ctx, "*userRepository.FindUserByID", query, args)
}

func (r *userRepository) findUser(ctx context.Context, funcName, query string, args []any) (models.User, error) {
	log := logger.FromContext(ctx)

	var user models.User
	err := r.db.QueryRowContext(ctx, query, args...).
		Scan(&user.UserID, &user.Email, &user.PasswordHash, &user.Username, &user.CreatedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrUserNotFound
	case err != nil:
		log.Err(err).Str("func", funcName).Msg("error scanning user")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

// utcNow returns the current UTC time at microsecond precision, the finest
// PostgreSQL keeps.
func utcNow() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
