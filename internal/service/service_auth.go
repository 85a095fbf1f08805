package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/crypto"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification and session
// inspection using a UserRepository for persistence, a PasswordHasher for
// bcrypt hashing and a TokenService for JWT issuance.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hasher hashes passwords on registration and checks them on login.
	hasher crypto.PasswordHasher

	tokenService TokenService

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, tokenService TokenService, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		tokenService:   tokenService,
		logger:         logger,
	}
}

// Register creates a new user account and issues its first token.
//
// Returns:
//   - ErrInvalidDataProvided if email or password is empty.
//   - ErrPasswordHashing if the password cannot be hashed.
//   - store.ErrEmailAlreadyExists (wrapped) if the email is taken.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	log := logger.FromContext(ctx)

	if req.Email == "" || req.Password == "" {
		log.Error().Str("email", req.Email).Msg("invalid user data provided")
		return models.AuthResponse{}, ErrInvalidDataProvided
	}

	hash, err := a.hasher.Hash(req.Password)
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("password hashing failed")
		return models.AuthResponse{}, fmt.Errorf("%w: %w", ErrPasswordHashing, err)
	}

	user := models.User{
		Email:        req.Email,
		PasswordHash: hash,
	}
	if req.Username != nil {
		user.Username = *req.Username
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user creation ended with error")
		return models.AuthResponse{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return a.authResponse(ctx, registeredUser)
}

// Login authenticates an existing user.
//
// An unknown email and a wrong password both yield ErrInvalidCredentials.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	log := logger.FromContext(ctx)

	if req.Email == "" || req.Password == "" {
		log.Error().Str("email", req.Email).Msg("invalid user data provided")
		return models.AuthResponse{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Info().Str("email", req.Email).Msg("login attempt for unknown email")
		return models.AuthResponse{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user search by email failed")
		return models.AuthResponse{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !a.hasher.Verify(req.Password, foundUser.PasswordHash) {
		log.Info().Str("user_id", foundUser.UserID).Msg("wrong password")
		return models.AuthResponse{}, ErrInvalidCredentials
	}

	return a.authResponse(ctx, foundUser)
}

// CurrentSession describes the session of userID. rawToken must already
// have passed verification.
//
// Returns ErrUnknownUser if the user was removed after the token was issued
// and ErrTokenTimestamps if "iat" or "exp" cannot be read.
func (a *authService) CurrentSession(ctx context.Context, userID, rawToken string) (models.Session, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByID(ctx, userID)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Info().Str("user_id", userID).Msg("session owner no longer exists")
		return models.Session{}, ErrUnknownUser
	}
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("user search by id failed")
		return models.Session{}, fmt.Errorf("user search by id failed: %w", err)
	}

	token, err := a.tokenService.Decode(ctx, rawToken)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("error decoding token")
		return models.Session{}, fmt.Errorf("%w: %w", ErrTokenTimestamps, err)
	}

	issuedAt, err := token.IssuedAtTime()
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrTokenTimestamps, err)
	}
	expiresAt, err := token.ExpiresAtTime()
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrTokenTimestamps, err)
	}

	return models.Session{
		Email:     user.Email,
		ExpiresAt: expiresAt,
		IssuedAt:  issuedAt,
		UserID:    user.UserID,
		Username:  user.Username,
	}, nil
}

func (a *authService) authResponse(ctx context.Context, user models.User) (models.AuthResponse, error) {
	token, err := a.tokenService.Issue(ctx, user.UserID)
	if err != nil {
		return models.AuthResponse{}, err
	}

	return models.AuthResponse{
		ID:        user.UserID,
		Username:  user.Username,
		Email:     user.Email,
		AuthToken: token.SignedString,
	}, nil
}
