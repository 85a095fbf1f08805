package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// TokenDuration is how long an issued session token stays valid.
const TokenDuration = 24 * time.Hour

// tokenService signs and verifies HS256 session tokens.
type tokenService struct {
	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected.
	tokenIssuer string

	tokenDuration time.Duration

	logger *logger.Logger
}

// NewTokenService constructs a [TokenService] from the app section of the
// configuration. The returned service is safe for concurrent use.
func NewTokenService(cfg config.App, logger *logger.Logger) TokenService {
	return &tokenService{
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: TokenDuration,
		logger:        logger,
	}
}

// Issue signs a token for userID with the configured issuer.
func (s *tokenService) Issue(ctx context.Context, userID string) (models.Token, error) {
	token, err := utils.GenerateJWTToken(s.tokenIssuer, userID, s.tokenDuration, s.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*tokenService.Issue").Msg("error issuing token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// Verify normalises every parsing failure (malformed, bad signature, wrong
// algorithm, wrong issuer) to [ErrTokenIsInvalid] so that callers do not need
// to inspect low-level JWT errors.
func (s *tokenService) Verify(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.VerifyJWTToken(tokenString, s.tokenSignKey, s.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*tokenService.Verify").Msg("token verification failed")
		return models.Token{}, ErrTokenIsInvalid
	}

	return token, nil
}

func (s *tokenService) Decode(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.DecodeJWTToken(tokenString)
	if err != nil {
		return models.Token{}, ErrTokenIsInvalid
	}

	return token, nil
}
