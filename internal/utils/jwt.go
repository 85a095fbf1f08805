package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidTokenParams is returned by GenerateJWTToken when a required
// argument is empty or zero.
var ErrInvalidTokenParams = errors.New("invalid params for generating JWT Token")

// ErrTokenIssuerMismatch is returned when the "iss" claim differs from the
// expected issuer.
var ErrTokenIssuerMismatch = errors.New("token issuer mismatch")

// ErrTokenEmptySubject is returned when the "sub" claim is missing.
var ErrTokenEmptySubject = errors.New("empty subject error")

// GenerateJWTToken creates an HS256-signed JWT for userID.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user ID
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// All parameters are required.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("go-notes-keeper", userID, 24*time.Hour, "secret")
func GenerateJWTToken(issuer, userID string, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || userID == "" || tokenDuration <= 0 || signKey == "" {
		return models.Token{}, ErrInvalidTokenParams
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{
		RegisteredClaims: claims,
		SignedString:     tokenString,
		UserID:           userID,
	}, nil
}

// VerifyJWTToken checks the signature, the signing algorithm (HS256 only),
// the structure and the issuer of tokenString, and returns its claims.
//
// Time-based claims (exp, nbf, iat) are not checked here; expiry is decided
// by the caller.
//
// Example usage:
//
//	token, err := utils.VerifyJWTToken(rawToken, "secret", "go-notes-keeper")
//	if err != nil {
//	    // token is invalid
//	}
func VerifyJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	claims := &models.Token{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Issuer != tokenIssuer {
		return models.Token{}, ErrTokenIssuerMismatch
	}

	if claims.Subject == "" {
		return models.Token{}, ErrTokenEmptySubject
	}

	claims.UserID = claims.Subject
	claims.SignedString = tokenString

	return *claims, nil
}

// DecodeJWTToken parses the claims of tokenString without verifying its
// signature. Only use it on tokens that already passed VerifyJWTToken.
func DecodeJWTToken(tokenString string) (models.Token, error) {
	claims := &models.Token{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return models.Token{}, fmt.Errorf("error occurred decoding token: %w", err)
	}

	claims.UserID = claims.Subject
	claims.SignedString = tokenString

	return *claims, nil
}
