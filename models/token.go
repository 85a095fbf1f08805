package models

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrTokenHasNoExpiry is returned when a token carries no usable "exp" claim.
var ErrTokenHasNoExpiry = errors.New("token has no expiration time")

// ErrTokenHasNoIssuedAt is returned when a token carries no usable "iat" claim.
var ErrTokenHasNoIssuedAt = errors.New("token has no issued-at time")

// Token is a session token: the standard JWT claim set plus the compact
// signed form and the user id taken from the "sub" claim.
//
// A pointer to Token is used directly as the claims destination when parsing,
// so the embedded [jwt.RegisteredClaims] provides the [jwt.Claims] methods.
type Token struct {
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim.
	UserID string `json:"-"`
}

// ExpiresAtTime returns the "exp" claim as time.Time.
func (t *Token) ExpiresAtTime() (time.Time, error) {
	exp, err := t.GetExpirationTime()
	if err != nil {
		return time.Time{}, err
	}
	if exp == nil {
		return time.Time{}, ErrTokenHasNoExpiry
	}
	return exp.Time, nil
}

// IssuedAtTime returns the "iat" claim as time.Time.
func (t *Token) IssuedAtTime() (time.Time, error) {
	iat, err := t.GetIssuedAt()
	if err != nil {
		return time.Time{}, err
	}
	if iat == nil {
		return time.Time{}, ErrTokenHasNoIssuedAt
	}
	return iat.Time, nil
}

// IsExpired reports whether the token's "exp" claim is at or before now.
// A token without a readable expiry yields an error instead of a verdict.
func (t *Token) IsExpired(now time.Time) (bool, error) {
	exp, err := t.ExpiresAtTime()
	if err != nil {
		return false, err
	}
	return !now.Before(exp), nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
