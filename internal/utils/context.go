// Package utils provides general-purpose helpers used across the
// application: typed context keys, JSON responses, the resty-based HTTP
// client, JWT generation and verification, id generation and the field
// filter applied to partial updates.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key under which the auth middleware stores the
// authenticated user id.
var UserIDCtxKey = contextKey("userID")

// TokenCtxKey is the key under which the auth middleware stores the raw
// bearer token of the request.
var TokenCtxKey = contextKey("token")

// WithAuth returns a copy of ctx carrying the authenticated user id and the
// raw token it was taken from.
func WithAuth(ctx context.Context, userID, rawToken string) context.Context {
	ctx = context.WithValue(ctx, UserIDCtxKey, userID)
	return context.WithValue(ctx, TokenCtxKey, rawToken)
}

// GetUserIDFromContext retrieves the authenticated user id.
//
// ok is false when the value is missing, empty or has an unexpected type.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(string)
	return userID, ok && userID != ""
}

// GetTokenFromContext retrieves the raw bearer token of the request.
func GetTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(TokenCtxKey).(string)
	return token, ok && token != ""
}
