package models

import "time"

// AuthResponse is returned by registration and login.
type AuthResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	AuthToken string `json:"authToken"`
}

// Session describes the session behind the bearer token of the current
// request.
type Session struct {
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expiresAt"`
	IssuedAt  time.Time `json:"issuedAt"`
	UserID    string    `json:"userId"`
	Username  string    `json:"username"`
}

// MessageResponse is the generic error body.
type MessageResponse struct {
	Message string `json:"message"`
}

// ValidationErrorResponse is the body returned when request validation fails.
type ValidationErrorResponse struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

// RouteNotFoundResponse is returned for unknown routes.
type RouteNotFoundResponse struct {
	Message string `json:"message"`
	Route   string `json:"route"`
}

// UpdatedResponse is returned by a successful note update.
type UpdatedResponse struct {
	Updated bool `json:"updated"`
}

// DeletedResponse is returned by a successful note deletion.
type DeletedResponse struct {
	Deleted bool `json:"deleted"`
}
