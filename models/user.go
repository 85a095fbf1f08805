package models

import "time"

// User represents an account entity used for authentication and note
// ownership.
type User struct {
	// UserID is the opaque identifier assigned by the store on creation.
	UserID string `json:"id"`

	// Email is the unique login identifier of the user.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// It is never serialized.
	PasswordHash string `json:"-"`

	// Username is an optional display name. Empty when not provided at
	// registration.
	Username string `json:"username"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
