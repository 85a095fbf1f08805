// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt work factor used for stored passwords.
const DefaultCost = 10

// bcryptHasher is the bcrypt implementation of [PasswordHasher].
type bcryptHasher struct {
	cost int
}

// NewPasswordHasher returns a bcrypt [PasswordHasher] with [DefaultCost].
func NewPasswordHasher() PasswordHasher {
	return &bcryptHasher{cost: DefaultCost}
}

// Hash implements [PasswordHasher].
func (h *bcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt: %w", err)
	}
	return string(hash), nil
}

// Verify implements [PasswordHasher].
func (h *bcryptHasher) Verify(password, hash string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
