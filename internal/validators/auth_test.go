// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestAuthValidator_Register(t *testing.T) {
	v := NewAuthValidator()

	tests := []struct {
		name       string
		req        models.RegisterRequest
		wantFields []string
	}{
		{
			name: "valid without username",
			req:  models.RegisterRequest{Email: "a@x.io", Password: "secret1"},
		},
		{
			name: "valid with username",
			req:  models.RegisterRequest{Email: "a@x.io", Password: "secret1", Username: strPtr("alice")},
		},
		{
			name:       "short username",
			req:        models.RegisterRequest{Email: "a@x.io", Password: "secret1", Username: strPtr("al")},
			wantFields: []string{FieldUsername},
		},
		{
			name:       "empty username provided",
			req:        models.RegisterRequest{Email: "a@x.io", Password: "secret1", Username: strPtr("")},
			wantFields: []string{FieldUsername},
		},
		{
			name:       "short password",
			req:        models.RegisterRequest{Email: "a@x.io", Password: "12345"},
			wantFields: []string{FieldPassword},
		},
		{
			name:       "missing everything",
			req:        models.RegisterRequest{},
			wantFields: []string{FieldEmail, FieldPassword},
		},
		{
			name:       "invalid email",
			req:        models.RegisterRequest{Email: "not-an-email", Password: "secret1"},
			wantFields: []string{FieldEmail},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.req)
			assertFieldErrors(t, err, tt.wantFields)
		})
	}
}

func TestAuthValidator_Login(t *testing.T) {
	v := NewAuthValidator()

	require.NoError(t, v.Validate(context.Background(), &models.LoginRequest{Email: "a@x.io", Password: "secret1"}))

	err := v.Validate(context.Background(), models.LoginRequest{Email: "a@x.io"})
	assertFieldErrors(t, err, []string{FieldPassword})

	var fe FieldErrors
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, []string{"Password is required"}, fe[FieldPassword])
}

func TestAuthValidator_FieldScope(t *testing.T) {
	v := NewAuthValidator()

	err := v.Validate(context.Background(), models.LoginRequest{}, FieldEmail)

	assertFieldErrors(t, err, []string{FieldEmail})
}

func TestAuthValidator_AuthorizationHeader(t *testing.T) {
	v := NewAuthValidator()

	assert.NoError(t, v.Validate(context.Background(), models.AuthorizationHeader("Bearer abc")))
	assertFieldErrors(t, v.Validate(context.Background(), models.AuthorizationHeader("")), []string{FieldAuthorization})
}

func TestAuthValidator_UnsupportedType(t *testing.T) {
	err := NewAuthValidator().Validate(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestAuthValidator_Email(t *testing.T) {
	v := NewAuthValidator()

	tests := map[string]bool{
		"a@x.io":              true,
		"first.last@mail.com": true,
		"user+tag@sub.dom.io": true,
		"plain":               false,
		"a@x.":                false,
		"Bob <bob@x.io>":      false,
		"@x.io":               false,
	}

	for email, valid := range tests {
		err := v.Validate(context.Background(), models.LoginRequest{Email: email, Password: "secret1"})
		if valid {
			assert.NoError(t, err, email)
			continue
		}
		var fe FieldErrors
		require.ErrorAs(t, err, &fe, email)
		assert.Equal(t, []string{"Must be a valid email"}, fe[FieldEmail], email)
	}
}

func TestAuthValidator_Messages(t *testing.T) {
	v := NewAuthValidator()

	err := v.Validate(context.Background(), models.RegisterRequest{Password: "12345", Username: strPtr("al")})

	var fe FieldErrors
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, FieldErrors{
		FieldEmail:    {"Email is required"},
		FieldPassword: {"Password must be at least 6 characters"},
		FieldUsername: {"Username must be at least 3 characters"},
	}, fe)
}

func assertFieldErrors(t *testing.T, err error, wantFields []string) {
	t.Helper()

	if len(wantFields) == 0 {
		assert.NoError(t, err)
		return
	}

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidationFailed)

	var fe FieldErrors
	require.ErrorAs(t, err, &fe)
	assert.Len(t, fe, len(wantFields))
	for _, field := range wantFields {
		assert.NotEmpty(t, fe[field], "expected errors for %s", field)
	}
}
