package validators

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/go-notes-keeper/models"
)

var authMessages = messages{
	FieldEmail + ".required":    "Email is required",
	FieldEmail + ".email":       "Must be a valid email",
	FieldPassword + ".required": "Password is required",
	FieldPassword + ".min":      fmt.Sprintf("Password must be at least %d characters", MinPasswordLength),
	FieldUsername + ".min":      fmt.Sprintf("Username must be at least %d characters", MinUsernameLength),
}

// AuthValidator validates registration and login bodies and the
// Authorization header of protected routes.
type AuthValidator struct {
	engine *validator.Validate
}

// NewAuthValidator constructs an AuthValidator.
func NewAuthValidator() Validator {
	return &AuthValidator{engine: newEngine()}
}

// Validate implements [Validator].
func (v *AuthValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest, *models.RegisterRequest,
		models.LoginRequest, *models.LoginRequest:
		errs, err := checkStruct(v.engine, value, authMessages)
		if err != nil {
			return err
		}
		return errs.Only(fields...).Err()

	case models.AuthorizationHeader:
		return v.validateAuthorizationHeader(value)

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *AuthValidator) validateAuthorizationHeader(header models.AuthorizationHeader) error {
	if v.engine.Var(string(header), "required") != nil {
		return FieldErrors{FieldAuthorization: {"Auth token is required"}}
	}
	return nil
}
