package domain

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// Credential validation errors
var (
	// ErrEmptyName is returned when a registration name is missing.
	ErrEmptyName = errors.New("name cannot be empty")

	// ErrInvalidEmail is returned when an email address is malformed.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrInvalidPassword is returned when a password is missing or too short.
	ErrInvalidPassword = errors.New("invalid password")
)

// Shared validator instance for credential structs.
var validate = validator.New()

// LoginRequest carries the credentials sent to POST /login.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Validate checks the login credentials before any network call is made.
func (r *LoginRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return credentialError(err)
	}
	return nil
}

// RegisterRequest carries the payload sent to POST /register.
type RegisterRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// Validate checks the registration payload before any network call is made.
func (r *RegisterRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return credentialError(err)
	}
	return nil
}

// credentialError translates validator failures into the package's
// sentinel errors so callers can branch with errors.Is.
func credentialError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	for _, fe := range fieldErrs {
		switch fe.Field() {
		case "Name":
			return ErrEmptyName
		case "Email":
			return ErrInvalidEmail
		case "Password":
			return ErrInvalidPassword
		}
	}
	return err
}
