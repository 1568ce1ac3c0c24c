package auth

import (
	"fmt"
	"strings"
)

// Signup validation limits.
const (
	MinPasswordLength = 6
	MinMobileLength   = 10
)

// SignupInput holds the raw fields of a signup request.
type SignupInput struct {
	FullName string
	Email    string
	Mobile   string
	Password string
}

// Normalize trims surrounding whitespace from all fields.
func (in *SignupInput) Normalize() {
	in.FullName = strings.TrimSpace(in.FullName)
	in.Email = strings.TrimSpace(in.Email)
	in.Mobile = strings.TrimSpace(in.Mobile)
	in.Password = strings.TrimSpace(in.Password)
}

// Validate checks the signup fields and returns the first problem found.
func (in *SignupInput) Validate() error {
	in.Normalize()

	if in.FullName == "" {
		return fmt.Errorf("full name is required")
	}
	if !strings.Contains(in.Email, "@") {
		return fmt.Errorf("email address is invalid")
	}
	if len(in.Mobile) < MinMobileLength {
		return fmt.Errorf("mobile number must have at least %d digits", MinMobileLength)
	}
	if len(in.Password) < MinPasswordLength {
		return fmt.Errorf("password must be at least %d characters", MinPasswordLength)
	}
	return nil
}

// ValidateLogin checks login credentials for basic shape before hitting the store.
func ValidateLogin(email, password string) error {
	if !strings.Contains(strings.TrimSpace(email), "@") {
		return fmt.Errorf("email address is invalid")
	}
	if len(strings.TrimSpace(password)) < MinPasswordLength {
		return fmt.Errorf("password must be at least %d characters", MinPasswordLength)
	}
	return nil
}
