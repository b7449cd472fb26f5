package auth

import "github.com/mfigueira/counseldesk/pkg/store/models"

// SignupRequest contains the payload required to register a visitor.
// Password arrives in plaintext and is replaced with its fingerprint before
// anything is persisted.
type SignupRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone"`
	Password  string `json:"password" validate:"required"`
}

// LoginRequest carries the login credentials.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SignupResult is the structured outcome of a signup attempt. Failures are
// data, not errors: nothing escapes the manager as a fault.
type SignupResult struct {
	Success bool   `json:"success"`
	UserID  uint   `json:"userId,omitempty"`
	Error   string `json:"error,omitempty"`
}

// LoginResult is the structured outcome of a login attempt.
type LoginResult struct {
	Success bool         `json:"success"`
	User    *models.User `json:"user,omitempty"`
	Error   string       `json:"error,omitempty"`
}
