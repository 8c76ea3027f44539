package domain

import (
	"errors"
	"time"
)

var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid username or password")

// User models an account held by the credential store. The password hash and
// security stamp never leave the process boundary.
type User struct {
	ID            string    `json:"id"`
	Username      string    `json:"username"`
	Email         string    `json:"email,omitempty"`
	PasswordHash  string    `json:"-"`
	SecurityStamp string    `json:"-"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// PasswordViolation describes a single failed password policy rule.
type PasswordViolation struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// PasswordPolicyError aggregates every rule the candidate password broke, so
// the client receives the full list in one round trip.
type PasswordPolicyError struct {
	Violations []PasswordViolation
}

func (e *PasswordPolicyError) Error() string {
	return "password does not satisfy the account policy"
}
