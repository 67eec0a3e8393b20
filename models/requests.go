package models

import "time"

// Credentials carries the raw login fields supplied by the HTTP boundary.
// The Password field holds plaintext only for the lifetime of the request
// and is never persisted or logged.
type Credentials struct {
	Username string `json:"Username"`
	Password string `json:"Password"`
}

// RegisterRequest is the payload for account registration.
type RegisterRequest struct {
	Username string     `json:"Username"`
	Password string     `json:"Password"`
	Email    string     `json:"Email"`
	Birthday *time.Time `json:"Birthday,omitempty"`
}

// UserUpdate represents a partial account update. Only non-nil fields are
// written; a supplied Password is re-hashed before it reaches the store.
type UserUpdate struct {
	Username *string    `json:"Username,omitempty"`
	Password *string    `json:"Password,omitempty"`
	Email    *string    `json:"Email,omitempty"`
	Birthday *time.Time `json:"Birthday,omitempty"`
}

// IsEmpty reports whether the update carries no fields at all.
func (u UserUpdate) IsEmpty() bool {
	return u.Username == nil && u.Password == nil && u.Email == nil && u.Birthday == nil
}
