package models

import "time"

// User represents a shop account used for authentication and profile data.
// JSON field names follow the public API contract (capitalised keys),
// which existing clients depend on.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal store-assigned identifier of the user.
	// It is embedded in issued tokens so that a bearer token can be
	// resolved back to an account even if the username changes later.
	UserID int64 `json:"_id"`

	// Username is the unique login identifier.
	Username string `json:"Username"`

	// PasswordHash stores the bcrypt digest of the user's password.
	// This value MUST be a hash output, never plaintext.
	// It is never serialised to JSON.
	PasswordHash string `json:"-"`

	// Email is the user's contact address.
	Email string `json:"Email"`

	// Birthday is optional profile data.
	Birthday *time.Time `json:"Birthday,omitempty"`

	// Cart holds the IDs of catalog items the user has added to their cart.
	Cart []int64 `json:"Cart"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"CreatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
