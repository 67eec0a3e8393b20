// Package crypto holds the credential-protection primitives of the
// application. The password hasher defined here is the only component
// allowed to see plaintext passwords.
package crypto

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher performs one-way salted hashing and verification of
// user passwords.
type PasswordHasher interface {
	// Hash produces a salted digest of the given plaintext. A fresh random
	// salt is used on every call, so hashing the same input twice yields
	// two different digests that both verify.
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext matches the given digest.
	// A malformed digest yields false, never an error or a panic.
	Verify(plaintext, digest string) bool
}

// bcryptHasher is the bcrypt-backed implementation of [PasswordHasher].
// The cost is fixed at construction time so that verification stays
// tractable while brute force remains expensive.
type bcryptHasher struct {
	cost int
}

// NewPasswordHasher constructs a [PasswordHasher] with the given bcrypt cost.
// A cost outside the range supported by bcrypt falls back to
// [bcrypt.DefaultCost].
func NewPasswordHasher(cost int) PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &bcryptHasher{cost: cost}
}

func (h *bcryptHasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(digest), nil
}

func (h *bcryptHasher) Verify(plaintext, digest string) bool {
	// bcrypt embeds the salt and cost in the digest and compares in
	// constant time; any parse failure surfaces as a mismatch.
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
