package service

import "errors"

// Authentication error kinds. The externally visible taxonomy is deliberately
// coarse: callers can distinguish a credential failure from a store outage
// and a bad token from an unresolvable one, but nothing finer.
var (
	// ErrInvalidDataProvided is returned when a request is missing required
	// fields (e.g. empty username or password).
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is returned on login when the username does not
	// exist OR the password does not match. The two causes are
	// indistinguishable to the caller; the distinction is only logged
	// server-side.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrStoreUnavailable is returned when a user-store lookup could not
	// complete (including cancellation and timeouts). Never conflated with
	// a credential mismatch.
	ErrStoreUnavailable = errors.New("user store unavailable")

	// ErrInvalidToken is returned when a bearer token fails verification for
	// any reason: bad signature, malformed structure, or elapsed expiry.
	// All causes collapse to this one kind to avoid leaking which check
	// failed.
	ErrInvalidToken = errors.New("token is expired or invalid")

	// ErrUnknownSubject is returned when a bearer token verifies but the
	// identity it references no longer resolves (e.g. the account was
	// deleted after issuance).
	ErrUnknownSubject = errors.New("token subject is unknown")

	// ErrTokenCreationFailed is returned when signing a new token fails.
	ErrTokenCreationFailed = errors.New("token creation failed")
)
