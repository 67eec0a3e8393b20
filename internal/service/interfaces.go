package service

import (
	"context"

	"github.com/lkarow/shop-api/models"
)

// AuthService is the authentication core: credential verification, token
// issuance, and token verification.
type AuthService interface {
	// Login verifies a username/password pair against the user store.
	// Returns the resolved identity, or ErrInvalidCredentials when either
	// the username is unknown or the password does not match, or
	// ErrStoreUnavailable when the lookup could not complete.
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)

	// CreateToken issues a signed, time-limited bearer token for an
	// authenticated identity.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// Authenticate verifies a raw bearer token string and resolves it back
	// to a user identity via the user store. Returns ErrInvalidToken on any
	// verification failure, ErrUnknownSubject when the referenced identity
	// no longer exists, or ErrStoreUnavailable when the lookup failed.
	Authenticate(ctx context.Context, tokenString string) (models.User, error)
}

// UserService manages shop accounts and their carts.
type UserService interface {
	// Register creates a new account. The raw password is hashed before it
	// reaches the store.
	Register(ctx context.Context, request models.RegisterRequest) (models.User, error)

	// GetUser fetches an account by username.
	GetUser(ctx context.Context, username string) (models.User, error)

	// UpdateUser applies a partial account update, re-hashing the password
	// if one is supplied.
	UpdateUser(ctx context.Context, username string, update models.UserUpdate) (models.User, error)

	// DeleteUser removes an account.
	DeleteUser(ctx context.Context, username string) error

	// AddCartItem puts a catalog item into the user's cart.
	AddCartItem(ctx context.Context, username string, itemID int64) (models.User, error)

	// RemoveCartItem takes a catalog item out of the user's cart.
	RemoveCartItem(ctx context.Context, username string, itemID int64) (models.User, error)
}

// CatalogService serves the item catalog.
type CatalogService interface {
	// ListItems lists catalog items matching the given filter.
	ListItems(ctx context.Context, filter models.ItemFilter) ([]models.Item, error)

	// GetItem fetches a single catalog item.
	GetItem(ctx context.Context, itemID int64) (models.Item, error)
}
