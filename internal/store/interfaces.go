package store

import (
	"context"

	"github.com/lkarow/shop-api/models"
)

// UserRepository is the persistence contract the authentication core and the
// account handlers require from the user store.
type UserRepository interface {
	// CreateUser persists a new account and returns it with server-assigned
	// fields populated. The PasswordHash field must already hold a digest.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername retrieves an account by exact username match.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// FindUserByID retrieves an account by its store-assigned identifier.
	// Used by the token verifier to resolve a bearer token's subject.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// UpdateUser applies a partial update to the account identified by
	// username and returns the updated record. A Password carried by the
	// update must already be hashed by the caller.
	UpdateUser(ctx context.Context, username string, update models.UserUpdate) (models.User, error)

	// DeleteUser removes the account identified by username together with
	// its cart contents.
	DeleteUser(ctx context.Context, username string) error

	// AddCartItem puts the given catalog item into the user's cart and
	// returns the updated account. Adding an item twice is a no-op.
	AddCartItem(ctx context.Context, username string, itemID int64) (models.User, error)

	// RemoveCartItem takes the given catalog item out of the user's cart
	// and returns the updated account.
	RemoveCartItem(ctx context.Context, username string, itemID int64) (models.User, error)
}

// ItemRepository is the persistence contract of the catalog.
type ItemRepository interface {
	// GetAllItems lists catalog items matching the given filter.
	// A zero-valued filter lists the whole catalog.
	GetAllItems(ctx context.Context, filter models.ItemFilter) ([]models.Item, error)

	// FindItemByID retrieves a single catalog item.
	FindItemByID(ctx context.Context, itemID int64) (models.Item, error)
}
