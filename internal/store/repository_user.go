package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/lkarow/shop-api/internal/logger"
	"github.com/lkarow/shop-api/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation, lookup, update, deletion, and cart contents
// against the "users" and "cart_items" tables.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (UserID, CreatedAt).
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrUsernameAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.Username, user.PasswordHash, user.Email, user.Birthday)

	created, err := scanUser(row)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error creating user")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrUsernameAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	created.Cart = []int64{}
	return created, nil
}

// FindUserByUsername retrieves a user record by exact username match and
// loads its cart contents.
//
// Returns [ErrNoUserWasFound] when no record matches.
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findUser(ctx, findUserByUsername, username)
}

// FindUserByID retrieves a user record by its store-assigned identifier and
// loads its cart contents.
//
// Returns [ErrNoUserWasFound] when no record matches.
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return r.findUser(ctx, findUserByID, userID)
}

func (r *userRepository) findUser(ctx context.Context, query string, arg any) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, query, arg)

	foundUser, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.findUser").Msg("error scanning user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if foundUser.Cart, err = r.loadCart(ctx, foundUser.UserID); err != nil {
		return models.User{}, err
	}

	return foundUser, nil
}

// UpdateUser applies a partial update built with squirrel: only the fields
// present in update are written. Returns the updated record with its cart.
//
// Error handling:
//   - empty update → [ErrEmptyUpdate].
//   - no matching user → [ErrNoUserWasFound].
//   - unique_violation on a username change → [ErrUsernameAlreadyExists].
func (r *userRepository) UpdateUser(ctx context.Context, username string, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateUserQuery(username, update)
	if err != nil {
		if errors.Is(err, ErrEmptyUpdate) {
			return models.User{}, err
		}
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	updated, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.UpdateUser").Str("username", username).Msg("error updating user")
		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrUsernameAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if updated.Cart, err = r.loadCart(ctx, updated.UserID); err != nil {
		return models.User{}, err
	}

	return updated, nil
}

// DeleteUser removes the account identified by username. The cart_items
// rows are removed by the ON DELETE CASCADE constraint.
//
// Returns [ErrNoUserWasFound] when no record matched.
func (r *userRepository) DeleteUser(ctx context.Context, username string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteUser, username)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Str("username", username).Msg("error deleting user")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

// AddCartItem puts itemID into the cart of the user identified by username
// and returns the updated account. Re-adding an item already in the cart is
// a no-op.
//
// Error handling:
//   - unknown username → [ErrNoUserWasFound].
//   - foreign_key_violation on item_id → [ErrNoItemWasFound].
func (r *userRepository) AddCartItem(ctx context.Context, username string, itemID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := r.FindUserByUsername(ctx, username)
	if err != nil {
		return models.User{}, err
	}

	if _, err = r.db.ExecContext(ctx, addCartItem, user.UserID, itemID); err != nil {
		log.Err(err).Str("func", "*userRepository.AddCartItem").Int64("item_id", itemID).Msg("error adding cart item")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.User{}, ErrNoItemWasFound
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if user.Cart, err = r.loadCart(ctx, user.UserID); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// RemoveCartItem takes itemID out of the cart of the user identified by
// username and returns the updated account. Removing an item that is not in
// the cart is a no-op.
func (r *userRepository) RemoveCartItem(ctx context.Context, username string, itemID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := r.FindUserByUsername(ctx, username)
	if err != nil {
		return models.User{}, err
	}

	if _, err = r.db.ExecContext(ctx, removeCartItem, user.UserID, itemID); err != nil {
		log.Err(err).Str("func", "*userRepository.RemoveCartItem").Int64("item_id", itemID).Msg("error removing cart item")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if user.Cart, err = r.loadCart(ctx, user.UserID); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// loadCart reads the IDs of all items in the given user's cart.
func (r *userRepository) loadCart(ctx context.Context, userID int64) ([]int64, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getCartItemIDs, userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.loadCart").Int64("user_id", userID).Msg("error loading cart")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	cart := make([]int64, 0)
	for rows.Next() {
		var itemID int64
		if err := rows.Scan(&itemID); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		cart = append(cart, itemID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return cart, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanUser reads one users-table row into a models.User.
func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	err := row.Scan(&user.UserID, &user.Username, &user.PasswordHash, &user.Email, &user.Birthday, &user.CreatedAt)
	if err != nil {
		return models.User{}, err
	}

	return user, nil
}
