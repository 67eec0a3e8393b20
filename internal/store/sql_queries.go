package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/lkarow/shop-api/models"
)

const (
	createUser = `INSERT INTO users (username, password_hash, email, birthday)
    VALUES ($1, $2, $3, $4)
    RETURNING user_id, username, password_hash, email, birthday, created_at;`

	findUserByUsername = `SELECT user_id, username, password_hash, email, birthday, created_at
    FROM users
    WHERE username = $1;`

	findUserByID = `SELECT user_id, username, password_hash, email, birthday, created_at
    FROM users
    WHERE user_id = $1;`

	deleteUser = `DELETE FROM users
    WHERE username = $1;`

	getCartItemIDs = `SELECT item_id
    FROM cart_items
    WHERE user_id = $1
    ORDER BY added_at, item_id;`

	addCartItem = `INSERT INTO cart_items (user_id, item_id)
    VALUES ($1, $2)
    ON CONFLICT (user_id, item_id) DO NOTHING;`

	removeCartItem = `DELETE FROM cart_items
    WHERE user_id = $1 AND item_id = $2;`

	findItemByID = `SELECT item_id, name, brand, price, image_path
    FROM items
    WHERE item_id = $1;`
)

// psql builds queries with PostgreSQL-style positional placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildUpdateUserQuery dynamically builds an UPDATE statement setting only
// the fields present in update. Returns ErrEmptyUpdate when the update
// carries nothing to change.
func buildUpdateUserQuery(username string, update models.UserUpdate) (string, []any, error) {
	if update.IsEmpty() {
		return "", nil, ErrEmptyUpdate
	}

	builder := psql.Update("users")

	if update.Username != nil {
		builder = builder.Set("username", *update.Username)
	}
	if update.Password != nil {
		// the caller hashes the password; only the digest reaches SQL
		builder = builder.Set("password_hash", *update.Password)
	}
	if update.Email != nil {
		builder = builder.Set("email", *update.Email)
	}
	if update.Birthday != nil {
		builder = builder.Set("birthday", *update.Birthday)
	}

	return builder.
		Where(sq.Eq{"username": username}).
		Suffix("RETURNING user_id, username, password_hash, email, birthday, created_at").
		ToSql()
}

// buildListItemsQuery builds the catalog listing SELECT with optional
// brand and price-range filters.
func buildListItemsQuery(filter models.ItemFilter) (string, []any, error) {
	builder := psql.
		Select("item_id", "name", "brand", "price", "image_path").
		From("items")

	if filter.Brand != "" {
		builder = builder.Where(sq.Eq{"brand": filter.Brand})
	}
	if filter.MinPrice != nil {
		builder = builder.Where(sq.GtOrEq{"price": *filter.MinPrice})
	}
	if filter.MaxPrice != nil {
		builder = builder.Where(sq.LtOrEq{"price": *filter.MaxPrice})
	}

	return builder.OrderBy("item_id").ToSql()
}
