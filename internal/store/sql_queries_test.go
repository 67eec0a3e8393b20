package store

import (
	"testing"

	"github.com/lkarow/shop-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildUpdateUserQuery(t *testing.T) {
	username := "bob"
	password := "$2a$10$digest"
	email := "bob@example.com"

	tests := []struct {
		name     string
		update   models.UserUpdate
		wantSQL  string
		wantArgs []any
	}{
		{
			name:     "single field",
			update:   models.UserUpdate{Email: &email},
			wantSQL:  "UPDATE users SET email = $1 WHERE username = $2 RETURNING user_id, username, password_hash, email, birthday, created_at",
			wantArgs: []any{email, "alice"},
		},
		{
			name:     "username and password",
			update:   models.UserUpdate{Username: &username, Password: &password},
			wantSQL:  "UPDATE users SET username = $1, password_hash = $2 WHERE username = $3 RETURNING user_id, username, password_hash, email, birthday, created_at",
			wantArgs: []any{username, password, "alice"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildUpdateUserQuery("alice", tt.update)

			require.NoError(t, err)
			assert.Equal(t, tt.wantSQL, query)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestBuildUpdateUserQuery_Empty(t *testing.T) {
	_, _, err := buildUpdateUserQuery("alice", models.UserUpdate{})

	require.ErrorIs(t, err, ErrEmptyUpdate)
}

func TestBuildListItemsQuery(t *testing.T) {
	minPrice, maxPrice := 50.0, 100.0

	tests := []struct {
		name     string
		filter   models.ItemFilter
		wantSQL  string
		wantArgs []any
	}{
		{
			name:     "no filters",
			filter:   models.ItemFilter{},
			wantSQL:  "SELECT item_id, name, brand, price, image_path FROM items ORDER BY item_id",
			wantArgs: nil,
		},
		{
			name:     "brand only",
			filter:   models.ItemFilter{Brand: "Nike"},
			wantSQL:  "SELECT item_id, name, brand, price, image_path FROM items WHERE brand = $1 ORDER BY item_id",
			wantArgs: []any{"Nike"},
		},
		{
			name:     "price range",
			filter:   models.ItemFilter{MinPrice: &minPrice, MaxPrice: &maxPrice},
			wantSQL:  "SELECT item_id, name, brand, price, image_path FROM items WHERE price >= $1 AND price <= $2 ORDER BY item_id",
			wantArgs: []any{minPrice, maxPrice},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildListItemsQuery(tt.filter)

			require.NoError(t, err)
			assert.Equal(t, tt.wantSQL, query)
			if len(tt.wantArgs) == 0 {
				assert.Empty(t, args)
			} else {
				assert.Equal(t, tt.wantArgs, args)
			}
		})
	}
}
