package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lkarow/shop-api/internal/logger"
	"github.com/lkarow/shop-api/models"
)

// itemRepository is the PostgreSQL-backed implementation of [ItemRepository].
type itemRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewItemRepository constructs an [ItemRepository] backed by the provided
// database connection and logger.
func NewItemRepository(db *DB, logger *logger.Logger) ItemRepository {
	logger.Debug().Msg("creating item repository")
	return &itemRepository{
		db:     db,
		logger: logger,
	}
}

// GetAllItems lists catalog items matching filter. The SELECT is built
// dynamically so that only the filters actually supplied appear in the
// WHERE clause.
func (r *itemRepository) GetAllItems(ctx context.Context, filter models.ItemFilter) ([]models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListItemsQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.GetAllItems").Msg("error listing items")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.Item, 0)
	for rows.Next() {
		var item models.Item
		if err := rows.Scan(&item.ItemID, &item.Name, &item.Brand, &item.Price, &item.ImagePath); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}

// FindItemByID retrieves a single catalog item.
//
// Returns [ErrNoItemWasFound] when no record matches.
func (r *itemRepository) FindItemByID(ctx context.Context, itemID int64) (models.Item, error) {
	log := logger.FromContext(ctx)

	var item models.Item
	row := r.db.QueryRowContext(ctx, findItemByID, itemID)

	if err := row.Scan(&item.ItemID, &item.Name, &item.Brand, &item.Price, &item.ImagePath); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Item{}, ErrNoItemWasFound
		}
		log.Err(err).Str("func", "*itemRepository.FindItemByID").Int64("item_id", itemID).Msg("error scanning item")
		return models.Item{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return item, nil
}
