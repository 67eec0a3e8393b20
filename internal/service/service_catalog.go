package service

import (
	"context"

	"github.com/lkarow/shop-api/internal/logger"
	"github.com/lkarow/shop-api/internal/store"
	"github.com/lkarow/shop-api/models"
)

// catalogService is the concrete implementation of CatalogService.
type catalogService struct {
	itemRepository store.ItemRepository

	logger *logger.Logger
}

// NewCatalogService constructs a CatalogService wired to the given repository.
func NewCatalogService(itemRepository store.ItemRepository, logger *logger.Logger) CatalogService {
	return &catalogService{
		itemRepository: itemRepository,
		logger:         logger,
	}
}

func (c *catalogService) ListItems(ctx context.Context, filter models.ItemFilter) ([]models.Item, error) {
	return c.itemRepository.GetAllItems(ctx, filter)
}

func (c *catalogService) GetItem(ctx context.Context, itemID int64) (models.Item, error) {
	if itemID == 0 {
		return models.Item{}, ErrInvalidDataProvided
	}

	return c.itemRepository.FindItemByID(ctx, itemID)
}
