package store

import (
	"github.com/lkarow/shop-api/internal/logger"
)

// Storages bundles every repository the service layer depends on.
type Storages struct {
	UserRepository UserRepository
	ItemRepository ItemRepository
}

// NewStorages wires all repositories to the shared database connection.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, logger),
		ItemRepository: NewItemRepository(db, logger),
	}
}
