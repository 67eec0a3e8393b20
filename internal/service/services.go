package service

import (
	"github.com/lkarow/shop-api/internal/config"
	"github.com/lkarow/shop-api/internal/crypto"
	"github.com/lkarow/shop-api/internal/logger"
	"github.com/lkarow/shop-api/internal/store"
)

type Services struct {
	AuthService    AuthService
	UserService    UserService
	CatalogService CatalogService
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	passwordHasher := crypto.NewPasswordHasher(cfg.BcryptCost)

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, passwordHasher, cfg, logger),
		UserService:    NewUserService(storages.UserRepository, passwordHasher, logger),
		CatalogService: NewCatalogService(storages.ItemRepository, logger),
	}
}
