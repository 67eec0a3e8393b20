package http

import (
	"context"
	"testing"

	"github.com/lkarow/shop-api/internal/logger"
	"github.com/lkarow/shop-api/internal/service"
	"github.com/lkarow/shop-api/models"
)

// Function-field fakes for the service interfaces. Each test assigns only
// the functions it expects the handler to call.

type mockAuthService struct {
	loginFn        func(ctx context.Context, credentials models.Credentials) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	authenticateFn func(ctx context.Context, tokenString string) (models.User, error)
}

func (m *mockAuthService) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	return m.loginFn(ctx, credentials)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) Authenticate(ctx context.Context, tokenString string) (models.User, error) {
	return m.authenticateFn(ctx, tokenString)
}

type mockUserService struct {
	registerFn       func(ctx context.Context, request models.RegisterRequest) (models.User, error)
	getUserFn        func(ctx context.Context, username string) (models.User, error)
	updateUserFn     func(ctx context.Context, username string, update models.UserUpdate) (models.User, error)
	deleteUserFn     func(ctx context.Context, username string) error
	addCartItemFn    func(ctx context.Context, username string, itemID int64) (models.User, error)
	removeCartItemFn func(ctx context.Context, username string, itemID int64) (models.User, error)
}

func (m *mockUserService) Register(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	return m.registerFn(ctx, request)
}

func (m *mockUserService) GetUser(ctx context.Context, username string) (models.User, error) {
	return m.getUserFn(ctx, username)
}

func (m *mockUserService) UpdateUser(ctx context.Context, username string, update models.UserUpdate) (models.User, error) {
	return m.updateUserFn(ctx, username, update)
}

func (m *mockUserService) DeleteUser(ctx context.Context, username string) error {
	return m.deleteUserFn(ctx, username)
}

func (m *mockUserService) AddCartItem(ctx context.Context, username string, itemID int64) (models.User, error) {
	return m.addCartItemFn(ctx, username, itemID)
}

func (m *mockUserService) RemoveCartItem(ctx context.Context, username string, itemID int64) (models.User, error) {
	return m.removeCartItemFn(ctx, username, itemID)
}

type mockCatalogService struct {
	listItemsFn func(ctx context.Context, filter models.ItemFilter) ([]models.Item, error)
	getItemFn   func(ctx context.Context, itemID int64) (models.Item, error)
}

func (m *mockCatalogService) ListItems(ctx context.Context, filter models.ItemFilter) ([]models.Item, error) {
	return m.listItemsFn(ctx, filter)
}

func (m *mockCatalogService) GetItem(ctx context.Context, itemID int64) (models.Item, error) {
	return m.getItemFn(ctx, itemID)
}

// newTestHandler wires a Handler over the given service fakes.
func newTestHandler(t *testing.T, auth service.AuthService, user service.UserService, catalog service.CatalogService) *Handler {
	t.Helper()

	return NewHandler(&service.Services{
		AuthService:    auth,
		UserService:    user,
		CatalogService: catalog,
	}, logger.Nop())
}
