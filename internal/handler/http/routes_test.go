package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lkarow/shop-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoutes_Welcome(t *testing.T) {
	handler := newTestHandler(t, &mockAuthService{}, &mockUserService{}, &mockCatalogService{})
	router := handler.Init()

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Welcome")
}

func TestRoutes_ProtectedRequireToken(t *testing.T) {
	handler := newTestHandler(t, &mockAuthService{}, &mockUserService{}, &mockCatalogService{})
	router := handler.Init()

	protected := []struct {
		method string
		target string
	}{
		{http.MethodGet, "/users/alice"},
		{http.MethodPut, "/users/alice"},
		{http.MethodDelete, "/users/alice"},
		{http.MethodPost, "/users/alice/items/1"},
		{http.MethodDelete, "/users/alice/items/1"},
		{http.MethodGet, "/items"},
		{http.MethodGet, "/items/1"},
	}

	for _, route := range protected {
		t.Run(route.method+" "+route.target, func(t *testing.T) {
			request := httptest.NewRequest(route.method, route.target, nil)
			recorder := httptest.NewRecorder()

			router.ServeHTTP(recorder, request)

			assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		})
	}
}

func TestRoutes_UnregisteredMethodHidden(t *testing.T) {
	auth := &mockAuthService{
		authenticateFn: func(context.Context, string) (models.User, error) {
			return models.User{UserID: 1, Username: "alice"}, nil
		},
	}
	handler := newTestHandler(t, auth, &mockUserService{}, &mockCatalogService{})
	router := handler.Init()

	// DELETE is not registered for /login; the route must look nonexistent
	request := httptest.NewRequest(http.MethodDelete, "/login", nil)
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
