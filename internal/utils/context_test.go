package utils

import (
	"context"
	"testing"

	"github.com/lkarow/shop-api/models"
)

func TestGetUserFromContext(t *testing.T) {
	user := models.User{UserID: 42, Username: "alice"}
	ctx := context.WithValue(context.Background(), UserCtxKey, user)

	got, ok := GetUserFromContext(ctx)
	if !ok {
		t.Fatal("expected user to be present in context")
	}
	if got.UserID != 42 || got.Username != "alice" {
		t.Errorf("unexpected user from context: %+v", got)
	}
}

func TestGetUserFromContext_Missing(t *testing.T) {
	_, ok := GetUserFromContext(context.Background())
	if ok {
		t.Error("expected ok=false for empty context")
	}
}

func TestGetUserFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserCtxKey, "not-a-user")
	_, ok := GetUserFromContext(ctx)
	if ok {
		t.Error("expected ok=false for wrong value type")
	}
}
