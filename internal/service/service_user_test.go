package service

import (
	"context"
	"testing"

	"github.com/lkarow/shop-api/internal/crypto"
	"github.com/lkarow/shop-api/internal/logger"
	"github.com/lkarow/shop-api/internal/mock"
	"github.com/lkarow/shop-api/internal/store"
	"github.com/lkarow/shop-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newTestUserSvc(t *testing.T, ctrl *gomock.Controller) (*userService, *mock.MockUserRepository, crypto.PasswordHasher) {
	t.Helper()

	mockRepo := mock.NewMockUserRepository(ctrl)
	hasher := crypto.NewPasswordHasher(bcrypt.MinCost)
	svc := NewUserService(mockRepo, hasher, logger.Nop()).(*userService)
	return svc, mockRepo, hasher
}

func TestUserService_Register_HashesPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, hasher := newTestUserSvc(t, ctrl)

	var stored models.User
	mockRepo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u models.User) (models.User, error) {
			stored = u
			u.UserID = 42
			return u, nil
		})

	created, err := svc.Register(context.Background(), models.RegisterRequest{
		Username: "alice",
		Password: "secret1",
		Email:    "alice@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), created.UserID)

	// the plaintext never reaches the store
	assert.NotEqual(t, "secret1", stored.PasswordHash)
	assert.True(t, hasher.Verify("secret1", stored.PasswordHash))
}

func TestUserService_Register_EmptyFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestUserSvc(t, ctrl)

	tests := []struct {
		name    string
		request models.RegisterRequest
	}{
		{"empty username", models.RegisterRequest{Password: "secret1"}},
		{"empty password", models.RegisterRequest{Username: "alice"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tt.request)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestUserService_Register_DuplicateUsername(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newTestUserSvc(t, ctrl)

	mockRepo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		Return(models.User{}, store.ErrUsernameAlreadyExists)

	_, err := svc.Register(context.Background(), models.RegisterRequest{
		Username: "alice",
		Password: "secret1",
	})

	require.ErrorIs(t, err, store.ErrUsernameAlreadyExists)
}

func TestUserService_GetUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newTestUserSvc(t, ctrl)
	want := models.User{UserID: 1, Username: "alice", Cart: []int64{3, 5}}

	mockRepo.EXPECT().
		FindUserByUsername(gomock.Any(), "alice").
		Return(want, nil)

	got, err := svc.GetUser(context.Background(), "alice")

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newTestUserSvc(t, ctrl)

	mockRepo.EXPECT().
		FindUserByUsername(gomock.Any(), "ghost").
		Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.GetUser(context.Background(), "ghost")

	require.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestUserService_UpdateUser_RehashesPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, hasher := newTestUserSvc(t, ctrl)

	var applied models.UserUpdate
	mockRepo.EXPECT().
		UpdateUser(gomock.Any(), "alice", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, update models.UserUpdate) (models.User, error) {
			applied = update
			return models.User{UserID: 1, Username: "alice"}, nil
		})

	newPassword := "brand-new"
	_, err := svc.UpdateUser(context.Background(), "alice", models.UserUpdate{Password: &newPassword})

	require.NoError(t, err)
	require.NotNil(t, applied.Password)
	assert.NotEqual(t, newPassword, *applied.Password)
	assert.True(t, hasher.Verify(newPassword, *applied.Password))
}

func TestUserService_UpdateUser_EmptyUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestUserSvc(t, ctrl)

	_, err := svc.UpdateUser(context.Background(), "alice", models.UserUpdate{})

	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestUserService_DeleteUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newTestUserSvc(t, ctrl)

	mockRepo.EXPECT().
		DeleteUser(gomock.Any(), "alice").
		Return(nil)

	require.NoError(t, svc.DeleteUser(context.Background(), "alice"))
}

func TestUserService_CartOperations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newTestUserSvc(t, ctrl)
	want := models.User{UserID: 1, Username: "alice", Cart: []int64{7}}

	mockRepo.EXPECT().
		AddCartItem(gomock.Any(), "alice", int64(7)).
		Return(want, nil)
	mockRepo.EXPECT().
		RemoveCartItem(gomock.Any(), "alice", int64(7)).
		Return(models.User{UserID: 1, Username: "alice"}, nil)

	got, err := svc.AddCartItem(context.Background(), "alice", 7)
	require.NoError(t, err)
	assert.Equal(t, []int64{7}, got.Cart)

	got, err = svc.RemoveCartItem(context.Background(), "alice", 7)
	require.NoError(t, err)
	assert.Empty(t, got.Cart)
}

func TestUserService_AddCartItem_UnknownItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newTestUserSvc(t, ctrl)

	mockRepo.EXPECT().
		AddCartItem(gomock.Any(), "alice", int64(999)).
		Return(models.User{}, store.ErrNoItemWasFound)

	_, err := svc.AddCartItem(context.Background(), "alice", 999)

	require.ErrorIs(t, err, store.ErrNoItemWasFound)
}
