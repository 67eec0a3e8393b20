package service

import (
	"context"
	"fmt"

	"github.com/lkarow/shop-api/internal/crypto"
	"github.com/lkarow/shop-api/internal/logger"
	"github.com/lkarow/shop-api/internal/store"
	"github.com/lkarow/shop-api/models"
)

// userService is the concrete implementation of UserService.
// It owns account lifecycle and cart operations, delegating persistence to
// the UserRepository. It is the only place besides login where plaintext
// passwords are seen, and they are hashed before leaving this layer.
type userService struct {
	userRepository store.UserRepository
	passwordHasher crypto.PasswordHasher

	logger *logger.Logger
}

// NewUserService constructs a UserService wired to the given repository and
// password hasher.
func NewUserService(userRepository store.UserRepository, passwordHasher crypto.PasswordHasher, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		passwordHasher: passwordHasher,
		logger:         logger,
	}
}

// Register creates a new account.
//
// It validates that both Username and Password are non-empty and hashes the
// password before delegating persistence to the UserRepository. The raw
// password never persists or logs.
//
// Returns the persisted account (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided if Username or Password is empty.
//   - A wrapped storage error if the repository call fails (e.g. username
//     already taken — see store.ErrUsernameAlreadyExists).
func (s *userService) Register(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if request.Username == "" || request.Password == "" {
		log.Error().Str("username", request.Username).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	passwordHash, err := s.passwordHasher.Hash(request.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		Username:     request.Username,
		PasswordHash: passwordHash,
		Email:        request.Email,
		Birthday:     request.Birthday,
	}

	registeredUser, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", request.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// GetUser fetches an account by username.
func (s *userService) GetUser(ctx context.Context, username string) (models.User, error) {
	if username == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	return s.userRepository.FindUserByUsername(ctx, username)
}

// UpdateUser applies a partial account update. A supplied password is
// replaced by its digest before it reaches the store.
func (s *userService) UpdateUser(ctx context.Context, username string, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	if update.Password != nil {
		if *update.Password == "" {
			return models.User{}, ErrInvalidDataProvided
		}

		passwordHash, err := s.passwordHasher.Hash(*update.Password)
		if err != nil {
			log.Err(err).Msg("password hashing failed")
			return models.User{}, fmt.Errorf("password hashing failed: %w", err)
		}
		update.Password = &passwordHash
	}

	return s.userRepository.UpdateUser(ctx, username, update)
}

// DeleteUser removes an account.
func (s *userService) DeleteUser(ctx context.Context, username string) error {
	if username == "" {
		return ErrInvalidDataProvided
	}

	return s.userRepository.DeleteUser(ctx, username)
}

// AddCartItem puts a catalog item into the user's cart and returns the
// updated account.
func (s *userService) AddCartItem(ctx context.Context, username string, itemID int64) (models.User, error) {
	if username == "" || itemID == 0 {
		return models.User{}, ErrInvalidDataProvided
	}

	return s.userRepository.AddCartItem(ctx, username, itemID)
}

// RemoveCartItem takes a catalog item out of the user's cart and returns the
// updated account.
func (s *userService) RemoveCartItem(ctx context.Context, username string, itemID int64) (models.User, error) {
	if username == "" || itemID == 0 {
		return models.User{}, ErrInvalidDataProvided
	}

	return s.userRepository.RemoveCartItem(ctx, username, itemID)
}
