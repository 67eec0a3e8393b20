package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lkarow/shop-api/internal/config"
	"github.com/lkarow/shop-api/internal/crypto"
	"github.com/lkarow/shop-api/internal/logger"
	"github.com/lkarow/shop-api/internal/store"
	"github.com/lkarow/shop-api/internal/utils"
	"github.com/lkarow/shop-api/models"
)

// authService is the concrete implementation of AuthService.
// It handles credential verification and the JWT token lifecycle using a
// UserRepository for identity lookups and a bcrypt hasher for password
// comparison.
type authService struct {
	// userRepository is the data-access layer used to look up identities.
	userRepository store.UserRepository

	// passwordHasher verifies plaintext passwords against stored digests.
	passwordHasher crypto.PasswordHasher

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	// Injected from configuration at construction, never a source literal.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and password hasher, populated with security parameters
// from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, passwordHasher crypto.PasswordHasher, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		passwordHasher: passwordHasher,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Login authenticates an existing user.
//
// It validates that both Username and Password are non-empty, looks the
// account up by exact username, and verifies the supplied password against
// the stored bcrypt digest.
//
// An unknown username and a wrong password both surface as
// ErrInvalidCredentials; the caller cannot tell them apart. The server-side
// log DOES record the distinction.
//
// Returns the authenticated identity or:
//   - ErrInvalidDataProvided if Username or Password is empty.
//   - ErrInvalidCredentials if no account matches or the password is wrong.
//   - ErrStoreUnavailable if the lookup could not complete.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if credentials.Username == "" || credentials.Password == "" {
		log.Error().Str("username", credentials.Username).Msg("invalid credentials data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, credentials.Username)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			// server-side detail only: the response never reveals that the
			// username itself was wrong
			log.Error().Str("username", credentials.Username).Msg("login failed: no user was found")
			return models.User{}, ErrInvalidCredentials
		}

		log.Err(err).Str("username", credentials.Username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	if !a.passwordHasher.Verify(credentials.Password, foundUser.PasswordHash) {
		log.Error().
			Int64("id", foundUser.UserID).
			Str("username", foundUser.Username).
			Msg("login failed: wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim, the username as the subject,
// the store-assigned user ID as the "uid" claim, and expires after
// tokenDuration. The claim set never includes the password hash.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// Authenticate validates a raw bearer token string and resolves it to a user
// identity.
//
// Verification checks the HMAC-SHA256 signature, the issuer claim, and the
// expiry. Every verification failure (expired, malformed, bad signature,
// wrong issuer) is normalised to ErrInvalidToken so that callers cannot
// learn which check failed. On success the "uid" claim is resolved against
// the user store.
//
// Returns the resolved identity or:
//   - ErrInvalidToken on any token verification failure.
//   - ErrUnknownSubject if the referenced account no longer exists.
//   - ErrStoreUnavailable if the lookup could not complete.
func (a *authService) Authenticate(ctx context.Context, tokenString string) (models.User, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		log.Err(err).Msg("token validation failed")
		return models.User{}, ErrInvalidToken
	}

	foundUser, err := a.userRepository.FindUserByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Error().Int64("uid", token.UserID).Str("subject", token.Subject).Msg("token subject no longer resolvable")
			return models.User{}, ErrUnknownSubject
		}

		log.Err(err).Int64("uid", token.UserID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return foundUser, nil
}
