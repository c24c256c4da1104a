package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/asset-management/internal/cache"
	"github.com/MKhiriev/asset-management/internal/config"
	"github.com/MKhiriev/asset-management/internal/logger"
	"github.com/MKhiriev/asset-management/internal/store"
	"github.com/MKhiriev/asset-management/internal/utils"
	"github.com/MKhiriev/asset-management/models"
)

// authService is the concrete implementation of AuthService.
// It verifies bcrypt credentials, issues and parses JWT tokens and keeps
// the userDisable cache in step with password-driven status changes.
type authService struct {
	userRepository store.UserRepository

	// statusCache short-circuits the per-request status lookup.
	statusCache cache.UserStatusCache

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	tokenDuration time.Duration
	bcryptCost    int

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
func NewAuthService(userRepository store.UserRepository, statusCache cache.UserStatusCache, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		statusCache:    statusCache,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		bcryptCost:     cfg.BcryptCost,
		logger:         logger,
	}
}

// Login authenticates a user by username and password.
//
// Unknown usernames, wrong passwords and disabled accounts all return
// ErrWrongCredentials.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.LoginResponse, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindByUsername(ctx, request.Username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Info().Str("func", "*authService.Login").Str("username", request.Username).Msg("unknown username")
			return models.LoginResponse{}, ErrWrongCredentials
		}
		log.Err(err).Str("func", "*authService.Login").Msg("user search by username failed")
		return models.LoginResponse{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if user.Status == models.UserStatusDisabled || !utils.CheckPassword(request.Password, user.HashPassword) {
		log.Info().
			Str("func", "*authService.Login").
			Int64("user_id", user.ID).
			Str("status", string(user.Status)).
			Msg("login rejected")
		return models.LoginResponse{}, ErrWrongCredentials
	}

	token, err := a.CreateToken(ctx, user)
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Int64("user_id", user.ID).Msg("token creation failed")
		return models.LoginResponse{}, err
	}

	return models.LoginResponse{Token: token.String(), User: models.ToUserResponse(user)}, nil
}

// CreateToken issues a signed JWT for the given user.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	principal := models.CurrentUser{ID: user.ID, Username: user.Username, Role: user.Role}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, principal, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string. Any validation failure
// is normalised to ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*authService.ParseToken").Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

func (a *authService) Authenticate(ctx context.Context, tokenString string) (models.CurrentUser, error) {
	token, err := a.ParseToken(ctx, tokenString)
	if err != nil {
		return models.CurrentUser{}, err
	}

	access, err := a.userAccess(ctx, token.UserID)
	if err != nil {
		return models.CurrentUser{}, err
	}
	if access.Status == models.UserStatusDisabled {
		return models.CurrentUser{}, ErrUserDisabled
	}

	// a token issued before a role change must not keep the old role
	current := token.CurrentUser()
	if access.Role != current.Role {
		logger.FromContext(ctx).Info().
			Str("func", "*authService.Authenticate").
			Int64("user_id", current.ID).
			Str("token_role", string(current.Role)).
			Str("role", string(access.Role)).
			Msg("token role is outdated")
		return models.CurrentUser{}, ErrTokenIsExpiredOrInvalid
	}

	return current, nil
}

// userAccess reads the status and role through the cache and falls back to
// the database on a miss or a cache failure.
func (a *authService) userAccess(ctx context.Context, userID int64) (models.UserAccess, error) {
	log := logger.FromContext(ctx)

	access, found, err := a.statusCache.Get(ctx, userID)
	if err != nil {
		log.Warn().Err(err).Str("func", "*authService.userAccess").Int64("user_id", userID).Msg("status cache unavailable")
	}
	if err == nil && found {
		return access, nil
	}

	user, err := a.userRepository.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.UserAccess{}, ErrTokenIsExpiredOrInvalid
		}
		log.Err(err).Str("func", "*authService.userAccess").Int64("user_id", userID).Msg("failed to load user")
		return models.UserAccess{}, err
	}

	access = models.UserAccess{Status: user.Status, Role: user.Role}
	if err = a.statusCache.Set(ctx, userID, access); err != nil {
		log.Warn().Err(err).Str("func", "*authService.userAccess").Int64("user_id", userID).Msg("failed to cache status")
	}

	return access, nil
}

// FirstChangePassword sets the password of a FIRST_LOGIN account and
// activates it.
func (a *authService) FirstChangePassword(ctx context.Context, current models.CurrentUser, request models.FirstChangePasswordRequest) error {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindByID(ctx, current.ID)
	if err != nil {
		return mapNotFound(err, ErrUserNotFound)
	}
	if user.Status != models.UserStatusFirstLogin {
		return ErrPasswordChanged
	}

	return a.storePassword(ctx, log, user.ID, request.Password, models.UserStatusActive)
}

func (a *authService) ChangePassword(ctx context.Context, current models.CurrentUser, request models.ChangePasswordRequest) error {
	log := logger.FromContext(ctx)

	if request.NewPassword == request.Password {
		return ErrPasswordSame
	}

	user, err := a.userRepository.FindByID(ctx, current.ID)
	if err != nil {
		return mapNotFound(err, ErrUserNotFound)
	}
	if !utils.CheckPassword(request.Password, user.HashPassword) {
		log.Info().Str("func", "*authService.ChangePassword").Int64("user_id", user.ID).Msg("wrong old password")
		return ErrWrongPassword
	}

	return a.storePassword(ctx, log, user.ID, request.NewPassword, user.Status)
}

func (a *authService) storePassword(ctx context.Context, log *logger.Logger, userID int64, password string, status models.UserStatus) error {
	hash, err := utils.HashPassword(password, a.bcryptCost)
	if err != nil {
		log.Err(err).Str("func", "*authService.storePassword").Int64("user_id", userID).Msg("failed to hash password")
		return err
	}

	if err = a.userRepository.UpdatePassword(ctx, userID, hash, status); err != nil {
		return mapNotFound(err, ErrUserNotFound)
	}

	if err = a.statusCache.Evict(ctx, userID); err != nil {
		log.Warn().Err(err).Str("func", "*authService.storePassword").Int64("user_id", userID).Msg("failed to evict cached status")
	}

	return nil
}
