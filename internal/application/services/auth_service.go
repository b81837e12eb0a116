package services

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"log"
	"strings"
	"time"

	"contact-service/internal/config"
	"contact-service/internal/domain/entities"
	"contact-service/internal/domain/repositories"
	"contact-service/internal/infrastructure"
	"contact-service/internal/shared"
)

// TokenPair is the result of a successful login or refresh.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

// AuthService owns registration, the token lifecycle and the bearer-token →
// user resolution path.
type AuthService struct {
	users  repositories.UserRepository
	cache  repositories.UserCache
	tokens *infrastructure.TokenService

	accessTokenTTL  time.Duration
	refreshTokenTTL time.Duration
	userCacheTTL    time.Duration
}

func NewAuthService(
	users repositories.UserRepository,
	cache repositories.UserCache,
	tokens *infrastructure.TokenService,
	cfg *config.Config,
) *AuthService {
	return &AuthService{
		users:           users,
		cache:           cache,
		tokens:          tokens,
		accessTokenTTL:  cfg.AccessTokenTTL,
		refreshTokenTTL: cfg.RefreshTokenTTL,
		userCacheTTL:    cfg.UserCacheTTL,
	}
}

// Register validates and persists a new user with a hashed password and a
// Gravatar-derived avatar.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*entities.User, error) {
	user := entities.NewUser(username, email, password)
	if err := user.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: account with this email", shared.ErrAlreadyExists)
	}

	if err := user.HashPassword(); err != nil {
		return nil, err
	}
	user.Avatar = gravatarURL(email)

	return s.users.Create(ctx, user)
}

// Login verifies credentials and issues a fresh token pair. Unknown email
// and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*TokenPair, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, shared.ErrUnauthorized
	}
	if err := user.CheckPassword(password); err != nil {
		return nil, shared.ErrUnauthorized
	}

	return s.issuePair(ctx, user)
}

// Refresh rotates the token pair. The presented refresh token must match
// the stored one; a stale-but-valid token clears the stored token so it
// cannot be replayed.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	email, err := s.tokens.Verify(refreshToken, infrastructure.ScopeRefreshToken)
	if err != nil {
		return nil, shared.ErrUnauthorized
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, shared.ErrUnauthorized
	}

	if user.RefreshToken != refreshToken {
		if err := s.users.UpdateRefreshToken(ctx, user.ID, ""); err != nil {
			return nil, err
		}
		s.invalidate(ctx, email)
		return nil, shared.ErrUnauthorized
	}

	return s.issuePair(ctx, user)
}

// Resolve maps a bearer access token to the authenticated user: verify the
// token, then consult the cache, then the credential store. Every failure
// mode collapses into the same opaque shared.ErrUnauthorized so callers
// cannot probe which check failed.
func (s *AuthService) Resolve(ctx context.Context, accessToken string) (*entities.User, error) {
	email, err := s.tokens.Verify(accessToken, infrastructure.ScopeAccessToken)
	if err != nil {
		return nil, shared.ErrUnauthorized
	}

	cached, err := s.cache.Get(ctx, email)
	if err != nil {
		return nil, err
	}
	if cached != nil {
		// A hit is trusted as-is for the remainder of the TTL.
		return cached, nil
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, shared.ErrUnauthorized
	}

	if err := s.cache.Set(ctx, email, user, s.userCacheTTL); err != nil {
		log.Printf("failed to cache user %s: %v", email, err)
	}

	return user, nil
}

// ConfirmEmail flips the confirmation flag. Sending the confirmation email
// itself is outside this service.
func (s *AuthService) ConfirmEmail(ctx context.Context, email string) error {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return shared.ErrNotFound
	}

	if err := s.users.ConfirmEmail(ctx, email); err != nil {
		return err
	}
	s.invalidate(ctx, email)
	return nil
}

func (s *AuthService) UpdateAvatar(ctx context.Context, email, url string) (*entities.User, error) {
	user, err := s.users.UpdateAvatar(ctx, email, url)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, shared.ErrNotFound
	}

	s.invalidate(ctx, email)
	return user, nil
}

func (s *AuthService) issuePair(ctx context.Context, user *entities.User) (*TokenPair, error) {
	accessToken, err := s.tokens.Issue(user.Email, infrastructure.ScopeAccessToken, s.accessTokenTTL)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.tokens.Issue(user.Email, infrastructure.ScopeRefreshToken, s.refreshTokenTTL)
	if err != nil {
		return nil, err
	}

	if err := s.users.UpdateRefreshToken(ctx, user.ID, refreshToken); err != nil {
		return nil, err
	}
	// Refresh-token rotation mutates the user, so drop any live snapshot.
	s.invalidate(ctx, user.Email)

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
	}, nil
}

func (s *AuthService) invalidate(ctx context.Context, email string) {
	if err := s.cache.Invalidate(ctx, email); err != nil {
		log.Printf("failed to invalidate cached user %s: %v", email, err)
	}
}

func gravatarURL(email string) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))
	return "https://www.gravatar.com/avatar/" + hex.EncodeToString(sum[:])
}
