package infrastructure

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"contact-service/internal/shared"
)

const (
	ScopeAccessToken  = "access_token"
	ScopeRefreshToken = "refresh_token"
)

// TokenClaims carries the subject email in the registered claims plus a
// scope tag declaring the token's intended use.
type TokenClaims struct {
	jwt.RegisteredClaims
	Scope string `json:"scope"`
}

// TokenService issues and verifies HS256-signed bearer tokens. It is
// stateless beyond the shared secret.
type TokenService struct {
	secretKey []byte
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secretKey: []byte(secret)}
}

// Issue encodes the subject, a scope tag and an expiry into a signed token.
func (s *TokenService) Issue(subject, scope string, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Scope: scope,
	})

	return token.SignedString(s.secretKey)
}

// Verify checks signature and expiry and returns the subject email. A bad
// signature, an expired token, a scope mismatch and a missing subject all
// collapse into the same shared.ErrUnauthorized.
func (s *TokenService) Verify(tokenString, expectedScope string) (string, error) {
	claims := &TokenClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return "", shared.ErrUnauthorized
	}

	if claims.Scope != expectedScope {
		return "", shared.ErrUnauthorized
	}
	if claims.Subject == "" {
		return "", shared.ErrUnauthorized
	}

	return claims.Subject, nil
}
