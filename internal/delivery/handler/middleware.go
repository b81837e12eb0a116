package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"contact-service/internal/domain/entities"
	"contact-service/internal/infrastructure"
	"contact-service/internal/shared"
)

const userContextKey = "authenticated-user"

// UserResolver maps a bearer token to the authenticated user.
type UserResolver interface {
	Resolve(ctx context.Context, accessToken string) (*entities.User, error)
}

// AuthMiddleware rejects requests without a resolvable access token and
// stashes the resolved user in the request context.
func AuthMiddleware(resolver UserResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := bearerToken(c)
			if !ok {
				return respondError(c, http.StatusUnauthorized, shared.ErrUnauthorized.Error())
			}

			user, err := resolver.Resolve(c.Request().Context(), token)
			if err != nil {
				return respondServiceError(c, err)
			}

			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

// RateLimitMiddleware admits requests per route and client IP within the
// limiter's quota.
func RateLimitMiddleware(limiter *infrastructure.RateLimiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := c.Request().Method + " " + c.Path() + "|" + c.RealIP()
			if !limiter.Allow(key) {
				return respondError(c, http.StatusTooManyRequests, "too many requests")
			}
			return next(c)
		}
	}
}

func currentUser(c echo.Context) *entities.User {
	user, _ := c.Get(userContextKey).(*entities.User)
	return user
}

func bearerToken(c echo.Context) (string, bool) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}
