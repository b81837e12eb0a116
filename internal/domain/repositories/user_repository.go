package repositories

import (
	"context"

	"contact-service/internal/domain/entities"
)

// UserRepository is the credential store. Lookups return (nil, nil) when no
// row matches.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) (*entities.User, error)
	FindByID(ctx context.Context, id uint) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	UpdateRefreshToken(ctx context.Context, userID uint, token string) error
	UpdateAvatar(ctx context.Context, email, url string) (*entities.User, error)
	ConfirmEmail(ctx context.Context, email string) error
}
