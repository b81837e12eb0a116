package repositories

import (
	"context"

	"contact-service/internal/domain/entities"
)

// ContactRepository persists contacts. Every operation except Create takes
// the owning user's id and treats rows owned by anyone else as absent,
// returning (nil, nil).
type ContactRepository interface {
	List(ctx context.Context, userID uint, skip, limit int) ([]entities.Contact, error)
	Get(ctx context.Context, id, userID uint) (*entities.Contact, error)
	Create(ctx context.Context, contact *entities.Contact) (*entities.Contact, error)
	Update(ctx context.Context, id, userID uint, contact *entities.Contact) (*entities.Contact, error)
	Delete(ctx context.Context, id, userID uint) (*entities.Contact, error)
}
