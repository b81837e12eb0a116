package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"contact-service/internal/domain/entities"
	"contact-service/internal/domain/repositories"
)

type ContactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) repositories.ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) List(ctx context.Context, userID uint, skip, limit int) ([]entities.Contact, error) {
	var contactModels []ContactModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id").
		Offset(skip).
		Limit(limit).
		Find(&contactModels).Error
	if err != nil {
		return nil, err
	}

	contacts := make([]entities.Contact, 0, len(contactModels))
	for i := range contactModels {
		contacts = append(contacts, *contactModels[i].toEntity())
	}
	return contacts, nil
}

func (r *ContactRepository) Get(ctx context.Context, id, userID uint) (*entities.Contact, error) {
	contactModel, err := r.findOwned(ctx, id, userID)
	if err != nil || contactModel == nil {
		return nil, err
	}
	return contactModel.toEntity(), nil
}

func (r *ContactRepository) Create(ctx context.Context, contact *entities.Contact) (*entities.Contact, error) {
	contactModel := contactModelFromEntity(contact)

	if err := r.db.WithContext(ctx).Create(&contactModel).Error; err != nil {
		return nil, err
	}

	return r.Get(ctx, contactModel.ID, contactModel.UserID)
}

func (r *ContactRepository) Update(ctx context.Context, id, userID uint, contact *entities.Contact) (*entities.Contact, error) {
	contactModel, err := r.findOwned(ctx, id, userID)
	if err != nil || contactModel == nil {
		return nil, err
	}

	contactModel.FirstName = contact.FirstName
	contactModel.LastName = contact.LastName
	contactModel.Email = contact.Email
	contactModel.PhoneNumber = contact.PhoneNumber
	contactModel.BirthDate = contact.BirthDate
	contactModel.AdditionalData = contact.AdditionalData

	if err := r.db.WithContext(ctx).Save(contactModel).Error; err != nil {
		return nil, err
	}

	return contactModel.toEntity(), nil
}

func (r *ContactRepository) Delete(ctx context.Context, id, userID uint) (*entities.Contact, error) {
	contactModel, err := r.findOwned(ctx, id, userID)
	if err != nil || contactModel == nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Delete(contactModel).Error; err != nil {
		return nil, err
	}

	// Pre-deletion snapshot.
	return contactModel.toEntity(), nil
}

// findOwned loads a contact only when it belongs to userID; any other user's
// contact with the same id looks exactly like a missing row.
func (r *ContactRepository) findOwned(ctx context.Context, id, userID uint) (*ContactModel, error) {
	var contactModel ContactModel
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&contactModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &contactModel, nil
}
