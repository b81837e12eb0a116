package services

import (
	"context"
	"time"

	"contact-service/internal/domain/entities"
	"contact-service/internal/domain/repositories"
	"contact-service/internal/shared"
)

// ContactInput carries the mutable fields of a contact for create and full
// update.
type ContactInput struct {
	FirstName      string
	LastName       string
	Email          string
	PhoneNumber    string
	BirthDate      *time.Time
	AdditionalData string
}

// ContactService exposes contact CRUD, always scoped to the authenticated
// user resolved upstream. Ownership checks happen here and in the
// repository; no caller may bypass them.
type ContactService struct {
	contacts repositories.ContactRepository
}

func NewContactService(contacts repositories.ContactRepository) *ContactService {
	return &ContactService{contacts: contacts}
}

func (s *ContactService) List(ctx context.Context, user *entities.User, skip, limit int) ([]entities.Contact, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = 100
	}
	return s.contacts.List(ctx, user.ID, skip, limit)
}

func (s *ContactService) Get(ctx context.Context, id uint, user *entities.User) (*entities.Contact, error) {
	contact, err := s.contacts.Get(ctx, id, user.ID)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, shared.ErrNotFound
	}
	return contact, nil
}

func (s *ContactService) Create(ctx context.Context, input ContactInput, user *entities.User) (*entities.Contact, error) {
	contact := contactFromInput(input)
	contact.UserID = user.ID
	if err := contact.Validate(); err != nil {
		return nil, err
	}

	return s.contacts.Create(ctx, contact)
}

func (s *ContactService) Update(ctx context.Context, id uint, input ContactInput, user *entities.User) (*entities.Contact, error) {
	contact := contactFromInput(input)
	if err := contact.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.contacts.Update(ctx, id, user.ID, contact)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, shared.ErrNotFound
	}
	return updated, nil
}

func (s *ContactService) Remove(ctx context.Context, id uint, user *entities.User) (*entities.Contact, error) {
	removed, err := s.contacts.Delete(ctx, id, user.ID)
	if err != nil {
		return nil, err
	}
	if removed == nil {
		return nil, shared.ErrNotFound
	}
	return removed, nil
}

func contactFromInput(input ContactInput) *entities.Contact {
	return &entities.Contact{
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Email:          input.Email,
		PhoneNumber:    input.PhoneNumber,
		BirthDate:      input.BirthDate,
		AdditionalData: input.AdditionalData,
	}
}
