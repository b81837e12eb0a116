package entities

import (
	"fmt"
	"net/mail"
	"time"

	"contact-service/internal/shared"
)

// Contact is a per-user address-book entry. UserID references the owning
// user; a contact is only reachable through operations scoped to that owner.
type Contact struct {
	ID             uint       `json:"id"`
	FirstName      string     `json:"first_name"`
	LastName       string     `json:"last_name"`
	Email          string     `json:"email"`
	PhoneNumber    string     `json:"phone_number"`
	BirthDate      *time.Time `json:"birth_date"`
	AdditionalData string     `json:"additional_data"`
	UserID         uint       `json:"user_id"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func (c *Contact) Validate() error {
	if c.FirstName == "" || len(c.FirstName) > 50 {
		return fmt.Errorf("%w: first_name must be 1-50 characters", shared.ErrInvalidInput)
	}
	if c.LastName == "" || len(c.LastName) > 50 {
		return fmt.Errorf("%w: last_name must be 1-50 characters", shared.ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(c.Email); err != nil {
		return fmt.Errorf("%w: malformed email address", shared.ErrInvalidInput)
	}
	if c.PhoneNumber == "" || len(c.PhoneNumber) > 20 {
		return fmt.Errorf("%w: phone_number must be 1-20 characters", shared.ErrInvalidInput)
	}
	return nil
}
