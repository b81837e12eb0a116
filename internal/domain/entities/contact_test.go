package entities

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"contact-service/internal/shared"
)

func validContact() Contact {
	return Contact{
		FirstName:   "Ann",
		LastName:    "Lee",
		Email:       "ann@example.com",
		PhoneNumber: "+1000",
	}
}

func TestContactValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Contact)
		wantErr bool
	}{
		{"valid", func(c *Contact) {}, false},
		{"empty first name", func(c *Contact) { c.FirstName = "" }, true},
		{"first name too long", func(c *Contact) { c.FirstName = strings.Repeat("a", 51) }, true},
		{"empty last name", func(c *Contact) { c.LastName = "" }, true},
		{"bad email", func(c *Contact) { c.Email = "not-an-email" }, true},
		{"empty phone", func(c *Contact) { c.PhoneNumber = "" }, true},
		{"phone too long", func(c *Contact) { c.PhoneNumber = strings.Repeat("1", 21) }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validContact()
			tt.mutate(&c)

			err := c.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, shared.ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUserValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		username string
		email    string
		password string
		wantErr  bool
	}{
		{"valid", "annlee", "ann@example.com", "pass123", false},
		{"username too short", "ann", "ann@example.com", "pass123", true},
		{"username too long", strings.Repeat("a", 17), "ann@example.com", "pass123", true},
		{"bad email", "annlee", "nope", "pass123", true},
		{"password too short", "annlee", "ann@example.com", "pw", true},
		{"password too long", "annlee", "ann@example.com", strings.Repeat("p", 11), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewUser(tt.username, tt.email, tt.password).Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, shared.ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUserPasswordHashing(t *testing.T) {
	t.Parallel()

	u := NewUser("annlee", "ann@example.com", "pass123")
	assert.NoError(t, u.HashPassword())
	assert.NotEqual(t, "pass123", u.Password)

	assert.NoError(t, u.CheckPassword("pass123"))
	assert.Error(t, u.CheckPassword("wrong"))
}
