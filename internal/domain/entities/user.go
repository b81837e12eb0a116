package entities

import (
	"fmt"
	"net/mail"
	"time"

	"golang.org/x/crypto/bcrypt"

	"contact-service/internal/shared"
)

// User is an identity record. The Password field always holds the bcrypt
// hash once the user has been persisted; JSON tags exist so a snapshot can
// be cached and reconstructed field for field.
type User struct {
	ID           uint      `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	Password     string    `json:"password"`
	Avatar       string    `json:"avatar"`
	RefreshToken string    `json:"refresh_token"`
	Confirmed    bool      `json:"confirmed"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func NewUser(username, email, password string) *User {
	return &User{
		Username: username,
		Email:    email,
		Password: password,
	}
}

// Validate checks registration constraints against the plaintext password,
// so it must run before HashPassword.
func (u *User) Validate() error {
	if len(u.Username) < 5 || len(u.Username) > 16 {
		return fmt.Errorf("%w: username must be 5-16 characters", shared.ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(u.Email); err != nil {
		return fmt.Errorf("%w: malformed email address", shared.ErrInvalidInput)
	}
	if len(u.Password) < 6 || len(u.Password) > 10 {
		return fmt.Errorf("%w: password must be 6-10 characters", shared.ErrInvalidInput)
	}
	return nil
}

func (u *User) HashPassword() error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
}
