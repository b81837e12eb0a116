package postgres

import (
	"time"

	"contact-service/internal/domain/entities"
)

type UserModel struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"size:50;not null"`
	Email        string `gorm:"size:250;uniqueIndex;not null"`
	Password     string `gorm:"size:255;not null"`
	Avatar       string `gorm:"size:255"`
	RefreshToken string `gorm:"size:255"`
	Confirmed    bool   `gorm:"default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (UserModel) TableName() string {
	return "users"
}

type ContactModel struct {
	ID             uint   `gorm:"primaryKey"`
	FirstName      string `gorm:"size:50;index;not null"`
	LastName       string `gorm:"size:50;index;not null"`
	Email          string `gorm:"uniqueIndex;not null"`
	PhoneNumber    string `gorm:"size:20;index;not null"`
	BirthDate      *time.Time
	AdditionalData string
	UserID         uint `gorm:"index;not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (ContactModel) TableName() string {
	return "contacts"
}

func userModelFromEntity(user *entities.User) UserModel {
	return UserModel{
		ID:           user.ID,
		Username:     user.Username,
		Email:        user.Email,
		Password:     user.Password,
		Avatar:       user.Avatar,
		RefreshToken: user.RefreshToken,
		Confirmed:    user.Confirmed,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}

func (m *UserModel) toEntity() *entities.User {
	return &entities.User{
		ID:           m.ID,
		Username:     m.Username,
		Email:        m.Email,
		Password:     m.Password,
		Avatar:       m.Avatar,
		RefreshToken: m.RefreshToken,
		Confirmed:    m.Confirmed,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func contactModelFromEntity(contact *entities.Contact) ContactModel {
	return ContactModel{
		ID:             contact.ID,
		FirstName:      contact.FirstName,
		LastName:       contact.LastName,
		Email:          contact.Email,
		PhoneNumber:    contact.PhoneNumber,
		BirthDate:      contact.BirthDate,
		AdditionalData: contact.AdditionalData,
		UserID:         contact.UserID,
		CreatedAt:      contact.CreatedAt,
		UpdatedAt:      contact.UpdatedAt,
	}
}

func (m *ContactModel) toEntity() *entities.Contact {
	return &entities.Contact{
		ID:             m.ID,
		FirstName:      m.FirstName,
		LastName:       m.LastName,
		Email:          m.Email,
		PhoneNumber:    m.PhoneNumber,
		BirthDate:      m.BirthDate,
		AdditionalData: m.AdditionalData,
		UserID:         m.UserID,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}
