package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"contact-service/internal/domain/entities"
	"contact-service/internal/domain/repositories"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *entities.User) (*entities.User, error) {
	userModel := userModelFromEntity(user)

	if err := r.db.WithContext(ctx).Create(&userModel).Error; err != nil {
		return nil, err
	}

	// Read back so generated id and timestamps come from the store.
	return r.FindByID(ctx, userModel.ID)
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*entities.User, error) {
	var userModel UserModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return userModel.toEntity(), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	var userModel UserModel
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return userModel.toEntity(), nil
}

func (r *UserRepository) UpdateRefreshToken(ctx context.Context, userID uint, token string) error {
	return r.db.WithContext(ctx).Model(&UserModel{}).Where("id = ?", userID).
		Update("refresh_token", token).Error
}

func (r *UserRepository) UpdateAvatar(ctx context.Context, email, url string) (*entities.User, error) {
	if err := r.db.WithContext(ctx).Model(&UserModel{}).Where("email = ?", email).
		Update("avatar", url).Error; err != nil {
		return nil, err
	}

	return r.FindByEmail(ctx, email)
}

func (r *UserRepository) ConfirmEmail(ctx context.Context, email string) error {
	return r.db.WithContext(ctx).Model(&UserModel{}).Where("email = ?", email).
		Update("confirmed", true).Error
}
