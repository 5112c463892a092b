package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"doubtconnect/internal/model"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("create user failed: %w", err)
	}
	return nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query user by username failed: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query user by email failed: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query user by id failed: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) MarkVerified(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", id).
		Update("verified", true).Error; err != nil {
		return fmt.Errorf("mark user verified failed: %w", err)
	}
	return nil
}

// UpdateProfile applies only the fields present in the update and returns
// the record as stored afterwards.
func (r *UserRepository) UpdateProfile(ctx context.Context, id uint, update model.ProfileUpdate) (*model.User, error) {
	fields := map[string]interface{}{}
	if update.FirstName != nil {
		fields["first_name"] = *update.FirstName
	}
	if update.LastName != nil {
		fields["last_name"] = *update.LastName
	}
	if update.DisplayPicture != nil {
		fields["display_picture"] = *update.DisplayPicture
	}
	if update.City != nil {
		fields["city"] = *update.City
	}

	if len(fields) > 0 {
		if err := r.db.WithContext(ctx).
			Model(&model.User{}).
			Where("id = ?", id).
			Updates(fields).Error; err != nil {
			return nil, fmt.Errorf("update user profile failed: %w", err)
		}
	}

	return r.GetByID(ctx, id)
}
