package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/shamsy/home-services-api/internal/httperr"
	"github.com/shamsy/home-services-api/internal/models"
)

type IdentityGormRepository struct {
	db *gorm.DB
}

func NewIdentityGormRepository(db *gorm.DB) *IdentityGormRepository {
	return &IdentityGormRepository{db: db}
}

// --------------------------------------------------
// Users
// --------------------------------------------------

func (r *IdentityGormRepository) UserByFullName(
	ctx context.Context,
	fullName string,
) (*models.User, error) {

	var user models.User
	err := r.db.WithContext(ctx).
		Where("full_name = ?", fullName).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *IdentityGormRepository) UserByToken(
	ctx context.Context,
	tokenValue string,
) (*models.User, error) {

	var token models.AuthToken
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("token_value = ?", tokenValue).
		First(&token).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &token.User, nil
}

func (r *IdentityGormRepository) FullNameExists(
	ctx context.Context,
	fullName string,
) (bool, error) {

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("full_name = ?", fullName).
		Count(&count).Error
	return count > 0, err
}

func (r *IdentityGormRepository) PhoneNumberExists(
	ctx context.Context,
	phoneNumber string,
) (bool, error) {

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("phone_number = ?", phoneNumber).
		Count(&count).Error
	return count > 0, err
}

// --------------------------------------------------
// Tokens
// --------------------------------------------------

func (r *IdentityGormRepository) CreateUserWithToken(
	ctx context.Context,
	user *models.User,
	token *models.AuthToken,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", user.ID).
			Delete(&models.AuthToken{}).Error; err != nil {
			return err
		}
		token.UserID = user.ID
		return tx.Create(token).Error
	})

	// A lost uniqueness race surfaces here rather than in the Exists checks.
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return httperr.Conflict("Username already exists")
	}
	return err
}

func (r *IdentityGormRepository) ReplaceToken(
	ctx context.Context,
	userID string,
	token *models.AuthToken,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).
			Delete(&models.AuthToken{}).Error; err != nil {
			return err
		}
		token.UserID = userID
		return tx.Create(token).Error
	})
}

func (r *IdentityGormRepository) DeleteToken(
	ctx context.Context,
	tokenValue string,
) error {

	return r.db.WithContext(ctx).
		Where("token_value = ?", tokenValue).
		Delete(&models.AuthToken{}).Error
}
