package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/shamsy/home-services-api/internal/models"
)

type RequestGormRepository struct {
	db *gorm.DB
}

func NewRequestGormRepository(db *gorm.DB) *RequestGormRepository {
	return &RequestGormRepository{db: db}
}

// --------------------------------------------------
// Catalog (read-only)
// --------------------------------------------------

func (r *RequestGormRepository) ListServices(
	ctx context.Context,
) ([]models.Service, error) {

	var services []models.Service
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&services).Error
	return services, err
}

func (r *RequestGormRepository) ServiceByID(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var service models.Service
	err := r.db.WithContext(ctx).First(&service, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *RequestGormRepository) ServicesByIDs(
	ctx context.Context,
	ids []uint,
) ([]models.Service, error) {

	var services []models.Service
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&services).Error
	return services, err
}

// --------------------------------------------------
// Service requests
// --------------------------------------------------

func (r *RequestGormRepository) CreateWithServices(
	ctx context.Context,
	req *models.ServiceRequest,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Omit("Services.*") writes the join rows without upserting the
		// catalog rows themselves.
		return tx.Omit("Services.*").Create(req).Error
	})
}

func (r *RequestGormRepository) RequestByID(
	ctx context.Context,
	id uint,
) (*models.ServiceRequest, error) {

	var req models.ServiceRequest
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Services").
		First(&req, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *RequestGormRepository) ListByRequester(
	ctx context.Context,
	userID string,
) ([]models.ServiceRequest, error) {

	var requests []models.ServiceRequest
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Services").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}
