package request

import (
	"context"

	"github.com/shamsy/home-services-api/internal/models"
)

// Repository covers the read-only catalog and service request persistence.
type Repository interface {
	ListServices(ctx context.Context) ([]models.Service, error)

	// ServiceByID returns (nil, nil) when the id is unknown.
	ServiceByID(ctx context.Context, id uint) (*models.Service, error)

	ServicesByIDs(ctx context.Context, ids []uint) ([]models.Service, error)

	// CreateWithServices persists the request and its service associations
	// in one transaction. A request is never visible with zero services.
	CreateWithServices(ctx context.Context, req *models.ServiceRequest) error

	// RequestByID returns the request with user and services preloaded.
	RequestByID(ctx context.Context, id uint) (*models.ServiceRequest, error)

	ListByRequester(ctx context.Context, userID string) ([]models.ServiceRequest, error)
}
