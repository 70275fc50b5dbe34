package request

import (
	"context"

	domain "github.com/shamsy/home-services-api/internal/domain/request"
	"github.com/shamsy/home-services-api/internal/httperr"
	"github.com/shamsy/home-services-api/internal/models"
)

type List struct {
	repo domain.Repository
}

func NewList(repo domain.Repository) *List {
	return &List{repo: repo}
}

// Execute returns the caller's own requests, newest first.
func (uc *List) Execute(
	ctx context.Context,
	user *models.User,
) ([]models.ServiceRequest, error) {

	if user == nil {
		return nil, httperr.Unauthorized("Authentication credentials were not provided or invalid.")
	}

	return uc.repo.ListByRequester(ctx, user.ID)
}
