package identity

import (
	"context"

	domain "github.com/shamsy/home-services-api/internal/domain/identity"
	"github.com/shamsy/home-services-api/internal/httperr"
	"github.com/shamsy/home-services-api/internal/models"
)

const unauthenticatedMessage = "Authentication credentials were not provided or invalid."

type Authenticate struct {
	repo domain.Repository
}

func NewAuthenticate(repo domain.Repository) *Authenticate {
	return &Authenticate{repo: repo}
}

func (uc *Authenticate) Execute(
	ctx context.Context,
	tokenValue string,
) (*models.User, error) {

	if tokenValue == "" {
		return nil, httperr.Unauthorized(unauthenticatedMessage)
	}

	user, err := uc.repo.UserByToken(ctx, tokenValue)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, httperr.Unauthorized(unauthenticatedMessage)
	}

	return user, nil
}
