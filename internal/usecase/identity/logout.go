package identity

import (
	"context"

	domain "github.com/shamsy/home-services-api/internal/domain/identity"
)

type Logout struct {
	repo domain.Repository
}

func NewLogout(repo domain.Repository) *Logout {
	return &Logout{repo: repo}
}

// Execute deletes the caller's token. Idempotent.
func (uc *Logout) Execute(ctx context.Context, tokenValue string) error {
	if tokenValue == "" {
		return nil
	}
	return uc.repo.DeleteToken(ctx, tokenValue)
}
