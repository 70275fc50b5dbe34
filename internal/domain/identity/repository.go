package identity

import (
	"context"

	"github.com/shamsy/home-services-api/internal/models"
)

// Repository owns users and their single live token. Lookups return
// (nil, nil) when the record does not exist.
type Repository interface {
	UserByFullName(ctx context.Context, fullName string) (*models.User, error)
	UserByToken(ctx context.Context, tokenValue string) (*models.User, error)

	FullNameExists(ctx context.Context, fullName string) (bool, error)
	PhoneNumberExists(ctx context.Context, phoneNumber string) (bool, error)

	// CreateUserWithToken persists the user and its first token in one
	// transaction, clearing any stale token rows for the identity.
	CreateUserWithToken(ctx context.Context, user *models.User, token *models.AuthToken) error

	// ReplaceToken atomically deletes the user's live token and inserts
	// the new one. A caller never observes two valid tokens.
	ReplaceToken(ctx context.Context, userID string, token *models.AuthToken) error

	// DeleteToken is idempotent, deleting an absent token is not an error.
	DeleteToken(ctx context.Context, tokenValue string) error
}
