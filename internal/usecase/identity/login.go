package identity

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	domain "github.com/shamsy/home-services-api/internal/domain/identity"
	"github.com/shamsy/home-services-api/internal/httperr"
	"github.com/shamsy/home-services-api/internal/models"
)

type LoginInput struct {
	FullName    string
	PhoneNumber string
}

type Login struct {
	repo domain.Repository
}

func NewLogin(repo domain.Repository) *Login {
	return &Login{repo: repo}
}

func (uc *Login) Execute(
	ctx context.Context,
	in LoginInput,
) (*models.User, *models.AuthToken, error) {

	fullName := strings.TrimSpace(in.FullName)
	phone := strings.TrimSpace(in.PhoneNumber)

	if fullName == "" {
		return nil, nil, httperr.Validation("full_name is required")
	}
	if phone == "" {
		return nil, nil, httperr.Validation("phone_number is required")
	}

	user, err := uc.repo.UserByFullName(ctx, fullName)
	if err != nil {
		return nil, nil, err
	}
	if user == nil || user.PasswordHash == "" || !user.IsActive {
		return nil, nil, httperr.Unauthorized("Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(user.PasswordHash),
		[]byte(phone),
	); err != nil {
		return nil, nil, httperr.Unauthorized("Invalid credentials")
	}

	value, err := newTokenValue()
	if err != nil {
		return nil, nil, err
	}

	token := &models.AuthToken{TokenValue: value}
	if err := uc.repo.ReplaceToken(ctx, user.ID, token); err != nil {
		return nil, nil, err
	}

	return user, token, nil
}
