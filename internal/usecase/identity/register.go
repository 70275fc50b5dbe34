package identity

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	domain "github.com/shamsy/home-services-api/internal/domain/identity"
	"github.com/shamsy/home-services-api/internal/httperr"
	"github.com/shamsy/home-services-api/internal/models"
)

type RegisterInput struct {
	FullName    string
	PhoneNumber string
}

type Register struct {
	repo domain.Repository
}

func NewRegister(repo domain.Repository) *Register {
	return &Register{repo: repo}
}

func (uc *Register) Execute(
	ctx context.Context,
	in RegisterInput,
) (*models.User, *models.AuthToken, error) {

	fullName := strings.TrimSpace(in.FullName)
	phone := strings.TrimSpace(in.PhoneNumber)

	if fullName == "" {
		return nil, nil, httperr.Validation("full_name is required")
	}
	if phone == "" {
		return nil, nil, httperr.Validation("phone_number is required")
	}

	exists, err := uc.repo.FullNameExists(ctx, fullName)
	if err != nil {
		return nil, nil, err
	}
	if exists {
		return nil, nil, httperr.Conflict("Username already exists")
	}

	exists, err = uc.repo.PhoneNumberExists(ctx, phone)
	if err != nil {
		return nil, nil, err
	}
	if exists {
		return nil, nil, httperr.Conflict("Phone number already exists")
	}

	// The registration secret is the phone number itself. Kept behind this
	// usecase so a real password can replace it without touching callers.
	hash, err := bcrypt.GenerateFromPassword([]byte(phone), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}

	value, err := newTokenValue()
	if err != nil {
		return nil, nil, err
	}

	user := &models.User{
		FullName:     fullName,
		PhoneNumber:  phone,
		PasswordHash: string(hash),
		IsActive:     true,
	}
	token := &models.AuthToken{TokenValue: value}

	if err := uc.repo.CreateUserWithToken(ctx, user, token); err != nil {
		return nil, nil, err
	}

	return user, token, nil
}
