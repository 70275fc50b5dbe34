package identity

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/shamsy/home-services-api/internal/models"
)

type MockIdentityRepository struct {
	mock.Mock
}

func (m *MockIdentityRepository) UserByFullName(ctx context.Context, fullName string) (*models.User, error) {
	args := m.Called(ctx, fullName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockIdentityRepository) UserByToken(ctx context.Context, tokenValue string) (*models.User, error) {
	args := m.Called(ctx, tokenValue)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockIdentityRepository) FullNameExists(ctx context.Context, fullName string) (bool, error) {
	args := m.Called(ctx, fullName)
	return args.Bool(0), args.Error(1)
}

func (m *MockIdentityRepository) PhoneNumberExists(ctx context.Context, phoneNumber string) (bool, error) {
	args := m.Called(ctx, phoneNumber)
	return args.Bool(0), args.Error(1)
}

func (m *MockIdentityRepository) CreateUserWithToken(ctx context.Context, user *models.User, token *models.AuthToken) error {
	args := m.Called(ctx, user, token)
	if args.Error(0) == nil && user.ID == "" {
		user.ID = "user-1" // simulate the store assigning an id
	}
	return args.Error(0)
}

func (m *MockIdentityRepository) ReplaceToken(ctx context.Context, userID string, token *models.AuthToken) error {
	args := m.Called(ctx, userID, token)
	return args.Error(0)
}

func (m *MockIdentityRepository) DeleteToken(ctx context.Context, tokenValue string) error {
	args := m.Called(ctx, tokenValue)
	return args.Error(0)
}
