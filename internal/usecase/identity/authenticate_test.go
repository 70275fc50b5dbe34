package identity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/shamsy/home-services-api/internal/httperr"
	"github.com/shamsy/home-services-api/internal/models"
)

func TestAuthenticate_Success(t *testing.T) {
	user := &models.User{ID: "user-1", FullName: "Sara Ahmad", IsActive: true}

	repo := new(MockIdentityRepository)
	repo.On("UserByToken", mock.Anything, "tok-123").Return(user, nil)

	uc := NewAuthenticate(repo)

	got, err := uc.Execute(context.Background(), "tok-123")

	assert.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestAuthenticate_UnknownToken(t *testing.T) {
	repo := new(MockIdentityRepository)
	repo.On("UserByToken", mock.Anything, "stale-token").Return(nil, nil)

	uc := NewAuthenticate(repo)

	_, err := uc.Execute(context.Background(), "stale-token")

	assert.Equal(t, httperr.KindUnauthorized, httperr.KindOf(err))
}

func TestAuthenticate_BlankToken(t *testing.T) {
	uc := NewAuthenticate(new(MockIdentityRepository))

	_, err := uc.Execute(context.Background(), "")

	assert.Equal(t, httperr.KindUnauthorized, httperr.KindOf(err))
}

func TestAuthenticate_InactiveUser(t *testing.T) {
	user := &models.User{ID: "user-1", IsActive: false}

	repo := new(MockIdentityRepository)
	repo.On("UserByToken", mock.Anything, "tok-123").Return(user, nil)

	uc := NewAuthenticate(repo)

	_, err := uc.Execute(context.Background(), "tok-123")

	assert.Equal(t, httperr.KindUnauthorized, httperr.KindOf(err))
}

func TestLogout_Idempotent(t *testing.T) {
	repo := new(MockIdentityRepository)
	repo.On("DeleteToken", mock.Anything, "tok-123").Return(nil)

	uc := NewLogout(repo)

	assert.NoError(t, uc.Execute(context.Background(), "tok-123"))
	assert.NoError(t, uc.Execute(context.Background(), "tok-123"))
	assert.NoError(t, uc.Execute(context.Background(), ""))

	repo.AssertNumberOfCalls(t, "DeleteToken", 2)
}
