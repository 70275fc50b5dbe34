package request

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/shamsy/home-services-api/internal/httperr"
	"github.com/shamsy/home-services-api/internal/models"
)

// ==================== Mocks ====================

type MockRequestRepository struct {
	mock.Mock
}

func (m *MockRequestRepository) ListServices(ctx context.Context) ([]models.Service, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Service), args.Error(1)
}

func (m *MockRequestRepository) ServiceByID(ctx context.Context, id uint) (*models.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Service), args.Error(1)
}

func (m *MockRequestRepository) ServicesByIDs(ctx context.Context, ids []uint) ([]models.Service, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Service), args.Error(1)
}

func (m *MockRequestRepository) CreateWithServices(ctx context.Context, req *models.ServiceRequest) error {
	args := m.Called(ctx, req)
	if args.Error(0) == nil && req.ID == 0 {
		req.ID = 1 // simulate the store assigning an id
	}
	return args.Error(0)
}

func (m *MockRequestRepository) RequestByID(ctx context.Context, id uint) (*models.ServiceRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ServiceRequest), args.Error(1)
}

func (m *MockRequestRepository) ListByRequester(ctx context.Context, userID string) ([]models.ServiceRequest, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ServiceRequest), args.Error(1)
}

type recordingNotifier struct {
	dispatched []*models.ServiceRequest
}

func (n *recordingNotifier) Dispatch(req *models.ServiceRequest) {
	n.dispatched = append(n.dispatched, req)
}

// ==================== Create ====================

func validInput() CreateInput {
	return CreateInput{
		ServiceIDs:  []uint{1, 2},
		PhoneNumber: "0999111222",
		Address:     "Damascus, Mazzeh",
		ServiceDay:  "Friday morning",
	}
}

func caller() *models.User {
	return &models.User{ID: "user-1", FullName: "Sara Ahmad", IsActive: true}
}

func TestCreate_Success(t *testing.T) {
	services := []models.Service{
		{ID: 1, Title: "Carpentry", TitleAr: "نجارة"},
		{ID: 2, Title: "Plumbing", TitleAr: "سباكة"},
	}
	loaded := &models.ServiceRequest{
		ID:       1,
		UserID:   "user-1",
		User:     *caller(),
		Services: services,
	}

	repo := new(MockRequestRepository)
	repo.On("ServicesByIDs", mock.Anything, []uint{1, 2}).Return(services, nil)
	repo.On("CreateWithServices", mock.Anything, mock.Anything).Return(nil)
	repo.On("RequestByID", mock.Anything, uint(1)).Return(loaded, nil)

	notifier := &recordingNotifier{}
	uc := NewCreate(repo, notifier)

	got, err := uc.Execute(context.Background(), caller(), validInput())

	assert.NoError(t, err)
	assert.Equal(t, loaded, got)
	assert.Len(t, notifier.dispatched, 1)
	assert.Equal(t, loaded, notifier.dispatched[0])
	repo.AssertExpectations(t)
}

func TestCreate_Unauthenticated(t *testing.T) {
	repo := new(MockRequestRepository)
	notifier := &recordingNotifier{}
	uc := NewCreate(repo, notifier)

	_, err := uc.Execute(context.Background(), nil, validInput())

	assert.Equal(t, httperr.KindUnauthorized, httperr.KindOf(err))
	repo.AssertNotCalled(t, "CreateWithServices", mock.Anything, mock.Anything)
	assert.Empty(t, notifier.dispatched)
}

func TestCreate_EmptyServices(t *testing.T) {
	repo := new(MockRequestRepository)
	notifier := &recordingNotifier{}
	uc := NewCreate(repo, notifier)

	in := validInput()
	in.ServiceIDs = nil

	_, err := uc.Execute(context.Background(), caller(), in)

	assert.Equal(t, httperr.KindValidation, httperr.KindOf(err))
	assert.EqualError(t, err, "services must be a non-empty list")
	repo.AssertNotCalled(t, "CreateWithServices", mock.Anything, mock.Anything)
	assert.Empty(t, notifier.dispatched)
}

func TestCreate_UnknownServiceID(t *testing.T) {
	repo := new(MockRequestRepository)
	// Only one of the two ids resolves.
	repo.On("ServicesByIDs", mock.Anything, []uint{1, 99999}).
		Return([]models.Service{{ID: 1}}, nil)

	notifier := &recordingNotifier{}
	uc := NewCreate(repo, notifier)

	in := validInput()
	in.ServiceIDs = []uint{1, 99999}

	_, err := uc.Execute(context.Background(), caller(), in)

	assert.Equal(t, httperr.KindValidation, httperr.KindOf(err))
	repo.AssertNotCalled(t, "CreateWithServices", mock.Anything, mock.Anything)
	assert.Empty(t, notifier.dispatched)
}

func TestCreate_MissingRequiredFields(t *testing.T) {
	cases := map[string]func(*CreateInput){
		"phone_number": func(in *CreateInput) { in.PhoneNumber = " " },
		"address":      func(in *CreateInput) { in.Address = "" },
		"service_day":  func(in *CreateInput) { in.ServiceDay = "" },
	}

	for field, blank := range cases {
		repo := new(MockRequestRepository)
		uc := NewCreate(repo, &recordingNotifier{})

		in := validInput()
		blank(&in)

		_, err := uc.Execute(context.Background(), caller(), in)

		assert.Equal(t, httperr.KindValidation, httperr.KindOf(err), field)
		assert.Contains(t, err.Error(), field)
		repo.AssertNotCalled(t, "CreateWithServices", mock.Anything, mock.Anything)
	}
}

func TestCreate_DuplicateIDsCollapse(t *testing.T) {
	services := []models.Service{{ID: 1, Title: "Carpentry"}}
	loaded := &models.ServiceRequest{ID: 1, User: *caller(), Services: services}

	repo := new(MockRequestRepository)
	repo.On("ServicesByIDs", mock.Anything, []uint{1}).Return(services, nil)
	repo.On("CreateWithServices", mock.Anything, mock.Anything).Return(nil)
	repo.On("RequestByID", mock.Anything, uint(1)).Return(loaded, nil)

	uc := NewCreate(repo, &recordingNotifier{})

	in := validInput()
	in.ServiceIDs = []uint{1, 1, 1}

	_, err := uc.Execute(context.Background(), caller(), in)

	assert.NoError(t, err)
	repo.AssertCalled(t, "ServicesByIDs", mock.Anything, []uint{1})
}

// ==================== List ====================

func TestList_OwnRequestsOnly(t *testing.T) {
	own := []models.ServiceRequest{{ID: 2, UserID: "user-1"}, {ID: 1, UserID: "user-1"}}

	repo := new(MockRequestRepository)
	repo.On("ListByRequester", mock.Anything, "user-1").Return(own, nil)

	uc := NewList(repo)

	got, err := uc.Execute(context.Background(), caller())

	assert.NoError(t, err)
	assert.Equal(t, own, got)
	// The query is scoped to the caller, another user's id is never used.
	repo.AssertCalled(t, "ListByRequester", mock.Anything, "user-1")
}

func TestList_Unauthenticated(t *testing.T) {
	repo := new(MockRequestRepository)
	uc := NewList(repo)

	_, err := uc.Execute(context.Background(), nil)

	assert.Equal(t, httperr.KindUnauthorized, httperr.KindOf(err))
	repo.AssertNotCalled(t, "ListByRequester", mock.Anything, mock.Anything)
}

func TestList_EmptyIsNotAnError(t *testing.T) {
	repo := new(MockRequestRepository)
	repo.On("ListByRequester", mock.Anything, "user-1").Return([]models.ServiceRequest{}, nil)

	uc := NewList(repo)

	got, err := uc.Execute(context.Background(), caller())

	assert.NoError(t, err)
	assert.Empty(t, got)
}
