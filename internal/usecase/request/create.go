package request

import (
	"context"
	"strings"

	domain "github.com/shamsy/home-services-api/internal/domain/request"
	"github.com/shamsy/home-services-api/internal/httperr"
	"github.com/shamsy/home-services-api/internal/models"
)

// Notifier receives the committed request. It must never block or fail the
// caller, dispatch is fire-and-forget.
type Notifier interface {
	Dispatch(req *models.ServiceRequest)
}

type CreateInput struct {
	ServiceIDs  []uint
	PhoneNumber string
	Address     string
	ServiceDay  string
	Details     string
}

type Create struct {
	repo     domain.Repository
	notifier Notifier
}

func NewCreate(repo domain.Repository, notifier Notifier) *Create {
	return &Create{repo: repo, notifier: notifier}
}

func (uc *Create) Execute(
	ctx context.Context,
	user *models.User,
	in CreateInput,
) (*models.ServiceRequest, error) {

	if user == nil {
		return nil, httperr.Unauthorized("Authentication credentials were not provided or invalid.")
	}

	if len(in.ServiceIDs) == 0 {
		return nil, httperr.Validation("services must be a non-empty list")
	}
	if strings.TrimSpace(in.PhoneNumber) == "" {
		return nil, httperr.Validation("phone_number is required")
	}
	if strings.TrimSpace(in.Address) == "" {
		return nil, httperr.Validation("address is required")
	}
	if strings.TrimSpace(in.ServiceDay) == "" {
		return nil, httperr.Validation("service_day is required")
	}

	ids := dedupe(in.ServiceIDs)

	services, err := uc.repo.ServicesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	// One unknown id fails the whole submission, no partial association.
	if len(services) != len(ids) {
		return nil, httperr.Validation("services contains unknown service ids")
	}

	req := &models.ServiceRequest{
		UserID:      user.ID,
		Services:    services,
		PhoneNumber: strings.TrimSpace(in.PhoneNumber),
		Address:     strings.TrimSpace(in.Address),
		ServiceDay:  strings.TrimSpace(in.ServiceDay),
		Details:     strings.TrimSpace(in.Details),
	}

	if err := uc.repo.CreateWithServices(ctx, req); err != nil {
		return nil, err
	}

	full, err := uc.repo.RequestByID(ctx, req.ID)
	if err != nil || full == nil {
		// The row is committed, fall back to what we have.
		req.User = *user
		full = req
	}

	uc.notifier.Dispatch(full)

	return full, nil
}

func dedupe(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
