package handlers

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/shamsy/home-services-api/internal/httperr"
	"github.com/shamsy/home-services-api/internal/httpresp"
	"github.com/shamsy/home-services-api/internal/i18n"
	"github.com/shamsy/home-services-api/internal/middleware"
	"github.com/shamsy/home-services-api/internal/models"
	ucrequest "github.com/shamsy/home-services-api/internal/usecase/request"
)

type CreateRequestUsecase interface {
	Execute(ctx context.Context, user *models.User, in ucrequest.CreateInput) (*models.ServiceRequest, error)
}

type ListRequestsUsecase interface {
	Execute(ctx context.Context, user *models.User) ([]models.ServiceRequest, error)
}

type ServiceRequestHandler struct {
	create CreateRequestUsecase
	list   ListRequestsUsecase
}

func NewServiceRequestHandler(create CreateRequestUsecase, list ListRequestsUsecase) *ServiceRequestHandler {
	return &ServiceRequestHandler{
		create: create,
		list:   list,
	}
}

type CreateServiceRequestRequest struct {
	Services    []uint `json:"services"`
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
	ServiceDay  string `json:"service_day"`
	Details     string `json:"details"`
}

func (h *ServiceRequestHandler) Create(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req CreateServiceRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Write(c, httperr.Validation("invalid request body"))
		return
	}

	created, err := h.create.Execute(c.Request.Context(), user, ucrequest.CreateInput{
		ServiceIDs:  req.Services,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		ServiceDay:  req.ServiceDay,
		Details:     req.Details,
	})
	if err != nil {
		httperr.Write(c, err)
		return
	}

	lang := i18n.FromHeader(c.GetHeader("Accept-Language"))

	httpresp.Created(c,
		"Service request created successfully",
		i18n.ProjectServiceRequest(created, lang),
	)
}

func (h *ServiceRequestHandler) List(c *gin.Context) {
	user := middleware.CurrentUser(c)

	requests, err := h.list.Execute(c.Request.Context(), user)
	if err != nil {
		httperr.Write(c, err)
		return
	}

	if len(requests) == 0 {
		httpresp.EmptyList(c, "No service requests found")
		return
	}

	lang := i18n.FromHeader(c.GetHeader("Accept-Language"))

	httpresp.OK(c,
		fmt.Sprintf("Successfully retrieved %d service requests", len(requests)),
		i18n.ProjectServiceRequestList(requests, lang),
	)
}
