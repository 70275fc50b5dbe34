package handlers

import (
	"context"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shamsy/home-services-api/internal/httperr"
	"github.com/shamsy/home-services-api/internal/httpresp"
	"github.com/shamsy/home-services-api/internal/i18n"
	"github.com/shamsy/home-services-api/internal/models"
)

// Catalog is the read-only service listing the handler renders from.
type Catalog interface {
	ListServices(ctx context.Context) ([]models.Service, error)
	ServiceByID(ctx context.Context, id uint) (*models.Service, error)
}

type ServiceHandler struct {
	catalog Catalog
}

func NewServiceHandler(catalog Catalog) *ServiceHandler {
	return &ServiceHandler{catalog: catalog}
}

func (h *ServiceHandler) List(c *gin.Context) {
	services, err := h.catalog.ListServices(c.Request.Context())
	if err != nil {
		httperr.Write(c, err)
		return
	}

	if len(services) == 0 {
		httpresp.EmptyList(c, "No services found")
		return
	}

	lang := i18n.FromHeader(c.GetHeader("Accept-Language"))

	httpresp.OK(c,
		fmt.Sprintf("Successfully retrieved %d services", len(services)),
		i18n.ProjectServiceList(services, lang),
	)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	idParam := c.Param("id")
	id, err := strconv.ParseUint(idParam, 10, 64)
	if err != nil {
		httperr.Write(c, httperr.NotFound("Service with ID %s not found", idParam))
		return
	}

	service, err := h.catalog.ServiceByID(c.Request.Context(), uint(id))
	if err != nil {
		httperr.Write(c, err)
		return
	}
	if service == nil {
		httperr.Write(c, httperr.NotFound("Service with ID %d not found", id))
		return
	}

	lang := i18n.FromHeader(c.GetHeader("Accept-Language"))

	httpresp.OK(c,
		fmt.Sprintf("Successfully retrieved service with ID %d", id),
		i18n.ProjectService(service, lang, true),
	)
}
