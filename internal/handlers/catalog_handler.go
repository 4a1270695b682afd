package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	domain "github.com/serenity-salon/booking-api/internal/domain/booking"
	"github.com/serenity-salon/booking-api/internal/httperr"
	"github.com/serenity-salon/booking-api/internal/httpresp"
)

// Read-only catalog: services and staff are seeded at startup.
type CatalogHandler struct {
	repo domain.Repository
}

func NewCatalogHandler(repo domain.Repository) *CatalogHandler {
	return &CatalogHandler{repo: repo}
}

func (h *CatalogHandler) ListServices(c *gin.Context) {
	filter := domain.ServiceFilter{
		Category: strings.TrimSpace(strings.ToLower(c.Query("category"))),
		Query:    strings.TrimSpace(strings.ToLower(c.Query("query"))),
	}

	services, err := h.repo.ListServices(c.Request.Context(), filter)
	if err != nil {
		httperr.Internal(c, "failed_to_list_services", "Error fetching services.")
		return
	}

	httpresp.OK(c, services)
}

func (h *CatalogHandler) ListStaff(c *gin.Context) {
	staff, err := h.repo.ListStaff(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_staff", "Error fetching staff.")
		return
	}

	httpresp.OK(c, staff)
}
