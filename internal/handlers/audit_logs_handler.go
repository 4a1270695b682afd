package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/serenity-salon/booking-api/internal/domain/booking"
	"github.com/serenity-salon/booking-api/internal/httperr"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	repo domain.Repository
}

func NewAuditLogsHandler(repo domain.Repository) *AuditLogsHandler {
	return &AuditLogsHandler{repo: repo}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	filter := domain.AuditFilter{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
	}

	if fromStr := c.Query("from"); fromStr != "" {
		if from, err := time.Parse("2006-01-02", fromStr); err == nil {
			filter.From = &from
		}
	}
	if toStr := c.Query("to"); toStr != "" {
		if to, err := time.Parse("2006-01-02", toStr); err == nil {
			filter.To = &to
		}
	}

	filter.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	filter.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "50"))

	logs, total, err := h.repo.ListAuditLogs(c.Request.Context(), filter)
	if err != nil {
		httperr.Internal(c, "audit_list_failed", "Error listing audit logs.")
		return
	}

	c.JSON(200, gin.H{
		"page":  filter.Page,
		"limit": filter.Limit,
		"total": total,
		"logs":  logs,
	})
}
