package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/serenity-salon/booking-api/internal/domain/booking"
	"github.com/serenity-salon/booking-api/internal/httperr"
	"github.com/serenity-salon/booking-api/internal/httpresp"
	"github.com/serenity-salon/booking-api/internal/middleware"
	ucBooking "github.com/serenity-salon/booking-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	repo     domain.Repository
	createUC *ucBooking.CreateBooking
	statusUC *ucBooking.UpdateStatus
}

func NewAppointmentHandler(
	repo domain.Repository,
	createUC *ucBooking.CreateBooking,
	statusUC *ucBooking.UpdateStatus,
) *AppointmentHandler {
	return &AppointmentHandler{
		repo:     repo,
		createUC: createUC,
		statusUC: statusUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ServiceID       uint   `json:"service_id" binding:"required"`
	StaffID         uint   `json:"staff_id" binding:"required"`
	AppointmentDate string `json:"appointment_date" binding:"required"` // YYYY-MM-DD
	AppointmentTime string `json:"appointment_time" binding:"required"` // HH:mm
	FirstName       string `json:"first_name" binding:"required"`
	LastName        string `json:"last_name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Phone           string `json:"phone" binding:"required,min=10,phone"`
	Notes           string `json:"notes"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking data.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), domain.Request{
		ServiceID: req.ServiceID,
		StaffID:   req.StaffID,
		Date:      req.AppointmentDate,
		Time:      req.AppointmentTime,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Notes:     req.Notes,
	})
	if err != nil {
		mapBookingError(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// LIST / GET
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	aps, err := h.repo.ListAppointments(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Error fetching appointments.")
		return
	}

	httpresp.OK(c, aps)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Invalid appointment id.")
		return
	}

	ap, err := h.repo.GetAppointmentByID(c.Request.Context(), id)
	if err != nil {
		httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// STATUS (MANAGEMENT VIEW)
// ======================================================

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Invalid appointment id.")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid status data.")
		return
	}

	_, err = h.statusUC.Execute(
		c.Request.Context(),
		&userID,
		id,
		domain.Status(req.Status),
	)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "invalid_status"):
			httperr.BadRequest(c, "invalid_status", "Unknown appointment status.")
		case httperr.IsBusiness(err, "appointment_not_found"):
			httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
		default:
			httperr.Internal(c, "failed_to_update_status", "Error updating appointment status.")
		}
		return
	}

	httpresp.Success(c)
}

// ======================================================
// HELPERS
// ======================================================

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	return uint(id), err
}

func mapBookingError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "service_not_found"):
		httperr.NotFound(c, "service_not_found", "Service not found.")
	case httperr.IsBusiness(err, "staff_not_found"):
		httperr.NotFound(c, "staff_not_found", "Staff member not found.")
	case httperr.IsBusiness(err, "invalid_date_or_time"):
		httperr.BadRequest(c, "invalid_date_or_time", "Invalid appointment date or time.")
	default:
		httperr.Internal(c, "failed_to_create_appointment", "Error creating appointment.")
	}
}
