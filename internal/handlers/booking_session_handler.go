package handlers

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domain "github.com/serenity-salon/booking-api/internal/domain/booking"
	"github.com/serenity-salon/booking-api/internal/httperr"
	"github.com/serenity-salon/booking-api/internal/httpresp"
	ucBooking "github.com/serenity-salon/booking-api/internal/usecase/booking"
)

// ======================================================
// BOOKING SESSIONS
// ======================================================
//
// Server-side seat for the 3-step booking wizard. Each session is one
// client's in-progress booking, keyed by an opaque uuid. Abandoned sessions
// are pruned after an idle window; abandoning one never touches the store.

const sessionIdleTTL = 2 * time.Hour

type bookingSession struct {
	wizard   *domain.Wizard
	lastSeen time.Time
}

type BookingSessionHandler struct {
	repo     domain.Repository
	createUC *ucBooking.CreateBooking

	mu       sync.RWMutex
	sessions map[string]*bookingSession
}

func NewBookingSessionHandler(
	repo domain.Repository,
	createUC *ucBooking.CreateBooking,
) *BookingSessionHandler {
	return &BookingSessionHandler{
		repo:     repo,
		createUC: createUC,
		sessions: make(map[string]*bookingSession),
	}
}

// ======================================================
// REQUESTS
// ======================================================

type SelectServiceRequest struct {
	ServiceID uint `json:"service_id" binding:"required"`
}

type SelectScheduleRequest struct {
	StaffID uint   `json:"staff_id" binding:"required"`
	Date    string `json:"date" binding:"required"` // YYYY-MM-DD
	Time    string `json:"time" binding:"required"` // HH:mm
}

type ContactRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Notes     string `json:"notes"`
}

// ======================================================
// LIFECYCLE
// ======================================================

func (h *BookingSessionHandler) Create(c *gin.Context) {
	id := uuid.NewString()

	h.mu.Lock()
	h.pruneLocked()
	h.sessions[id] = &bookingSession{
		wizard:   domain.NewWizard(),
		lastSeen: time.Now(),
	}
	h.mu.Unlock()

	httpresp.Created(c, gin.H{
		"session_id": id,
		"step":       domain.StepService,
	})
}

func (h *BookingSessionHandler) Get(c *gin.Context) {
	w, ok := h.lookup(c.Param("id"))
	if !ok {
		httperr.NotFound(c, "session_not_found", "Booking session not found.")
		return
	}

	httpresp.OK(c, sessionView(c.Param("id"), w))
}

// ======================================================
// SELECTIONS
// ======================================================

func (h *BookingSessionHandler) SelectService(c *gin.Context) {
	w, ok := h.lookup(c.Param("id"))
	if !ok {
		httperr.NotFound(c, "session_not_found", "Booking session not found.")
		return
	}

	var req SelectServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid service selection.")
		return
	}

	svc, err := h.repo.GetServiceByID(c.Request.Context(), req.ServiceID)
	if err != nil {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}

	w.SelectService(svc)
	httpresp.OK(c, sessionView(c.Param("id"), w))
}

func (h *BookingSessionHandler) SelectSchedule(c *gin.Context) {
	w, ok := h.lookup(c.Param("id"))
	if !ok {
		httperr.NotFound(c, "session_not_found", "Booking session not found.")
		return
	}

	var req SelectScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid schedule selection.")
		return
	}

	st, err := h.repo.GetStaffByID(c.Request.Context(), req.StaffID)
	if err != nil {
		httperr.NotFound(c, "staff_not_found", "Staff member not found.")
		return
	}

	w.SelectSchedule(st, req.Date, req.Time)
	httpresp.OK(c, sessionView(c.Param("id"), w))
}

func (h *BookingSessionHandler) SetContact(c *gin.Context) {
	w, ok := h.lookup(c.Param("id"))
	if !ok {
		httperr.NotFound(c, "session_not_found", "Booking session not found.")
		return
	}

	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid contact details.")
		return
	}

	w.SetContact(domain.ContactForm{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	})
	w.Notes = req.Notes
	httpresp.OK(c, sessionView(c.Param("id"), w))
}

// ======================================================
// TRANSITIONS
// ======================================================

func (h *BookingSessionHandler) Next(c *gin.Context) {
	w, ok := h.lookup(c.Param("id"))
	if !ok {
		httperr.NotFound(c, "session_not_found", "Booking session not found.")
		return
	}

	if err := w.Next(); err != nil {
		mapWizardError(c, err)
		return
	}

	httpresp.OK(c, sessionView(c.Param("id"), w))
}

func (h *BookingSessionHandler) Back(c *gin.Context) {
	w, ok := h.lookup(c.Param("id"))
	if !ok {
		httperr.NotFound(c, "session_not_found", "Booking session not found.")
		return
	}

	w.Back()
	httpresp.OK(c, sessionView(c.Param("id"), w))
}

// ======================================================
// SUBMIT
// ======================================================

func (h *BookingSessionHandler) Submit(c *gin.Context) {
	id := c.Param("id")

	w, ok := h.lookup(id)
	if !ok {
		httperr.NotFound(c, "session_not_found", "Booking session not found.")
		return
	}

	req, err := w.Request()
	if err != nil {
		mapWizardError(c, err)
		return
	}

	requiresDownPayment := w.Service.RequiresDownPayment

	ap, err := h.createUC.Execute(c.Request.Context(), *req)
	if err != nil {
		mapBookingError(c, err)
		return
	}

	if requiresDownPayment {
		// Hand off to the payment flow; the session is done.
		h.drop(id)
	} else {
		w.Reset()
	}

	httpresp.Created(c, gin.H{
		"appointment":           ap,
		"requires_down_payment": requiresDownPayment,
	})
}

// ======================================================
// HELPERS
// ======================================================

func (h *BookingSessionHandler) lookup(id string) (*domain.Wizard, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	s, ok := h.sessions[id]
	if !ok {
		return nil, false
	}
	s.lastSeen = time.Now()
	return s.wizard, true
}

func (h *BookingSessionHandler) drop(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.sessions, id)
}

func (h *BookingSessionHandler) pruneLocked() {
	cutoff := time.Now().Add(-sessionIdleTTL)
	for id, s := range h.sessions {
		if s.lastSeen.Before(cutoff) {
			delete(h.sessions, id)
		}
	}
}

func sessionView(id string, w *domain.Wizard) gin.H {
	view := gin.H{
		"session_id": id,
		"step":       w.Step,
		"date":       w.Date,
		"time":       w.Time,
		"contact": gin.H{
			"first_name": w.Contact.FirstName,
			"last_name":  w.Contact.LastName,
			"email":      w.Contact.Email,
			"phone":      w.Contact.Phone,
		},
	}
	if w.Service != nil {
		view["service"] = w.Service
	}
	if w.Staff != nil {
		view["staff"] = w.Staff
	}
	return view
}

func mapWizardError(c *gin.Context, err error) {
	messages := map[string]string{
		"service_required":    "Please select a service to continue.",
		"schedule_incomplete": "Please select a staff member, date, and time.",
		"no_next_step":        "Already on the final step.",
		"wizard_incomplete":   "Please complete all steps before submitting.",
		"first_name_required": "First name is required.",
		"last_name_required":  "Last name is required.",
		"invalid_email":       "Valid email is required.",
		"invalid_phone":       "Valid phone number is required.",
	}

	code := httperr.BusinessCode(err)
	if msg, ok := messages[code]; ok {
		httperr.BadRequest(c, code, msg)
		return
	}
	httperr.Internal(c, "booking_session_error", "Error processing booking session.")
}
