package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/serenity-salon/booking-api/internal/httperr"
	"github.com/serenity-salon/booking-api/internal/httpresp"
	ucPayment "github.com/serenity-salon/booking-api/internal/usecase/payment"
)

// ======================================================
// HANDLER
// ======================================================

type PaymentHandler struct {
	reconciler *ucPayment.Reconciler
}

func NewPaymentHandler(reconciler *ucPayment.Reconciler) *PaymentHandler {
	return &PaymentHandler{reconciler: reconciler}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateIntentRequest struct {
	AppointmentID uint `json:"appointment_id" binding:"required"`
}

type ConfirmPaymentRequest struct {
	AppointmentID   uint   `json:"appointment_id" binding:"required"`
	PaymentIntentID string `json:"payment_intent_id" binding:"required"`
}

// ======================================================
// CREATE PAYMENT INTENT
// ======================================================

func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var req CreateIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid payment data.")
		return
	}

	secret, err := h.reconciler.CreateIntent(c.Request.Context(), req.AppointmentID)
	if err != nil {
		mapPaymentError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"client_secret": secret})
}

// ======================================================
// CONFIRM PAYMENT
// ======================================================

func (h *PaymentHandler) Confirm(c *gin.Context) {
	var req ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid payment data.")
		return
	}

	err := h.reconciler.Confirm(
		c.Request.Context(),
		req.AppointmentID,
		req.PaymentIntentID,
	)
	if err != nil {
		mapPaymentError(c, err)
		return
	}

	httpresp.Success(c)
}

// ======================================================
// HELPERS
// ======================================================

func mapPaymentError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "appointment_not_found"):
		httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
	case httperr.IsBusiness(err, "no_down_payment_required"):
		httperr.BadRequest(c, "no_down_payment_required", "No down payment required for this service.")
	case httperr.IsBusiness(err, "already_paid"):
		httperr.BadRequest(c, "already_paid", "Down payment has already been collected.")
	case httperr.IsBusiness(err, "payment_declined"):
		httperr.PaymentRequired(c, "payment_declined", "Payment was declined. Please try another payment method.")
	case httperr.IsBusiness(err, "payment_not_succeeded"):
		httperr.PaymentRequired(c, "payment_not_succeeded", "Payment has not completed. Please try again.")
	case httperr.IsBusiness(err, "intent_mismatch"):
		httperr.BadRequest(c, "intent_mismatch", "Payment does not belong to this appointment.")
	case httperr.IsBusiness(err, "invalid_payment_transition"):
		httperr.BadRequest(c, "invalid_payment_transition", "Payment flow is not in a confirmable state.")
	default:
		httperr.BadGateway(c, "payment_provider_error", "Payment provider is unavailable. Please try again later.")
	}
}
