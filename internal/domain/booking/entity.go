package booking

import (
	"github.com/shopspring/decimal"

	"github.com/serenity-salon/booking-api/internal/models"
)

// ===============================
// Booking Request
// ===============================

// Request is the single output of the wizard (or of a direct POST): one
// validated booking ready to be turned into an appointment.
type Request struct {
	ServiceID uint
	StaffID   uint

	Date string // YYYY-MM-DD
	Time string // HH:mm

	FirstName string
	LastName  string
	Email     string
	Phone     string

	Notes string
}

// ===============================
// Amounts
// ===============================

// Amounts derives the money triple for a booking of the given service.
// remaining = total - down; down is zero unless the service asks for one.
func Amounts(svc *models.Service) (total, down, remaining decimal.Decimal) {
	total = svc.Price

	if svc.RequiresDownPayment && svc.DownPaymentAmount != nil {
		down = *svc.DownPaymentAmount
	} else {
		down = decimal.Zero
	}

	remaining = total.Sub(down)
	return total, down, remaining
}

// ===============================
// Domain Actions
// ===============================

// MarkPaid records a confirmed down payment. Idempotent: replaying the same
// confirmation leaves the appointment unchanged.
func MarkPaid(ap *models.Appointment, paymentReference string) {
	ref := paymentReference
	ap.PaymentReference = &ref
	ap.DownPaymentPaid = true
	ap.Status = string(StatusConfirmed)
}
