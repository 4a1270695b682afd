package booking

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/serenity-salon/booking-api/internal/models"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestAmountsWithDownPayment(t *testing.T) {
	down := dec("30.00")
	svc := &models.Service{
		Price:               dec("120.00"),
		RequiresDownPayment: true,
		DownPaymentAmount:   &down,
	}

	total, dp, remaining := Amounts(svc)
	assert.True(t, total.Equal(dec("120.00")))
	assert.True(t, dp.Equal(dec("30.00")))
	assert.True(t, remaining.Equal(dec("90.00")))
}

func TestAmountsWithoutDownPayment(t *testing.T) {
	svc := &models.Service{Price: dec("45.00")}

	total, dp, remaining := Amounts(svc)
	assert.True(t, total.Equal(dec("45.00")))
	assert.True(t, dp.IsZero())
	assert.True(t, remaining.Equal(dec("45.00")))
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, StatusPending, InitialStatus(true))
	assert.Equal(t, StatusConfirmed, InitialStatus(false))
}

func TestStatusValid(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled} {
		assert.True(t, s.Valid())
	}
	assert.False(t, Status("rescheduled").Valid())
	assert.False(t, Status("").Valid())
}

func TestMarkPaidIsIdempotent(t *testing.T) {
	down := dec("30.00")
	ap := &models.Appointment{
		Status:            string(StatusPending),
		DownPaymentAmount: &down,
	}

	MarkPaid(ap, "pi_123")
	assert.True(t, ap.DownPaymentPaid)
	assert.Equal(t, string(StatusConfirmed), ap.Status)
	assert.Equal(t, "pi_123", *ap.PaymentReference)

	MarkPaid(ap, "pi_123")
	assert.True(t, ap.DownPaymentPaid)
	assert.Equal(t, string(StatusConfirmed), ap.Status)
	assert.Equal(t, "pi_123", *ap.PaymentReference)
}
