package payment

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serenity-salon/booking-api/internal/audit"
	booking "github.com/serenity-salon/booking-api/internal/domain/booking"
	domain "github.com/serenity-salon/booking-api/internal/domain/payment"
	"github.com/serenity-salon/booking-api/internal/httperr"
	infraRepo "github.com/serenity-salon/booking-api/internal/infra/repository"
	"github.com/serenity-salon/booking-api/internal/models"
	"github.com/serenity-salon/booking-api/internal/payments"
)

// ======================================================
// FAKE PROVIDER
// ======================================================

type fakeProvider struct {
	nextID    int
	intents   map[string]*payments.Intent
	createErr error
	getErr    error
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{intents: make(map[string]*payments.Intent)}
}

func (f *fakeProvider) CreateIntent(
	_ context.Context,
	appointmentID uint,
	_ decimal.Decimal,
) (*payments.Intent, error) {

	if f.createErr != nil {
		return nil, f.createErr
	}

	f.nextID++
	id := fmt.Sprintf("pi_%d", f.nextID)
	intent := &payments.Intent{
		ID:            id,
		ClientSecret:  id + "_secret",
		Status:        payments.IntentIncomplete,
		AppointmentID: appointmentID,
	}
	f.intents[id] = intent
	return intent, nil
}

func (f *fakeProvider) GetIntent(
	_ context.Context,
	intentID string,
) (*payments.Intent, error) {

	if f.getErr != nil {
		return nil, f.getErr
	}

	intent, ok := f.intents[intentID]
	if !ok {
		return nil, payments.ErrDeclined
	}
	copied := *intent
	return &copied, nil
}

func (f *fakeProvider) settle(intentID string, status payments.IntentStatus) {
	f.intents[intentID].Status = status
}

var _ payments.Provider = (*fakeProvider)(nil)

// ======================================================
// FIXTURE
// ======================================================

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newTestReconciler(t *testing.T) (*Reconciler, *fakeProvider, *infraRepo.BookingMemoryRepository) {
	t.Helper()
	repo := infraRepo.NewBookingMemoryRepository()
	provider := newFakeProvider()
	r := NewReconciler(repo, provider, audit.NewDispatcher(audit.New(repo)))
	return r, provider, repo
}

func createAppointment(t *testing.T, repo *infraRepo.BookingMemoryRepository, withDown bool) *models.Appointment {
	t.Helper()

	ap := &models.Appointment{
		TotalAmount:     dec("120.00"),
		RemainingAmount: dec("120.00"),
		Status:          string(booking.StatusConfirmed),
		DownPaymentPaid: true,
	}
	if withDown {
		down := dec("30.00")
		ap.DownPaymentAmount = &down
		ap.RemainingAmount = dec("90.00")
		ap.Status = string(booking.StatusPending)
		ap.DownPaymentPaid = false
	}
	require.NoError(t, repo.CreateAppointment(context.Background(), ap))
	return ap
}

// ======================================================
// CREATE INTENT
// ======================================================

func TestCreateIntentReturnsClientSecret(t *testing.T) {
	r, _, repo := newTestReconciler(t)
	ap := createAppointment(t, repo, true)

	secret, err := r.CreateIntent(context.Background(), ap.ID)
	require.NoError(t, err)
	assert.Equal(t, "pi_1_secret", secret)

	state, ok := r.FlowState(ap.ID)
	require.True(t, ok)
	assert.Equal(t, domain.StateAwaitingPayment, state)
}

func TestCreateIntentRejectsNoDownPayment(t *testing.T) {
	r, _, repo := newTestReconciler(t)
	ap := createAppointment(t, repo, false)

	_, err := r.CreateIntent(context.Background(), ap.ID)
	require.Error(t, err)
	assert.Equal(t, "no_down_payment_required", httperr.BusinessCode(err))
}

func TestCreateIntentUnknownAppointment(t *testing.T) {
	r, _, _ := newTestReconciler(t)

	_, err := r.CreateIntent(context.Background(), 999)
	require.Error(t, err)
	assert.Equal(t, "appointment_not_found", httperr.BusinessCode(err))
}

func TestCreateIntentProviderFailureAdvancesNothing(t *testing.T) {
	r, provider, repo := newTestReconciler(t)
	ap := createAppointment(t, repo, true)
	provider.createErr = errors.New("processor unavailable")

	_, err := r.CreateIntent(context.Background(), ap.ID)
	require.Error(t, err)
	assert.Empty(t, httperr.BusinessCode(err))

	state, ok := r.FlowState(ap.ID)
	require.True(t, ok)
	assert.Equal(t, domain.StateAwaitingIntent, state)
}

// ======================================================
// CONFIRM
// ======================================================

func TestConfirmMarksAppointmentPaid(t *testing.T) {
	r, provider, repo := newTestReconciler(t)
	ctx := context.Background()
	ap := createAppointment(t, repo, true)

	_, err := r.CreateIntent(ctx, ap.ID)
	require.NoError(t, err)
	provider.settle("pi_1", payments.IntentSucceeded)

	require.NoError(t, r.Confirm(ctx, ap.ID, "pi_1"))

	got, err := repo.GetAppointmentByID(ctx, ap.ID)
	require.NoError(t, err)
	assert.True(t, got.DownPaymentPaid)
	assert.Equal(t, string(booking.StatusConfirmed), got.Status)
	assert.Equal(t, "pi_1", *got.PaymentReference)

	state, _ := r.FlowState(ap.ID)
	assert.Equal(t, domain.StateConfirmed, state)
}

func TestConfirmNotSucceededLeavesPending(t *testing.T) {
	r, provider, repo := newTestReconciler(t)
	ctx := context.Background()
	ap := createAppointment(t, repo, true)

	_, err := r.CreateIntent(ctx, ap.ID)
	require.NoError(t, err)
	provider.settle("pi_1", payments.IntentProcessing)

	err = r.Confirm(ctx, ap.ID, "pi_1")
	require.Error(t, err)
	assert.Equal(t, "payment_not_succeeded", httperr.BusinessCode(err))

	got, err := repo.GetAppointmentByID(ctx, ap.ID)
	require.NoError(t, err)
	assert.False(t, got.DownPaymentPaid)
	assert.Equal(t, string(booking.StatusPending), got.Status)

	// the flow is re-armed for another attempt
	state, _ := r.FlowState(ap.ID)
	assert.Equal(t, domain.StateAwaitingPayment, state)
}

func TestConfirmRetryAfterDecline(t *testing.T) {
	r, provider, repo := newTestReconciler(t)
	ctx := context.Background()
	ap := createAppointment(t, repo, true)

	_, err := r.CreateIntent(ctx, ap.ID)
	require.NoError(t, err)

	provider.getErr = payments.ErrDeclined
	err = r.Confirm(ctx, ap.ID, "pi_1")
	require.Error(t, err)
	assert.Equal(t, "payment_declined", httperr.BusinessCode(err))

	// the same appointment can be paid on the next attempt
	provider.getErr = nil
	provider.settle("pi_1", payments.IntentSucceeded)
	require.NoError(t, r.Confirm(ctx, ap.ID, "pi_1"))

	got, err := repo.GetAppointmentByID(ctx, ap.ID)
	require.NoError(t, err)
	assert.True(t, got.DownPaymentPaid)
}

func TestConfirmReplayIsNoOp(t *testing.T) {
	r, provider, repo := newTestReconciler(t)
	ctx := context.Background()
	ap := createAppointment(t, repo, true)

	_, err := r.CreateIntent(ctx, ap.ID)
	require.NoError(t, err)
	provider.settle("pi_1", payments.IntentSucceeded)

	require.NoError(t, r.Confirm(ctx, ap.ID, "pi_1"))
	require.NoError(t, r.Confirm(ctx, ap.ID, "pi_1"))
}

func TestConfirmDifferentIntentAfterPaid(t *testing.T) {
	r, provider, repo := newTestReconciler(t)
	ctx := context.Background()
	ap := createAppointment(t, repo, true)

	_, err := r.CreateIntent(ctx, ap.ID)
	require.NoError(t, err)
	provider.settle("pi_1", payments.IntentSucceeded)
	require.NoError(t, r.Confirm(ctx, ap.ID, "pi_1"))

	err = r.Confirm(ctx, ap.ID, "pi_other")
	require.Error(t, err)
	assert.Equal(t, "already_paid", httperr.BusinessCode(err))
}

func TestConfirmIntentForAnotherAppointment(t *testing.T) {
	r, provider, repo := newTestReconciler(t)
	ctx := context.Background()
	first := createAppointment(t, repo, true)
	second := createAppointment(t, repo, true)

	_, err := r.CreateIntent(ctx, first.ID)
	require.NoError(t, err)
	provider.settle("pi_1", payments.IntentSucceeded)

	err = r.Confirm(ctx, second.ID, "pi_1")
	require.Error(t, err)
	assert.Equal(t, "intent_mismatch", httperr.BusinessCode(err))

	got, err := repo.GetAppointmentByID(ctx, second.ID)
	require.NoError(t, err)
	assert.False(t, got.DownPaymentPaid)
}

func TestConfirmNoDownPayment(t *testing.T) {
	r, _, repo := newTestReconciler(t)
	ap := createAppointment(t, repo, false)

	err := r.Confirm(context.Background(), ap.ID, "pi_1")
	require.Error(t, err)
	assert.Equal(t, "no_down_payment_required", httperr.BusinessCode(err))
}
