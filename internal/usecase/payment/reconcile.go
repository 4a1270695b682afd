package payment

import (
	"context"
	"errors"
	"sync"

	"github.com/serenity-salon/booking-api/internal/audit"
	booking "github.com/serenity-salon/booking-api/internal/domain/booking"
	domain "github.com/serenity-salon/booking-api/internal/domain/payment"
	"github.com/serenity-salon/booking-api/internal/httperr"
	"github.com/serenity-salon/booking-api/internal/models"
	"github.com/serenity-salon/booking-api/internal/payments"
)

// ======================================================
// USE CASE — PAYMENT RECONCILIATION
// ======================================================
//
// Drives the per-appointment payment flow against the external processor.
// The appointment is only mutated once the processor reports the intent
// succeeded; any failure before that leaves it pending.

type Reconciler struct {
	repo     booking.Repository
	provider payments.Provider
	audit    *audit.Dispatcher

	mu    sync.Mutex
	flows map[uint]*domain.Flow
}

func NewReconciler(
	repo booking.Repository,
	provider payments.Provider,
	audit *audit.Dispatcher,
) *Reconciler {
	return &Reconciler{
		repo:     repo,
		provider: provider,
		audit:    audit,
		flows:    make(map[uint]*domain.Flow),
	}
}

// --------------------------------------------------
// CREATE INTENT
// --------------------------------------------------

func (r *Reconciler) CreateIntent(
	ctx context.Context,
	appointmentID uint,
) (clientSecret string, err error) {

	ap, err := r.loadPayable(ctx, appointmentID)
	if err != nil {
		return "", err
	}

	flow := r.flowFor(appointmentID, domain.StateAwaitingIntent)
	if flow.Terminal() {
		return "", httperr.ErrBusiness("already_paid")
	}

	intent, err := r.provider.CreateIntent(ctx, ap.ID, *ap.DownPaymentAmount)
	if err != nil {
		// Fatal to the flow: no state advances, the client sees the failure.
		return "", err
	}

	r.mu.Lock()
	flow.IntentID = intent.ID
	if flow.State == domain.StateAwaitingIntent {
		_ = flow.To(domain.StateAwaitingPayment)
	}
	r.mu.Unlock()

	r.audit.Dispatch(audit.Event{
		Action:   "payment_intent_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return intent.ClientSecret, nil
}

// --------------------------------------------------
// CONFIRM
// --------------------------------------------------

func (r *Reconciler) Confirm(
	ctx context.Context,
	appointmentID uint,
	intentID string,
) error {

	_, err := r.loadPayable(ctx, appointmentID)
	if err != nil {
		// Replayed confirmation of an already-paid appointment is a no-op.
		if httperr.IsBusiness(err, "already_paid") &&
			r.sameReference(ctx, appointmentID, intentID) {
			return nil
		}
		return err
	}

	// Flows live in process memory; after a restart the confirm call
	// re-enters at awaiting_payment.
	flow := r.flowFor(appointmentID, domain.StateAwaitingPayment)

	r.mu.Lock()
	if flow.State == domain.StateFailed {
		_ = flow.Retry()
	}
	if err := flow.To(domain.StateConfirming); err != nil {
		r.mu.Unlock()
		return err
	}
	r.mu.Unlock()

	intent, err := r.provider.GetIntent(ctx, intentID)
	if err != nil {
		r.fail(flow)
		if errors.Is(err, payments.ErrDeclined) {
			return httperr.ErrBusiness("payment_declined")
		}
		return err
	}

	if intent.AppointmentID != 0 && intent.AppointmentID != appointmentID {
		r.fail(flow)
		return httperr.ErrBusiness("intent_mismatch")
	}

	if intent.Status != payments.IntentSucceeded {
		r.fail(flow)
		return httperr.ErrBusiness("payment_not_succeeded")
	}

	if err := r.repo.UpdateAppointmentPayment(ctx, appointmentID, intent.ID, true); err != nil {
		r.fail(flow)
		return err
	}

	r.mu.Lock()
	_ = flow.To(domain.StateConfirmed)
	r.mu.Unlock()

	r.audit.Dispatch(audit.Event{
		Action:   "payment_confirmed",
		Entity:   "appointment",
		EntityID: &appointmentID,
	})

	return nil
}

// --------------------------------------------------
// Helpers
// --------------------------------------------------

// loadPayable fetches the appointment and checks it actually owes a down
// payment.
func (r *Reconciler) loadPayable(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := r.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			return nil, httperr.ErrBusiness("appointment_not_found")
		}
		return nil, err
	}

	if ap.DownPaymentAmount == nil || !ap.DownPaymentAmount.IsPositive() {
		return nil, httperr.ErrBusiness("no_down_payment_required")
	}

	if ap.DownPaymentPaid {
		return nil, httperr.ErrBusiness("already_paid")
	}

	return ap, nil
}

func (r *Reconciler) sameReference(
	ctx context.Context,
	appointmentID uint,
	intentID string,
) bool {
	ap, err := r.repo.GetAppointmentByID(ctx, appointmentID)
	return err == nil &&
		ap.PaymentReference != nil &&
		*ap.PaymentReference == intentID
}

func (r *Reconciler) flowFor(appointmentID uint, initial domain.State) *domain.Flow {
	r.mu.Lock()
	defer r.mu.Unlock()

	flow, ok := r.flows[appointmentID]
	if !ok {
		flow = domain.NewFlow(appointmentID)
		flow.State = initial
		r.flows[appointmentID] = flow
	}
	return flow
}

// fail parks the flow in failed and immediately re-arms it for a retry, per
// the user-correctable error path.
func (r *Reconciler) fail(flow *domain.Flow) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_ = flow.To(domain.StateFailed)
	_ = flow.Retry()
}

// FlowState exposes the current state for an appointment's flow, if any.
func (r *Reconciler) FlowState(appointmentID uint) (domain.State, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	flow, ok := r.flows[appointmentID]
	if !ok {
		return "", false
	}
	return flow.State, true
}
