package payment

import "github.com/serenity-salon/booking-api/internal/httperr"

// ======================================================
// PAYMENT RECONCILIATION FLOW
// ======================================================
//
// One flow per appointment that owes a down payment:
//
//   awaiting_intent → awaiting_payment → confirming → confirmed
//
// Failed is reachable from awaiting_payment and confirming; a user-correctable
// failure re-arms the flow back to awaiting_payment. The appointment row is
// never touched before the flow reaches confirming on processor-reported
// success.

type State string

const (
	StateAwaitingIntent  State = "awaiting_intent"
	StateAwaitingPayment State = "awaiting_payment"
	StateConfirming      State = "confirming"
	StateConfirmed       State = "confirmed"
	StateFailed          State = "failed"
)

var transitions = map[State][]State{
	StateAwaitingIntent:  {StateAwaitingPayment},
	StateAwaitingPayment: {StateConfirming, StateFailed},
	StateConfirming:      {StateConfirmed, StateFailed},
	StateConfirmed:       {},
	StateFailed:          {StateAwaitingPayment},
}

type Flow struct {
	AppointmentID uint
	State         State
	IntentID      string
}

func NewFlow(appointmentID uint) *Flow {
	return &Flow{
		AppointmentID: appointmentID,
		State:         StateAwaitingIntent,
	}
}

func (f *Flow) To(next State) error {
	for _, allowed := range transitions[f.State] {
		if allowed == next {
			f.State = next
			return nil
		}
	}
	return httperr.ErrBusiness("invalid_payment_transition")
}

// Retry re-arms a failed flow for another payment attempt.
func (f *Flow) Retry() error {
	return f.To(StateAwaitingPayment)
}

func (f *Flow) Terminal() bool {
	return f.State == StateConfirmed
}
