package payments

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

// ErrDeclined wraps processor-reported, user-correctable failures
// (card declined, insufficient funds). Everything else is a provider fault.
var ErrDeclined = errors.New("payment declined")

type IntentStatus string

const (
	IntentSucceeded  IntentStatus = "succeeded"
	IntentProcessing IntentStatus = "processing"
	IntentIncomplete IntentStatus = "incomplete"
)

// Intent is the processor's handle for one charge attempt. ClientSecret is
// opaque and only ever forwarded to the paying client.
type Intent struct {
	ID            string
	ClientSecret  string
	Status        IntentStatus
	AppointmentID uint
}

type Provider interface {
	// CreateIntent opens a charge attempt for amount (major units), tagged
	// with the appointment id, and returns the client secret for collection.
	CreateIntent(
		ctx context.Context,
		appointmentID uint,
		amount decimal.Decimal,
	) (*Intent, error)

	// GetIntent fetches the processor's current view of an intent.
	GetIntent(
		ctx context.Context,
		intentID string,
	) (*Intent, error)
}
