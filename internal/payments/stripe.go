package payments

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"
)

const metadataAppointmentKey = "appointment_id"

type StripeProvider struct {
	currency string
}

func NewStripeProvider(secretKey, currency string) *StripeProvider {
	stripe.Key = secretKey
	return &StripeProvider{currency: currency}
}

func (p *StripeProvider) CreateIntent(
	ctx context.Context,
	appointmentID uint,
	amount decimal.Decimal,
) (*Intent, error) {

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(toMinorUnits(amount)),
		Currency: stripe.String(p.currency),
	}
	params.Context = ctx
	params.AddMetadata(
		metadataAppointmentKey,
		strconv.FormatUint(uint64(appointmentID), 10),
	)
	// One key per booking attempt; a retried request mints a new intent.
	params.SetIdempotencyKey(uuid.NewString())

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, wrapStripeErr(err)
	}

	return fromStripeIntent(pi), nil
}

func (p *StripeProvider) GetIntent(
	ctx context.Context,
	intentID string,
) (*Intent, error) {

	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	pi, err := paymentintent.Get(intentID, params)
	if err != nil {
		return nil, wrapStripeErr(err)
	}

	return fromStripeIntent(pi), nil
}

// --------- Mapping ---------

// toMinorUnits converts a major-unit decimal amount to the processor's
// integer minor units (30.00 → 3000).
func toMinorUnits(amount decimal.Decimal) int64 {
	return amount.Shift(2).Round(0).IntPart()
}

func fromStripeIntent(pi *stripe.PaymentIntent) *Intent {
	intent := &Intent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Status:       IntentIncomplete,
	}

	switch pi.Status {
	case stripe.PaymentIntentStatusSucceeded:
		intent.Status = IntentSucceeded
	case stripe.PaymentIntentStatusProcessing:
		intent.Status = IntentProcessing
	}

	if raw, ok := pi.Metadata[metadataAppointmentKey]; ok {
		if id, err := strconv.ParseUint(raw, 10, 64); err == nil {
			intent.AppointmentID = uint(id)
		}
	}

	return intent
}

func wrapStripeErr(err error) error {
	var sErr *stripe.Error
	if errors.As(err, &sErr) && sErr.Type == stripe.ErrorTypeCard {
		return fmt.Errorf("%w: %s", ErrDeclined, sErr.Msg)
	}
	return err
}

var _ Provider = (*StripeProvider)(nil)
