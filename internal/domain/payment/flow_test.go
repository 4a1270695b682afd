package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serenity-salon/booking-api/internal/httperr"
)

func TestFlowHappyChain(t *testing.T) {
	f := NewFlow(1)
	assert.Equal(t, StateAwaitingIntent, f.State)

	require.NoError(t, f.To(StateAwaitingPayment))
	require.NoError(t, f.To(StateConfirming))
	require.NoError(t, f.To(StateConfirmed))

	assert.True(t, f.Terminal())
}

func TestFlowRejectsIllegalTransitions(t *testing.T) {
	cases := []struct {
		from State
		to   State
	}{
		{StateAwaitingIntent, StateConfirming},
		{StateAwaitingIntent, StateConfirmed},
		{StateAwaitingPayment, StateConfirmed},
		{StateConfirmed, StateAwaitingPayment},
		{StateConfirmed, StateFailed},
	}

	for _, tc := range cases {
		f := NewFlow(1)
		f.State = tc.from

		err := f.To(tc.to)
		require.Error(t, err, "%s -> %s should be rejected", tc.from, tc.to)
		assert.Equal(t, "invalid_payment_transition", httperr.BusinessCode(err))
		assert.Equal(t, tc.from, f.State)
	}
}

func TestFlowFailedIsRetryable(t *testing.T) {
	f := NewFlow(1)
	require.NoError(t, f.To(StateAwaitingPayment))
	require.NoError(t, f.To(StateFailed))

	require.NoError(t, f.Retry())
	assert.Equal(t, StateAwaitingPayment, f.State)

	// and the retried flow can still complete
	require.NoError(t, f.To(StateConfirming))
	require.NoError(t, f.To(StateConfirmed))
}

func TestFlowConfirmingCanFail(t *testing.T) {
	f := NewFlow(1)
	require.NoError(t, f.To(StateAwaitingPayment))
	require.NoError(t, f.To(StateConfirming))
	require.NoError(t, f.To(StateFailed))
	require.NoError(t, f.Retry())
	assert.Equal(t, StateAwaitingPayment, f.State)
}

func TestFlowConfirmedIsTerminal(t *testing.T) {
	f := NewFlow(1)
	require.NoError(t, f.To(StateAwaitingPayment))
	require.NoError(t, f.To(StateConfirming))
	require.NoError(t, f.To(StateConfirmed))

	assert.Error(t, f.Retry())
	assert.Error(t, f.To(StateFailed))
	assert.True(t, f.Terminal())
}
