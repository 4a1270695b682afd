package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serenity-salon/booking-api/internal/audit"
	domain "github.com/serenity-salon/booking-api/internal/domain/booking"
	"github.com/serenity-salon/booking-api/internal/httperr"
)

func TestUpdateStatusOverwrites(t *testing.T) {
	createUC, repo, _, noDown, st := newFixture(t)
	ctx := context.Background()

	ap, err := createUC.Execute(ctx, validRequest(noDown.ID, st.ID))
	require.NoError(t, err)
	require.Equal(t, string(domain.StatusConfirmed), ap.Status)

	uc := NewUpdateStatus(repo, audit.NewDispatcher(audit.New(repo)))
	userID := uint(7)

	updated, err := uc.Execute(ctx, &userID, ap.ID, domain.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCompleted), updated.Status)

	// reopening a completed appointment is allowed
	updated, err = uc.Execute(ctx, &userID, ap.ID, domain.StatusPending)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), updated.Status)

	got, err := repo.GetAppointmentByID(ctx, ap.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), got.Status)
}

func TestUpdateStatusRejectsUnknownValue(t *testing.T) {
	createUC, repo, _, noDown, st := newFixture(t)
	ctx := context.Background()

	ap, err := createUC.Execute(ctx, validRequest(noDown.ID, st.ID))
	require.NoError(t, err)

	uc := NewUpdateStatus(repo, audit.NewDispatcher(audit.New(repo)))

	_, err = uc.Execute(ctx, nil, ap.ID, domain.Status("rescheduled"))
	require.Error(t, err)
	assert.Equal(t, "invalid_status", httperr.BusinessCode(err))
}

func TestUpdateStatusUnknownAppointment(t *testing.T) {
	_, repo, _, _, _ := newFixture(t)

	uc := NewUpdateStatus(repo, audit.NewDispatcher(audit.New(repo)))

	_, err := uc.Execute(context.Background(), nil, 999, domain.StatusCancelled)
	require.Error(t, err)
	assert.Equal(t, "appointment_not_found", httperr.BusinessCode(err))
}
