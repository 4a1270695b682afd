package booking

import (
	"context"
	"errors"

	"github.com/serenity-salon/booking-api/internal/audit"
	domain "github.com/serenity-salon/booking-api/internal/domain/booking"
	"github.com/serenity-salon/booking-api/internal/httperr"
	"github.com/serenity-salon/booking-api/internal/models"
)

// ======================================================
// USE CASE — UPDATE STATUS (MANAGEMENT VIEW)
// ======================================================

type UpdateStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateStatus {
	return &UpdateStatus{
		repo:  repo,
		audit: audit,
	}
}

// Execute overwrites the status with any of the four known values. There is
// deliberately no transition table: staff may reopen a cancelled or completed
// appointment.
func (uc *UpdateStatus) Execute(
	ctx context.Context,
	userID *uint,
	appointmentID uint,
	status domain.Status,
) (*models.Appointment, error) {

	if !status.Valid() {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.ErrBusiness("appointment_not_found")
		}
		return nil, err
	}

	previous := ap.Status

	if err := uc.repo.UpdateAppointmentStatus(ctx, appointmentID, status); err != nil {
		return nil, err
	}
	ap.Status = string(status)

	uc.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "status_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"from": previous,
			"to":   string(status),
		},
	})

	return ap, nil
}
