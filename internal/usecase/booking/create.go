package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/serenity-salon/booking-api/internal/audit"
	domain "github.com/serenity-salon/booking-api/internal/domain/booking"
	"github.com/serenity-salon/booking-api/internal/httperr"
	"github.com/serenity-salon/booking-api/internal/models"
)

// ======================================================
// USE CASE — CREATE BOOKING
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	loc   *time.Location
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	loc *time.Location,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
		loc:   loc,
	}
}

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in domain.Request,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// Service
	// --------------------------------------------------
	svc, err := uc.repo.GetServiceByID(ctx, in.ServiceID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.ErrBusiness("service_not_found")
		}
		return nil, err
	}

	// --------------------------------------------------
	// Staff
	// --------------------------------------------------
	if _, err := uc.repo.GetStaffByID(ctx, in.StaffID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.ErrBusiness("staff_not_found")
		}
		return nil, err
	}

	// --------------------------------------------------
	// Date / time in the salon timezone
	// --------------------------------------------------
	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		uc.loc,
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	// --------------------------------------------------
	// Client (get or create by email)
	// --------------------------------------------------
	email := strings.ToLower(strings.TrimSpace(in.Email))

	client, err := uc.repo.GetClientByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		client = &models.Client{
			FirstName: in.FirstName,
			LastName:  in.LastName,
			Email:     email,
			Phone:     in.Phone,
		}
		if err := uc.repo.CreateClient(ctx, client); err != nil {
			return nil, err
		}
	}

	// --------------------------------------------------
	// Amounts + initial state
	// --------------------------------------------------
	total, down, remaining := domain.Amounts(svc)

	ap := &models.Appointment{
		ClientID:        client.ID,
		ServiceID:       svc.ID,
		StaffID:         in.StaffID,
		AppointmentDate: start,
		Status:          string(domain.InitialStatus(svc.RequiresDownPayment)),
		TotalAmount:     total,
		RemainingAmount: remaining,
		DownPaymentPaid: !svc.RequiresDownPayment,
		Notes:           in.Notes,
	}
	if svc.RequiresDownPayment {
		ap.DownPaymentAmount = &down
	}

	// No slot-conflict check here: two bookings for the same staff and time
	// both go through.
	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
