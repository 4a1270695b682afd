package booking

import (
	"context"
	"errors"
	"time"

	"github.com/serenity-salon/booking-api/internal/models"
)

// ErrNotFound is returned by lookups for unknown ids/emails, whatever the
// backend. Implementations translate their own sentinel into this one.
var ErrNotFound = errors.New("record not found")

type ServiceFilter struct {
	Category string
	Query    string
}

type AuditFilter struct {
	Action string
	Entity string
	From   *time.Time
	To     *time.Time
	Page   int
	Limit  int
}

type Repository interface {
	// -------- Catalog --------
	ListServices(
		ctx context.Context,
		filter ServiceFilter,
	) ([]models.Service, error)

	GetServiceByID(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	CreateService(
		ctx context.Context,
		svc *models.Service,
	) error

	ListStaff(
		ctx context.Context,
	) ([]models.Staff, error)

	GetStaffByID(
		ctx context.Context,
		id uint,
	) (*models.Staff, error)

	CreateStaff(
		ctx context.Context,
		st *models.Staff,
	) error

	// -------- Clients --------
	GetClientByEmail(
		ctx context.Context,
		email string,
	) (*models.Client, error)

	CreateClient(
		ctx context.Context,
		cl *models.Client,
	) error

	// -------- Appointments --------
	ListAppointments(
		ctx context.Context,
	) ([]models.Appointment, error)

	GetAppointmentByID(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	UpdateAppointmentPayment(
		ctx context.Context,
		id uint,
		paymentReference string,
		paid bool,
	) error

	UpdateAppointmentStatus(
		ctx context.Context,
		id uint,
		status Status,
	) error

	// -------- Users --------
	GetUserByEmail(
		ctx context.Context,
		email string,
	) (*models.User, error)

	GetUserByID(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	CreateUser(
		ctx context.Context,
		u *models.User,
	) error

	// -------- Audit --------
	CreateAuditLog(
		ctx context.Context,
		entry *models.AuditLog,
	) error

	ListAuditLogs(
		ctx context.Context,
		filter AuditFilter,
	) ([]models.AuditLog, int64, error)
}
