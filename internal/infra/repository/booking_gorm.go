package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/serenity-salon/booking-api/internal/domain/booking"
	"github.com/serenity-salon/booking-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

func translateErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}

// --------------------------------------------------
// Catalog
// --------------------------------------------------

func (r *BookingGormRepository) ListServices(
	ctx context.Context,
	filter domain.ServiceFilter,
) ([]models.Service, error) {

	q := r.db.WithContext(ctx)

	if filter.Category != "" {
		q = q.Where("LOWER(category) = ?", filter.Category)
	}

	if filter.Query != "" {
		like := "%" + filter.Query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var services []models.Service
	if err := q.Order("id ASC").Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *BookingGormRepository) GetServiceByID(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).First(&svc, id).Error; err != nil {
		return nil, translateErr(err)
	}
	return &svc, nil
}

func (r *BookingGormRepository) CreateService(
	ctx context.Context,
	svc *models.Service,
) error {
	return r.db.WithContext(ctx).Create(svc).Error
}

func (r *BookingGormRepository) ListStaff(
	ctx context.Context,
) ([]models.Staff, error) {

	var staff []models.Staff
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&staff).Error; err != nil {
		return nil, err
	}
	return staff, nil
}

func (r *BookingGormRepository) GetStaffByID(
	ctx context.Context,
	id uint,
) (*models.Staff, error) {

	var st models.Staff
	if err := r.db.WithContext(ctx).First(&st, id).Error; err != nil {
		return nil, translateErr(err)
	}
	return &st, nil
}

func (r *BookingGormRepository) CreateStaff(
	ctx context.Context,
	st *models.Staff,
) error {
	return r.db.WithContext(ctx).Create(st).Error
}

// --------------------------------------------------
// Clients
// --------------------------------------------------

func (r *BookingGormRepository) GetClientByEmail(
	ctx context.Context,
	email string,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&client).Error; err != nil {
		return nil, translateErr(err)
	}
	return &client, nil
}

func (r *BookingGormRepository) CreateClient(
	ctx context.Context,
	cl *models.Client,
) error {
	return r.db.WithContext(ctx).Create(cl).Error
}

// --------------------------------------------------
// Appointments
// --------------------------------------------------

func (r *BookingGormRepository) ListAppointments(
	ctx context.Context,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service").
		Preload("Staff").
		Order("appointment_date ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *BookingGormRepository) GetAppointmentByID(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service").
		Preload("Staff").
		First(&ap, id).Error; err != nil {
		return nil, translateErr(err)
	}
	return &ap, nil
}

func (r *BookingGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *BookingGormRepository) UpdateAppointmentPayment(
	ctx context.Context,
	id uint,
	paymentReference string,
	paid bool,
) error {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		return translateErr(err)
	}

	ap.PaymentReference = &paymentReference
	ap.DownPaymentPaid = paid
	if paid {
		ap.Status = string(domain.StatusConfirmed)
	}

	return r.db.WithContext(ctx).Save(&ap).Error
}

func (r *BookingGormRepository) UpdateAppointmentStatus(
	ctx context.Context,
	id uint,
	status domain.Status,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", id).
		Update("status", string(status))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// --------------------------------------------------
// Users
// --------------------------------------------------

func (r *BookingGormRepository) GetUserByEmail(
	ctx context.Context,
	email string,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error; err != nil {
		return nil, translateErr(err)
	}
	return &user, nil
}

func (r *BookingGormRepository) GetUserByID(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, translateErr(err)
	}
	return &user, nil
}

func (r *BookingGormRepository) CreateUser(
	ctx context.Context,
	u *models.User,
) error {
	return r.db.WithContext(ctx).Create(u).Error
}

// --------------------------------------------------
// Audit
// --------------------------------------------------

func (r *BookingGormRepository) CreateAuditLog(
	ctx context.Context,
	entry *models.AuditLog,
) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *BookingGormRepository) ListAuditLogs(
	ctx context.Context,
	filter domain.AuditFilter,
) ([]models.AuditLog, int64, error) {

	q := r.db.WithContext(ctx).Model(&models.AuditLog{})

	if filter.Action != "" {
		q = q.Where("action = ?", filter.Action)
	}
	if filter.Entity != "" {
		q = q.Where("entity = ?", filter.Entity)
	}
	if filter.From != nil {
		q = q.Where("created_at >= ?", *filter.From)
	}
	if filter.To != nil {
		q = q.Where("created_at <= ?", filter.To.Add(24*time.Hour))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page, limit := normalizePage(filter.Page, filter.Limit)

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&logs).Error; err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}

func normalizePage(page, limit int) (int, int) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return page, limit
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
