package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	domain "github.com/serenity-salon/booking-api/internal/domain/booking"
	"github.com/serenity-salon/booking-api/internal/models"
)

// BookingMemoryRepository keeps everything in process memory behind the same
// Repository contract as the gorm backend. Used for local development and
// tests (STORAGE_DRIVER=memory).
type BookingMemoryRepository struct {
	mu sync.RWMutex

	services     map[uint]*models.Service
	staff        map[uint]*models.Staff
	clients      map[uint]*models.Client
	appointments map[uint]*models.Appointment
	users        map[uint]*models.User
	auditLogs    []models.AuditLog

	nextServiceID     uint
	nextStaffID       uint
	nextClientID      uint
	nextAppointmentID uint
	nextUserID        uint
	nextAuditID       uint
}

func NewBookingMemoryRepository() *BookingMemoryRepository {
	return &BookingMemoryRepository{
		services:          make(map[uint]*models.Service),
		staff:             make(map[uint]*models.Staff),
		clients:           make(map[uint]*models.Client),
		appointments:      make(map[uint]*models.Appointment),
		users:             make(map[uint]*models.User),
		nextServiceID:     1,
		nextStaffID:       1,
		nextClientID:      1,
		nextAppointmentID: 1,
		nextUserID:        1,
		nextAuditID:       1,
	}
}

// --------------------------------------------------
// Catalog
// --------------------------------------------------

func (r *BookingMemoryRepository) ListServices(
	_ context.Context,
	filter domain.ServiceFilter,
) ([]models.Service, error) {

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Service, 0, len(r.services))
	for _, svc := range r.services {
		if filter.Category != "" &&
			strings.ToLower(svc.Category) != filter.Category {
			continue
		}
		if filter.Query != "" {
			haystack := strings.ToLower(svc.Name + " " + svc.Description)
			if !strings.Contains(haystack, filter.Query) {
				continue
			}
		}
		out = append(out, *svc)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *BookingMemoryRepository) GetServiceByID(
	_ context.Context,
	id uint,
) (*models.Service, error) {

	r.mu.RLock()
	defer r.mu.RUnlock()

	svc, ok := r.services[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *svc
	return &copied, nil
}

func (r *BookingMemoryRepository) CreateService(
	_ context.Context,
	svc *models.Service,
) error {

	r.mu.Lock()
	defer r.mu.Unlock()

	svc.ID = r.nextServiceID
	r.nextServiceID++
	svc.CreatedAt = time.Now()
	svc.UpdatedAt = svc.CreatedAt

	copied := *svc
	r.services[svc.ID] = &copied
	return nil
}

func (r *BookingMemoryRepository) ListStaff(
	_ context.Context,
) ([]models.Staff, error) {

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Staff, 0, len(r.staff))
	for _, st := range r.staff {
		out = append(out, *st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *BookingMemoryRepository) GetStaffByID(
	_ context.Context,
	id uint,
) (*models.Staff, error) {

	r.mu.RLock()
	defer r.mu.RUnlock()

	st, ok := r.staff[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *st
	return &copied, nil
}

func (r *BookingMemoryRepository) CreateStaff(
	_ context.Context,
	st *models.Staff,
) error {

	r.mu.Lock()
	defer r.mu.Unlock()

	st.ID = r.nextStaffID
	r.nextStaffID++
	st.CreatedAt = time.Now()
	st.UpdatedAt = st.CreatedAt

	copied := *st
	r.staff[st.ID] = &copied
	return nil
}

// --------------------------------------------------
// Clients
// --------------------------------------------------

func (r *BookingMemoryRepository) GetClientByEmail(
	_ context.Context,
	email string,
) (*models.Client, error) {

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, cl := range r.clients {
		if strings.EqualFold(cl.Email, email) {
			copied := *cl
			return &copied, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *BookingMemoryRepository) CreateClient(
	_ context.Context,
	cl *models.Client,
) error {

	r.mu.Lock()
	defer r.mu.Unlock()

	cl.ID = r.nextClientID
	r.nextClientID++
	cl.CreatedAt = time.Now()
	cl.UpdatedAt = cl.CreatedAt

	copied := *cl
	r.clients[cl.ID] = &copied
	return nil
}

// --------------------------------------------------
// Appointments
// --------------------------------------------------

func (r *BookingMemoryRepository) ListAppointments(
	_ context.Context,
) ([]models.Appointment, error) {

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Appointment, 0, len(r.appointments))
	for _, ap := range r.appointments {
		out = append(out, r.withDetails(ap))
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].AppointmentDate.Before(out[j].AppointmentDate)
	})
	return out, nil
}

func (r *BookingMemoryRepository) GetAppointmentByID(
	_ context.Context,
	id uint,
) (*models.Appointment, error) {

	r.mu.RLock()
	defer r.mu.RUnlock()

	ap, ok := r.appointments[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	detailed := r.withDetails(ap)
	return &detailed, nil
}

func (r *BookingMemoryRepository) CreateAppointment(
	_ context.Context,
	ap *models.Appointment,
) error {

	r.mu.Lock()
	defer r.mu.Unlock()

	ap.ID = r.nextAppointmentID
	r.nextAppointmentID++
	ap.CreatedAt = time.Now()
	ap.UpdatedAt = ap.CreatedAt

	copied := *ap
	r.appointments[ap.ID] = &copied
	return nil
}

func (r *BookingMemoryRepository) UpdateAppointmentPayment(
	_ context.Context,
	id uint,
	paymentReference string,
	paid bool,
) error {

	r.mu.Lock()
	defer r.mu.Unlock()

	ap, ok := r.appointments[id]
	if !ok {
		return domain.ErrNotFound
	}

	ref := paymentReference
	ap.PaymentReference = &ref
	ap.DownPaymentPaid = paid
	if paid {
		ap.Status = string(domain.StatusConfirmed)
	}
	ap.UpdatedAt = time.Now()
	return nil
}

func (r *BookingMemoryRepository) UpdateAppointmentStatus(
	_ context.Context,
	id uint,
	status domain.Status,
) error {

	r.mu.Lock()
	defer r.mu.Unlock()

	ap, ok := r.appointments[id]
	if !ok {
		return domain.ErrNotFound
	}

	ap.Status = string(status)
	ap.UpdatedAt = time.Now()
	return nil
}

// withDetails joins the client/service/staff snapshots the way the gorm
// backend preloads them. Caller must hold at least the read lock.
func (r *BookingMemoryRepository) withDetails(ap *models.Appointment) models.Appointment {
	detailed := *ap
	if cl, ok := r.clients[ap.ClientID]; ok {
		detailed.Client = *cl
	}
	if svc, ok := r.services[ap.ServiceID]; ok {
		detailed.Service = *svc
	}
	if st, ok := r.staff[ap.StaffID]; ok {
		detailed.Staff = *st
	}
	return detailed
}

// --------------------------------------------------
// Users
// --------------------------------------------------

func (r *BookingMemoryRepository) GetUserByEmail(
	_ context.Context,
	email string,
) (*models.User, error) {

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			copied := *u
			return &copied, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *BookingMemoryRepository) GetUserByID(
	_ context.Context,
	id uint,
) (*models.User, error) {

	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *BookingMemoryRepository) CreateUser(
	_ context.Context,
	u *models.User,
) error {

	r.mu.Lock()
	defer r.mu.Unlock()

	u.ID = r.nextUserID
	r.nextUserID++
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt

	copied := *u
	r.users[u.ID] = &copied
	return nil
}

// --------------------------------------------------
// Audit
// --------------------------------------------------

func (r *BookingMemoryRepository) CreateAuditLog(
	_ context.Context,
	entry *models.AuditLog,
) error {

	r.mu.Lock()
	defer r.mu.Unlock()

	entry.ID = r.nextAuditID
	r.nextAuditID++
	entry.CreatedAt = time.Now()

	r.auditLogs = append(r.auditLogs, *entry)
	return nil
}

func (r *BookingMemoryRepository) ListAuditLogs(
	_ context.Context,
	filter domain.AuditFilter,
) ([]models.AuditLog, int64, error) {

	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]models.AuditLog, 0, len(r.auditLogs))
	for _, entry := range r.auditLogs {
		if filter.Action != "" && entry.Action != filter.Action {
			continue
		}
		if filter.Entity != "" && entry.Entity != filter.Entity {
			continue
		}
		if filter.From != nil && entry.CreatedAt.Before(*filter.From) {
			continue
		}
		if filter.To != nil && entry.CreatedAt.After(filter.To.Add(24*time.Hour)) {
			continue
		}
		matched = append(matched, entry)
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))

	page, limit := normalizePage(filter.Page, filter.Limit)
	offset := (page - 1) * limit
	if offset >= len(matched) {
		return []models.AuditLog{}, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}

	return matched[offset:end], total, nil
}

// Compile-time check
var _ domain.Repository = (*BookingMemoryRepository)(nil)
