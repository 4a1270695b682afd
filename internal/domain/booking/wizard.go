package booking

import (
	"net/mail"
	"strings"

	"github.com/serenity-salon/booking-api/internal/httperr"
	"github.com/serenity-salon/booking-api/internal/models"
	"github.com/serenity-salon/booking-api/internal/validators"
)

// ======================================================
// BOOKING WIZARD
// ======================================================
//
// Linear 3-step flow:
//   1. service  →  2. staff + date + time  →  3. contact details
//
// Next refuses to advance while the current step is incomplete; Back always
// works and keeps every selection. Submit yields the booking Request.

const (
	StepService  = 1
	StepSchedule = 2
	StepContact  = 3
)

type ContactForm struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

type Wizard struct {
	Step int

	Service *models.Service
	Staff   *models.Staff
	Date    string
	Time    string

	Contact ContactForm
	Notes   string
}

func NewWizard() *Wizard {
	return &Wizard{Step: StepService}
}

// --------- Selections ---------

func (w *Wizard) SelectService(svc *models.Service) {
	w.Service = svc
}

func (w *Wizard) SelectSchedule(st *models.Staff, date, timeStr string) {
	w.Staff = st
	w.Date = date
	w.Time = timeStr
}

func (w *Wizard) SetContact(f ContactForm) {
	w.Contact = f
}

// --------- Transitions ---------

func (w *Wizard) Next() error {
	switch w.Step {
	case StepService:
		if w.Service == nil {
			return httperr.ErrBusiness("service_required")
		}
	case StepSchedule:
		if w.Staff == nil || w.Date == "" || w.Time == "" {
			return httperr.ErrBusiness("schedule_incomplete")
		}
	default:
		return httperr.ErrBusiness("no_next_step")
	}

	w.Step++
	return nil
}

func (w *Wizard) Back() {
	if w.Step > StepService {
		w.Step--
	}
}

func (w *Wizard) Reset() {
	*w = Wizard{Step: StepService}
}

// --------- Submit ---------

// Request validates the contact form and assembles the booking request.
// Only legal on step 3 with both earlier steps complete.
func (w *Wizard) Request() (*Request, error) {
	if w.Step != StepContact {
		return nil, httperr.ErrBusiness("wizard_incomplete")
	}
	if w.Service == nil || w.Staff == nil || w.Date == "" || w.Time == "" {
		return nil, httperr.ErrBusiness("wizard_incomplete")
	}

	if err := w.Contact.validate(); err != nil {
		return nil, err
	}

	return &Request{
		ServiceID: w.Service.ID,
		StaffID:   w.Staff.ID,
		Date:      w.Date,
		Time:      w.Time,
		FirstName: strings.TrimSpace(w.Contact.FirstName),
		LastName:  strings.TrimSpace(w.Contact.LastName),
		Email:     strings.ToLower(strings.TrimSpace(w.Contact.Email)),
		Phone:     strings.TrimSpace(w.Contact.Phone),
		Notes:     w.Notes,
	}, nil
}

func (f ContactForm) validate() error {
	if strings.TrimSpace(f.FirstName) == "" {
		return httperr.ErrBusiness("first_name_required")
	}
	if strings.TrimSpace(f.LastName) == "" {
		return httperr.ErrBusiness("last_name_required")
	}
	if _, err := mail.ParseAddress(strings.TrimSpace(f.Email)); err != nil {
		return httperr.ErrBusiness("invalid_email")
	}
	if len(f.Phone) < 10 || !validators.IsPhoneValid(f.Phone) {
		return httperr.ErrBusiness("invalid_phone")
	}
	return nil
}
