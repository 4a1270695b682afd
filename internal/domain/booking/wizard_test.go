package booking

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serenity-salon/booking-api/internal/httperr"
	"github.com/serenity-salon/booking-api/internal/models"
)

func testService() *models.Service {
	return &models.Service{
		ID:    1,
		Name:  "Gel Manicure",
		Price: decimal.RequireFromString("45.00"),
	}
}

func testStaff() *models.Staff {
	return &models.Staff{ID: 2, Name: "Sarah Johnson"}
}

func validContact() ContactForm {
	return ContactForm{
		FirstName: "Emma",
		LastName:  "Wilson",
		Email:     "emma@example.com",
		Phone:     "+15551234567",
	}
}

func TestWizardStartsOnServiceStep(t *testing.T) {
	w := NewWizard()
	assert.Equal(t, StepService, w.Step)
}

func TestWizardNextRequiresService(t *testing.T) {
	w := NewWizard()

	err := w.Next()
	require.Error(t, err)
	assert.Equal(t, "service_required", httperr.BusinessCode(err))
	assert.Equal(t, StepService, w.Step)

	w.SelectService(testService())
	require.NoError(t, w.Next())
	assert.Equal(t, StepSchedule, w.Step)
}

func TestWizardNextRequiresFullSchedule(t *testing.T) {
	cases := []struct {
		name  string
		setup func(w *Wizard)
	}{
		{"nothing selected", func(w *Wizard) {}},
		{"missing staff", func(w *Wizard) {
			w.SelectSchedule(nil, "2026-09-01", "14:00")
		}},
		{"missing date", func(w *Wizard) {
			w.SelectSchedule(testStaff(), "", "14:00")
		}},
		{"missing time", func(w *Wizard) {
			w.SelectSchedule(testStaff(), "2026-09-01", "")
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := NewWizard()
			w.SelectService(testService())
			require.NoError(t, w.Next())

			tc.setup(w)
			err := w.Next()
			require.Error(t, err)
			assert.Equal(t, "schedule_incomplete", httperr.BusinessCode(err))
			assert.Equal(t, StepSchedule, w.Step)
		})
	}
}

func TestWizardNoStepBeyondContact(t *testing.T) {
	w := NewWizard()
	w.SelectService(testService())
	require.NoError(t, w.Next())
	w.SelectSchedule(testStaff(), "2026-09-01", "14:00")
	require.NoError(t, w.Next())

	err := w.Next()
	require.Error(t, err)
	assert.Equal(t, "no_next_step", httperr.BusinessCode(err))
	assert.Equal(t, StepContact, w.Step)
}

func TestWizardBackKeepsSelections(t *testing.T) {
	w := NewWizard()
	w.SelectService(testService())
	require.NoError(t, w.Next())
	w.SelectSchedule(testStaff(), "2026-09-01", "14:00")
	require.NoError(t, w.Next())

	w.Back()
	assert.Equal(t, StepSchedule, w.Step)
	assert.NotNil(t, w.Service)
	assert.NotNil(t, w.Staff)
	assert.Equal(t, "2026-09-01", w.Date)
	assert.Equal(t, "14:00", w.Time)

	w.Back()
	w.Back() // already on step 1, stays there
	assert.Equal(t, StepService, w.Step)
}

func TestWizardRequestBeforeContactStep(t *testing.T) {
	w := NewWizard()
	w.SelectService(testService())

	_, err := w.Request()
	require.Error(t, err)
	assert.Equal(t, "wizard_incomplete", httperr.BusinessCode(err))
}

func TestWizardRequestValidatesContact(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(f *ContactForm)
		code   string
	}{
		{"missing first name", func(f *ContactForm) { f.FirstName = "  " }, "first_name_required"},
		{"missing last name", func(f *ContactForm) { f.LastName = "" }, "last_name_required"},
		{"bad email", func(f *ContactForm) { f.Email = "not-an-email" }, "invalid_email"},
		{"short phone", func(f *ContactForm) { f.Phone = "12345" }, "invalid_phone"},
		{"phone with letters", func(f *ContactForm) { f.Phone = "555abc123456" }, "invalid_phone"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := NewWizard()
			w.SelectService(testService())
			require.NoError(t, w.Next())
			w.SelectSchedule(testStaff(), "2026-09-01", "14:00")
			require.NoError(t, w.Next())

			form := validContact()
			tc.mutate(&form)
			w.SetContact(form)

			_, err := w.Request()
			require.Error(t, err)
			assert.Equal(t, tc.code, httperr.BusinessCode(err))
		})
	}
}

func TestWizardHappyPath(t *testing.T) {
	w := NewWizard()
	w.SelectService(testService())
	require.NoError(t, w.Next())
	w.SelectSchedule(testStaff(), "2026-09-01", "14:00")
	require.NoError(t, w.Next())
	w.SetContact(ContactForm{
		FirstName: " Emma ",
		LastName:  "Wilson",
		Email:     " Emma@Example.COM ",
		Phone:     "5551234567",
	})
	w.Notes = "first visit"

	req, err := w.Request()
	require.NoError(t, err)

	assert.Equal(t, uint(1), req.ServiceID)
	assert.Equal(t, uint(2), req.StaffID)
	assert.Equal(t, "2026-09-01", req.Date)
	assert.Equal(t, "14:00", req.Time)
	assert.Equal(t, "Emma", req.FirstName)
	assert.Equal(t, "emma@example.com", req.Email)
	assert.Equal(t, "first visit", req.Notes)
}

func TestWizardReset(t *testing.T) {
	w := NewWizard()
	w.SelectService(testService())
	require.NoError(t, w.Next())
	w.SelectSchedule(testStaff(), "2026-09-01", "14:00")

	w.Reset()
	assert.Equal(t, StepService, w.Step)
	assert.Nil(t, w.Service)
	assert.Nil(t, w.Staff)
	assert.Empty(t, w.Date)
}
