package booking

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// InitialStatus: bookings that need a down payment start pending and are
// confirmed by the payment flow; everything else confirms immediately.
func InitialStatus(requiresDownPayment bool) Status {
	if requiresDownPayment {
		return StatusPending
	}
	return StatusConfirmed
}
