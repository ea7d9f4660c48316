package appointment

import "github.com/carepoint/clinic-scheduler/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
	StatusCompleted Status = "COMPLETED"
)

func InitialStatus() Status {
	return StatusPending
}

func IsValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// ===============================
// Validations
// ===============================

func CanConfirm(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanCancel(current Status) error {
	if current != StatusPending && current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanComplete(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanTransition guards the quick status update. Cancelled and completed
// appointments are terminal.
func CanTransition(from, to Status) error {
	if from == to {
		return nil
	}
	switch to {
	case StatusConfirmed:
		return CanConfirm(from)
	case StatusCancelled:
		return CanCancel(from)
	case StatusCompleted:
		return CanComplete(from)
	case StatusPending:
		return httperr.ErrBusiness("invalid_state")
	}
	return httperr.ErrBusiness("invalid_status")
}
