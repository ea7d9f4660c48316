package appointment

import (
	"time"

	"github.com/carepoint/clinic-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Confirm(ap *models.Appointment) error {
	if err := CanConfirm(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusConfirmed)
	return nil
}

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return nil
}

// SetStatus applies a quick status change, stamping the transition time
// the same way the explicit actions do.
func SetStatus(ap *models.Appointment, to Status, now time.Time) error {
	if !IsValidStatus(to) {
		return CanTransition(Status(ap.Status), to)
	}
	if Status(ap.Status) == to {
		return nil
	}

	switch to {
	case StatusConfirmed:
		return Confirm(ap)
	case StatusCancelled:
		return Cancel(ap, now)
	case StatusCompleted:
		return Complete(ap, now)
	default:
		return CanTransition(Status(ap.Status), to)
	}
}
