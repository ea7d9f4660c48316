package appointment

import (
	"context"
	"time"

	"github.com/carepoint/clinic-scheduler/internal/audit"
	domain "github.com/carepoint/clinic-scheduler/internal/domain/appointment"
	"github.com/carepoint/clinic-scheduler/internal/httperr"
	"github.com/carepoint/clinic-scheduler/internal/models"
)

type UpdateStatusInput struct {
	UserID        uint
	AppointmentID uint
	Status        string
}

// UpdateStatus is the quick in-place change from the table dropdown; only
// the status moves, guarded by the domain transition rules.
type UpdateStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateStatus(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
) *UpdateStatus {
	return &UpdateStatus{
		repo:  repo,
		audit: auditDispatcher,
	}
}

func (uc *UpdateStatus) Execute(
	ctx context.Context,
	in UpdateStatusInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, in.AppointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := domain.SetStatus(ap, domain.Status(in.Status), time.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "appointment_status_changed",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]string{"status": ap.Status},
	})

	return ap, nil
}
