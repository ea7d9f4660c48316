package appointment

import (
	"context"

	"github.com/carepoint/clinic-scheduler/internal/audit"
	domain "github.com/carepoint/clinic-scheduler/internal/domain/appointment"
	"github.com/carepoint/clinic-scheduler/internal/httperr"
)

type DeleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteAppointment(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:  repo,
		audit: auditDispatcher,
	}
}

func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	adminID uint,
	appointmentID uint,
) error {

	if _, err := uc.repo.GetAppointment(ctx, appointmentID); err != nil {
		return httperr.ErrBusiness("appointment_not_found")
	}

	if err := uc.repo.DeleteAppointment(ctx, appointmentID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &appointmentID,
	})

	return nil
}
