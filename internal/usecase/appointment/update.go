package appointment

import (
	"context"

	"github.com/carepoint/clinic-scheduler/internal/audit"
	"github.com/carepoint/clinic-scheduler/internal/datetime"
	domain "github.com/carepoint/clinic-scheduler/internal/domain/appointment"
	"github.com/carepoint/clinic-scheduler/internal/httperr"
	"github.com/carepoint/clinic-scheduler/internal/models"
)

type UpdateAppointmentInput struct {
	AdminID       uint
	AppointmentID uint

	Date datetime.FlexDate
	Time datetime.FlexTime
	Type string

	Status string

	// Nil leaves the notes untouched; a pointer to "" clears them.
	Notes *string
}

// UpdateAppointment is the full edit: every schedule field may change.
// Status changes ride along but still honor the transition guards.
type UpdateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateAppointment(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		audit: auditDispatcher,
	}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, in.AppointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if day := in.Date.String(); day != "" {
		if !datetime.IsCanonicalDate(day) {
			return nil, httperr.ErrBusiness("invalid_date")
		}
		ap.AppointmentDate = day
	}
	if clock := in.Time.String(); clock != "" {
		ap.AppointmentTime = clock
	}
	if in.Type != "" {
		ap.AppointmentType = in.Type
	}
	if in.Notes != nil {
		ap.Notes = *in.Notes
	}

	if in.Status != "" && in.Status != ap.Status {
		if err := domain.CanTransition(domain.Status(ap.Status), domain.Status(in.Status)); err != nil {
			return nil, err
		}
		ap.Status = in.Status
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.AdminID,
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
