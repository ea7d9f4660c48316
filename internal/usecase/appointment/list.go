package appointment

import (
	"context"

	domain "github.com/carepoint/clinic-scheduler/internal/domain/appointment"
	"github.com/carepoint/clinic-scheduler/internal/models"
)

// ListAppointments serves the party-scoped list endpoints. Criteria are
// applied server-side with the same pure filter the views use locally,
// so a refetch and a local filter can never disagree.
type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

func (uc *ListAppointments) ByPatient(
	ctx context.Context,
	patientID uint,
	criteria domain.Criteria,
) ([]models.Appointment, error) {

	aps, err := uc.repo.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	return domain.Filter(aps, criteria), nil
}

func (uc *ListAppointments) ByDoctor(
	ctx context.Context,
	doctorID uint,
	criteria domain.Criteria,
) ([]models.Appointment, error) {

	aps, err := uc.repo.ListByDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	return domain.Filter(aps, criteria), nil
}

// History returns a party's appointments most recent first.
func (uc *ListAppointments) History(
	ctx context.Context,
	patientID uint,
) ([]models.Appointment, error) {

	aps, err := uc.repo.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	domain.SortHistory(aps)
	return aps, nil
}
