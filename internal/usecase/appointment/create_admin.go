package appointment

import (
	"context"

	"github.com/carepoint/clinic-scheduler/internal/audit"
	"github.com/carepoint/clinic-scheduler/internal/datetime"
	domain "github.com/carepoint/clinic-scheduler/internal/domain/appointment"
	"github.com/carepoint/clinic-scheduler/internal/httperr"
	"github.com/carepoint/clinic-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type AdminCreateInput struct {
	AdminID uint

	PatientID uint
	DoctorID  uint

	Date datetime.FlexDate
	Time datetime.FlexTime
	Type string

	Status string
	Notes  string
}

// ======================================================
// USE CASE
// ======================================================

// AdminCreateAppointment lets an admin create an appointment directly,
// bypassing clinical intake and the payment gate.
type AdminCreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewAdminCreateAppointment(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
) *AdminCreateAppointment {
	return &AdminCreateAppointment{
		repo:  repo,
		audit: auditDispatcher,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *AdminCreateAppointment) Execute(
	ctx context.Context,
	in AdminCreateInput,
) (*models.Appointment, error) {

	doctor, err := uc.repo.GetDoctorByID(ctx, in.DoctorID)
	if err != nil {
		return nil, httperr.ErrBusiness("doctor_not_found")
	}

	patient, err := uc.repo.GetPatientByID(ctx, in.PatientID)
	if err != nil {
		return nil, httperr.ErrBusiness("patient_not_found")
	}

	day := in.Date.String()
	clock := in.Time.String()
	if !datetime.IsCanonicalDate(day) || clock == "" {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	status := domain.Status(in.Status)
	if in.Status == "" {
		status = domain.InitialStatus()
	}
	if !domain.IsValidStatus(status) {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	ap := &models.Appointment{
		PatientID:            patient.ID,
		PatientName:          patient.Name,
		PatientEmail:         patient.Email,
		DoctorID:             doctor.ID,
		DoctorName:           doctor.Name,
		DoctorSpecialization: doctor.Specialization,
		AppointmentDate:      day,
		AppointmentTime:      clock,
		AppointmentType:      in.Type,
		Status:               string(status),
		Notes:                in.Notes,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.AdminID,
		Action:   "appointment_created_direct",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
