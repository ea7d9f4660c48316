package appointment

import (
	"context"

	"github.com/carepoint/clinic-scheduler/internal/models"
)

type Repository interface {
	// -------- Reference data --------
	GetDoctorByID(
		ctx context.Context,
		id uint,
	) (*models.Doctor, error)

	GetPatientByID(
		ctx context.Context,
		id uint,
	) (*models.Patient, error)

	ListDoctors(
		ctx context.Context,
	) ([]models.Doctor, error)

	ListPatients(
		ctx context.Context,
	) ([]models.Patient, error)

	// -------- Appointment (create / read) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	ListByPatient(
		ctx context.Context,
		patientID uint,
	) ([]models.Appointment, error)

	ListByDoctor(
		ctx context.Context,
		doctorID uint,
	) ([]models.Appointment, error)

	// ListBookedTimes returns the canonical HH:mm times already taken for
	// a doctor on a canonical yyyy-MM-dd date, cancelled slots excluded.
	ListBookedTimes(
		ctx context.Context,
		doctorID uint,
		date string,
	) ([]string, error)

	// -------- Appointment (mutate) --------
	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		id uint,
	) error

	// -------- Payment --------
	CreatePayment(
		ctx context.Context,
		p *models.Payment,
	) error

	UpdatePayment(
		ctx context.Context,
		p *models.Payment,
	) error
}
