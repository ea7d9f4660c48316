package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/carepoint/clinic-scheduler/internal/domain/appointment"
	"github.com/carepoint/clinic-scheduler/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Reference data
// --------------------------------------------------

func (r *AppointmentGormRepository) GetDoctorByID(
	ctx context.Context,
	id uint,
) (*models.Doctor, error) {

	var doctor models.Doctor
	if err := r.db.WithContext(ctx).First(&doctor, id).Error; err != nil {
		return nil, err
	}
	return &doctor, nil
}

func (r *AppointmentGormRepository) GetPatientByID(
	ctx context.Context,
	id uint,
) (*models.Patient, error) {

	var patient models.Patient
	if err := r.db.WithContext(ctx).First(&patient, id).Error; err != nil {
		return nil, err
	}
	return &patient, nil
}

func (r *AppointmentGormRepository) ListDoctors(
	ctx context.Context,
) ([]models.Doctor, error) {

	var doctors []models.Doctor
	if err := r.db.WithContext(ctx).
		Where("status = ?", "ACTIVE").
		Order("name ASC").
		Find(&doctors).Error; err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *AppointmentGormRepository) ListPatients(
	ctx context.Context,
) ([]models.Patient, error) {

	var patients []models.Patient
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&patients).Error; err != nil {
		return nil, err
	}
	return patients, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) ListByPatient(
	ctx context.Context,
	patientID uint,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("appointment_date ASC, appointment_time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *AppointmentGormRepository) ListByDoctor(
	ctx context.Context,
	doctorID uint,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("doctor_id = ?", doctorID).
		Order("appointment_date ASC, appointment_time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *AppointmentGormRepository) ListBookedTimes(
	ctx context.Context,
	doctorID uint,
	date string,
) ([]string, error) {

	var times []string
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"doctor_id = ? AND appointment_date = ? AND status <> ?",
			doctorID, date, "CANCELLED",
		).
		Order("appointment_time ASC").
		Pluck("appointment_time", &times).Error; err != nil {
		return nil, err
	}
	return times, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *AppointmentGormRepository) DeleteAppointment(
	ctx context.Context,
	id uint,
) error {
	return r.db.WithContext(ctx).Delete(&models.Appointment{}, id).Error
}

// --------------------------------------------------
// Payment
// --------------------------------------------------

func (r *AppointmentGormRepository) CreatePayment(
	ctx context.Context,
	p *models.Payment,
) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *AppointmentGormRepository) UpdatePayment(
	ctx context.Context,
	p *models.Payment,
) error {
	return r.db.WithContext(ctx).Save(p).Error
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
