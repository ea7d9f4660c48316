package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	domain "github.com/carepoint/clinic-scheduler/internal/domain/appointment"
	"github.com/carepoint/clinic-scheduler/internal/models"
)

const mirrorTTL = 24 * time.Hour

// FallbackRepository decorates a primary repository with a redis mirror
// of the party-scoped appointment lists. Writes pass through and refresh
// the mirror; list reads that fail on the primary are answered from the
// mirror instead, so views keep their last good state during a database
// outage. The persistence choice stays behind the repository interface;
// no view code knows which source answered.
type FallbackRepository struct {
	primary domain.Repository
	rdb     *redis.Client
}

func NewFallbackRepository(primary domain.Repository, rdb *redis.Client) *FallbackRepository {
	return &FallbackRepository{primary: primary, rdb: rdb}
}

func patientKey(id uint) string { return fmt.Sprintf("appointments:patient:%d", id) }
func doctorKey(id uint) string  { return fmt.Sprintf("appointments:doctor:%d", id) }

// --------------------------------------------------
// Reference data (pass-through)
// --------------------------------------------------

func (r *FallbackRepository) GetDoctorByID(ctx context.Context, id uint) (*models.Doctor, error) {
	return r.primary.GetDoctorByID(ctx, id)
}

func (r *FallbackRepository) GetPatientByID(ctx context.Context, id uint) (*models.Patient, error) {
	return r.primary.GetPatientByID(ctx, id)
}

func (r *FallbackRepository) ListDoctors(ctx context.Context) ([]models.Doctor, error) {
	return r.primary.ListDoctors(ctx)
}

func (r *FallbackRepository) ListPatients(ctx context.Context) ([]models.Patient, error) {
	return r.primary.ListPatients(ctx)
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *FallbackRepository) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	if err := r.primary.CreateAppointment(ctx, ap); err != nil {
		return err
	}
	r.refresh(ctx, ap.PatientID, ap.DoctorID)
	return nil
}

func (r *FallbackRepository) GetAppointment(ctx context.Context, id uint) (*models.Appointment, error) {
	return r.primary.GetAppointment(ctx, id)
}

func (r *FallbackRepository) ListByPatient(ctx context.Context, patientID uint) ([]models.Appointment, error) {
	aps, err := r.primary.ListByPatient(ctx, patientID)
	if err != nil {
		return r.readMirror(ctx, patientKey(patientID), err)
	}
	r.writeMirror(ctx, patientKey(patientID), aps)
	return aps, nil
}

func (r *FallbackRepository) ListByDoctor(ctx context.Context, doctorID uint) ([]models.Appointment, error) {
	aps, err := r.primary.ListByDoctor(ctx, doctorID)
	if err != nil {
		return r.readMirror(ctx, doctorKey(doctorID), err)
	}
	r.writeMirror(ctx, doctorKey(doctorID), aps)
	return aps, nil
}

func (r *FallbackRepository) ListBookedTimes(ctx context.Context, doctorID uint, date string) ([]string, error) {
	times, err := r.primary.ListBookedTimes(ctx, doctorID, date)
	if err == nil {
		return times, nil
	}

	// Derive from the mirrored doctor list when the primary is down.
	aps, merr := r.readMirror(ctx, doctorKey(doctorID), err)
	if merr != nil {
		return nil, err
	}
	var booked []string
	for _, ap := range aps {
		if ap.AppointmentDate == date && ap.Status != "CANCELLED" {
			booked = append(booked, ap.AppointmentTime)
		}
	}
	return booked, nil
}

func (r *FallbackRepository) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	if err := r.primary.UpdateAppointment(ctx, ap); err != nil {
		return err
	}
	r.refresh(ctx, ap.PatientID, ap.DoctorID)
	return nil
}

func (r *FallbackRepository) DeleteAppointment(ctx context.Context, id uint) error {
	ap, err := r.primary.GetAppointment(ctx, id)
	if err != nil {
		return err
	}
	if err := r.primary.DeleteAppointment(ctx, id); err != nil {
		return err
	}
	r.refresh(ctx, ap.PatientID, ap.DoctorID)
	return nil
}

// --------------------------------------------------
// Payment (pass-through, never mirrored)
// --------------------------------------------------

func (r *FallbackRepository) CreatePayment(ctx context.Context, p *models.Payment) error {
	return r.primary.CreatePayment(ctx, p)
}

func (r *FallbackRepository) UpdatePayment(ctx context.Context, p *models.Payment) error {
	return r.primary.UpdatePayment(ctx, p)
}

// --------------------------------------------------
// Mirror plumbing
// --------------------------------------------------

func (r *FallbackRepository) refresh(ctx context.Context, patientID, doctorID uint) {
	if aps, err := r.primary.ListByPatient(ctx, patientID); err == nil {
		r.writeMirror(ctx, patientKey(patientID), aps)
	}
	if aps, err := r.primary.ListByDoctor(ctx, doctorID); err == nil {
		r.writeMirror(ctx, doctorKey(doctorID), aps)
	}
}

func (r *FallbackRepository) writeMirror(ctx context.Context, key string, aps []models.Appointment) {
	b, err := json.Marshal(aps)
	if err != nil {
		return
	}
	// Mirror writes are best effort.
	r.rdb.Set(ctx, key, b, mirrorTTL)
}

func (r *FallbackRepository) readMirror(ctx context.Context, key string, primaryErr error) ([]models.Appointment, error) {
	b, err := r.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return nil, primaryErr
	}
	var aps []models.Appointment
	if err := json.Unmarshal(b, &aps); err != nil {
		return nil, primaryErr
	}
	return aps, nil
}

// Compile-time check
var _ domain.Repository = (*FallbackRepository)(nil)
