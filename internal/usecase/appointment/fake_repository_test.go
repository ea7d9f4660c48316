package appointment

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/carepoint/clinic-scheduler/internal/domain/appointment"
	"github.com/carepoint/clinic-scheduler/internal/models"
)

// fakeRepository is an in-memory domain.Repository for use-case tests.
// Failure toggles simulate database outages on specific calls.
type fakeRepository struct {
	doctors  map[uint]models.Doctor
	patients map[uint]models.Patient

	appointments []models.Appointment
	payments     []models.Payment
	nextID       uint

	failCreateAppointment bool
	failUpdatePayment     bool
	failLists             bool
}

var _ domain.Repository = (*fakeRepository)(nil)

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		doctors:  make(map[uint]models.Doctor),
		patients: make(map[uint]models.Patient),
		nextID:   1,
	}
}

func (f *fakeRepository) addDoctor(id uint, name, specialization string) {
	f.doctors[id] = models.Doctor{ID: id, Name: name, Specialization: specialization, Status: "ACTIVE"}
}

func (f *fakeRepository) addPatient(id uint, name, email string) {
	f.patients[id] = models.Patient{ID: id, Name: name, Email: email}
}

func (f *fakeRepository) GetDoctorByID(ctx context.Context, id uint) (*models.Doctor, error) {
	d, ok := f.doctors[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return &d, nil
}

func (f *fakeRepository) GetPatientByID(ctx context.Context, id uint) (*models.Patient, error) {
	p, ok := f.patients[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return &p, nil
}

func (f *fakeRepository) ListDoctors(ctx context.Context) ([]models.Doctor, error) {
	out := make([]models.Doctor, 0, len(f.doctors))
	for _, d := range f.doctors {
		out = append(out, d)
	}
	return out, nil
}

func (f *fakeRepository) ListPatients(ctx context.Context) ([]models.Patient, error) {
	out := make([]models.Patient, 0, len(f.patients))
	for _, p := range f.patients {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeRepository) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	if f.failCreateAppointment {
		return errors.New("connection refused")
	}
	ap.ID = f.nextID
	f.nextID++
	f.appointments = append(f.appointments, *ap)
	return nil
}

func (f *fakeRepository) GetAppointment(ctx context.Context, id uint) (*models.Appointment, error) {
	for i := range f.appointments {
		if f.appointments[i].ID == id {
			ap := f.appointments[i]
			return &ap, nil
		}
	}
	return nil, errors.New("record not found")
}

func (f *fakeRepository) ListByPatient(ctx context.Context, patientID uint) ([]models.Appointment, error) {
	if f.failLists {
		return nil, errors.New("connection refused")
	}
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.PatientID == patientID {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (f *fakeRepository) ListByDoctor(ctx context.Context, doctorID uint) ([]models.Appointment, error) {
	if f.failLists {
		return nil, errors.New("connection refused")
	}
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.DoctorID == doctorID {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (f *fakeRepository) ListBookedTimes(ctx context.Context, doctorID uint, date string) ([]string, error) {
	var out []string
	for _, ap := range f.appointments {
		if ap.DoctorID == doctorID && ap.AppointmentDate == date && ap.Status != "CANCELLED" {
			out = append(out, ap.AppointmentTime)
		}
	}
	return out, nil
}

func (f *fakeRepository) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	for i := range f.appointments {
		if f.appointments[i].ID == ap.ID {
			f.appointments[i] = *ap
			return nil
		}
	}
	return fmt.Errorf("appointment %d not found", ap.ID)
}

func (f *fakeRepository) DeleteAppointment(ctx context.Context, id uint) error {
	for i := range f.appointments {
		if f.appointments[i].ID == id {
			f.appointments = append(f.appointments[:i], f.appointments[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("appointment %d not found", id)
}

func (f *fakeRepository) CreatePayment(ctx context.Context, p *models.Payment) error {
	p.ID = f.nextID
	f.nextID++
	f.payments = append(f.payments, *p)
	return nil
}

func (f *fakeRepository) UpdatePayment(ctx context.Context, p *models.Payment) error {
	if f.failUpdatePayment {
		return errors.New("connection refused")
	}
	for i := range f.payments {
		if f.payments[i].ID == p.ID {
			f.payments[i] = *p
			return nil
		}
	}
	return fmt.Errorf("payment %d not found", p.ID)
}
