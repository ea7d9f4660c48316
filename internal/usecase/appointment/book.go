package appointment

import (
	"context"

	"github.com/carepoint/clinic-scheduler/internal/audit"
	"github.com/carepoint/clinic-scheduler/internal/booking"
	"github.com/carepoint/clinic-scheduler/internal/datetime"
	domain "github.com/carepoint/clinic-scheduler/internal/domain/appointment"
	"github.com/carepoint/clinic-scheduler/internal/httperr"
	"github.com/carepoint/clinic-scheduler/internal/models"
	"github.com/carepoint/clinic-scheduler/internal/payments"
)

// ======================================================
// INPUT
// ======================================================

type BookAppointmentInput struct {
	PatientID uint
	DoctorID  uint

	Date datetime.FlexDate
	Time datetime.FlexTime
	Type string

	Details models.PatientDetails
	Consent bool

	Payment payments.Form
}

// BookResult carries the created appointment and the payment that funded
// it. On a paid-not-booked failure the payment is still returned so the
// caller can surface it for support follow-up.
type BookResult struct {
	Appointment *models.Appointment
	Payment     *models.Payment
}

// ErrPaidNotBooked marks the one failure the flow cannot locally recover
// from: money captured, appointment create rejected, no compensating
// transaction available.
var ErrPaidNotBooked = httperr.ErrBusiness("payment_captured_booking_failed")

// ======================================================
// USE CASE
// ======================================================

type BookAppointment struct {
	repo         domain.Repository
	payments     *payments.Service
	availability *GetAvailability
	audit        *audit.Dispatcher
}

func NewBookAppointment(
	repo domain.Repository,
	paymentSvc *payments.Service,
	auditDispatcher *audit.Dispatcher,
) *BookAppointment {
	return &BookAppointment{
		repo:         repo,
		payments:     paymentSvc,
		availability: NewGetAvailability(repo),
		audit:        auditDispatcher,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute walks the whole booking workflow server-side: doctor selection,
// scheduling against live availability, intake validation, consent,
// payment capture, and the single payment-gated create call.
func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookAppointmentInput,
) (*BookResult, error) {

	doctor, err := uc.repo.GetDoctorByID(ctx, in.DoctorID)
	if err != nil {
		return nil, httperr.ErrBusiness("doctor_not_found")
	}

	patient, err := uc.repo.GetPatientByID(ctx, in.PatientID)
	if err != nil {
		return nil, httperr.ErrBusiness("patient_not_found")
	}

	wf := booking.New(patient.ID, patient.Name, patient.Email)
	if err := wf.SelectDoctor(doctor); err != nil {
		return nil, err
	}

	day := in.Date.String()
	if day == "" {
		return nil, httperr.ErrBusiness("date_and_time_required")
	}

	times, err := uc.availability.Execute(ctx, AvailabilityInput{
		DoctorID: doctor.ID,
		Date:     day,
	})
	if err != nil {
		return nil, err
	}
	wf.SetAvailableTimes(times)

	if err := wf.Schedule(day, string(in.Time), in.Type); err != nil {
		return nil, err
	}
	if err := wf.SubmitIntake(in.Details); err != nil {
		return nil, err
	}
	if err := wf.Confirm(in.Consent); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Payment gate
	// --------------------------------------------------
	payment, err := uc.payments.Capture(in.Payment, payments.Request{
		PatientID: patient.ID,
		DoctorID:  doctor.ID,
		Amount:    wf.Quote(),
	})
	if err != nil {
		return nil, err
	}

	if err := uc.repo.CreatePayment(ctx, payment); err != nil {
		return nil, err
	}

	if err := wf.AttachPayment(payment); err != nil {
		return nil, err
	}

	ap, err := wf.BuildAppointment()
	if err != nil {
		return nil, err
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		// The payment already settled; report this distinctly so the
		// caller can tell the user to contact support.
		return &BookResult{Payment: payment}, ErrPaidNotBooked
	}

	payment.AppointmentID = &ap.ID
	if err := uc.repo.UpdatePayment(ctx, payment); err != nil {
		// Linkage backfill is best effort; the appointment exists.
		uc.audit.Dispatch(audit.Event{
			Action:   "payment_link_failed",
			Entity:   "payment",
			EntityID: &payment.ID,
		})
	}

	_ = wf.MarkComplete()

	uc.audit.Dispatch(audit.Event{
		UserID:   &patient.ID,
		Action:   "appointment_booked",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return &BookResult{Appointment: ap, Payment: payment}, nil
}
