// Package booking drives the multi-step appointment creation flow:
// doctor selection, scheduling, medical-details intake, review, payment,
// completion. The workflow holds the accumulated form state and validates
// every step transition; rendering layers read CurrentStep, FormData and
// Errors directly.
package booking

import (
	"github.com/carepoint/clinic-scheduler/internal/datetime"
	"github.com/carepoint/clinic-scheduler/internal/httperr"
	"github.com/carepoint/clinic-scheduler/internal/models"
	"github.com/carepoint/clinic-scheduler/internal/payments"
)

// ======================================================
// Steps
// ======================================================

type Step string

const (
	StepSelectDoctor   Step = "SELECT_DOCTOR"
	StepSchedule       Step = "SCHEDULE"
	StepMedicalDetails Step = "MEDICAL_DETAILS"
	StepReview         Step = "REVIEW"
	StepPayment        Step = "PAYMENT"
	StepComplete       Step = "COMPLETE"
)

// order is linear; no skipping forward, Back moves one step except out of
// the terminal Complete step.
var order = []Step{
	StepSelectDoctor,
	StepSchedule,
	StepMedicalDetails,
	StepReview,
	StepPayment,
	StepComplete,
}

func stepIndex(s Step) int {
	for i, st := range order {
		if st == s {
			return i
		}
	}
	return -1
}

// ======================================================
// Accumulated form state
// ======================================================

type FormData struct {
	PatientID    uint   `json:"patient_id"`
	PatientName  string `json:"patient_name"`
	PatientEmail string `json:"patient_email"`

	DoctorID             uint   `json:"doctor_id"`
	DoctorName           string `json:"doctor_name"`
	DoctorSpecialization string `json:"doctor_specialization"`

	Date string `json:"appointment_date"`
	Time string `json:"appointment_time"`
	Type string `json:"appointment_type"`

	Details models.PatientDetails `json:"patient_details"`

	Consent bool `json:"consent"`
}

type Workflow struct {
	CurrentStep Step     `json:"current_step"`
	FormData    FormData `json:"form_data"`
	Errors      []string `json:"errors"`

	availableTimes []string
	payment        *models.Payment
}

func New(patientID uint, patientName, patientEmail string) *Workflow {
	return &Workflow{
		CurrentStep: StepSelectDoctor,
		FormData: FormData{
			PatientID:    patientID,
			PatientName:  patientName,
			PatientEmail: patientEmail,
			Type:         "Consultation",
		},
	}
}

func (w *Workflow) fail(msg string) error {
	w.Errors = append(w.Errors, msg)
	return httperr.ErrBusiness(msg)
}

func (w *Workflow) advance() {
	w.Errors = nil
	w.CurrentStep = order[stepIndex(w.CurrentStep)+1]
}

// Back moves one step backwards. Complete is terminal.
func (w *Workflow) Back() error {
	if w.CurrentStep == StepComplete {
		return httperr.ErrBusiness("booking_already_complete")
	}
	idx := stepIndex(w.CurrentStep)
	if idx <= 0 {
		return httperr.ErrBusiness("already_at_first_step")
	}
	w.Errors = nil
	w.CurrentStep = order[idx-1]
	return nil
}

// ======================================================
// Transitions
// ======================================================

// SelectDoctor seeds the doctor identity and moves to scheduling.
func (w *Workflow) SelectDoctor(doctor *models.Doctor) error {
	if w.CurrentStep != StepSelectDoctor {
		return httperr.ErrBusiness("invalid_step")
	}
	if doctor == nil {
		return w.fail("doctor_required")
	}

	w.FormData.DoctorID = doctor.ID
	w.FormData.DoctorName = doctor.Name
	w.FormData.DoctorSpecialization = doctor.Specialization
	w.advance()
	return nil
}

// SetAvailableTimes records the bookable times fetched for the selected
// doctor and date. Scheduling is blocked while this list is empty.
func (w *Workflow) SetAvailableTimes(times []string) {
	w.availableTimes = times
}

func (w *Workflow) AvailableTimes() []string {
	return w.availableTimes
}

// Schedule accepts any supported date/time shape, canonicalizes both, and
// advances to the intake step. The transition is blocked while no
// availability has been loaded for the chosen date.
func (w *Workflow) Schedule(date, timeOfDay any, appointmentType string) error {
	if w.CurrentStep != StepSchedule {
		return httperr.ErrBusiness("invalid_step")
	}

	day := datetime.NormalizeDate(date)
	clock := datetime.NormalizeTime(timeOfDay)
	if day == "" || clock == "" {
		return w.fail("date_and_time_required")
	}
	if len(w.availableTimes) == 0 {
		return w.fail("no_available_times")
	}
	if !contains(w.availableTimes, clock) {
		return w.fail("time_not_available")
	}

	w.FormData.Date = day
	w.FormData.Time = clock
	if appointmentType != "" {
		w.FormData.Type = appointmentType
	}
	w.advance()
	return nil
}

// SubmitIntake validates the structured medical-details form. Age, gender
// and problem description are mandatory; vitals are optional.
func (w *Workflow) SubmitIntake(details models.PatientDetails) error {
	if w.CurrentStep != StepMedicalDetails {
		return httperr.ErrBusiness("invalid_step")
	}
	if details.Age <= 0 {
		return w.fail("age_required")
	}
	if details.Gender == "" {
		return w.fail("gender_required")
	}
	if details.Problem == "" {
		return w.fail("problem_required")
	}

	w.FormData.Details = details
	w.advance()
	return nil
}

// Confirm requires explicit consent and hands control to the payment
// sub-flow; the create-appointment call happens only after capture.
func (w *Workflow) Confirm(consent bool) error {
	if w.CurrentStep != StepReview {
		return httperr.ErrBusiness("invalid_step")
	}
	if !consent {
		return w.fail("consent_required")
	}

	w.FormData.Consent = true
	w.advance()
	return nil
}

// Quote prices the pending booking from the accumulated form state.
func (w *Workflow) Quote() int {
	return payments.Quote(w.FormData.DoctorSpecialization, w.FormData.Type)
}

// AttachPayment records a successful capture. Only a COMPLETED payment
// unlocks the final submission.
func (w *Workflow) AttachPayment(p *models.Payment) error {
	if w.CurrentStep != StepPayment {
		return httperr.ErrBusiness("invalid_step")
	}
	if p == nil || p.Status != payments.StatusCompleted {
		return w.fail("payment_not_completed")
	}

	w.payment = p
	return nil
}

func (w *Workflow) Payment() *models.Payment {
	return w.payment
}

// BuildAppointment assembles the full appointment payload, schedule plus
// intake plus payment linkage, for the single create call.
func (w *Workflow) BuildAppointment() (*models.Appointment, error) {
	if w.CurrentStep != StepPayment {
		return nil, httperr.ErrBusiness("invalid_step")
	}
	if w.payment == nil {
		return nil, httperr.ErrBusiness("payment_required")
	}

	ap := &models.Appointment{
		PatientID:            w.FormData.PatientID,
		PatientName:          w.FormData.PatientName,
		PatientEmail:         w.FormData.PatientEmail,
		DoctorID:             w.FormData.DoctorID,
		DoctorName:           w.FormData.DoctorName,
		DoctorSpecialization: w.FormData.DoctorSpecialization,
		AppointmentDate:      w.FormData.Date,
		AppointmentTime:      w.FormData.Time,
		AppointmentType:      w.FormData.Type,
		Status:               "PENDING",
		Details:              w.FormData.Details,
		PaymentID:            &w.payment.ID,
		PaymentStatus:        w.payment.Status,
		PaymentAmount:        w.payment.Amount,
		PaymentMethod:        w.payment.Method,
	}
	return ap, nil
}

// MarkComplete enters the terminal step after the server accepted the
// create call.
func (w *Workflow) MarkComplete() error {
	if w.CurrentStep != StepPayment {
		return httperr.ErrBusiness("invalid_step")
	}
	if w.payment == nil {
		return httperr.ErrBusiness("payment_required")
	}
	w.advance()
	return nil
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
