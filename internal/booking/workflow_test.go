package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carepoint/clinic-scheduler/internal/httperr"
	"github.com/carepoint/clinic-scheduler/internal/models"
	"github.com/carepoint/clinic-scheduler/internal/payments"
)

func testDoctor() *models.Doctor {
	d := &models.Doctor{
		Name:           "Dr. Sarah Johnson",
		Specialization: "Cardiology",
	}
	d.ID = 17
	return d
}

func testIntake() models.PatientDetails {
	return models.PatientDetails{
		Age:     34,
		Gender:  "female",
		Problem: "chest pain on exertion",
	}
}

func completedPayment(amount int) *models.Payment {
	p := &models.Payment{
		Status: payments.StatusCompleted,
		Amount: amount,
		Method: string(payments.MethodCard),
	}
	p.ID = 42
	return p
}

// driveToPayment walks a fresh workflow to the payment step.
func driveToPayment(t *testing.T) *Workflow {
	t.Helper()

	w := New(7, "Rahul Kumar", "rahul@example.com")
	require.NoError(t, w.SelectDoctor(testDoctor()))

	w.SetAvailableTimes([]string{"09:00", "10:00", "14:30"})
	require.NoError(t, w.Schedule("2024-06-10", "10:00 AM", "Consultation"))
	require.NoError(t, w.SubmitIntake(testIntake()))
	require.NoError(t, w.Confirm(true))
	require.Equal(t, StepPayment, w.CurrentStep)
	return w
}

func TestNewDefaultsToConsultation(t *testing.T) {
	w := New(7, "Rahul Kumar", "rahul@example.com")
	assert.Equal(t, StepSelectDoctor, w.CurrentStep)
	assert.Equal(t, "Consultation", w.FormData.Type)
}

func TestScheduleNormalizesDateAndTime(t *testing.T) {
	w := New(7, "Rahul Kumar", "rahul@example.com")
	require.NoError(t, w.SelectDoctor(testDoctor()))

	w.SetAvailableTimes([]string{"10:00"})
	require.NoError(t, w.Schedule("10-06-2024", "10:00 AM", ""))

	assert.Equal(t, "2024-06-10", w.FormData.Date)
	assert.Equal(t, "10:00", w.FormData.Time)
	assert.Equal(t, "Consultation", w.FormData.Type, "empty type keeps the default")
	assert.Equal(t, StepMedicalDetails, w.CurrentStep)
}

func TestScheduleBlockedWithoutAvailability(t *testing.T) {
	w := New(7, "Rahul Kumar", "rahul@example.com")
	require.NoError(t, w.SelectDoctor(testDoctor()))

	// date and time are chosen but no availability was loaded
	err := w.Schedule("2024-06-10", "10:00", "Consultation")
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "no_available_times"))
	assert.Equal(t, StepSchedule, w.CurrentStep)
	assert.NotEmpty(t, w.Errors)
}

func TestScheduleRejectsTakenSlot(t *testing.T) {
	w := New(7, "Rahul Kumar", "rahul@example.com")
	require.NoError(t, w.SelectDoctor(testDoctor()))

	w.SetAvailableTimes([]string{"09:00", "09:30"})
	err := w.Schedule("2024-06-10", "10:00", "Consultation")
	assert.True(t, httperr.IsBusiness(err, "time_not_available"))
}

func TestSubmitIntakeValidation(t *testing.T) {
	tests := []struct {
		name    string
		details models.PatientDetails
		code    string
	}{
		{"missing age", models.PatientDetails{Gender: "male", Problem: "headache"}, "age_required"},
		{"missing gender", models.PatientDetails{Age: 30, Problem: "headache"}, "gender_required"},
		{"missing problem", models.PatientDetails{Age: 30, Gender: "male"}, "problem_required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := New(7, "Rahul Kumar", "rahul@example.com")
			require.NoError(t, w.SelectDoctor(testDoctor()))
			w.SetAvailableTimes([]string{"10:00"})
			require.NoError(t, w.Schedule("2024-06-10", "10:00", ""))

			err := w.SubmitIntake(tt.details)
			assert.True(t, httperr.IsBusiness(err, tt.code))
			assert.Equal(t, StepMedicalDetails, w.CurrentStep)
		})
	}
}

func TestConfirmRequiresConsent(t *testing.T) {
	w := New(7, "Rahul Kumar", "rahul@example.com")
	require.NoError(t, w.SelectDoctor(testDoctor()))
	w.SetAvailableTimes([]string{"10:00"})
	require.NoError(t, w.Schedule("2024-06-10", "10:00", ""))
	require.NoError(t, w.SubmitIntake(testIntake()))

	err := w.Confirm(false)
	assert.True(t, httperr.IsBusiness(err, "consent_required"))
	assert.Equal(t, StepReview, w.CurrentStep)

	require.NoError(t, w.Confirm(true))
	assert.Equal(t, StepPayment, w.CurrentStep)
	assert.Empty(t, w.Errors, "advancing clears prior errors")
}

func TestQuoteUsesAccumulatedState(t *testing.T) {
	w := driveToPayment(t)
	assert.Equal(t, 150, w.Quote())
}

func TestAttachPaymentRequiresCompleted(t *testing.T) {
	w := driveToPayment(t)

	pending := completedPayment(150)
	pending.Status = payments.StatusPending
	err := w.AttachPayment(pending)
	assert.True(t, httperr.IsBusiness(err, "payment_not_completed"))

	err = w.AttachPayment(nil)
	assert.True(t, httperr.IsBusiness(err, "payment_not_completed"))

	require.NoError(t, w.AttachPayment(completedPayment(150)))
}

func TestBuildAppointment(t *testing.T) {
	w := driveToPayment(t)

	_, err := w.BuildAppointment()
	assert.True(t, httperr.IsBusiness(err, "payment_required"))

	require.NoError(t, w.AttachPayment(completedPayment(150)))
	ap, err := w.BuildAppointment()
	require.NoError(t, err)

	assert.Equal(t, uint(7), ap.PatientID)
	assert.Equal(t, uint(17), ap.DoctorID)
	assert.Equal(t, "2024-06-10", ap.AppointmentDate)
	assert.Equal(t, "10:00", ap.AppointmentTime)
	assert.Equal(t, "Consultation", ap.AppointmentType)
	assert.Equal(t, "PENDING", ap.Status)
	require.NotNil(t, ap.PaymentID)
	assert.Equal(t, uint(42), *ap.PaymentID)
	assert.Equal(t, 150, ap.PaymentAmount)
	assert.Equal(t, 34, ap.Details.Age)
}

func TestMarkCompleteIsTerminal(t *testing.T) {
	w := driveToPayment(t)
	require.NoError(t, w.AttachPayment(completedPayment(150)))
	require.NoError(t, w.MarkComplete())
	assert.Equal(t, StepComplete, w.CurrentStep)

	err := w.Back()
	assert.True(t, httperr.IsBusiness(err, "booking_already_complete"))
}

func TestBack(t *testing.T) {
	w := New(7, "Rahul Kumar", "rahul@example.com")

	err := w.Back()
	assert.True(t, httperr.IsBusiness(err, "already_at_first_step"))

	require.NoError(t, w.SelectDoctor(testDoctor()))
	require.NoError(t, w.Back())
	assert.Equal(t, StepSelectDoctor, w.CurrentStep)
}

func TestStepGuards(t *testing.T) {
	w := New(7, "Rahul Kumar", "rahul@example.com")

	assert.True(t, httperr.IsBusiness(w.Schedule("2024-06-10", "10:00", ""), "invalid_step"))
	assert.True(t, httperr.IsBusiness(w.SubmitIntake(testIntake()), "invalid_step"))
	assert.True(t, httperr.IsBusiness(w.Confirm(true), "invalid_step"))
	assert.True(t, httperr.IsBusiness(w.AttachPayment(completedPayment(1)), "invalid_step"))
	assert.True(t, httperr.IsBusiness(w.MarkComplete(), "invalid_step"))
}
