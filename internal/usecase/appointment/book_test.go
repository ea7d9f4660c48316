package appointment

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carepoint/clinic-scheduler/internal/audit"
	"github.com/carepoint/clinic-scheduler/internal/datetime"
	"github.com/carepoint/clinic-scheduler/internal/httperr"
	"github.com/carepoint/clinic-scheduler/internal/models"
	"github.com/carepoint/clinic-scheduler/internal/payments"
)

func pinnedClock() time.Time {
	return time.Date(2024, time.June, 1, 8, 0, 0, 0, time.UTC)
}

func seededRepo() *fakeRepository {
	repo := newFakeRepository()
	repo.addDoctor(1, "Dr. Sarah Johnson", "Cardiology")
	repo.addPatient(7, "Rahul Kumar", "rahul@example.com")
	return repo
}

func newBookUseCase(repo *fakeRepository) *BookAppointment {
	return NewBookAppointment(repo, payments.NewServiceAt(pinnedClock), audit.NewNop())
}

func bookInput() BookAppointmentInput {
	return BookAppointmentInput{
		PatientID: 7,
		DoctorID:  1,
		Date:      datetime.FlexDate("2024-06-10"),
		Time:      datetime.FlexTime("10:00 AM"),
		Type:      "Consultation",
		Details: models.PatientDetails{
			Age:     34,
			Gender:  "female",
			Problem: "chest pain on exertion",
		},
		Consent: true,
		Payment: payments.Form{
			Method: payments.MethodCard,
			Card: payments.CardForm{
				Number:      "4111 1111 1111 1111",
				HolderName:  "Rahul Kumar",
				ExpiryMonth: "12",
				ExpiryYear:  "26",
				CVV:         "123",
			},
		},
	}
}

func TestBookAppointment(t *testing.T) {
	repo := seededRepo()
	uc := newBookUseCase(repo)

	res, err := uc.Execute(context.Background(), bookInput())
	require.NoError(t, err)
	require.NotNil(t, res.Appointment)
	require.NotNil(t, res.Payment)

	ap := res.Appointment
	assert.Equal(t, "2024-06-10", ap.AppointmentDate)
	assert.Equal(t, "10:00", ap.AppointmentTime)
	assert.Equal(t, "Consultation", ap.AppointmentType)
	assert.Equal(t, "PENDING", ap.Status)
	assert.Equal(t, "Dr. Sarah Johnson", ap.DoctorName)
	assert.Equal(t, "Cardiology", ap.DoctorSpecialization)
	require.NotNil(t, ap.PaymentID)
	assert.Equal(t, res.Payment.ID, *ap.PaymentID)

	// cardiology consultation quote
	assert.Equal(t, 150, res.Payment.Amount)
	assert.Equal(t, payments.StatusCompleted, res.Payment.Status)
	assert.True(t, strings.HasPrefix(res.Payment.TransactionID, "txn_"))

	// the payment row was backfilled with the appointment id
	require.Len(t, repo.payments, 1)
	require.NotNil(t, repo.payments[0].AppointmentID)
	assert.Equal(t, ap.ID, *repo.payments[0].AppointmentID)
}

func TestBookAppointmentLegacyDateAndNumericTime(t *testing.T) {
	repo := seededRepo()
	uc := newBookUseCase(repo)

	in := bookInput()
	in.Date = datetime.FlexDate(datetime.NormalizeDate("10-06-2024"))
	in.Time = datetime.FlexTime(datetime.NormalizeTime(930))

	res, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "2024-06-10", res.Appointment.AppointmentDate)
	assert.Equal(t, "09:30", res.Appointment.AppointmentTime)
}

func TestBookAppointmentUnknownDoctor(t *testing.T) {
	repo := seededRepo()
	uc := newBookUseCase(repo)

	in := bookInput()
	in.DoctorID = 99

	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "doctor_not_found"))
	assert.Empty(t, repo.payments, "no payment may be captured before validation")
}

func TestBookAppointmentTakenSlot(t *testing.T) {
	repo := seededRepo()
	repo.appointments = append(repo.appointments, models.Appointment{
		ID: 50, DoctorID: 1, AppointmentDate: "2024-06-10",
		AppointmentTime: "10:00", Status: "CONFIRMED",
	})
	uc := newBookUseCase(repo)

	_, err := uc.Execute(context.Background(), bookInput())
	assert.True(t, httperr.IsBusiness(err, "time_not_available"))
	assert.Empty(t, repo.payments)
}

func TestBookAppointmentCancelledSlotIsFree(t *testing.T) {
	repo := seededRepo()
	repo.appointments = append(repo.appointments, models.Appointment{
		ID: 50, DoctorID: 1, AppointmentDate: "2024-06-10",
		AppointmentTime: "10:00", Status: "CANCELLED",
	})
	uc := newBookUseCase(repo)

	_, err := uc.Execute(context.Background(), bookInput())
	assert.NoError(t, err)
}

func TestBookAppointmentRejectsInvalidCardBeforeCharge(t *testing.T) {
	repo := seededRepo()
	uc := newBookUseCase(repo)

	in := bookInput()
	in.Payment.Card.ExpiryYear = "23"

	_, err := uc.Execute(context.Background(), in)
	var ve *payments.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "expiry", ve.Field)
	assert.Empty(t, repo.payments)
	assert.Empty(t, repo.appointments)
}

func TestBookAppointmentWithoutConsent(t *testing.T) {
	repo := seededRepo()
	uc := newBookUseCase(repo)

	in := bookInput()
	in.Consent = false

	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "consent_required"))
	assert.Empty(t, repo.payments)
}

func TestBookAppointmentPaidNotBooked(t *testing.T) {
	repo := seededRepo()
	repo.failCreateAppointment = true
	uc := newBookUseCase(repo)

	res, err := uc.Execute(context.Background(), bookInput())
	require.ErrorIs(t, err, ErrPaidNotBooked)

	// the settled payment is surfaced for support follow-up
	require.NotNil(t, res)
	assert.Nil(t, res.Appointment)
	require.NotNil(t, res.Payment)
	assert.Equal(t, payments.StatusCompleted, res.Payment.Status)

	// the persisted payment row stays orphaned, appointment id null
	require.Len(t, repo.payments, 1)
	assert.Nil(t, repo.payments[0].AppointmentID)
}

func TestBookAppointmentLinkBackfillBestEffort(t *testing.T) {
	repo := seededRepo()
	repo.failUpdatePayment = true
	uc := newBookUseCase(repo)

	res, err := uc.Execute(context.Background(), bookInput())
	require.NoError(t, err, "a failed linkage backfill must not fail the booking")
	require.NotNil(t, res.Appointment)
	require.Len(t, repo.appointments, 1)
}

func TestBookAppointmentIntakeRequired(t *testing.T) {
	repo := seededRepo()
	uc := newBookUseCase(repo)

	in := bookInput()
	in.Details.Problem = ""

	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "problem_required"))
}
