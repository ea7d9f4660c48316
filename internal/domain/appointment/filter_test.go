package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carepoint/clinic-scheduler/internal/models"
)

func sampleAppointments() []models.Appointment {
	return []models.Appointment{
		{
			ID: 1, PatientID: 10089, PatientName: "Rahul Kumar",
			DoctorID: 32, DoctorName: "Dr. Michael Chen",
			AppointmentDate: "2024-01-05", AppointmentTime: "15:30",
			Status: "CONFIRMED",
		},
		{
			ID: 2, PatientID: 10090, PatientName: "Priya Sharma",
			DoctorID: 17, DoctorName: "Dr. Sarah Johnson",
			AppointmentDate: "2024-01-06", AppointmentTime: "09:00",
			Status: "PENDING",
		},
		{
			ID: 3, PatientID: 10089, PatientName: "Rahul Kumar",
			DoctorID: 17, DoctorName: "Dr. Sarah Johnson",
			AppointmentDate: "2024-01-05", AppointmentTime: "11:00",
			Status: "CANCELLED",
		},
	}
}

func TestFilterStatusSentinel(t *testing.T) {
	aps := sampleAppointments()

	for _, sentinel := range []string{"all", "All", "ALL STATUS", "all status", ""} {
		got := Filter(aps, Criteria{Status: sentinel})
		assert.Len(t, got, len(aps), "sentinel %q must not filter", sentinel)
	}

	got := Filter(aps, Criteria{Status: "pending"})
	require.Len(t, got, 1)
	assert.Equal(t, uint(2), got[0].ID)
}

func TestFilterDatePlaceholder(t *testing.T) {
	aps := sampleAppointments()

	assert.Len(t, Filter(aps, Criteria{Date: "dd-mm-yyyy"}), len(aps))
	assert.Len(t, Filter(aps, Criteria{Date: "DD-MM-YYYY"}), len(aps))
	assert.Len(t, Filter(aps, Criteria{Date: ""}), len(aps))
}

func TestFilterDateNormalizesBothSides(t *testing.T) {
	aps := sampleAppointments()

	// legacy dd-mm-yyyy criterion must match the canonical stored date
	got := Filter(aps, Criteria{Date: "05-01-2024"})
	require.Len(t, got, 2)
	assert.Equal(t, uint(1), got[0].ID)
	assert.Equal(t, uint(3), got[1].ID)
}

func TestFilterSearchMatchesAnyField(t *testing.T) {
	aps := sampleAppointments()

	assert.Len(t, Filter(aps, Criteria{Search: "rahul"}), 2)
	assert.Len(t, Filter(aps, Criteria{Search: "sarah"}), 2)
	assert.Len(t, Filter(aps, Criteria{Search: "10090"}), 1)
	assert.Len(t, Filter(aps, Criteria{Search: "17"}), 2)
	assert.Len(t, Filter(aps, Criteria{Search: "zzz"}), 0)
}

func TestFilterPreservesSourceOrder(t *testing.T) {
	aps := sampleAppointments()
	got := Filter(aps, Criteria{Search: "rahul"})
	require.Len(t, got, 2)
	assert.True(t, got[0].ID < got[1].ID)
}

func TestCriteriaMutualExclusivity(t *testing.T) {
	var c Criteria

	c.SetDoctor("Dr. Sarah Johnson")
	c.SetPatient("Rahul Kumar")
	assert.Empty(t, c.DoctorName, "selecting a patient must clear the doctor")
	assert.Equal(t, "Rahul Kumar", c.PatientName)

	c.SetDoctor("Dr. Michael Chen")
	assert.Empty(t, c.PatientName, "selecting a doctor must clear the patient")
	assert.Equal(t, "Dr. Michael Chen", c.DoctorName)
}

func TestNeedsServerRefetch(t *testing.T) {
	assert.False(t, NeedsServerRefetch(Criteria{}))
	assert.False(t, NeedsServerRefetch(Criteria{Status: "all", Date: "dd-mm-yyyy"}))
	assert.False(t, NeedsServerRefetch(Criteria{DoctorName: "Dr. Sarah Johnson"}))

	assert.True(t, NeedsServerRefetch(Criteria{Status: "PENDING"}))
	assert.True(t, NeedsServerRefetch(Criteria{Date: "2024-01-05"}))
	assert.True(t, NeedsServerRefetch(Criteria{Search: "rahul"}))
}

func TestSortHistoryMostRecentFirst(t *testing.T) {
	aps := sampleAppointments()
	SortHistory(aps)

	require.Len(t, aps, 3)
	assert.Equal(t, uint(2), aps[0].ID) // 2024-01-06
	assert.Equal(t, uint(1), aps[1].ID) // 2024-01-05 15:30
	assert.Equal(t, uint(3), aps[2].ID) // 2024-01-05 11:00
}
