package appointment

import (
	"sort"
	"strconv"
	"strings"

	"github.com/carepoint/clinic-scheduler/internal/datetime"
	"github.com/carepoint/clinic-scheduler/internal/models"
)

// datePlaceholder is the UI default shown in an empty date filter. It is a
// sentinel, never a literal value to match against.
const datePlaceholder = "dd-mm-yyyy"

// Criteria drives Filter. The doctor and patient refinements are mutually
// exclusive; use SetDoctor/SetPatient so selecting one clears the other.
type Criteria struct {
	Status      string `json:"status"`
	Date        string `json:"date"`
	DoctorName  string `json:"doctor_name"`
	PatientName string `json:"patient_name"`
	Search      string `json:"search"`
}

func (c *Criteria) SetDoctor(name string) {
	c.DoctorName = name
	if name != "" {
		c.PatientName = ""
	}
}

func (c *Criteria) SetPatient(name string) {
	c.PatientName = name
	if name != "" {
		c.DoctorName = ""
	}
}

func (c Criteria) statusActive() bool {
	s := strings.ToLower(strings.TrimSpace(c.Status))
	return s != "" && s != "all" && s != "all status"
}

func (c Criteria) dateActive() bool {
	d := strings.TrimSpace(c.Date)
	if d == "" || strings.EqualFold(d, datePlaceholder) {
		return false
	}
	return strings.ContainsAny(d, "0123456789")
}

// Filter derives the displayable subset of appointments. Source order is
// preserved; consumers that want history ordering call SortHistory.
func Filter(appointments []models.Appointment, c Criteria) []models.Appointment {
	out := make([]models.Appointment, 0, len(appointments))

	search := strings.ToLower(strings.TrimSpace(c.Search))
	wantStatus := strings.ToUpper(strings.TrimSpace(c.Status))
	wantDate := ""
	if c.dateActive() {
		wantDate = datetime.NormalizeDate(c.Date)
	}

	for _, ap := range appointments {
		if search != "" && !matchesSearch(ap, search) {
			continue
		}
		if c.statusActive() && strings.ToUpper(ap.Status) != wantStatus {
			continue
		}
		if wantDate != "" && datetime.NormalizeDate(ap.AppointmentDate) != wantDate {
			continue
		}
		if c.DoctorName != "" && ap.DoctorName != c.DoctorName {
			continue
		}
		if c.PatientName != "" && ap.PatientName != c.PatientName {
			continue
		}
		out = append(out, ap)
	}

	return out
}

func matchesSearch(ap models.Appointment, search string) bool {
	for _, field := range []string{
		ap.PatientName,
		ap.DoctorName,
		idString(ap.PatientID),
		idString(ap.DoctorID),
	} {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}

func idString(id uint) string {
	if id == 0 {
		return ""
	}
	return strconv.FormatUint(uint64(id), 10)
}

// NeedsServerRefetch reports whether the backend must be re-queried with
// the same criteria: the local list may be a partial page, so meaningful
// status, date, or search filters cannot be answered from it alone.
func NeedsServerRefetch(c Criteria) bool {
	return c.statusActive() || c.dateActive() || strings.TrimSpace(c.Search) != ""
}

// SortHistory orders appointments most recent first by normalized
// date and time.
func SortHistory(appointments []models.Appointment) {
	sort.SliceStable(appointments, func(i, j int) bool {
		di := datetime.NormalizeDate(appointments[i].AppointmentDate)
		dj := datetime.NormalizeDate(appointments[j].AppointmentDate)
		if di != dj {
			return di > dj
		}
		return datetime.NormalizeTime(appointments[i].AppointmentTime) >
			datetime.NormalizeTime(appointments[j].AppointmentTime)
	})
}
