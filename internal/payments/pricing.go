package payments

import "math"

const basePrice = 100

// Quote prices an appointment from the doctor's specialization and the
// appointment type. The table is deterministic and computed locally; no
// backend round-trip is involved.
func Quote(specialization, appointmentType string) int {
	specMultiplier := 1.2
	switch specialization {
	case "Cardiology", "Neurology", "Oncology":
		specMultiplier = 1.5
	case "Pediatrics", "Family Medicine", "General Medicine":
		specMultiplier = 1.0
	case "Dermatology", "Psychiatry":
		specMultiplier = 1.3
	case "":
		specMultiplier = 1.0
	}

	typeMultiplier := 1.0
	switch appointmentType {
	case "Emergency":
		typeMultiplier = 1.5
	case "Consultation":
		typeMultiplier = 1.0
	case "Follow-up":
		typeMultiplier = 0.8
	}

	return int(math.Round(basePrice * specMultiplier * typeMultiplier))
}
