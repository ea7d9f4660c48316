package models

import "time"

// Vitals captured during the medical-details step. All optional.
type Vitals struct {
	Height           string `gorm:"size:20" json:"height"`
	Weight           string `gorm:"size:20" json:"weight"`
	Temperature      string `gorm:"size:20" json:"temperature"`
	BloodPressure    string `gorm:"size:20" json:"blood_pressure"`
	Pulse            string `gorm:"size:20" json:"pulse"`
	OxygenSaturation string `gorm:"size:20" json:"oxygen_saturation"`
}

// PatientDetails is the clinical intake collected at booking time.
// Admin-created appointments carry an empty intake.
type PatientDetails struct {
	Age            int    `json:"age"`
	Gender         string `gorm:"size:20" json:"gender"`
	BloodGroup     string `gorm:"size:10" json:"blood_group"`
	Allergies      string `gorm:"size:255" json:"allergies"`
	Medications    string `gorm:"size:255" json:"medications"`
	MedicalHistory string `gorm:"size:1000" json:"medical_history"`
	Problem        string `gorm:"size:1000" json:"problem"`
	Notes          string `gorm:"size:1000" json:"notes"`

	Vitals Vitals `gorm:"embedded;embeddedPrefix:vitals_" json:"vitals"`
}

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PatientID    uint   `json:"patient_id"`
	PatientName  string `gorm:"size:100" json:"patient_name"`
	PatientEmail string `gorm:"size:100" json:"patient_email"`

	DoctorID             uint   `json:"doctor_id"`
	DoctorName           string `gorm:"size:100" json:"doctor_name"`
	DoctorSpecialization string `gorm:"size:50" json:"doctor_specialization"`

	// Canonical forms: yyyy-MM-dd and 24h HH:mm. Display layers render 12h.
	AppointmentDate string `gorm:"size:10" json:"appointment_date"`
	AppointmentTime string `gorm:"size:5" json:"appointment_time"`

	AppointmentType string `gorm:"size:30" json:"appointment_type"`

	Status string `gorm:"size:20;default:'PENDING'" json:"status"`

	Details PatientDetails `gorm:"embedded;embeddedPrefix:intake_" json:"patient_details"`

	// Set only after payment capture; null on admin-created appointments.
	PaymentID     *uint  `json:"payment_id"`
	PaymentStatus string `gorm:"size:20" json:"payment_status"`
	PaymentAmount int    `json:"payment_amount"`
	PaymentMethod string `gorm:"size:20" json:"payment_method"`

	Notes string `gorm:"size:255" json:"notes"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
