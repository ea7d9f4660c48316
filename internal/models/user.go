package models

import "time"

// User is a login identity. DoctorID/PatientID link the account to its
// profile record when the role is doctor or patient.
type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Phone        string `gorm:"size:20" json:"phone"`

	Role string `gorm:"size:20;default:'patient'" json:"role"`

	DoctorID  *uint `json:"doctor_id"`
	PatientID *uint `json:"patient_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
