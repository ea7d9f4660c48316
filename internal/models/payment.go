package models

import "time"

type CardDetails struct {
	LastFour    string `gorm:"size:4" json:"last_four_digits"`
	Network     string `gorm:"size:20" json:"card_type"`
	ExpiryMonth string `gorm:"size:2" json:"expiry_month"`
	ExpiryYear  string `gorm:"size:2" json:"expiry_year"`
}

type InsuranceDetails struct {
	Provider     string `gorm:"size:100" json:"provider"`
	PolicyNumber string `gorm:"size:50" json:"policy_number"`
	MemberID     string `gorm:"size:50" json:"member_id"`
}

// Payment is written once per booking attempt and never mutated after
// reaching COMPLETED, except to backfill the appointment id.
type Payment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Reference     string `gorm:"size:36;uniqueIndex" json:"reference"`
	TransactionID string `gorm:"size:40;uniqueIndex" json:"transaction_id"`

	// Null until the funded appointment is created; a COMPLETED payment
	// with no appointment id marks a paid-not-booked case.
	AppointmentID *uint `json:"appointment_id"`

	PatientID uint `json:"patient_id"`
	DoctorID  uint `json:"doctor_id"`

	Amount   int    `json:"amount"`
	Currency string `gorm:"size:3;default:'USD'" json:"currency"`

	Status string `gorm:"size:20" json:"status"`
	Method string `gorm:"size:20" json:"payment_method"`

	Card      CardDetails      `gorm:"embedded;embeddedPrefix:card_" json:"card_details"`
	Insurance InsuranceDetails `gorm:"embedded;embeddedPrefix:insurance_" json:"insurance"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
