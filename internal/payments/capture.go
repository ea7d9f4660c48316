package payments

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/carepoint/clinic-scheduler/internal/models"
)

// ======================================================
// Payment method + forms
// ======================================================

type Method string

const (
	MethodCard      Method = "CARD"
	MethodInsurance Method = "INSURANCE"
)

const (
	StatusPending   = "PENDING"
	StatusCompleted = "COMPLETED"
	StatusFailed    = "FAILED"
	StatusRefunded  = "REFUNDED"
)

type CardForm struct {
	Number      string `json:"card_number"`
	HolderName  string `json:"cardholder_name"`
	ExpiryMonth string `json:"expiry_month"`
	ExpiryYear  string `json:"expiry_year"`
	CVV         string `json:"cvv"`
}

type InsuranceForm struct {
	Provider     string `json:"insurance_provider"`
	PolicyNumber string `json:"policy_number"`
	MemberID     string `json:"member_id"`
}

type Form struct {
	Method    Method        `json:"payment_method"`
	Card      CardForm      `json:"card"`
	Insurance InsuranceForm `json:"insurance"`
}

// ValidationError names the first failing field. Nothing is partially
// processed when validation fails.
type ValidationError struct {
	Category Method `json:"category"`
	Field    string `json:"field"`
	Reason   string `json:"reason"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("payment validation: %s %s: %s", e.Category, e.Field, e.Reason)
}

// ======================================================
// Capture service
// ======================================================

// Request identifies the parties being charged. AppointmentID stays nil
// until the funded appointment exists.
type Request struct {
	PatientID uint
	DoctorID  uint
	Amount    int
}

// Service validates payment forms and synthesizes completed payment
// records. It simulates a gateway: the contract honored is the shape and
// determinism of the record, not money movement.
type Service struct {
	now func() time.Time
}

func NewService() *Service {
	return &Service{now: time.Now}
}

// NewServiceAt pins the clock, used by expiry tests.
func NewServiceAt(now func() time.Time) *Service {
	return &Service{now: now}
}

func (s *Service) Capture(form Form, req Request) (*models.Payment, error) {
	if err := s.Validate(form); err != nil {
		return nil, err
	}

	now := s.now()
	p := &models.Payment{
		Reference:     uuid.NewString(),
		TransactionID: newTransactionID(now),
		PatientID:     req.PatientID,
		DoctorID:      req.DoctorID,
		Amount:        req.Amount,
		Currency:      "USD",
		Status:        StatusCompleted,
		Method:        string(form.Method),
	}

	switch form.Method {
	case MethodCard:
		p.Card = models.CardDetails{
			LastFour:    LastFour(form.Card.Number),
			Network:     CardNetwork(form.Card.Number),
			ExpiryMonth: form.Card.ExpiryMonth,
			ExpiryYear:  form.Card.ExpiryYear,
		}
	case MethodInsurance:
		p.Insurance = models.InsuranceDetails{
			Provider:     form.Insurance.Provider,
			PolicyNumber: form.Insurance.PolicyNumber,
			MemberID:     form.Insurance.MemberID,
		}
	}

	return p, nil
}

func (s *Service) Validate(form Form) error {
	switch form.Method {
	case MethodCard:
		return s.validateCard(form.Card)
	case MethodInsurance:
		return validateInsurance(form.Insurance)
	default:
		return &ValidationError{Category: form.Method, Field: "payment_method", Reason: "unsupported payment method"}
	}
}

func (s *Service) validateCard(card CardForm) error {
	if len(digitsOnly(card.Number)) < 16 {
		return &ValidationError{Category: MethodCard, Field: "card_number", Reason: "card number must have at least 16 digits"}
	}
	if card.HolderName == "" {
		return &ValidationError{Category: MethodCard, Field: "cardholder_name", Reason: "cardholder name is required"}
	}
	if card.ExpiryMonth == "" || card.ExpiryYear == "" {
		return &ValidationError{Category: MethodCard, Field: "expiry", Reason: "expiry month and year are required"}
	}

	month, okM := parseTwoDigit(card.ExpiryMonth)
	year, okY := parseTwoDigit(card.ExpiryYear)
	if !okM || !okY || month < 1 || month > 12 {
		return &ValidationError{Category: MethodCard, Field: "expiry", Reason: "expiry date is not valid"}
	}

	now := s.now()
	curYear := now.Year() % 100
	curMonth := int(now.Month())
	if year < curYear || (year == curYear && month < curMonth) {
		return &ValidationError{Category: MethodCard, Field: "expiry", Reason: "card has expired"}
	}

	if len(card.CVV) < 3 || len(card.CVV) > 4 || digitsOnly(card.CVV) != card.CVV {
		return &ValidationError{Category: MethodCard, Field: "cvv", Reason: "cvv must be 3 or 4 digits"}
	}

	return nil
}

func validateInsurance(ins InsuranceForm) error {
	if ins.Provider == "" {
		return &ValidationError{Category: MethodInsurance, Field: "insurance_provider", Reason: "insurance provider is required"}
	}
	if ins.PolicyNumber == "" {
		return &ValidationError{Category: MethodInsurance, Field: "policy_number", Reason: "policy number is required"}
	}
	if ins.MemberID == "" {
		return &ValidationError{Category: MethodInsurance, Field: "member_id", Reason: "member id is required"}
	}
	return nil
}

func newTransactionID(now time.Time) string {
	return fmt.Sprintf("txn_%d%04d", now.UnixMilli(), rand.Intn(10000))
}

func parseTwoDigit(s string) (int, bool) {
	if len(s) == 0 || len(s) > 2 {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
