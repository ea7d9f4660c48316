package appointment

import (
	"context"

	"github.com/carepoint/clinic-scheduler/internal/datetime"
	domain "github.com/carepoint/clinic-scheduler/internal/domain/appointment"
	"github.com/carepoint/clinic-scheduler/internal/httperr"
)

type AvailabilityInput struct {
	DoctorID uint
	Date     string
}

// baseSlots is the clinic's bookable grid in canonical form; mornings,
// a lunch gap, then afternoons.
var baseSlots = []string{
	"09:00", "09:30", "10:00", "10:30",
	"11:00", "11:30", "12:00", "14:00",
	"14:30", "15:00", "15:30", "16:00",
}

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

// Execute returns the bookable HH:mm times for a doctor and date: the
// base grid minus slots already taken by non-cancelled appointments.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in AvailabilityInput,
) ([]string, error) {

	day := datetime.NormalizeDate(in.Date)
	if !datetime.IsCanonicalDate(day) {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	booked, err := uc.repo.ListBookedTimes(ctx, in.DoctorID, day)
	if err != nil {
		return nil, err
	}

	taken := make(map[string]bool, len(booked))
	for _, t := range booked {
		if canonical := datetime.NormalizeTime(t); canonical != "" {
			taken[canonical] = true
		}
	}

	slots := make([]string, 0, len(baseSlots))
	for _, slot := range baseSlots {
		if !taken[slot] {
			slots = append(slots, slot)
		}
	}

	return slots, nil
}
