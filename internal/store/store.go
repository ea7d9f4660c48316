// Package store keeps the per-view appointment list and its filtered,
// displayable projection consistent after create, edit, status-change and
// delete operations. Reconciliation is by id match, never by refetch, so
// views update without flicker or redundant network calls.
package store

import (
	"strings"

	domain "github.com/carepoint/clinic-scheduler/internal/domain/appointment"
	"github.com/carepoint/clinic-scheduler/internal/models"
)

// Row is a displayable appointment with its denormalized presentation
// fields pre-rendered. The badge class is cached and must be refreshed in
// the same pass as any status change.
type Row struct {
	models.Appointment
	StatusBadge string `json:"status_badge"`
}

func badgeClass(status string) string {
	return "badge-" + strings.ToLower(status)
}

// Store is scoped to a single mounted view and never shared between
// flows, so it needs no locking.
type Store struct {
	prependNewest bool

	all      []models.Appointment
	visible  []Row
	criteria domain.Criteria
}

// New creates a store. Patient views prepend newly created appointments
// (newest first); admin and doctor tables append in insertion order.
func New(prependNewest bool) *Store {
	return &Store{prependNewest: prependNewest}
}

// Load replaces the full cache, e.g. after the initial fetch or an
// authoritative server refetch.
func (s *Store) Load(appointments []models.Appointment) {
	s.all = append([]models.Appointment(nil), appointments...)
	s.refilter()
}

// SetCriteria re-derives the visible list for new filter criteria.
func (s *Store) SetCriteria(c domain.Criteria) {
	s.criteria = c
	s.refilter()
}

func (s *Store) Criteria() domain.Criteria {
	return s.criteria
}

func (s *Store) refilter() {
	filtered := domain.Filter(s.all, s.criteria)
	s.visible = make([]Row, 0, len(filtered))
	for _, ap := range filtered {
		s.visible = append(s.visible, Row{Appointment: ap, StatusBadge: badgeClass(ap.Status)})
	}
}

// Add merges a newly created appointment into both lists.
func (s *Store) Add(ap models.Appointment) {
	if s.prependNewest {
		s.all = append([]models.Appointment{ap}, s.all...)
	} else {
		s.all = append(s.all, ap)
	}
	s.refilter()
}

// Update replaces the record with the same id in both lists.
func (s *Store) Update(ap models.Appointment) {
	for i := range s.all {
		if s.all[i].ID == ap.ID {
			s.all[i] = ap
			break
		}
	}
	for i := range s.visible {
		if s.visible[i].ID == ap.ID {
			s.visible[i] = Row{Appointment: ap, StatusBadge: badgeClass(ap.Status)}
			break
		}
	}
}

// UpdateStatus applies a quick status change, refreshing the backing
// record and the cached badge class in the same pass.
func (s *Store) UpdateStatus(id uint, status domain.Status) {
	for i := range s.all {
		if s.all[i].ID == id {
			s.all[i].Status = string(status)
			break
		}
	}
	for i := range s.visible {
		if s.visible[i].ID == id {
			s.visible[i].Status = string(status)
			s.visible[i].StatusBadge = badgeClass(string(status))
			break
		}
	}
}

// Remove deletes the appointment from both lists atomically; no caller
// ever observes one list reflecting the deletion and the other not.
func (s *Store) Remove(id uint) {
	all := s.all[:0]
	for _, ap := range s.all {
		if ap.ID != id {
			all = append(all, ap)
		}
	}
	s.all = all

	visible := s.visible[:0]
	for _, row := range s.visible {
		if row.ID != id {
			visible = append(visible, row)
		}
	}
	s.visible = visible
}

// All returns the full cache.
func (s *Store) All() []models.Appointment {
	return s.all
}

// Visible returns the filtered, displayable rows.
func (s *Store) Visible() []Row {
	return s.visible
}
