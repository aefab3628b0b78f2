package repository

import (
	"sync"

	"github.com/kohtao/scuba-reservation/internal/clock"
	"github.com/kohtao/scuba-reservation/internal/model"
)

// ReservationRepo is the single in-memory, mutable collection of
// reservations shared by every consumer for the lifetime of the process.
// It is the canonical owner of the list: the wizard and the dashboard hold
// transient copies only while editing, never a second source of truth.
//
// The list preserves insertion order for newly added records; consumers
// must not assume any sort-by-date ordering. A mutex guards the slice
// because HTTP handlers run concurrently, which keeps every mutation
// immediately visible to subsequent reads while preserving the logical
// single-writer model.
//
// Update and Remove are lenient: an unknown ID is reported through the
// boolean return value rather than an error, and the store is left
// untouched. Callers that want a hard failure translate found=false
// themselves.
type ReservationRepo struct {
	mu           sync.Mutex
	reservations []model.Reservation
}

// NewReservationRepo returns an empty repository.
func NewReservationRepo() *ReservationRepo {
	return &ReservationRepo{reservations: make([]model.Reservation, 0)}
}

// List returns a snapshot of the current reservations in insertion order.
// The returned slice is a copy; mutating it does not affect the store.
func (r *ReservationRepo) List() []model.Reservation {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Reservation, len(r.reservations))
	copy(out, r.reservations)
	return out
}

// Get returns the reservation with the given ID, if present.
func (r *ReservationRepo) Get(id string) (model.Reservation, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, res := range r.reservations {
		if res.ID == id {
			return res, true
		}
	}
	return model.Reservation{}, false
}

// Add appends a reservation. It returns ErrDuplicateID when a record with
// the same ID already exists; the store never overwrites silently.
func (r *ReservationRepo) Add(res model.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.reservations {
		if existing.ID == res.ID {
			return ErrDuplicateID
		}
	}
	r.reservations = append(r.reservations, res)
	return nil
}

// Update replaces the record matching id wholesale. It is not a partial
// merge: callers must assemble the full updated reservation first. The
// boolean result reports whether a record was replaced; an unknown id
// leaves the store untouched.
func (r *ReservationRepo) Update(id string, res model.Reservation) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.reservations {
		if existing.ID == id {
			r.reservations[i] = res
			return true
		}
	}
	return false
}

// AddPayment adds amount to the paid total of the record matching id and
// returns the updated record. Read and write happen under one lock so
// concurrent payments against the same reservation never lose an
// increment. An unknown id leaves the store untouched and returns false.
func (r *ReservationRepo) AddPayment(id string, amount int) (model.Reservation, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.reservations {
		if r.reservations[i].ID == id {
			r.reservations[i].PaidAmount += amount
			return r.reservations[i], true
		}
	}
	return model.Reservation{}, false
}

// Remove deletes the record matching id. Deletion is permanent and
// immediate; there is no archive or soft-delete. Removing an unknown id is
// a no-op and returns false.
func (r *ReservationRepo) Remove(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.reservations {
		if existing.ID == id {
			r.reservations = append(r.reservations[:i], r.reservations[i+1:]...)
			return true
		}
	}
	return false
}

// DayStats aggregates one calendar day of reservations for the POS
// calendar: Total is the number of reservations on the day, NeedPayment
// counts those whose paid amount is still below the total price.
type DayStats struct {
	Total       int `json:"total"`
	NeedPayment int `json:"needPayment"`
}

// ByDate returns the reservations whose Date field string-equals date, in
// original relative (insertion) order. No timezone normalization is
// performed here; callers are responsible for producing consistent local
// calendar date strings. A date with no reservations yields an empty
// slice, not an error.
func (r *ReservationRepo) ByDate(date string) []model.Reservation {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Reservation, 0)
	for _, res := range r.reservations {
		if res.Date == date {
			out = append(out, res)
		}
	}
	return out
}

// StatsForDate derives the calendar badge numbers for one day. A
// reservation whose paid amount exactly equals its total price is not
// counted as needing payment.
func (r *ReservationRepo) StatsForDate(date string) DayStats {
	var stats DayStats
	for _, res := range r.ByDate(date) {
		stats.Total++
		if res.PaidAmount < res.TotalPrice {
			stats.NeedPayment++
		}
	}
	return stats
}

// Upcoming returns the reservations for today or tomorrow as computed from
// the supplied clock. Any day value other than "tomorrow" is treated as
// today. The date is evaluated once per call, not continuously: a request
// served at 23:59 and another at 00:01 may straddle "today".
func (r *ReservationRepo) Upcoming(c clock.Clock, day string) []model.Reservation {
	date := clock.Today(c)
	if day == "tomorrow" {
		date = clock.Tomorrow(c)
	}
	return r.ByDate(date)
}
