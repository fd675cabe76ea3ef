// Package models contains domain value types shared across the core packages.
// These types carry no behavior beyond simple queries; the state machines that
// move them live in internal/core.
package models

// Customer represents one guest for the duration of a single service phase.
// Patience decays while the customer waits (seated or queued) and the customer
// abandons when it reaches zero.
type Customer struct {
	ID            string
	DishID        string
	PatienceMs    int64
	MaxPatienceMs int64
}

// NewCustomer creates a customer with full patience.
func NewCustomer(id, dishID string, patienceMs int64) Customer {
	return Customer{
		ID:            id,
		DishID:        dishID,
		PatienceMs:    patienceMs,
		MaxPatienceMs: patienceMs,
	}
}

// Expired reports whether the customer has run out of patience.
func (c Customer) Expired() bool {
	return c.PatienceMs <= 0
}

// PatienceFraction returns remaining patience in [0, 1] for display purposes.
func (c Customer) PatienceFraction() float64 {
	if c.MaxPatienceMs <= 0 {
		return 0
	}
	f := float64(c.PatienceMs) / float64(c.MaxPatienceMs)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
