// Package daycycle contains the top-level phase state machine for one
// restaurant day: grocery -> kitchen_prep -> service -> day_end -> next day.
// Transitions are one-directional and explicit; every operation is a total
// function, and timed-phase operations applied to day_end are defined as
// no-ops so callers never need a phase guard before ticking.
package daycycle

import (
	"github.com/example/rush/internal/core/dining"
	"github.com/example/rush/internal/core/kitchen"
)

// PhaseKind identifies one of the four top-level day states.
type PhaseKind string

const (
	PhaseGrocery     PhaseKind = "grocery"
	PhaseKitchenPrep PhaseKind = "kitchen_prep"
	PhaseService     PhaseKind = "service"
	PhaseDayEnd      PhaseKind = "day_end"
)

// PhaseDurations configures the three timed phases, in milliseconds.
type PhaseDurations struct {
	GroceryMs     int64
	KitchenPrepMs int64
	ServiceMs     int64
}

// DaySummary is the day_end snapshot of a finished service phase.
type DaySummary struct {
	CustomersServed int
	CustomersLost   int
	Earnings        int64
}

// Phase is the tagged union of day states. Only the service phase carries
// FOH/BOH state; day_end carries only the summary copied from the service
// phase it followed.
type Phase struct {
	Kind        PhaseKind
	RemainingMs int64
	DurationMs  int64
	Service     *dining.ServiceState
	Summary     DaySummary
}

// Timed reports whether the phase counts down.
func (p Phase) Timed() bool {
	return p.Kind != PhaseDayEnd
}

// DayCycle is the top-level game state: which day it is and which phase the
// day is in. Day only ever moves forward, via AdvanceToNextDay.
type DayCycle struct {
	Day   int
	Phase Phase
}

// New starts day 1 in the grocery phase.
func New(d PhaseDurations) DayCycle {
	return DayCycle{
		Day:   1,
		Phase: timedPhase(PhaseGrocery, d.GroceryMs),
	}
}

func timedPhase(kind PhaseKind, durationMs int64) Phase {
	return Phase{Kind: kind, RemainingMs: durationMs, DurationMs: durationMs}
}

// AdvanceToKitchenPrep moves grocery -> kitchen_prep. No-op from any other
// phase.
func AdvanceToKitchenPrep(c DayCycle, durationMs int64) DayCycle {
	if c.Phase.Kind != PhaseGrocery {
		return c
	}
	c.Phase = timedPhase(PhaseKitchenPrep, durationMs)
	return c
}

// AdvanceToService moves kitchen_prep -> service, constructing a fresh
// dining room and kitchen. No-op from any other phase.
func AdvanceToService(c DayCycle, durationMs int64, tableCount int, zones kitchen.ZoneConfig) DayCycle {
	if c.Phase.Kind != PhaseKitchenPrep {
		return c
	}
	svc := dining.NewServiceState(tableCount, zones)
	c.Phase = timedPhase(PhaseService, durationMs)
	c.Phase.Service = &svc
	return c
}

// AdvanceToDayEnd moves service -> day_end, snapshotting exactly the served,
// lost, and earnings counters of the service phase. No-op from any other
// phase.
func AdvanceToDayEnd(c DayCycle) DayCycle {
	if c.Phase.Kind != PhaseService || c.Phase.Service == nil {
		return c
	}
	svc := c.Phase.Service
	c.Phase = Phase{
		Kind: PhaseDayEnd,
		Summary: DaySummary{
			CustomersServed: svc.CustomersServed,
			CustomersLost:   svc.CustomersLost,
			Earnings:        svc.Earnings,
		},
	}
	return c
}

// AdvanceToNextDay increments the day counter and starts a fresh grocery
// phase. The increment is unconditional regardless of the current phase.
func AdvanceToNextDay(c DayCycle, groceryMs int64) DayCycle {
	return DayCycle{
		Day:   c.Day + 1,
		Phase: timedPhase(PhaseGrocery, groceryMs),
	}
}

// TickTimer decrements the phase timer, floored at zero. No-op on day_end or
// for non-positive deltas. The service sub-state is ticked separately via
// dining.Tick.
func TickTimer(c DayCycle, elapsedMs int64) DayCycle {
	if !c.Phase.Timed() || elapsedMs <= 0 {
		return c
	}
	c.Phase.RemainingMs -= elapsedMs
	if c.Phase.RemainingMs < 0 {
		c.Phase.RemainingMs = 0
	}
	return c
}

// IsPhaseTimerExpired reports whether a timed phase has run out.
func IsPhaseTimerExpired(c DayCycle) bool {
	return c.Phase.Timed() && c.Phase.RemainingMs <= 0
}

// TimerFraction returns remaining/duration clamped into [0, 1], for progress
// rendering. Day_end and zero-duration phases report 0.
func TimerFraction(c DayCycle) float64 {
	if !c.Phase.Timed() || c.Phase.DurationMs <= 0 {
		return 0
	}
	f := float64(c.Phase.RemainingMs) / float64(c.Phase.DurationMs)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
