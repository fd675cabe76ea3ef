// Package primary defines the driving-side service interfaces and their
// request/response types. The CLI talks to the app layer exclusively through
// these.
package primary

import "context"

// DayResult summarizes one finished day.
type DayResult struct {
	Day             int
	CustomersServed int
	CustomersLost   int
	Earnings        int64
	ItemsSpoiled    int
	CoinsEnd        int64
}

// SimulateRequest configures an automated multi-day run.
type SimulateRequest struct {
	Days   int
	Tables int
	Seed   int64
	// TickMs is the fixed simulation timestep; 0 uses the default.
	TickMs int64
}

// SimulateResponse reports a completed run.
type SimulateResponse struct {
	RunID         string
	Seed          int64
	Days          []DayResult
	TotalServed   int
	TotalLost     int
	TotalEarnings int64
}

// SimulationService runs automated service days.
type SimulationService interface {
	Simulate(ctx context.Context, req SimulateRequest) (*SimulateResponse, error)
}

// Run is a recorded simulation run.
type Run struct {
	ID            string
	Seed          int64
	Days          int
	Tables        int
	TotalServed   int
	TotalLost     int
	TotalEarnings int64
	CreatedAt     string
}

// RunService reads back recorded runs.
type RunService interface {
	GetRun(ctx context.Context, runID string) (*Run, []DayResult, error)
	ListRuns(ctx context.Context, limit int) ([]*Run, error)
}
