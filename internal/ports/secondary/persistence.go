// Package secondary defines the driven-side repository interfaces and the
// records they persist. Implementations live in internal/adapters.
package secondary

import "context"

// RunRecord is the persistent shape of one simulation run.
type RunRecord struct {
	ID            string
	Seed          int64
	Days          int
	Tables        int
	TotalServed   int
	TotalLost     int
	TotalEarnings int64
	CreatedAt     string
}

// DayResultRecord is the persistent shape of one day within a run.
type DayResultRecord struct {
	RunID           string
	Day             int
	CustomersServed int
	CustomersLost   int
	Earnings        int64
	ItemsSpoiled    int
}

// RunRepository persists simulation runs and their per-day results.
type RunRepository interface {
	CreateRun(ctx context.Context, run *RunRecord) error
	FinishRun(ctx context.Context, runID string, totalServed, totalLost int, totalEarnings int64) error
	AddDayResult(ctx context.Context, result *DayResultRecord) error
	GetRun(ctx context.Context, runID string) (*RunRecord, error)
	ListRuns(ctx context.Context, limit int) ([]*RunRecord, error)
	ListDayResults(ctx context.Context, runID string) ([]*DayResultRecord, error)
}
