package app

import (
	"context"
	"fmt"

	"github.com/example/rush/internal/ports/primary"
	"github.com/example/rush/internal/ports/secondary"
)

// RunServiceImpl implements the RunService interface.
type RunServiceImpl struct {
	runRepo secondary.RunRepository
}

// NewRunService creates a new RunService with injected dependencies.
func NewRunService(runRepo secondary.RunRepository) *RunServiceImpl {
	return &RunServiceImpl{runRepo: runRepo}
}

// GetRun returns one recorded run with its day results.
func (s *RunServiceImpl) GetRun(ctx context.Context, runID string) (*primary.Run, []primary.DayResult, error) {
	record, err := s.runRepo.GetRun(ctx, runID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get run: %w", err)
	}
	dayRecords, err := s.runRepo.ListDayResults(ctx, runID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get day results: %w", err)
	}

	days := make([]primary.DayResult, 0, len(dayRecords))
	for _, d := range dayRecords {
		days = append(days, primary.DayResult{
			Day:             d.Day,
			CustomersServed: d.CustomersServed,
			CustomersLost:   d.CustomersLost,
			Earnings:        d.Earnings,
			ItemsSpoiled:    d.ItemsSpoiled,
		})
	}
	return runFromRecord(record), days, nil
}

// ListRuns returns the most recent runs, newest first.
func (s *RunServiceImpl) ListRuns(ctx context.Context, limit int) ([]*primary.Run, error) {
	records, err := s.runRepo.ListRuns(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	runs := make([]*primary.Run, 0, len(records))
	for _, r := range records {
		runs = append(runs, runFromRecord(r))
	}
	return runs, nil
}

func runFromRecord(r *secondary.RunRecord) *primary.Run {
	return &primary.Run{
		ID:            r.ID,
		Seed:          r.Seed,
		Days:          r.Days,
		Tables:        r.Tables,
		TotalServed:   r.TotalServed,
		TotalLost:     r.TotalLost,
		TotalEarnings: r.TotalEarnings,
		CreatedAt:     r.CreatedAt,
	}
}

var _ primary.RunService = (*RunServiceImpl)(nil)
