package app

import (
	"context"
	"fmt"

	"github.com/example/rush/internal/ports/secondary"
)

// fakeRunRepo is an in-memory RunRepository for service tests.
type fakeRunRepo struct {
	runs       map[string]*secondary.RunRecord
	dayResults map[string][]*secondary.DayResultRecord
	order      []string
}

func newFakeRunRepo() *fakeRunRepo {
	return &fakeRunRepo{
		runs:       map[string]*secondary.RunRecord{},
		dayResults: map[string][]*secondary.DayResultRecord{},
	}
}

func (f *fakeRunRepo) CreateRun(_ context.Context, run *secondary.RunRecord) error {
	if _, ok := f.runs[run.ID]; ok {
		return fmt.Errorf("run %s already exists", run.ID)
	}
	record := *run
	f.runs[run.ID] = &record
	f.order = append(f.order, run.ID)
	return nil
}

func (f *fakeRunRepo) FinishRun(_ context.Context, runID string, totalServed, totalLost int, totalEarnings int64) error {
	run, ok := f.runs[runID]
	if !ok {
		return fmt.Errorf("run %s not found", runID)
	}
	run.TotalServed = totalServed
	run.TotalLost = totalLost
	run.TotalEarnings = totalEarnings
	return nil
}

func (f *fakeRunRepo) AddDayResult(_ context.Context, result *secondary.DayResultRecord) error {
	if _, ok := f.runs[result.RunID]; !ok {
		return fmt.Errorf("run %s not found", result.RunID)
	}
	record := *result
	f.dayResults[result.RunID] = append(f.dayResults[result.RunID], &record)
	return nil
}

func (f *fakeRunRepo) GetRun(_ context.Context, runID string) (*secondary.RunRecord, error) {
	run, ok := f.runs[runID]
	if !ok {
		return nil, fmt.Errorf("run %s not found", runID)
	}
	return run, nil
}

func (f *fakeRunRepo) ListRuns(_ context.Context, limit int) ([]*secondary.RunRecord, error) {
	var out []*secondary.RunRecord
	for i := len(f.order) - 1; i >= 0 && (limit <= 0 || len(out) < limit); i-- {
		out = append(out, f.runs[f.order[i]])
	}
	return out, nil
}

func (f *fakeRunRepo) ListDayResults(_ context.Context, runID string) ([]*secondary.DayResultRecord, error) {
	return f.dayResults[runID], nil
}

var _ secondary.RunRepository = (*fakeRunRepo)(nil)
