// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/rush/internal/ports/secondary"
)

// RunRepository implements secondary.RunRepository with SQLite.
type RunRepository struct {
	db *sql.DB
}

// NewRunRepository creates a new SQLite run repository.
func NewRunRepository(db *sql.DB) *RunRepository {
	return &RunRepository{db: db}
}

const runSelectCols = "id, seed, days, tables_count, total_served, total_lost, total_earnings, created_at"

// scanRun scans a run row into a RunRecord.
func scanRun(scanner interface {
	Scan(dest ...any) error
}) (*secondary.RunRecord, error) {
	var createdAt time.Time
	record := &secondary.RunRecord{}
	err := scanner.Scan(
		&record.ID, &record.Seed, &record.Days, &record.Tables,
		&record.TotalServed, &record.TotalLost, &record.TotalEarnings, &createdAt,
	)
	if err != nil {
		return nil, err
	}
	record.CreatedAt = createdAt.Format(time.RFC3339)
	return record, nil
}

// CreateRun persists a new run.
func (r *RunRepository) CreateRun(ctx context.Context, run *secondary.RunRecord) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO runs (id, seed, days, tables_count) VALUES (?, ?, ?, ?)",
		run.ID, run.Seed, run.Days, run.Tables,
	)
	if err != nil {
		return fmt.Errorf("failed to create run: %w", err)
	}
	return nil
}

// FinishRun stores the final totals for a run.
func (r *RunRepository) FinishRun(ctx context.Context, runID string, totalServed, totalLost int, totalEarnings int64) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE runs SET total_served = ?, total_lost = ?, total_earnings = ? WHERE id = ?",
		totalServed, totalLost, totalEarnings, runID,
	)
	if err != nil {
		return fmt.Errorf("failed to finish run: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check finish result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("run %s not found", runID)
	}
	return nil
}

// AddDayResult persists one day's summary for a run.
func (r *RunRepository) AddDayResult(ctx context.Context, result *secondary.DayResultRecord) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO day_results (run_id, day, customers_served, customers_lost, earnings, items_spoiled) VALUES (?, ?, ?, ?, ?, ?)",
		result.RunID, result.Day, result.CustomersServed, result.CustomersLost, result.Earnings, result.ItemsSpoiled,
	)
	if err != nil {
		return fmt.Errorf("failed to add day result: %w", err)
	}
	return nil
}

// GetRun retrieves a run by ID.
func (r *RunRepository) GetRun(ctx context.Context, runID string) (*secondary.RunRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+runSelectCols+" FROM runs WHERE id = ?", runID,
	)
	record, err := scanRun(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("run %s not found", runID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return record, nil
}

// ListRuns lists the most recent runs, newest first.
func (r *RunRepository) ListRuns(ctx context.Context, limit int) ([]*secondary.RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+runSelectCols+" FROM runs ORDER BY created_at DESC, id DESC LIMIT ?", limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var records []*secondary.RunRecord
	for rows.Next() {
		record, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// ListDayResults lists a run's day results in day order.
func (r *RunRepository) ListDayResults(ctx context.Context, runID string) ([]*secondary.DayResultRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT run_id, day, customers_served, customers_lost, earnings, items_spoiled FROM day_results WHERE run_id = ? ORDER BY day",
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list day results: %w", err)
	}
	defer rows.Close()

	var records []*secondary.DayResultRecord
	for rows.Next() {
		record := &secondary.DayResultRecord{}
		err := rows.Scan(
			&record.RunID, &record.Day, &record.CustomersServed,
			&record.CustomersLost, &record.Earnings, &record.ItemsSpoiled,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan day result: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// Ensure RunRepository implements the interface
var _ secondary.RunRepository = (*RunRepository)(nil)
