package db

import "fmt"

// schemaSQL is the authoritative current schema. Tests load it directly so
// repository tests and production never drift.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	seed INTEGER NOT NULL,
	days INTEGER NOT NULL,
	tables_count INTEGER NOT NULL,
	total_served INTEGER NOT NULL DEFAULT 0,
	total_lost INTEGER NOT NULL DEFAULT 0,
	total_earnings INTEGER NOT NULL DEFAULT 0,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS day_results (
	run_id TEXT NOT NULL,
	day INTEGER NOT NULL,
	customers_served INTEGER NOT NULL,
	customers_lost INTEGER NOT NULL,
	earnings INTEGER NOT NULL,
	items_spoiled INTEGER NOT NULL DEFAULT 0,
	PRIMARY KEY (run_id, day),
	FOREIGN KEY (run_id) REFERENCES runs(id)
);

CREATE INDEX IF NOT EXISTS idx_day_results_run ON day_results(run_id);
`

// GetSchemaSQL returns the authoritative schema SQL.
func GetSchemaSQL() string {
	return schemaSQL
}

// InitSchema creates the database schema and stamps the current version.
func InitSchema() error {
	database, err := GetDB()
	if err != nil {
		return err
	}
	if _, err := database.Exec(schemaSQL); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return RunMigrations()
}
