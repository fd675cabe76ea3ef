package db

import (
	"database/sql"
	"fmt"
)

// Migration represents a database migration
type Migration struct {
	Version int
	Name    string
	Up      func(*sql.DB) error
}

// migrations is the list of all migrations in order
var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_runs_and_day_results",
		Up:      migrationV1,
	},
	{
		Version: 2,
		Name:    "add_items_spoiled_to_day_results",
		Up:      migrationV2,
	},
}

// RunMigrations applies any pending migrations to the shared connection.
func RunMigrations() error {
	database, err := GetDB()
	if err != nil {
		return fmt.Errorf("failed to get database: %w", err)
	}
	return MigrateDB(database)
}

// MigrateDB applies any pending migrations to the given connection. Tests
// use this against in-memory databases.
func MigrateDB(database *sql.DB) error {
	_, err := database.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create schema_version table: %w", err)
	}

	var currentVersion int
	err = database.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&currentVersion)
	if err != nil {
		return fmt.Errorf("failed to get current schema version: %w", err)
	}

	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}
		if err := migration.Up(database); err != nil {
			return fmt.Errorf("migration %d (%s) failed: %w", migration.Version, migration.Name, err)
		}
		if _, err := database.Exec("INSERT INTO schema_version (version) VALUES (?)", migration.Version); err != nil {
			return fmt.Errorf("failed to record migration %d: %w", migration.Version, err)
		}
	}
	return nil
}

func migrationV1(database *sql.DB) error {
	// The base tables ship in the authoritative schema; this exists so
	// pre-schema databases get stamped consistently.
	_, err := database.Exec(schemaSQL)
	return err
}

func migrationV2(database *sql.DB) error {
	// Databases created before spoilage tracking lack the column; the
	// authoritative schema already includes it for fresh installs.
	var count int
	err := database.QueryRow(`
		SELECT COUNT(*) FROM pragma_table_info('day_results') WHERE name = 'items_spoiled'
	`).Scan(&count)
	if err != nil {
		return fmt.Errorf("failed to inspect day_results: %w", err)
	}
	if count > 0 {
		return nil
	}
	_, err = database.Exec("ALTER TABLE day_results ADD COLUMN items_spoiled INTEGER NOT NULL DEFAULT 0")
	return err
}
