// SPDX-License-Identifier: MIT
// Package resultstore persists protocol run results in SQLite.
//
// Each protocol.Result becomes one row of the runs table; the per-trial
// success times and the user list are stored as JSON arrays. Rows are keyed
// by Result.RunID.
package resultstore

import (
	"context"
	"database/sql"
	"fmt"
)

// SchemaVersion is the current schema version.
const SchemaVersion = 1

const schemaV1 = `
CREATE TABLE IF NOT EXISTS runs (
    id TEXT PRIMARY KEY,
    protocol TEXT NOT NULL,
    strategy TEXT NOT NULL,
    users TEXT NOT NULL,
    timesteps INTEGER NOT NULL,
    reps INTEGER NOT NULL,
    seed INTEGER NOT NULL,
    workers INTEGER NOT NULL,
    rate REAL NOT NULL,
    avg_links_used REAL NOT NULL,
    successes INTEGER NOT NULL,
    mean_success_time REAL NOT NULL,
    times TEXT NOT NULL,
    started_at TEXT NOT NULL,
    duration_ns INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_runs_protocol ON runs(protocol);
CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at);

CREATE TABLE IF NOT EXISTS schema_version (
    version INTEGER PRIMARY KEY,
    applied_at TEXT NOT NULL
);
`

// InitSchema creates the tables on a fresh database and leaves an existing
// one untouched.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if _, err := getSchemaVersion(ctx, db); err == nil {
		return nil
	}
	if err := createSchema(ctx, db); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

func getSchemaVersion(ctx context.Context, db *sql.DB) (int, error) {
	var version int
	err := db.QueryRowContext(ctx, `SELECT MAX(version) FROM schema_version`).Scan(&version)
	if err != nil {
		return 0, err
	}
	return version, nil
}

func createSchema(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, schemaV1); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO schema_version (version, applied_at) VALUES (?, datetime('now'))`,
		SchemaVersion); err != nil {
		return fmt.Errorf("failed to record schema version: %w", err)
	}

	return tx.Commit()
}
