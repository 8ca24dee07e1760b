// SPDX-License-Identifier: MIT
// File: store.go
// Role: SQLite-backed storage of protocol.Result rows.
// Concurrency:
//   - A single connection serialises writers; Store is safe for concurrent use.

package resultstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/katalvlaran/qnetsim/protocol"
)

// Sentinel errors for the result store.
var (
	// ErrNotFound indicates that no run with the requested ID is stored.
	ErrNotFound = errors.New("resultstore: run not found")

	// ErrNilResult indicates Save was called without a result.
	ErrNilResult = errors.New("resultstore: nil result")
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// timeLayout is fixed-width so that stored timestamps sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

const runColumns = `id, protocol, strategy, users, timesteps, reps, seed, workers,
    rate, avg_links_used, successes, mean_success_time, times, started_at, duration_ns`

// Store is a handle to a results database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at path and initialises its schema.
func Open(ctx context.Context, path string) (*Store, error) {
	dsn := path
	if path != MemoryPath {
		dsn = path + "?_pragma=journal_mode(WAL)"
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := InitSchema(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save inserts res, replacing any row with the same RunID.
func (s *Store) Save(ctx context.Context, res *protocol.Result) error {
	if res == nil {
		return ErrNilResult
	}
	users, err := json.Marshal(res.Users)
	if err != nil {
		return fmt.Errorf("marshal users: %w", err)
	}
	times, err := json.Marshal(res.Times)
	if err != nil {
		return fmt.Errorf("marshal times: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO runs (`+runColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		res.RunID.String(), res.Protocol, res.Strategy, string(users),
		res.Timesteps, res.Reps, res.Seed, res.Workers,
		res.Rate, res.AvgLinksUsed, res.Successes, res.MeanSuccessTime,
		string(times), res.StartedAt.UTC().Format(timeLayout), int64(res.Duration),
	)
	if err != nil {
		return fmt.Errorf("failed to save run %s: %w", res.RunID, err)
	}

	return nil
}

// Get returns the run with the given ID or ErrNotFound.
func (s *Store) Get(ctx context.Context, id uuid.UUID) (*protocol.Result, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+runColumns+` FROM runs WHERE id = ?`, id.String())
	res, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("run %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	return res, nil
}

// List returns stored runs, newest first. An empty protocolName matches
// every protocol; limit ≤ 0 means no limit.
func (s *Store) List(ctx context.Context, protocolName string, limit int) ([]*protocol.Result, error) {
	var (
		where []string
		args  []any
	)
	if protocolName != "" {
		where = append(where, "protocol = ?")
		args = append(args, protocolName)
	}
	query := `SELECT ` + runColumns + ` FROM runs`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY started_at DESC, id`
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var out []*protocol.Result
	for rows.Next() {
		res, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate runs: %w", err)
	}

	return out, nil
}

// Delete removes the run with the given ID or returns ErrNotFound.
func (s *Store) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM runs WHERE id = ?`, id.String())
	if err != nil {
		return fmt.Errorf("failed to delete run %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete run %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("run %s: %w", id, ErrNotFound)
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (*protocol.Result, error) {
	var (
		res                  protocol.Result
		id, users, times, at string
		durationNS           int64
	)
	err := sc.Scan(&id, &res.Protocol, &res.Strategy, &users,
		&res.Timesteps, &res.Reps, &res.Seed, &res.Workers,
		&res.Rate, &res.AvgLinksUsed, &res.Successes, &res.MeanSuccessTime,
		&times, &at, &durationNS)
	if err != nil {
		return nil, err
	}
	if res.RunID, err = uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("run id %q: %w", id, err)
	}
	if err := json.Unmarshal([]byte(users), &res.Users); err != nil {
		return nil, fmt.Errorf("run %s users: %w", id, err)
	}
	if err := json.Unmarshal([]byte(times), &res.Times); err != nil {
		return nil, fmt.Errorf("run %s times: %w", id, err)
	}
	if res.StartedAt, err = time.Parse(timeLayout, at); err != nil {
		return nil, fmt.Errorf("run %s started_at: %w", id, err)
	}
	res.Duration = time.Duration(durationNS)

	return &res, nil
}
