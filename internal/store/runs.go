package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// Run is one recorded program execution.
type Run struct {
	Seq         int64  `json:"seq"`
	ID          string `json:"id"`
	ProgramHash string `json:"program_hash"`
	Source      string `json:"source"`
	Backend     string `json:"backend"`
	Optimized   bool   `json:"optimized"`
	Atoms       int    `json:"atoms"`
	InputBytes  int64  `json:"input_bytes"`
	OutputBytes int64  `json:"output_bytes"`
	Steps       int64  `json:"steps"`
	ErrorKind   string `json:"error_kind,omitempty"` // "" on success, otherwise engine.Kind of the failure
}

// Filter narrows ListRuns and CountRuns. Zero fields match everything.
type Filter struct {
	ProgramHash string
	Backend     string
	Failed      bool // only runs with a non-empty error kind
	Limit       int  // most recent N runs; 0 = all
}

// RecordRun inserts r and returns it with Seq assigned.
// If r.ID is empty the store's IDGenerator supplies one.
func (s *Store) RecordRun(ctx context.Context, r Run) (Run, error) {
	if r.ID == "" {
		r.ID = s.ids.Generate()
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO runs
		(id, program_hash, source, backend, optimized, atoms, input_bytes, output_bytes, steps, error_kind)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		r.ID,
		r.ProgramHash,
		r.Source,
		r.Backend,
		r.Optimized,
		r.Atoms,
		r.InputBytes,
		r.OutputBytes,
		r.Steps,
		r.ErrorKind,
	)
	if err != nil {
		return Run{}, fmt.Errorf("record run: %w", err)
	}

	seq, err := res.LastInsertId()
	if err != nil {
		return Run{}, fmt.Errorf("record run: %w", err)
	}
	r.Seq = seq
	return r, nil
}

// ListRuns returns matching runs ordered by seq ASC, id ASC COLLATE BINARY.
// With a Limit, the most recent Limit runs are returned, still oldest first.
//
// Returns an empty slice (not nil) if nothing matches.
func (s *Store) ListRuns(ctx context.Context, f Filter) ([]Run, error) {
	where, args := f.where()

	query := `
		SELECT seq, id, program_hash, source, backend, optimized, atoms,
		       input_bytes, output_bytes, steps, error_kind
		FROM runs` + where + `
		ORDER BY seq ASC, id COLLATE BINARY ASC`
	if f.Limit > 0 {
		query = `
		SELECT * FROM (
			SELECT seq, id, program_hash, source, backend, optimized, atoms,
			       input_bytes, output_bytes, steps, error_kind
			FROM runs` + where + `
			ORDER BY seq DESC
			LIMIT ?
		)
		ORDER BY seq ASC, id COLLATE BINARY ASC`
		args = append(args, f.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	runs := []Run{}
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}

	return runs, nil
}

// CountRuns returns the number of runs matching f. Limit is ignored.
func (s *Store) CountRuns(ctx context.Context, f Filter) (int64, error) {
	where, args := f.where()

	var n int64
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM runs"+where, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count runs: %w", err)
	}
	return n, nil
}

// ReadRun retrieves a single run by ID.
// Returns sql.ErrNoRows if not found.
func (s *Store) ReadRun(ctx context.Context, id string) (Run, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT seq, id, program_hash, source, backend, optimized, atoms,
		       input_bytes, output_bytes, steps, error_kind
		FROM runs
		WHERE id = ?
	`, id)

	r, err := scanRun(row)
	if err != nil {
		return Run{}, err
	}
	return r, nil
}

func (f Filter) where() (string, []any) {
	var (
		conds []string
		args  []any
	)
	if f.ProgramHash != "" {
		conds = append(conds, "program_hash = ?")
		args = append(args, f.ProgramHash)
	}
	if f.Backend != "" {
		conds = append(conds, "backend = ?")
		args = append(args, f.Backend)
	}
	if f.Failed {
		conds = append(conds, "error_kind != ''")
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (Run, error) {
	var r Run
	err := sc.Scan(
		&r.Seq,
		&r.ID,
		&r.ProgramHash,
		&r.Source,
		&r.Backend,
		&r.Optimized,
		&r.Atoms,
		&r.InputBytes,
		&r.OutputBytes,
		&r.Steps,
		&r.ErrorKind,
	)
	if err == sql.ErrNoRows {
		return Run{}, err
	}
	if err != nil {
		return Run{}, fmt.Errorf("scan run: %w", err)
	}
	return r, nil
}
