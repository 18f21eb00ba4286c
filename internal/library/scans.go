package library

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const scanColumns = "id, root, started_at, finished_at, files, failures"

// BeginScan records the start of a walk over root and returns it with a
// fresh identifier.
func (s *Store) BeginScan(ctx context.Context, root string) (*Scan, error) {
	scan := &Scan{
		ID:        uuid.NewString(),
		Root:      root,
		StartedAt: time.Now().UTC(),
	}
	if _, err := s.execWithRetry(ctx,
		"INSERT INTO scans (id, root, started_at) VALUES (?, ?, ?)",
		scan.ID, scan.Root, scan.StartedAt.Format(time.RFC3339Nano),
	); err != nil {
		return nil, fmt.Errorf("record scan: %w", err)
	}
	return scan, nil
}

// FinishScan stamps the finish time and stores the file and failure counts.
func (s *Store) FinishScan(ctx context.Context, scan *Scan) error {
	if scan == nil {
		return errors.New("scan is nil")
	}
	scan.FinishedAt = time.Now().UTC()
	res, err := s.execWithRetry(ctx,
		"UPDATE scans SET finished_at = ?, files = ?, failures = ? WHERE id = ?",
		scan.FinishedAt.Format(time.RFC3339Nano), scan.Files, scan.Failures, scan.ID,
	)
	if err != nil {
		return fmt.Errorf("finish scan: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("finish scan %s: %w", scan.ID, ErrNotFound)
	}
	return nil
}

// GetScan returns the scan with id or ErrNotFound.
func (s *Store) GetScan(ctx context.Context, id string) (*Scan, error) {
	row := s.db.QueryRowContext(ensureContext(ctx), "SELECT "+scanColumns+" FROM scans WHERE id = ?", id)
	return scanScan(row)
}

// LatestScan returns the most recently started scan or ErrNotFound.
func (s *Store) LatestScan(ctx context.Context) (*Scan, error) {
	row := s.db.QueryRowContext(ensureContext(ctx), "SELECT "+scanColumns+" FROM scans ORDER BY started_at DESC LIMIT 1")
	return scanScan(row)
}

func scanScan(row *sql.Row) (*Scan, error) {
	var (
		scan        Scan
		startedRaw  string
		finishedRaw sql.NullString
	)
	if err := row.Scan(&scan.ID, &scan.Root, &startedRaw, &finishedRaw, &scan.Files, &scan.Failures); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if ts, err := time.Parse(time.RFC3339Nano, startedRaw); err == nil {
		scan.StartedAt = ts
	}
	if finishedRaw.Valid {
		if ts, err := time.Parse(time.RFC3339Nano, finishedRaw.String); err == nil {
			scan.FinishedAt = ts
		}
	}
	return &scan, nil
}
