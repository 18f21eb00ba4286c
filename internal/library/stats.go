package library

import (
	"context"
	"errors"
	"fmt"

	"relparse/internal/release"
)

// Stats counts entries by kind and resolution and reports the latest scan.
func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	ctx = ensureContext(ctx)
	stats := &Stats{ByResolution: make(map[string]int)}

	row := s.db.QueryRowContext(ctx,
		`SELECT COUNT(1),
                COALESCE(SUM(CASE WHEN kind = ? THEN 1 ELSE 0 END), 0),
                COUNT(DISTINCT sort_key)
           FROM entries`,
		string(release.KindMovie),
	)
	if err := row.Scan(&stats.Entries, &stats.Movies, &stats.Titles); err != nil {
		return nil, fmt.Errorf("count entries: %w", err)
	}
	stats.Episodes = stats.Entries - stats.Movies

	rows, err := s.db.QueryContext(ctx, "SELECT resolution, COUNT(1) FROM entries GROUP BY resolution")
	if err != nil {
		return nil, fmt.Errorf("count resolutions: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			resolution string
			count      int
		)
		if err := rows.Scan(&resolution, &count); err != nil {
			return nil, fmt.Errorf("scan resolution count: %w", err)
		}
		if resolution == "" {
			resolution = "unknown"
		}
		stats.ByResolution[resolution] += count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate resolutions: %w", err)
	}

	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(1) FROM scans").Scan(&stats.Scans); err != nil {
		return nil, fmt.Errorf("count scans: %w", err)
	}
	last, err := s.LatestScan(ctx)
	switch {
	case err == nil:
		stats.LastScan = last
	case !errors.Is(err, ErrNotFound):
		return nil, err
	}
	return stats, nil
}
