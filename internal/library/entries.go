package library

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"relparse/internal/language"
	"relparse/internal/release"
	"relparse/internal/textutil"
)

const entryColumns = "id, path, scan_id, kind, title, year, season, episodes, resolution, source, release_group, languages, record_json, indexed_at"

// NewEntry derives the indexed columns from a parsed path. The directory
// title and year win over the file's; the season directory wins over the
// file's season.
func NewEntry(scanID string, info *release.PathInfo) (*Entry, error) {
	if info == nil || info.File == nil {
		return nil, errors.New("path info is empty")
	}
	file := info.File
	entry := &Entry{
		Path:       info.FullPath,
		ScanID:     scanID,
		Kind:       file.Type,
		Title:      file.Title,
		Year:       file.Year,
		Season:     file.Season,
		Episodes:   file.Episodes,
		Resolution: file.Resolution,
		Source:     file.Source,
		Group:      file.Group,
		Languages:  languageCodes(file.Languages),
		Info:       info,
	}
	if dir := info.Directory; dir != nil {
		if dir.Title != "" {
			entry.Title = dir.Title
		}
		if dir.Year != nil {
			entry.Year = dir.Year
		}
	}
	if info.Season != nil {
		entry.Season = info.Season
	}
	return entry, nil
}

func languageCodes(languages map[string]string) []string {
	if len(languages) == 0 {
		return nil
	}
	codes := make([]string, 0, len(languages))
	seen := make(map[string]struct{}, len(languages))
	for key := range languages {
		code := language.ToISO2(key)
		if code == "" {
			code = strings.ToLower(key)
		}
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Upsert stores entry keyed by path, replacing any previous row for the same
// path. It fills entry.ID and entry.IndexedAt.
func (s *Store) Upsert(ctx context.Context, entry *Entry) error {
	if entry == nil || strings.TrimSpace(entry.Path) == "" {
		return errors.New("entry path is required")
	}
	ctx = ensureContext(ctx)
	record, err := json.Marshal(entry.Info)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	now := time.Now().UTC()

	var id int64
	err = retryOnBusy(ctx, func() error {
		return s.db.QueryRowContext(ctx,
			`INSERT INTO entries (
                path, scan_id, kind, title, sort_key, year, season, episodes,
                resolution, source, release_group, languages, record_json, indexed_at
            ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
            ON CONFLICT(path) DO UPDATE SET
                scan_id = excluded.scan_id,
                kind = excluded.kind,
                title = excluded.title,
                sort_key = excluded.sort_key,
                year = excluded.year,
                season = excluded.season,
                episodes = excluded.episodes,
                resolution = excluded.resolution,
                source = excluded.source,
                release_group = excluded.release_group,
                languages = excluded.languages,
                record_json = excluded.record_json,
                indexed_at = excluded.indexed_at
            RETURNING id`,
			entry.Path,
			entry.ScanID,
			string(entry.Kind),
			entry.Title,
			textutil.SortKey(entry.Title),
			nullableInt(entry.Year),
			nullableInt(entry.Season),
			encodeInts(entry.Episodes),
			entry.Resolution,
			entry.Source,
			entry.Group,
			encodeCodes(entry.Languages),
			string(record),
			now.Format(time.RFC3339Nano),
		).Scan(&id)
	})
	if err != nil {
		return fmt.Errorf("upsert entry %q: %w", entry.Path, err)
	}
	entry.ID = id
	entry.IndexedAt = now
	return nil
}

// Get returns the entry with id or ErrNotFound.
func (s *Store) Get(ctx context.Context, id int64) (*Entry, error) {
	row := s.db.QueryRowContext(ensureContext(ctx), "SELECT "+entryColumns+" FROM entries WHERE id = ?", id)
	return scanOne(row)
}

// GetByPath returns the entry stored for path or ErrNotFound.
func (s *Store) GetByPath(ctx context.Context, path string) (*Entry, error) {
	row := s.db.QueryRowContext(ensureContext(ctx), "SELECT "+entryColumns+" FROM entries WHERE path = ?", path)
	return scanOne(row)
}

// List returns entries matching filter ordered by title, season and path.
func (s *Store) List(ctx context.Context, filter Filter) ([]*Entry, error) {
	var (
		clauses []string
		args    []any
	)
	if filter.Kind != "" {
		clauses = append(clauses, "kind = ?")
		args = append(args, string(filter.Kind))
	}
	if code := normalizeLanguage(filter.Language); code != "" {
		clauses = append(clauses, "languages LIKE ?")
		args = append(args, "%,"+code+",%")
	}
	if filter.Year > 0 {
		clauses = append(clauses, "year = ?")
		args = append(args, filter.Year)
	}
	if filter.Season > 0 {
		clauses = append(clauses, "season = ?")
		args = append(args, filter.Season)
	}
	if filter.ScanID != "" {
		clauses = append(clauses, "scan_id = ?")
		args = append(args, filter.ScanID)
	}

	query := "SELECT " + entryColumns + " FROM entries"
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY sort_key, season, path"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}
	return s.queryEntries(ctx, query, args...)
}

// Prune deletes entries under root that the scan identified by keepScanID
// did not touch, returning how many were removed.
func (s *Store) Prune(ctx context.Context, root, keepScanID string) (int64, error) {
	prefix := strings.TrimRight(root, "/") + "/"
	res, err := s.execWithRetry(ctx,
		"DELETE FROM entries WHERE substr(path, 1, ?) = ? AND scan_id != ?",
		utf8.RuneCountInString(prefix), prefix, keepScanID,
	)
	if err != nil {
		return 0, fmt.Errorf("prune entries: %w", err)
	}
	return res.RowsAffected()
}

func normalizeLanguage(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	if code := language.ToISO2(value); code != "" {
		return code
	}
	return strings.ToLower(value)
}

func (s *Store) queryEntries(ctx context.Context, query string, args ...any) ([]*Entry, error) {
	rows, err := s.db.QueryContext(ensureContext(ctx), query, args...)
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entries: %w", err)
	}
	return entries, nil
}

func scanOne(row *sql.Row) (*Entry, error) {
	entry, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return entry, err
}

func scanEntry(scanner interface{ Scan(dest ...any) error }) (*Entry, error) {
	var (
		entry      Entry
		kind       string
		year       sql.NullInt64
		season     sql.NullInt64
		episodes   string
		languages  string
		record     string
		indexedRaw string
	)
	if err := scanner.Scan(
		&entry.ID,
		&entry.Path,
		&entry.ScanID,
		&kind,
		&entry.Title,
		&year,
		&season,
		&episodes,
		&entry.Resolution,
		&entry.Source,
		&entry.Group,
		&languages,
		&record,
		&indexedRaw,
	); err != nil {
		return nil, err
	}
	entry.Kind = release.Kind(kind)
	entry.Year = intFromNull(year)
	entry.Season = intFromNull(season)
	entry.Episodes = decodeInts(episodes)
	entry.Languages = decodeCodes(languages)
	if record != "" {
		var info release.PathInfo
		if err := json.Unmarshal([]byte(record), &info); err != nil {
			return nil, fmt.Errorf("decode record for %q: %w", entry.Path, err)
		}
		entry.Info = &info
	}
	if ts, err := time.Parse(time.RFC3339Nano, indexedRaw); err == nil {
		entry.IndexedAt = ts
	}
	return &entry, nil
}

func nullableInt(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

func intFromNull(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}

func encodeInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

func decodeInts(raw string) []int {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]int, 0, len(parts))
	for _, part := range parts {
		if n, err := strconv.Atoi(part); err == nil {
			out = append(out, n)
		}
	}
	return out
}

// encodeCodes wraps the list in delimiters so a LIKE on ",xx," matches whole codes.
func encodeCodes(codes []string) string {
	if len(codes) == 0 {
		return ""
	}
	return "," + strings.Join(codes, ",") + ","
}

func decodeCodes(raw string) []string {
	raw = strings.Trim(raw, ",")
	if raw == "" {
		return nil
	}
	return strings.Split(raw, ",")
}
