package library

import (
	"time"

	"relparse/internal/release"
)

// Entry is one indexed media file.
type Entry struct {
	ID         int64             `json:"id"`
	Path       string            `json:"path"`
	ScanID     string            `json:"scan_id"`
	Kind       release.Kind      `json:"kind"`
	Title      string            `json:"title"`
	Year       *int              `json:"year,omitempty"`
	Season     *int              `json:"season,omitempty"`
	Episodes   []int             `json:"episodes,omitempty"`
	Resolution string            `json:"resolution,omitempty"`
	Source     string            `json:"source,omitempty"`
	Group      string            `json:"group,omitempty"`
	Languages  []string          `json:"languages,omitempty"`
	Info       *release.PathInfo `json:"info"`
	IndexedAt  time.Time         `json:"indexed_at"`
}

// Scan records one library walk.
type Scan struct {
	ID         string    `json:"id"`
	Root       string    `json:"root"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at,omitzero"`
	Files      int       `json:"files"`
	Failures   int       `json:"failures"`
}

// Filter narrows List results. Zero fields match everything.
type Filter struct {
	Kind     release.Kind
	Language string
	Year     int
	Season   int
	ScanID   string
	Limit    int
}

// SearchResult pairs an entry with its title similarity to the query.
type SearchResult struct {
	Entry *Entry  `json:"entry"`
	Score float64 `json:"score"`
}

// Stats summarizes index contents.
type Stats struct {
	Entries      int            `json:"entries"`
	Movies       int            `json:"movies"`
	Episodes     int            `json:"episodes"`
	Titles       int            `json:"titles"`
	Scans        int            `json:"scans"`
	LastScan     *Scan          `json:"last_scan,omitempty"`
	ByResolution map[string]int `json:"by_resolution"`
}
