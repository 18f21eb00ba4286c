package main

import (
	"sort"
	"strings"

	"relparse/internal/release"
)

// releaseRows lists the populated fields of rec in accessor order, followed
// by languages and flags.
func releaseRows(rec *release.Release) [][]string {
	rows := make([][]string, 0, 16)
	for _, field := range release.Fields() {
		value, ok := rec.Get(field)
		if !ok || value == "" {
			continue
		}
		rows = append(rows, []string{field, value})
	}
	if len(rec.Languages) > 0 {
		rows = append(rows, []string{"languages", formatLanguages(rec.Languages)})
	}
	if len(rec.Flags) > 0 {
		rows = append(rows, []string{"flags", strings.Join(rec.Flags, ", ")})
	}
	return rows
}

func renderRelease(rec *release.Release) string {
	return renderFields(releaseRows(rec))
}

func formatLanguages(languages map[string]string) string {
	codes := make([]string, 0, len(languages))
	for code := range languages {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	parts := make([]string, len(codes))
	for i, code := range codes {
		parts[i] = code + " (" + languages[code] + ")"
	}
	return strings.Join(parts, ", ")
}
