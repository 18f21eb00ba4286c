package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"relparse/internal/release"
)

func TestBatchCommandStdinNDJSON(t *testing.T) {
	env := setupCLITestEnv(t)

	input := "The.Matrix.1999.1080p.BluRay.x264-GROUP\n\n  \nArrow.S02E05.720p.HDTV.x264-KILLERS\n"
	out, stderr, err := runCLI(t, []string{"batch", "--kind", "tv", "-"}, env.configPath, input)
	if err != nil {
		t.Fatalf("batch: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("unexpected line count: got %d want 2 (%q)", len(lines), out)
	}
	var rec release.Release
	if err := json.Unmarshal([]byte(lines[1]), &rec); err != nil {
		t.Fatalf("decode line %q: %v", lines[1], err)
	}
	if rec.Title != "Arrow" {
		t.Fatalf("unexpected title: got %q want %q", rec.Title, "Arrow")
	}
	requireContains(t, stderr, "batch complete")
}

func TestBatchCommandFileTable(t *testing.T) {
	env := setupCLITestEnv(t)

	input := filepath.Join(env.baseDir, "names.txt")
	if err := os.WriteFile(input, []byte("The.Matrix.1999.1080p.BluRay.x264-GROUP\n"), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	out, _, err := runCLI(t, []string{"--format", "table", "batch", input}, env.configPath, "")
	if err != nil {
		t.Fatalf("batch: %v", err)
	}
	requireContains(t, out, "The Matrix")
	requireContains(t, out, "GROUP")
}

func TestBatchCommandPathsReport(t *testing.T) {
	env := setupCLITestEnv(t)

	report := filepath.Join(env.baseDir, "report.json")
	input := "/tv/Arrow (2012)/Season 02/Arrow.S02E05.720p.HDTV.x264-KILLERS.mkv\nlonely.mkv\n"
	out, _, err := runCLI(t, []string{"batch", "--paths", "--report", report}, env.configPath, input)
	if err != nil {
		t.Fatalf("batch: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 1 {
		t.Fatalf("unexpected line count: got %d want 1 (%q)", len(lines), out)
	}
	var info release.PathInfo
	if err := json.Unmarshal([]byte(lines[0]), &info); err != nil {
		t.Fatalf("decode line %q: %v", lines[0], err)
	}
	if info.Directory == nil || info.Directory.Title != "Arrow" {
		t.Fatalf("unexpected directory: %+v", info.Directory)
	}

	data, err := os.ReadFile(report)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	requireContains(t, string(data), "path could not be parsed")
	requireContains(t, string(data), "lonely.mkv")
}
