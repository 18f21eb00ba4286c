package main

import (
	"encoding/json"
	"strings"
	"testing"

	"relparse/internal/release"
)

func TestParseCommandJSON(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"parse", "--kind", "tv", "Arrow.S02E05.720p.HDTV.x264-KILLERS"}, env.configPath, "")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var rec release.Release
	if err := json.Unmarshal([]byte(out), &rec); err != nil {
		t.Fatalf("decode output %q: %v", out, err)
	}
	if rec.Title != "Arrow" {
		t.Fatalf("unexpected title: got %q want %q", rec.Title, "Arrow")
	}
	if rec.Season == nil || *rec.Season != 2 || rec.Episode == nil || *rec.Episode != 5 {
		t.Fatalf("unexpected numbering: season %v episode %v", rec.Season, rec.Episode)
	}
	if rec.Type != release.KindTV {
		t.Fatalf("unexpected type: got %q want %q", rec.Type, release.KindTV)
	}
}

func TestParseCommandMultipleNamesReturnsArray(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"--json", "parse",
		"The.Matrix.1999.1080p.BluRay.x264-GROUP",
		"Arrow.S02E05.720p.HDTV.x264-KILLERS",
	}, env.configPath, "")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var recs []release.Release
	if err := json.Unmarshal([]byte(out), &recs); err != nil {
		t.Fatalf("decode output %q: %v", out, err)
	}
	if len(recs) != 2 {
		t.Fatalf("unexpected record count: got %d want 2", len(recs))
	}
	if recs[0].Title != "The Matrix" {
		t.Fatalf("unexpected title: got %q want %q", recs[0].Title, "The Matrix")
	}
	if recs[0].Type != release.KindMovie {
		t.Fatalf("unexpected default type: got %q want %q", recs[0].Type, release.KindMovie)
	}
}

func TestParseCommandField(t *testing.T) {
	env := setupCLITestEnv(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "title",
			args: []string{"--format", "table", "parse", "-f", "title", "The.Matrix.1999.1080p.BluRay.x264-GROUP"},
			want: "The Matrix\n",
		},
		{
			name: "resolution",
			args: []string{"--format", "table", "parse", "-f", "resolution", "The.Matrix.1999.1080p.BluRay.x264-GROUP"},
			want: "1080p\n",
		},
		{
			name: "absent episode",
			args: []string{"--format", "table", "parse", "-f", "episode", "The.Matrix.1999.1080p.BluRay.x264-GROUP"},
			want: "\n",
		},
		{
			name: "piped output stays raw",
			args: []string{"parse", "-f", "year", "The.Matrix.1999.1080p.BluRay.x264-GROUP", "Arrow.S02E05.720p.HDTV.x264-KILLERS"},
			want: "1999\n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := runCLI(t, tt.args, env.configPath, "")
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if out != tt.want {
				t.Fatalf("unexpected output: got %q want %q", out, tt.want)
			}
		})
	}
}

func TestParseCommandFieldJSONReportsAbsence(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"--json", "parse", "--field", "year", "Some.Show.720p-GRP"}, env.configPath, "")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var got fieldValue
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode output %q: %v", out, err)
	}
	if got.Present {
		t.Fatalf("expected year to be absent, got %q", got.Value)
	}
	if got.Field != "year" {
		t.Fatalf("unexpected field: got %q want %q", got.Field, "year")
	}
}

func TestParseCommandRejectsBadInput(t *testing.T) {
	env := setupCLITestEnv(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "unknown field", args: []string{"parse", "--field", "bogus", "x"}, want: "unknown field"},
		{name: "unknown kind", args: []string{"parse", "--kind", "music", "x"}, want: "unknown release kind"},
		{name: "bad format", args: []string{"--format", "xml", "parse", "x"}, want: "unsupported --format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := runCLI(t, tt.args, env.configPath, "")
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("unexpected error: got %q want substring %q", err.Error(), tt.want)
			}
		})
	}
}

func TestParseCommandTable(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"--format", "table", "parse", "The.Matrix.1999.1080p.BluRay.x264-GROUP"}, env.configPath, "")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	requireContains(t, out, "The Matrix")
	requireContains(t, out, "resolution")
	requireContains(t, out, "1999")
	if strings.Contains(out, "episode_title") {
		t.Fatalf("expected empty fields to be omitted, got %q", out)
	}
}
