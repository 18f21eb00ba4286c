package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"relparse/internal/config"
	"relparse/internal/release"
)

func TestLoadDefaultConfigExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantData := filepath.Join(tempHome, ".local", "share", "relparse")
	if cfg.Paths.DataDir != wantData {
		t.Fatalf("unexpected data dir: got %q want %q", cfg.Paths.DataDir, wantData)
	}
	wantIndex := filepath.Join(wantData, "library.db")
	if cfg.Index.Path != wantIndex {
		t.Fatalf("unexpected index path: got %q want %q", cfg.Index.Path, wantIndex)
	}
	if cfg.Server.Bind != "127.0.0.1:7488" {
		t.Fatalf("unexpected bind: %q", cfg.Server.Bind)
	}
	if cfg.ReleaseKind() != release.KindMovie {
		t.Fatalf("unexpected default kind: %q", cfg.ReleaseKind())
	}
	if cfg.Heuristics() != release.DefaultHeuristics() {
		t.Fatalf("unexpected heuristics: %+v", cfg.Heuristics())
	}
	if cfg.Scan.Workers != 4 {
		t.Fatalf("unexpected scan workers: %d", cfg.Scan.Workers)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadCustomConfigNormalizesValues(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	custom := config.Default()
	custom.Parser.DefaultKind = " TV "
	custom.Parser.MaxBareSeason = 40
	custom.Parser.MaxEpisodeSpan = 0
	custom.Paths.DataDir = "~/relparse-data"
	custom.Paths.LogDir = ""
	custom.Scan.Extensions = []string{"MKV", ".mp4", "mkv", " "}
	custom.Scan.Workers = 0
	custom.Logging.Format = "JSON"
	custom.Logging.Level = "DEBUG"

	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	configPath := filepath.Join(tempHome, "custom.toml")
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != configPath {
		t.Fatalf("unexpected resolution: %q exists=%v", resolved, exists)
	}
	if cfg.ReleaseKind() != release.KindTV {
		t.Fatalf("unexpected kind: %q", cfg.Parser.DefaultKind)
	}
	if cfg.Parser.MaxBareSeason != 40 {
		t.Fatalf("unexpected max bare season: %d", cfg.Parser.MaxBareSeason)
	}
	if cfg.Parser.MaxEpisodeSpan != release.DefaultMaxEpisodeSpan {
		t.Fatalf("unexpected max episode span: %d", cfg.Parser.MaxEpisodeSpan)
	}
	wantData := filepath.Join(tempHome, "relparse-data")
	if cfg.Paths.DataDir != wantData {
		t.Fatalf("unexpected data dir: got %q want %q", cfg.Paths.DataDir, wantData)
	}
	if cfg.Paths.LogDir != filepath.Join(wantData, "logs") {
		t.Fatalf("unexpected log dir: %q", cfg.Paths.LogDir)
	}
	if got := strings.Join(cfg.Scan.Extensions, ","); got != ".mkv,.mp4" {
		t.Fatalf("unexpected extensions: %q", got)
	}
	if cfg.Scan.Workers != 4 {
		t.Fatalf("unexpected workers: %d", cfg.Scan.Workers)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("unexpected logging: %+v", cfg.Logging)
	}
}

func TestLoadAppliesEnvironmentOverrides(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	dataDir := filepath.Join(tempHome, "state")
	t.Setenv("RELPARSE_DATA_DIR", dataDir)
	t.Setenv("RELPARSE_BIND", "0.0.0.0:9000")
	t.Setenv("RELPARSE_LOG_LEVEL", "warn")
	t.Setenv("RELPARSE_KIND", "series")

	cfg, _, _, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Paths.DataDir != dataDir {
		t.Fatalf("unexpected data dir: got %q want %q", cfg.Paths.DataDir, dataDir)
	}
	if cfg.Index.Path != filepath.Join(dataDir, "library.db") {
		t.Fatalf("unexpected index path: %q", cfg.Index.Path)
	}
	if cfg.Server.Bind != "0.0.0.0:9000" {
		t.Fatalf("unexpected bind: %q", cfg.Server.Bind)
	}
	if cfg.Logging.Level != "warn" {
		t.Fatalf("unexpected level: %q", cfg.Logging.Level)
	}
	if cfg.ReleaseKind() != release.KindSeries {
		t.Fatalf("unexpected kind: %q", cfg.ReleaseKind())
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
		want   string
	}{
		{"kind", func(c *config.Config) { c.Parser.DefaultKind = "podcast" }, "parser.default_kind"},
		{"years", func(c *config.Config) {
			c.Parser.MinYear = 2000
			c.Parser.MaxYear = 1990
		}, "parser.min_year"},
		{"workers", func(c *config.Config) { c.Scan.Workers = 100 }, "scan.workers"},
		{"bind", func(c *config.Config) { c.Server.Bind = "localhost" }, "server.bind"},
		{"level", func(c *config.Config) { c.Logging.Level = "verbose" }, "logging.level"},
		{"extensions", func(c *config.Config) { c.Scan.Extensions = nil }, "scan.extensions"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Index.Path = "/tmp/library.db"
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("unexpected error: got %q want substring %q", err.Error(), tt.want)
			}
		})
	}
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	configPath := filepath.Join(tempHome, "broken.toml")
	if err := os.WriteFile(configPath, []byte("[parser\nmax_year = "), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(configPath); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestCreateSampleLoads(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	path := filepath.Join(tempHome, "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample returned error: %v", err)
	}
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load sample returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected sample to exist")
	}
	if cfg.Server.Bind != "127.0.0.1:7488" {
		t.Fatalf("unexpected bind: %q", cfg.Server.Bind)
	}
}

func TestEnsureDirectories(t *testing.T) {
	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Index.Path = filepath.Join(base, "db", "library.db")
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories returned error: %v", err)
	}
	for _, dir := range []string{cfg.Paths.DataDir, cfg.Paths.LogDir, filepath.Dir(cfg.Index.Path)} {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			t.Fatalf("expected directory %q: %v", dir, err)
		}
	}
}

func TestNewParserUsesConfiguredBounds(t *testing.T) {
	cfg := config.Default()
	cfg.Parser.MaxBareSeason = 30
	p := cfg.NewParser(release.KindTV)
	if p.Heuristics().MaxBareSeason != 30 {
		t.Fatalf("unexpected bound: %d", p.Heuristics().MaxBareSeason)
	}
	rec := p.Parse("Show 25 - 03 720p")
	if rec.Season == nil || *rec.Season != 25 {
		t.Fatalf("unexpected season: %v", rec.Season)
	}
	if cfg.NewParser("").Kind() != release.KindMovie {
		t.Fatal("expected default kind for empty hint")
	}
}
