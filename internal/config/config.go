package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"relparse/internal/release"
)

//go:embed sample_config.toml
var sampleConfig string

// Parser holds the default release kind and the numeric bounds used by the
// guess-based extractors.
type Parser struct {
	DefaultKind    string `toml:"default_kind"`
	MaxBareSeason  int    `toml:"max_bare_season"`
	MaxBareEpisode int    `toml:"max_bare_episode"`
	MaxEpisodeSpan int    `toml:"max_episode_span"`
	MinYear        int    `toml:"min_year"`
	MaxYear        int    `toml:"max_year"`
}

// Paths contains state and log directories.
type Paths struct {
	DataDir string `toml:"data_dir"`
	LogDir  string `toml:"log_dir"`
}

// Index locates the SQLite library index.
type Index struct {
	Path string `toml:"path"`
}

// Scan controls library walks.
type Scan struct {
	Workers    int      `toml:"workers"`
	Extensions []string `toml:"extensions"`
}

// Server configures the HTTP API.
type Server struct {
	Bind string `toml:"bind"`
	// Token, when set, is required as a bearer token on every API request.
	Token string `toml:"token"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format     string `toml:"format"`
	Level      string `toml:"level"`
	File       bool   `toml:"file"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
	MaxAgeDays int    `toml:"max_age_days"`
}

// Config encapsulates all configuration values for relparse.
type Config struct {
	Parser  Parser  `toml:"parser"`
	Paths   Paths   `toml:"paths"`
	Index   Index   `toml:"index"`
	Scan    Scan    `toml:"scan"`
	Server  Server  `toml:"server"`
	Logging Logging `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath(defaultConfigPath)
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and environment overrides applied.
// The bool reports whether a file was found.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := expandPath(defaultConfigPath)
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs(projectConfigName)
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the data and log directories and the parent of
// the index database.
func (c *Config) EnsureDirectories() error {
	dirs := []string{c.Paths.DataDir, c.Paths.LogDir}
	if c.Index.Path != "" {
		dirs = append(dirs, filepath.Dir(c.Index.Path))
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// ReleaseKind returns the parsed default kind.
func (c *Config) ReleaseKind() release.Kind {
	kind, err := release.ParseKind(c.Parser.DefaultKind)
	if err != nil {
		return release.KindMovie
	}
	return kind
}

// Heuristics converts the parser section into release bounds.
func (c *Config) Heuristics() release.Heuristics {
	return release.Heuristics{
		MaxBareSeason:  c.Parser.MaxBareSeason,
		MaxBareEpisode: c.Parser.MaxBareEpisode,
		MaxEpisodeSpan: c.Parser.MaxEpisodeSpan,
		MinYear:        c.Parser.MinYear,
		MaxYear:        c.Parser.MaxYear,
	}
}

// NewParser builds a parser for kind with the configured bounds. An empty
// kind uses the configured default.
func (c *Config) NewParser(kind release.Kind) *release.Parser {
	if kind == "" {
		kind = c.ReleaseKind()
	}
	return release.New(kind, release.WithHeuristics(c.Heuristics()))
}

// LogFilePath is where the rotating log file lives when file logging is on.
func (c *Config) LogFilePath() string {
	return filepath.Join(c.Paths.LogDir, "relparse.log")
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

// Encode renders cfg as TOML.
func (c *Config) Encode() ([]byte, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return data, nil
}
