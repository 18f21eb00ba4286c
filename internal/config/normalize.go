package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"relparse/internal/release"
)

func (c *Config) normalize() error {
	c.applyEnv()
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeParser()
	c.normalizeScan()
	c.normalizeServer()
	c.normalizeLogging()
	return nil
}

// applyEnv lets RELPARSE_* variables override file values.
func (c *Config) applyEnv() {
	if value, ok := lookupEnv("RELPARSE_DATA_DIR"); ok {
		c.Paths.DataDir = value
	}
	if value, ok := lookupEnv("RELPARSE_LOG_DIR"); ok {
		c.Paths.LogDir = value
	}
	if value, ok := lookupEnv("RELPARSE_INDEX_PATH"); ok {
		c.Index.Path = value
	}
	if value, ok := lookupEnv("RELPARSE_BIND"); ok {
		c.Server.Bind = value
	}
	if value, ok := lookupEnv("RELPARSE_API_TOKEN"); ok {
		c.Server.Token = value
	}
	if value, ok := lookupEnv("RELPARSE_LOG_LEVEL"); ok {
		c.Logging.Level = value
	}
	if value, ok := lookupEnv("RELPARSE_LOG_FORMAT"); ok {
		c.Logging.Format = value
	}
	if value, ok := lookupEnv("RELPARSE_KIND"); ok {
		c.Parser.DefaultKind = value
	}
}

func lookupEnv(key string) (string, bool) {
	value, ok := os.LookupEnv(key)
	if !ok {
		return "", false
	}
	value = strings.TrimSpace(value)
	return value, value != ""
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = filepath.Join(c.Paths.DataDir, "logs")
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if strings.TrimSpace(c.Index.Path) == "" {
		c.Index.Path = filepath.Join(c.Paths.DataDir, defaultIndexFile)
	}
	if c.Index.Path, err = expandPath(c.Index.Path); err != nil {
		return fmt.Errorf("index.path: %w", err)
	}
	return nil
}

func (c *Config) normalizeParser() {
	c.Parser.DefaultKind = strings.ToLower(strings.TrimSpace(c.Parser.DefaultKind))
	if c.Parser.DefaultKind == "" {
		c.Parser.DefaultKind = string(release.KindMovie)
	}
	def := Default().Parser
	if c.Parser.MaxBareSeason <= 0 {
		c.Parser.MaxBareSeason = def.MaxBareSeason
	}
	if c.Parser.MaxBareEpisode <= 0 {
		c.Parser.MaxBareEpisode = def.MaxBareEpisode
	}
	if c.Parser.MaxEpisodeSpan <= 0 {
		c.Parser.MaxEpisodeSpan = def.MaxEpisodeSpan
	}
	if c.Parser.MinYear <= 0 {
		c.Parser.MinYear = def.MinYear
	}
	if c.Parser.MaxYear <= 0 {
		c.Parser.MaxYear = def.MaxYear
	}
}

func (c *Config) normalizeScan() {
	if c.Scan.Workers <= 0 {
		c.Scan.Workers = defaultScanWorkers
	}
	exts := make([]string, 0, len(c.Scan.Extensions))
	seen := make(map[string]struct{}, len(c.Scan.Extensions))
	for _, ext := range c.Scan.Extensions {
		normalized := strings.ToLower(strings.TrimSpace(ext))
		if normalized == "" {
			continue
		}
		if !strings.HasPrefix(normalized, ".") {
			normalized = "." + normalized
		}
		if _, exists := seen[normalized]; exists {
			continue
		}
		seen[normalized] = struct{}{}
		exts = append(exts, normalized)
	}
	if len(exts) == 0 {
		exts = append(exts, defaultScanExtensions...)
	}
	c.Scan.Extensions = exts
}

func (c *Config) normalizeServer() {
	c.Server.Bind = strings.TrimSpace(c.Server.Bind)
	c.Server.Token = strings.TrimSpace(c.Server.Token)
	if c.Server.Bind == "" {
		c.Server.Bind = defaultServerBind
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.Logging.MaxSizeMB <= 0 {
		c.Logging.MaxSizeMB = defaultLogMaxSizeMB
	}
	if c.Logging.MaxBackups < 0 {
		c.Logging.MaxBackups = 0
	}
	if c.Logging.MaxAgeDays < 0 {
		c.Logging.MaxAgeDays = 0
	}
}
