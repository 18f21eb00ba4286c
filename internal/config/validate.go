package config

import (
	"errors"
	"fmt"
	"net"
	"strings"

	"relparse/internal/release"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateParser(); err != nil {
		return err
	}
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateScan(); err != nil {
		return err
	}
	if err := c.validateServer(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateParser() error {
	if _, err := release.ParseKind(c.Parser.DefaultKind); err != nil {
		return fmt.Errorf("parser.default_kind: %w", err)
	}
	if c.Parser.MaxBareSeason <= 0 {
		return errors.New("parser.max_bare_season must be positive")
	}
	if c.Parser.MaxBareEpisode <= 0 {
		return errors.New("parser.max_bare_episode must be positive")
	}
	if c.Parser.MaxEpisodeSpan <= 0 {
		return errors.New("parser.max_episode_span must be positive")
	}
	if c.Parser.MinYear > c.Parser.MaxYear {
		return fmt.Errorf("parser.min_year (%d) must not exceed parser.max_year (%d)", c.Parser.MinYear, c.Parser.MaxYear)
	}
	return nil
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		return errors.New("paths.data_dir must be set")
	}
	if strings.TrimSpace(c.Index.Path) == "" {
		return errors.New("index.path must be set")
	}
	return nil
}

func (c *Config) validateScan() error {
	if c.Scan.Workers <= 0 {
		return errors.New("scan.workers must be positive")
	}
	if c.Scan.Workers > 64 {
		return fmt.Errorf("scan.workers must be at most 64 (got %d)", c.Scan.Workers)
	}
	if len(c.Scan.Extensions) == 0 {
		return errors.New("scan.extensions must list at least one extension")
	}
	return nil
}

func (c *Config) validateServer() error {
	if _, _, err := net.SplitHostPort(c.Server.Bind); err != nil {
		return fmt.Errorf("server.bind: %w", err)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format %q is not supported", c.Logging.Format)
	}
	return nil
}
