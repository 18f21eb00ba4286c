package main

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"relparse/internal/config"
	"relparse/internal/library"
	"relparse/internal/logging"
	"relparse/internal/release"
)

type commandContext struct {
	configFlag *string
	formatFlag *string
	jsonFlag   *bool
	verbose    *bool

	configOnce   sync.Once
	config       *config.Config
	configPath   string
	configExists bool
	configErr    error
}

func newCommandContext(configFlag, formatFlag *string, verbose *bool) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		formatFlag: formatFlag,
		verbose:    verbose,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, resolved, exists, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = resolved
		c.configExists = exists
	})
	return c.config, c.configErr
}

// logger builds a logger writing to the command's stderr.
func (c *commandContext) logger(cmd *cobra.Command) (*slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	opts := logging.OptionsFromConfig(cfg)
	opts.Output = cmd.ErrOrStderr()
	if c.verbose != nil && *c.verbose {
		opts.Level = "debug"
	}
	return logging.New(opts)
}

// openIndex opens the configured index. Callers must close it.
func (c *commandContext) openIndex() (*library.Store, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	store, err := library.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("open index: %w", err)
	}
	return store, nil
}

// parser resolves a --kind flag value; empty uses the configured default.
func (c *commandContext) parser(kindFlag string) (*release.Parser, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	var kind release.Kind
	if strings.TrimSpace(kindFlag) != "" {
		kind, err = release.ParseKind(kindFlag)
		if err != nil {
			return nil, err
		}
	}
	return cfg.NewParser(kind), nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
