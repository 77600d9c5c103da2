package main

import (
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"vidpack/internal/config"
	"vidpack/internal/journal"
	"vidpack/internal/logging"
	"vidpack/internal/packager"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// openPackager wires a packager with the configured logger and, when enabled,
// the operation journal. The returned closer releases the journal handle.
func (c *commandContext) openPackager() (*packager.Packager, func(), error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, nil, err
	}

	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return nil, nil, err
	}

	opts := []packager.Option{packager.WithLogger(logger)}
	closer := func() {}
	if cfg.Journal.Enabled {
		store, err := journal.Open(cfg)
		if err != nil {
			return nil, nil, err
		}
		opts = append(opts, packager.WithJournal(store))
		closer = func() { store.Close() }
	}

	return packager.New(cfg, opts...), closer, nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
