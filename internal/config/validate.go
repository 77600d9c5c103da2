package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if c.Artifact.Width <= 0 || c.Artifact.Height <= 0 {
		return fmt.Errorf("artifact.width and artifact.height must be positive (got %dx%d)",
			c.Artifact.Width, c.Artifact.Height)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	if c.Paths.ProjectsDir == "" {
		return errors.New("paths.projects_dir must be set")
	}
	return nil
}
