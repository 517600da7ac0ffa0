package config

import (
	"fmt"
	"slices"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if err := c.Database.validate(); err != nil {
		return fmt.Errorf("database: %w", err)
	}

	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}

	if c.CORS.AllowCredentials && slices.Contains(c.CORS.AllowedOriginList(), "*") {
		return fmt.Errorf("cors.allow_credentials requires explicit cors.allowed_origins, not *")
	}

	if c.MCP.Enabled && !strings.HasPrefix(c.MCP.Path, "/") {
		return fmt.Errorf("mcp.path must start with / (got %q)", c.MCP.Path)
	}

	if c.Notes.MaxTitleLength <= 0 {
		return fmt.Errorf("notes.max_title_length must be > 0 (got %d)", c.Notes.MaxTitleLength)
	}
	if c.Notes.MaxCategoryNameLength <= 0 {
		return fmt.Errorf("notes.max_category_name_length must be > 0 (got %d)", c.Notes.MaxCategoryNameLength)
	}

	return nil
}

func (d *DatabaseConfig) validate() error {
	if strings.TrimSpace(d.DSN) == "" {
		return fmt.Errorf("dsn is required")
	}
	if d.MaxConns <= 0 {
		return fmt.Errorf("max_conns must be > 0 (got %d)", d.MaxConns)
	}
	if d.MinConns < 0 || d.MinConns > d.MaxConns {
		return fmt.Errorf("min_conns must be in 0..max_conns (got %d)", d.MinConns)
	}
	if d.ConnectAttempts == 0 {
		return fmt.Errorf("connect_attempts must be >= 1")
	}
	return nil
}

func (l *LogConfig) validate() error {
	switch strings.ToLower(strings.TrimSpace(l.Level)) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("level must be one of debug, info, warn, error (got %q)", l.Level)
	}
	switch strings.ToLower(strings.TrimSpace(l.Format)) {
	case "json", "text":
	default:
		return fmt.Errorf("format must be json or text (got %q)", l.Format)
	}
	return nil
}
