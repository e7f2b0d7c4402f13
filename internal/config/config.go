// Package config loads and saves the global aboutliner config file.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"aboutliner/internal/quickfill"
	"aboutliner/internal/textconv"
)

// Environment overrides.
const (
	EnvConfigDir = "ABOUTLINER_CONFIG_DIR"
	EnvFormat    = "ABOUTLINER_FORMAT"
	EnvLogLevel  = "ABOUTLINER_LOG_LEVEL"
)

type Config struct {
	Export    *ExportConfig    `json:"export,omitempty"`
	Quickfill *QuickfillConfig `json:"quickfill,omitempty"`
	TUI       *TUIConfig       `json:"tui,omitempty"`
}

// ExportConfig holds the default conversion toggles. Nil toggles default to true.
type ExportConfig struct {
	IncludeHeaders  *bool `json:"includeHeaders,omitempty"`
	IncludeIDs      *bool `json:"includeIds,omitempty"`
	IncludeSections *bool `json:"includeSections,omitempty"`
	// Format is the default text format for export (e.g. "outline", "tsv").
	Format string `json:"format,omitempty"`
}

type QuickfillConfig struct {
	// CatalogPath points at a YAML catalog that replaces the built-in value sets.
	CatalogPath string `json:"catalogPath,omitempty"`
}

type TUIConfig struct {
	// Style is the glamour style: "auto", "dark", "light" or "notty".
	Style        string `json:"style,omitempty"`
	MaxCellWidth int    `json:"maxCellWidth,omitempty"`
}

func ConfigDir() (string, error) {
	// Tests point this at a temp dir to keep ~/.aboutliner untouched.
	if v := strings.TrimSpace(os.Getenv(EnvConfigDir)); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".aboutliner"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config file. A missing file yields an empty config.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return atomicWriteFile(dir, "config.json.*.tmp", path, append(b, '\n'), 0o644)
}

func atomicWriteFile(dir, tmpPattern, path string, b []byte, perm os.FileMode) error {
	f, err := os.CreateTemp(dir, tmpPattern)
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()
	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	_ = os.Chmod(tmp, perm)
	return os.Rename(tmp, path)
}

// Options returns the configured conversion toggles.
func (c *Config) Options() textconv.Options {
	opts := textconv.DefaultOptions()
	if c == nil || c.Export == nil {
		return opts
	}
	if v := c.Export.IncludeHeaders; v != nil {
		opts.IncludeHeaders = *v
	}
	if v := c.Export.IncludeIDs; v != nil {
		opts.IncludeIDs = *v
	}
	if v := c.Export.IncludeSections; v != nil {
		opts.IncludeSections = *v
	}
	return opts
}

// ExportFormat returns the configured default export format, or "outline".
func (c *Config) ExportFormat() string {
	if c != nil && c.Export != nil && strings.TrimSpace(c.Export.Format) != "" {
		return strings.TrimSpace(c.Export.Format)
	}
	return string(textconv.FormatOutline)
}

// Catalog returns the quickfill catalog: the configured YAML file, or the built-in one.
func (c *Config) Catalog() (quickfill.Catalog, error) {
	if c == nil || c.Quickfill == nil || strings.TrimSpace(c.Quickfill.CatalogPath) == "" {
		return quickfill.DefaultCatalog(), nil
	}
	return quickfill.LoadCatalog(expandHome(strings.TrimSpace(c.Quickfill.CatalogPath)))
}

func (c *Config) TUIStyle() string {
	if c != nil && c.TUI != nil && strings.TrimSpace(c.TUI.Style) != "" {
		return strings.TrimSpace(c.TUI.Style)
	}
	return "auto"
}

func (c *Config) MaxCellWidth() int {
	if c != nil && c.TUI != nil && c.TUI.MaxCellWidth > 0 {
		return c.TUI.MaxCellWidth
	}
	return 32
}

// Keys lists the settable keys, in display order.
var Keys = []string{
	"export.includeHeaders",
	"export.includeIds",
	"export.includeSections",
	"export.format",
	"quickfill.catalogPath",
	"tui.style",
	"tui.maxCellWidth",
}

// Set assigns one dotted key from its string form.
func (c *Config) Set(key, value string) error {
	value = strings.TrimSpace(value)
	boolValue := func() (*bool, error) {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("%s: expected true or false, got %q", key, value)
		}
		return &b, nil
	}
	if strings.HasPrefix(key, "export.") && c.Export == nil {
		c.Export = &ExportConfig{}
	}

	var err error
	switch key {
	case "export.includeHeaders":
		c.Export.IncludeHeaders, err = boolValue()
	case "export.includeIds":
		c.Export.IncludeIDs, err = boolValue()
	case "export.includeSections":
		c.Export.IncludeSections, err = boolValue()
	case "export.format":
		if _, ferr := textconv.ParseFormat(value); ferr != nil {
			return ferr
		}
		c.Export.Format = value
	case "quickfill.catalogPath":
		if c.Quickfill == nil {
			c.Quickfill = &QuickfillConfig{}
		}
		c.Quickfill.CatalogPath = value
	case "tui.style":
		switch value {
		case "auto", "dark", "light", "notty":
		default:
			return fmt.Errorf("tui.style: expected auto, dark, light or notty, got %q", value)
		}
		if c.TUI == nil {
			c.TUI = &TUIConfig{}
		}
		c.TUI.Style = value
	case "tui.maxCellWidth":
		n, perr := strconv.Atoi(value)
		if perr != nil || n < 0 {
			return fmt.Errorf("tui.maxCellWidth: expected a non-negative integer, got %q", value)
		}
		if c.TUI == nil {
			c.TUI = &TUIConfig{}
		}
		c.TUI.MaxCellWidth = n
	default:
		return fmt.Errorf("unknown config key %q (known: %s)", key, strings.Join(Keys, ", "))
	}
	return err
}

func expandHome(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}
	return p
}
