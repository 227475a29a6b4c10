// Package config holds runtime configuration: defaults, .env and environment
// overrides, CLI flag parsing, and validation.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Scope selects which files a plan covers.
type Scope string

const (
	ScopeAll      Scope = "all"      // Every file in the collection (default).
	ScopeSelected Scope = "selected" // Only files picked with --select.
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// DefaultTemplateName is the built-in template used when neither --template
// nor --pattern is given.
const DefaultTemplateName = "TV Show Default"

// Config holds all runtime settings. It is populated by [DefaultConfig],
// then [ApplyEnv], then [ParseFlags], and passed by pointer to the packages
// that need it.
type Config struct {
	// Inputs are files or directories (positional args).
	Inputs []string

	// Template selection. Pattern, when set, wins over TemplateName.
	TemplateName  string // Default: "TV Show Default".
	Pattern       string
	TemplatesFile string // Optional YAML file of user templates.

	// Metadata sources.
	MetadataFile  string // Optional YAML manifest of per-file metadata.
	InferMetadata bool   // Default: true. Cleared by --no-infer.
	Harmonize     bool   // Default: true. Share show years across the batch.

	// Collection and selection.
	Recursive   bool
	Scope       Scope    // Default: "all".
	SelectGlobs []string // Base-name globs selecting files.

	// Outputs.
	CSVPath     string // Optional plan export.
	MetricsFile string // Optional Prometheus textfile.

	// Modes.
	ListTemplates bool
	ValidateOnly  bool

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string

	// Fixed tuning.
	RenderCacheSize int // Fixed: 4096 entries.
}

// DefaultConfig returns a Config with every default applied.
func DefaultConfig() Config {
	return Config{
		TemplateName:    DefaultTemplateName,
		InferMetadata:   true,
		Harmonize:       true,
		Scope:           ScopeAll,
		ColorMode:       ColorAuto,
		RenderCacheSize: 4096,
	}
}

// NormalizeDirArg strips trailing slashes from a path argument.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks enum fields and glob syntax. Unless only listing
// templates, at least one input is required.
func (c *Config) Validate() error {
	switch c.Scope {
	case ScopeAll, ScopeSelected:
		// valid
	default:
		return errors.New("invalid scope (use 'all' or 'selected')")
	}

	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	for _, g := range c.SelectGlobs {
		if _, err := filepath.Match(g, ""); err != nil {
			return fmt.Errorf("invalid --select glob %q: %w", g, err)
		}
	}
	if c.Scope == ScopeSelected && len(c.SelectGlobs) == 0 {
		return errors.New("scope 'selected' needs at least one --select glob")
	}

	if strings.TrimSpace(c.Pattern) == "" && strings.TrimSpace(c.TemplateName) == "" {
		return errors.New("need a --template name or a --pattern")
	}
	if c.RenderCacheSize <= 0 {
		return errors.New("render cache size must be positive")
	}

	if c.ListTemplates || c.ValidateOnly {
		return nil
	}
	if len(c.Inputs) == 0 {
		return errors.New("need at least one file or directory")
	}
	return nil
}
