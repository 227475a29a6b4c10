package config

// This file implements CLI flag parsing and help text.
// Negated flags (e.g. --no-infer) are applied after Parse so Config defaults hold unless set.

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
)

// ParseFlags parses args (without the program name) into cfg. On --help or
// --version it prints and exits. On error it returns non-nil.
func ParseFlags(cfg *Config, args []string, version string) error {
	fs := flag.NewFlagSet("mediarename", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var negated negatedFlags

	defineTemplateFlags(fs, cfg)
	defineCollectionFlags(fs, cfg, &negated)
	defineOutputFlags(fs, cfg)
	defineDisplayFlags(fs, cfg, &negated)
	defineUtilityFlags(fs, &negated)

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			printUsage(version)
			os.Exit(0)
		}
		return err
	}

	applyNegatedFlags(cfg, &negated)

	if negated.showHelp {
		printUsage(version)
		os.Exit(0)
	}
	if negated.showVersion {
		fmt.Fprintln(os.Stdout, "mediarename v"+version)
		os.Exit(0)
	}

	cfg.Inputs = cfg.Inputs[:0]
	for _, a := range fs.Args() {
		cfg.Inputs = append(cfg.Inputs, NormalizeDirArg(a))
	}
	return nil
}

// negatedFlags holds boolean flags that are applied after Parse.
type negatedFlags struct {
	noInfer     bool
	noHarmonize bool
	forceColor  bool
	noColor     bool
	showVersion bool
	showHelp    bool
}

// defineTemplateFlags registers -t/--template, --pattern, --templates, --list-templates, --validate.
func defineTemplateFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.TemplateName, "template", cfg.TemplateName, "Template name")
	fs.StringVar(&cfg.TemplateName, "t", cfg.TemplateName, "Same as --template")
	fs.StringVar(&cfg.Pattern, "pattern", cfg.Pattern, "Naming pattern (overrides --template)")
	fs.StringVar(&cfg.TemplatesFile, "templates", cfg.TemplatesFile, "YAML file of user templates")
	fs.BoolVar(&cfg.ListTemplates, "list-templates", false, "List available templates and exit")
	fs.BoolVar(&cfg.ValidateOnly, "validate", false, "Validate the chosen pattern and exit")
}

// defineCollectionFlags registers --metadata, --no-infer, --no-harmonize, -r, --scope, --select.
func defineCollectionFlags(fs *flag.FlagSet, cfg *Config, n *negatedFlags) {
	fs.StringVar(&cfg.MetadataFile, "metadata", cfg.MetadataFile, "YAML manifest of per-file metadata")
	fs.BoolVar(&n.noInfer, "no-infer", false, "Do not infer metadata from filenames")
	fs.BoolVar(&n.noHarmonize, "no-harmonize", false, "Do not share show years across files")
	fs.BoolVar(&cfg.Recursive, "recursive", false, "Walk directories recursively")
	fs.BoolVar(&cfg.Recursive, "r", false, "Same as --recursive")
	fs.Var(&scopeValue{&cfg.Scope}, "scope", "Plan scope: all | selected")
	fs.Var(&globsValue{&cfg.SelectGlobs}, "select", "Select files whose base name matches glob (repeatable)")
}

// defineOutputFlags registers --csv and --metrics-file.
func defineOutputFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.CSVPath, "csv", "", "Write the rename plan as CSV")
	fs.StringVar(&cfg.MetricsFile, "metrics-file", "", "Write Prometheus metrics textfile")
}

// defineDisplayFlags registers --color, --no-color, verbose, --log.
func defineDisplayFlags(fs *flag.FlagSet, cfg *Config, n *negatedFlags) {
	fs.BoolVar(&n.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&n.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "v", false, "Same as --verbose")
	fs.StringVar(&cfg.LogFile, "log", cfg.LogFile, "Append logs to file")
	fs.StringVar(&cfg.LogFile, "l", cfg.LogFile, "Same as --log")
}

// defineUtilityFlags registers --version and --help (exit after printing).
func defineUtilityFlags(fs *flag.FlagSet, n *negatedFlags) {
	fs.BoolVar(&n.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&n.showVersion, "V", false, "Same as --version")
	fs.BoolVar(&n.showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&n.showHelp, "h", false, "Same as --help")
}

// applyNegatedFlags copies negated flag values into cfg.
func applyNegatedFlags(cfg *Config, n *negatedFlags) {
	if n.noInfer {
		cfg.InferMetadata = false
	}
	if n.noHarmonize {
		cfg.Harmonize = false
	}
	if n.noColor {
		cfg.ColorMode = ColorNever
	} else if n.forceColor {
		cfg.ColorMode = ColorAlways
	}
	if len(cfg.SelectGlobs) > 0 && cfg.Scope == ScopeAll {
		cfg.Scope = ScopeSelected
	}
}

// printUsage writes the help text to stderr. Column-aligned for readability.
func printUsage(version string) {
	const col1 = 30
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "mediarename v" + version + " - batch media file renamer"},
		{"", ""},
		{"  mediarename [OPTIONS] <file|dir>...", ""},
		{"", ""},
		{"Templates", ""},
		{"  -t, --template <name>", "Template name (default: " + DefaultTemplateName + ")"},
		{"  --pattern <pattern>", "Naming pattern, e.g. \"[title] ([year])\""},
		{"  --templates <file.yaml>", "Load user templates"},
		{"  --list-templates", "List templates and exit"},
		{"  --validate", "Validate the pattern and exit"},
		{"", ""},
		{"Files & metadata", ""},
		{"  -r, --recursive", "Walk directories recursively"},
		{"  --metadata <file.yaml>", "Per-file metadata manifest"},
		{"  --no-infer", "Do not infer metadata from filenames"},
		{"  --no-harmonize", "Do not share show years across files"},
		{"  --select <glob>", "Select files by base name (repeatable)"},
		{"  --scope <all|selected>", "Files covered by the plan (default: all)"},
		{"", ""},
		{"Output", ""},
		{"  --csv <path>", "Write the rename plan as CSV"},
		{"  --metrics-file <path>", "Write Prometheus metrics textfile"},
		{"", ""},
		{"Display", ""},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output"},
		{"  -l, --log <path>", "Append logs to file"},
		{"", ""},
		{"Utility", ""},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(os.Stderr)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(os.Stderr, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(os.Stderr, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(os.Stderr, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}

// flag.Value adapters for enum and repeatable flags.

type scopeValue struct{ p *Scope }

func (s *scopeValue) String() string {
	if s.p == nil {
		return ""
	}
	return string(*s.p)
}

func (s *scopeValue) Set(v string) error {
	switch strings.ToLower(v) {
	case "all":
		*s.p = ScopeAll
	case "selected":
		*s.p = ScopeSelected
	default:
		return fmt.Errorf("invalid scope %q (use 'all' or 'selected')", v)
	}
	return nil
}

type globsValue struct{ p *[]string }

func (g *globsValue) String() string {
	if g.p == nil {
		return ""
	}
	return strings.Join(*g.p, ",")
}

func (g *globsValue) Set(v string) error {
	*g.p = append(*g.p, v)
	return nil
}
