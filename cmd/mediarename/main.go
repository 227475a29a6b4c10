// Command mediarename is the CLI entrypoint for the batch media renamer.
//
// It loads configuration, then either lists templates (--list-templates),
// validates a pattern (--validate), or builds and prints a rename plan for
// the given files and directories. Files on disk are never renamed.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/backmassage/mediarename/internal/config"
	"github.com/backmassage/mediarename/internal/display"
	"github.com/backmassage/mediarename/internal/logging"
	"github.com/backmassage/mediarename/internal/pipeline"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "0.1.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Phase 1: Bootstrap. The logger doesn't exist yet, so errors go
	// directly to stderr via fmt.
	cfg := config.DefaultConfig()
	if err := config.ApplyEnv(&cfg, config.DefaultEnvFile); err != nil {
		fmt.Fprintf(os.Stderr, "mediarename: %v\n", err)
		return 1
	}
	if err := config.ParseFlags(&cfg, os.Args[1:], version); err != nil {
		fmt.Fprintf(os.Stderr, "mediarename: %v\n", err)
		return 1
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "mediarename: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mediarename: %v\n", err)
		return 1
	}
	defer log.Close()

	// Phase 2: Logger available; all output goes through log from here on.
	lib, err := pipeline.LoadLibrary(&cfg)
	if err != nil {
		log.Error("%v", err)
		return 1
	}

	if cfg.ListTemplates {
		display.PrintTemplates(os.Stdout, lib, cfg.TemplateName)
		return 0
	}

	if cfg.ValidateOnly {
		tmpl, err := pipeline.ResolveTemplate(&cfg, lib)
		if err != nil {
			log.Error("%v", err)
			return 1
		}
		v := tmpl.Validate()
		display.PrintValidation(os.Stdout, tmpl.Pattern, v)
		if !v.Valid {
			return 1
		}
		return 0
	}

	display.PrintBanner()
	log.Info("=== mediarename v%s (%s) ===", version, commit)
	for _, in := range cfg.Inputs {
		log.Info("In:  %s", in)
	}
	log.Info("")

	// Phase 3: Signal handling. Cancel the context on SIGINT/SIGTERM so
	// the pipeline stops between files.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Phase 4: Run pipeline (discover → metadata → plan → report).
	stats, err := pipeline.Run(ctx, &cfg, log)
	if err != nil {
		log.Error("%v", err)
		return 1
	}
	if stats.Error > 0 {
		return 1
	}
	return 0
}
