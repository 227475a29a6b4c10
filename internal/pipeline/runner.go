package pipeline

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/backmassage/mediarename/internal/collection"
	"github.com/backmassage/mediarename/internal/config"
	"github.com/backmassage/mediarename/internal/display"
	"github.com/backmassage/mediarename/internal/logging"
	"github.com/backmassage/mediarename/internal/media"
	"github.com/backmassage/mediarename/internal/naming"
	"github.com/backmassage/mediarename/internal/planner"
	"github.com/backmassage/mediarename/internal/template"
)

// Run is the top-level batch entry point. It discovers files, fills the
// collection, attaches metadata, builds the rename plan for the configured
// template, prints it, and writes the optional CSV and metrics outputs.
// Nothing on disk is renamed.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger) (RunStats, error) {
	var stats RunStats

	lib, err := LoadLibrary(cfg)
	if err != nil {
		return stats, err
	}
	logLibraryProblems(log, lib)

	tmpl, err := ResolveTemplate(cfg, lib)
	if err != nil {
		return stats, err
	}
	if v := tmpl.Validate(); !v.Valid {
		for _, e := range v.Errors {
			log.Warn("Template %q: %s", tmpl.Name, e)
		}
	}

	files, err := Discover(cfg.Inputs, cfg.Recursive)
	if err != nil {
		return stats, fmt.Errorf("pipeline: discover: %w", err)
	}
	stats.Discovered = len(files)
	if len(files) == 0 {
		log.Warn("No media files found")
		return stats, nil
	}
	log.Info("Found %d files", len(files))

	store := collection.NewStore()
	store.AddFiles(fileRecords(log, files)...)

	if err := attachMetadata(ctx, cfg, log, store, &stats); err != nil {
		return stats, err
	}

	selectedOnly := cfg.Scope == config.ScopeSelected
	if selectedOnly {
		stats.Selected = SelectByGlobs(store, cfg.SelectGlobs)
		log.Info("Selected %d of %d files", stats.Selected, store.Len())
		if stats.Selected == 0 {
			log.Warn("No files match --select")
			return stats, nil
		}
	}

	builder, err := planner.NewBuilder(cfg.RenderCacheSize)
	if err != nil {
		return stats, fmt.Errorf("pipeline: %w", err)
	}
	plan := builder.Build(store, tmpl, selectedOnly)
	fillPlanStats(&stats, plan)

	log.Info("Plan %s: template %q (%s)", plan.ID, tmpl.Name, tmpl.Pattern)
	fmt.Println()
	display.PrintPlan(os.Stdout, plan)
	logPlanItems(log, plan)

	if cfg.CSVPath != "" {
		if err := planner.ExportCSV(cfg.CSVPath, plan); err != nil {
			return stats, err
		}
		log.Success("Plan written to %s", cfg.CSVPath)
	}
	if cfg.MetricsFile != "" {
		if err := prometheus.WriteToTextfile(cfg.MetricsFile, prometheus.DefaultGatherer); err != nil {
			return stats, fmt.Errorf("pipeline: write metrics: %w", err)
		}
		log.Debug("Metrics written to %s", cfg.MetricsFile)
	}

	logSummary(log, &stats)
	return stats, nil
}

// fileRecords stats each path and builds its record. Paths that vanished
// since discovery are logged and skipped.
func fileRecords(log *logging.Logger, files []string) []collection.FileRecord {
	recs := make([]collection.FileRecord, 0, len(files))
	for _, path := range files {
		fi, err := os.Stat(path)
		if err != nil {
			log.Warn("Skip (stat failed): %v", err)
			continue
		}
		recs = append(recs, collection.NewFileRecord(path, fi))
	}
	return recs
}

// attachMetadata applies the manifest, then infers metadata for records
// that still have none, then shares show years across inferred records.
func attachMetadata(ctx context.Context, cfg *config.Config, log *logging.Logger, store *collection.Store, stats *RunStats) error {
	if cfg.MetadataFile != "" {
		m, err := LoadManifest(cfg.MetadataFile)
		if err != nil {
			return err
		}
		applied, missing := m.Apply(store)
		stats.FromManifest = applied
		for _, p := range missing {
			log.Warn("Manifest entry not in collection: %s", p)
		}
		log.Info("Metadata from manifest: %d files", applied)
	}

	if !cfg.InferMetadata {
		return nil
	}

	var inferred []string
	for _, r := range store.Records() {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if !r.Metadata.IsZero() {
			continue
		}
		base := r.BaseName()
		meta := naming.Infer(base, r.Directory)
		if err := store.SetMetadata(r.Path, meta); err != nil {
			continue
		}
		_ = store.Annotate(r.Path, AnnotationSource, SourceInferred)
		if rule := naming.RuleName(base); rule != "" {
			_ = store.Annotate(r.Path, AnnotationRule, rule)
			log.Debug("Inferred %s via %s: %s", base, rule, template.FormatMetadataDisplay(meta))
		} else {
			log.Debug("Inferred %s from bare name: %q", base, meta.Title)
		}
		inferred = append(inferred, r.Path)
	}
	stats.Inferred = len(inferred)

	if !cfg.Harmonize || len(inferred) == 0 {
		return nil
	}

	recs := store.Records()
	metas := make([]media.Metadata, len(recs))
	for i, r := range recs {
		metas[i] = r.Metadata
	}
	idx := naming.BuildYearIndex(metas)
	for _, path := range inferred {
		r, ok := store.Get(path)
		if !ok {
			continue
		}
		meta := r.Metadata
		if !idx.Harmonize(&meta) {
			continue
		}
		if err := store.SetMetadata(path, meta); err == nil {
			stats.Harmonized++
			log.Debug("Harmonized year for %s: %d", r.BaseName(), *meta.Year)
		}
	}
	return nil
}

func fillPlanStats(stats *RunStats, plan *planner.Plan) {
	sum := plan.Summary()
	stats.PlanID = plan.ID.String()
	stats.Planned = sum.Total
	stats.Ready = sum.Ready
	stats.Warning = sum.Warning
	stats.Error = sum.Error
	stats.Unchanged = sum.Unchanged
	stats.Conflicts = sum.Conflicts
	for _, it := range plan.Items {
		if it.Changed() && !it.Conflicted() && it.Result.Status != template.StatusError {
			stats.Renamable++
		}
	}
}

// --- Logging helpers ---

func logLibraryProblems(log *logging.Logger, lib *template.Library) {
	problems := lib.Problems()
	names := make([]string, 0, len(problems))
	for name := range problems {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		for _, e := range problems[name] {
			log.Warn("Template %q: %s", name, e)
		}
	}
}

// logPlanItems writes one line per proposed rename and per conflict.
func logPlanItems(log *logging.Logger, plan *planner.Plan) {
	for _, it := range plan.Items {
		switch {
		case it.Conflicted():
			for _, n := range it.Notes {
				log.Conflict("%s -> %s (%s)", it.OriginalName, it.Result.Name, n)
			}
		case it.Changed():
			log.Rename("%s -> %s", it.Path, it.TargetPath)
		}
	}
}

func logSummary(log *logging.Logger, stats *RunStats) {
	log.Info("==============================")
	log.Info("Planned %d files: %d ready, %d warning, %d error", stats.Planned, stats.Ready, stats.Warning, stats.Error)
	log.Info("  Unchanged: %d", stats.Unchanged)
	if stats.Conflicts > 0 {
		log.Warn("  Conflicts: %d", stats.Conflicts)
	}
	if stats.Renamable > 0 {
		log.Success("  Would rename: %d", stats.Renamable)
	} else {
		log.Info("  Would rename: 0")
	}
}
