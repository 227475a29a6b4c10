// Package pipeline drives one batch: discover files, load them into a
// collection, attach metadata from a manifest or from the file names,
// select, build the rename plan, and report or export it.
//
// Types:
//   - RunStats: counters for one run (stats.go)
//   - Manifest: per-file metadata loaded from YAML (manifest.go)
//
// Functions:
//   - Run(ctx, cfg, log) → RunStats, error (runner.go)
//   - Discover(inputs, recursive) → []string (discover.go)
//   - ResolveTemplate(cfg) → Template, *Library (templates.go)
//   - SelectByGlobs(store, globs) (select.go)
package pipeline
