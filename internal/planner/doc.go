// Package planner builds rename plans: it renders every file (or every
// selected file) of a collection through a template, writes each proposed
// name back to the collection, and flags targets that cannot be used as-is.
//
//   - Plan, Item, Summary (types.go)
//   - Builder.Build: render pass with memoized results (planner.go, cache.go)
//   - Conflict notes: duplicate targets, unchanged names, illegal names (conflicts.go)
//   - CSV export in the undo-file layout (export.go)
//   - Prometheus counters for renders, cache use and conflicts (metrics.go)
package planner
