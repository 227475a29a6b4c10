// Package naming infers media metadata from release-style filenames.
//
// [Infer] runs an ordered rule table against the file's base name (first
// match wins) and falls back to the cleaned base name as a title. The
// parent directory is used for a show name when the filename carries none
// and for a season hint ("Season 02", "S2"). [YearIndex] lets a batch
// upgrade bare show titles to the single year-tagged variant seen elsewhere
// in the same batch.
package naming
