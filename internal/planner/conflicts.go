package planner

import (
	"path/filepath"
	"strings"
)

// Note texts attached to plan items.
const (
	NoteUnchanged  = "unchanged"
	NoteDuplicate  = "conflict: duplicate target name"
	conflictPrefix = "conflict: "
	invalidPrefix  = "invalid: "
)

var reservedNames = map[string]bool{
	"CON": true, "PRN": true, "AUX": true, "NUL": true,
	"COM1": true, "COM2": true, "COM3": true, "COM4": true, "COM5": true, "COM6": true, "COM7": true, "COM8": true, "COM9": true,
	"LPT1": true, "LPT2": true, "LPT3": true, "LPT4": true, "LPT5": true, "LPT6": true, "LPT7": true, "LPT8": true, "LPT9": true,
}

// InvalidNameReason returns why name cannot be used as a file name on
// common filesystems, or "" when it can.
func InvalidNameReason(name string) string {
	trim := strings.TrimSpace(name)
	if trim == "" {
		return "empty name"
	}
	if strings.ContainsAny(trim, `<>:"/\|?*`) {
		return "invalid characters"
	}
	base := strings.TrimSuffix(trim, filepath.Ext(trim))
	if reservedNames[strings.ToUpper(base)] {
		return "reserved filename"
	}
	return ""
}

// markConflicts attaches notes to items in place. Unchanged items are only
// noted; they are not checked as targets. Two changed items aiming at the
// same target path both get NoteDuplicate, and so does a changed item
// aiming at the current path of an unchanged one.
func markConflicts(items []Item) {
	targets := make(map[string]int, len(items))
	for _, it := range items {
		targets[it.TargetPath]++
	}

	for i := range items {
		it := &items[i]
		if !it.Changed() {
			it.Notes = append(it.Notes, NoteUnchanged)
			continue
		}
		if reason := InvalidNameReason(it.Result.Name); reason != "" {
			it.Notes = append(it.Notes, invalidPrefix+reason)
			conflictsTotal.WithLabelValues("invalid").Inc()
			continue
		}
		if targets[it.TargetPath] > 1 {
			it.Notes = append(it.Notes, NoteDuplicate)
			conflictsTotal.WithLabelValues("duplicate").Inc()
		}
	}
}
