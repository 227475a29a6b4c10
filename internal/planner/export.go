package planner

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var csvHeader = []string{"old_path", "new_path", "old_name", "new_name", "status", "message"}

// WriteCSV writes the plan in the undo-file layout, one row per item.
// The message column joins the render message and any notes.
func WriteCSV(w io.Writer, plan *Plan) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, it := range plan.Items {
		row := []string{
			it.Path,
			it.TargetPath,
			it.OriginalName,
			it.Result.Name,
			string(it.Result.Status),
			itemMessage(it),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportCSV writes the plan to path, creating parent directories.
func ExportCSV(path string, plan *Plan) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("planner: export: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("planner: export: %w", err)
	}
	if err := WriteCSV(f, plan); err != nil {
		f.Close()
		return fmt.Errorf("planner: export %s: %w", path, err)
	}
	return f.Close()
}

func itemMessage(it Item) string {
	parts := make([]string, 0, 1+len(it.Notes))
	if it.Result.Message != "" {
		parts = append(parts, it.Result.Message)
	}
	parts = append(parts, it.Notes...)
	return strings.Join(parts, "; ")
}
