package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/backmassage/mediarename/internal/planner"
	"github.com/backmassage/mediarename/internal/template"
	"github.com/backmassage/mediarename/internal/term"
)

const maxNameWidth = 50

// PrintPlan writes the plan as an aligned table: current name, proposed
// name, status and notes. Status cells are colored when colors are on.
func PrintPlan(w io.Writer, plan *planner.Plan) {
	if len(plan.Items) == 0 {
		fmt.Fprintln(w, "  (no files)")
		return
	}

	oldW, newW, stW := len("File"), len("Proposed"), len("Status")
	for _, it := range plan.Items {
		oldW = max(oldW, len(it.OriginalName))
		newW = max(newW, len(it.Result.Name))
		stW = max(stW, len(it.Result.Status))
	}
	oldW = min(oldW, maxNameWidth)
	newW = min(newW, maxNameWidth)

	header := fmt.Sprintf("  %-*s  %-*s  %-*s  %s", oldW, "File", newW, "Proposed", stW, "Status", "Notes")
	fmt.Fprintln(w, header)
	fmt.Fprintln(w, "  "+strings.Repeat("─", len(header)-2))

	for _, it := range plan.Items {
		fmt.Fprintf(w, "  %-*s  %-*s  %s  %s\n",
			oldW, truncate(it.OriginalName, oldW),
			newW, truncate(it.Result.Name, newW),
			statusCell(it.Result.Status, stW),
			notes(it),
		)
	}
	fmt.Fprintln(w)
}

// statusCell pads the plain status first, then colors it so escape bytes
// do not count toward the column width.
func statusCell(s template.Status, width int) string {
	return term.Paint(term.StatusColor(s), fmt.Sprintf("%-*s", width, s))
}

func notes(it planner.Item) string {
	parts := make([]string, 0, 1+len(it.Notes))
	if it.Result.Message != "" {
		parts = append(parts, it.Result.Message)
	}
	for _, n := range it.Notes {
		if it.Conflicted() && n != planner.NoteUnchanged {
			n = term.Paint(term.Orange, n)
		}
		parts = append(parts, n)
	}
	return strings.Join(parts, "; ")
}

func truncate(s string, width int) string {
	if len(s) <= width {
		return s
	}
	return s[:width-1] + "…"
}
