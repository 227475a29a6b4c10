package display

import (
	"fmt"
	"io"

	"github.com/backmassage/mediarename/internal/template"
	"github.com/backmassage/mediarename/internal/term"
)

// PrintTemplates lists every template in lib with its pattern, marking the
// one named current.
func PrintTemplates(w io.Writer, lib *template.Library, current string) {
	for _, t := range lib.Templates() {
		marker := " "
		if t.Name == current {
			marker = term.Paint(term.Green, "*")
		}
		fmt.Fprintf(w, "%s %s\n", marker, term.Paint(term.Cyan, t.Name))
		fmt.Fprintf(w, "    %s\n", t.Pattern)
		if t.Description != "" {
			fmt.Fprintf(w, "    %s\n", t.Description)
		}
		if v := t.Validate(); !v.Valid {
			for _, e := range v.Errors {
				fmt.Fprintf(w, "    %s\n", term.Paint(term.Yellow, e))
			}
		}
	}
}

// PrintValidation reports the outcome of validating pattern.
func PrintValidation(w io.Writer, pattern string, v template.Validation) {
	fmt.Fprintf(w, "Pattern: %s\n", pattern)
	fmt.Fprintf(w, "Placeholders: %v\n", template.Parse(pattern))
	if v.Valid {
		fmt.Fprintln(w, term.Paint(term.Green, "Valid"))
		return
	}
	for _, e := range v.Errors {
		fmt.Fprintln(w, term.Paint(term.StatusColor(template.StatusError), e))
	}
}
