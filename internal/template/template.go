package template

import (
	"errors"
	"strings"

	"github.com/backmassage/mediarename/internal/media"
)

// ErrUnknownTemplate is returned by [Library.Lookup] when no template has
// the requested name.
var ErrUnknownTemplate = errors.New("unknown template")

// Template is a named naming pattern. Values are never mutated; an edit
// produces a new Template.
type Template struct {
	Name        string `yaml:"name"`
	Pattern     string `yaml:"pattern"`
	Description string `yaml:"description,omitempty"`
}

// Apply renders t against meta for the file originally named originalFilename.
func (t Template) Apply(meta media.Metadata, originalFilename string) Result {
	return Apply(t.Pattern, meta, originalFilename)
}

// Validate checks t's pattern. See [Validate].
func (t Template) Validate() Validation {
	return Validate(t.Pattern)
}

var builtins = []Template{
	{
		Name:        "TV Show Default",
		Pattern:     "[title] ([year]) - S[##]E[##]",
		Description: "Standard TV show format with title, year, season and episode",
	},
	{
		Name:        "Movie Default",
		Pattern:     "[title] ([year])",
		Description: "Standard movie format with title and year",
	},
	{
		Name:        "TV Show Extended",
		Pattern:     "[title] ([year]) - S[##]E[##] - [episode_title]",
		Description: "Extended TV show format including episode title",
	},
}

// Builtins returns the templates that ship by default. The returned slice is
// a copy.
func Builtins() []Template {
	out := make([]Template, len(builtins))
	copy(out, builtins)
	return out
}

func sameName(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
