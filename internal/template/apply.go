package template

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/backmassage/mediarename/internal/media"
)

// Status classifies how usable a rendered name is.
type Status string

const (
	StatusReady   Status = "ready"   // All referenced data was present.
	StatusWarning Status = "warning" // Usable, but some metadata was missing.
	StatusError   Status = "error"   // Rendering failed; Name is the original filename.
)

// Result is the outcome of rendering one file under one pattern. It is
// recomputed on demand and never the source of truth.
type Result struct {
	Name    string
	Status  Status
	Message string
}

const (
	fallbackUnknown = "Unknown"

	msgMissingTitleYear     = "Missing metadata - title or year not found"
	msgMissingSeasonEpisode = "Missing season/episode information"
)

// reEpisodeShape detects a season-episode pair such as S01E[##] or
// S[##]E[#]. Episode placeholders are only substituted when present.
var reEpisodeShape = regexp.MustCompile(`S(?:[0-9]+|\[##?\])E\[##?\]`)

// substitute is a variable so tests can force the failure path.
var substitute = substitutePlaceholders

// Apply renders pattern with meta and appends the extension of
// originalFilename. Missing metadata yields StatusWarning, never an error.
// If substitution fails unexpectedly the result carries the untouched
// originalFilename with StatusError.
//
// Season and episode placeholders are expanded before [title] and [year],
// and title and year values are inserted verbatim: a title such as
// "Show [##]" keeps its brackets in the rendered name.
func Apply(pattern string, meta media.Metadata, originalFilename string) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			res = Result{
				Name:    originalFilename,
				Status:  StatusError,
				Message: fmt.Sprintf("Template processing failed: %v", r),
			}
		}
	}()

	name := substitute(pattern, meta)
	if ext := Extension(originalFilename); ext != "" {
		name += "." + ext
	}

	status, msg := classify(pattern, meta)
	return Result{Name: name, Status: status, Message: msg}
}

// Extension returns the text after the last dot in filename, or "" when
// filename has no dot.
func Extension(filename string) string {
	i := strings.LastIndexByte(filename, '.')
	if i < 0 {
		return ""
	}
	return filename[i+1:]
}

func substitutePlaceholders(pattern string, meta media.Metadata) string {
	out := pattern

	// Episode goes first so E[##] is still bracketed when the season pass
	// consumes every remaining [##] and [#].
	if meta.Episode != nil && reEpisodeShape.MatchString(pattern) {
		ep := *meta.Episode
		out = strings.ReplaceAll(out, "E[##]", "E"+pad2(ep))
		out = strings.ReplaceAll(out, "E[#]", "E"+strconv.Itoa(ep))
	}
	if meta.Season != nil {
		s := *meta.Season
		out = strings.ReplaceAll(out, "[##]", pad2(s))
		out = strings.ReplaceAll(out, "[#]", strconv.Itoa(s))
	}

	title := meta.Title
	if title == "" {
		title = fallbackUnknown
	}
	year := fallbackUnknown
	if meta.Year != nil {
		year = strconv.Itoa(*meta.Year)
	}
	out = strings.NewReplacer("[title]", title, "[year]", year).Replace(out)

	out = strings.ReplaceAll(out, "[episode_title]", "")
	return strings.Join(strings.Fields(out), " ")
}

// classify looks at the pattern string and the metadata, not at what was
// actually substituted. The season/episode check overrides the title/year one.
func classify(pattern string, meta media.Metadata) (Status, string) {
	status, msg := StatusReady, ""
	if !meta.HasTitle() || !meta.HasYear() {
		status, msg = StatusWarning, msgMissingTitleYear
	}
	if strings.Contains(pattern, "[##]") && (!meta.HasSeason() || !meta.HasEpisode()) {
		status, msg = StatusWarning, msgMissingSeasonEpisode
	}
	return status, msg
}

func pad2(n int) string { return fmt.Sprintf("%02d", n) }
