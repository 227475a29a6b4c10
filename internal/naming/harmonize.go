package naming

import (
	"strings"

	"github.com/backmassage/mediarename/internal/media"
)

// YearIndex maps a lower-cased TV title to the distinct years seen for it
// across a batch. A show tagged "Show (2019)" in one file and bare "Show"
// in another can then share the year.
type YearIndex map[string][]int

// BuildYearIndex registers the year of every TV entry that has one.
func BuildYearIndex(metas []media.Metadata) YearIndex {
	idx := make(YearIndex)
	for _, m := range metas {
		if m.Type != media.TypeTV || m.Title == "" || m.Year == nil {
			continue
		}
		key := strings.ToLower(m.Title)
		if !containsInt(idx[key], *m.Year) {
			idx[key] = append(idx[key], *m.Year)
		}
	}
	return idx
}

// Harmonize fills a missing year on a TV entry when the index holds exactly
// one year for its title. It reports whether m was changed.
func (idx YearIndex) Harmonize(m *media.Metadata) bool {
	if m.Type != media.TypeTV || m.Year != nil || m.Title == "" {
		return false
	}
	years := idx[strings.ToLower(m.Title)]
	if len(years) != 1 {
		return false
	}
	m.Year = media.Int(years[0])
	return true
}

func containsInt(xs []int, n int) bool {
	for _, x := range xs {
		if x == n {
			return true
		}
	}
	return false
}
