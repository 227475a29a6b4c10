// Package media defines the per-file semantic attributes used when building
// target filenames. Every field is optional; absence is an expected state.
package media

import (
	"strconv"
	"strings"
)

// Type classifies a file as a movie, a TV episode, or neither.
type Type string

const (
	TypeMovie   Type = "movie"
	TypeTV      Type = "tv"
	TypeUnknown Type = "unknown"
)

// ParseType maps a user-supplied string to a Type. Anything unrecognized
// (including the empty string) is TypeUnknown.
func ParseType(s string) Type {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "movie":
		return TypeMovie
	case "tv", "show", "series":
		return TypeTV
	default:
		return TypeUnknown
	}
}

// Metadata holds the attributes substituted into a naming pattern.
// Empty strings and nil pointers mean "not known".
type Metadata struct {
	Title        string `yaml:"title,omitempty" json:"title,omitempty"`
	Year         *int   `yaml:"year,omitempty" json:"year,omitempty"`
	Season       *int   `yaml:"season,omitempty" json:"season,omitempty"`
	Episode      *int   `yaml:"episode,omitempty" json:"episode,omitempty"`
	EpisodeTitle string `yaml:"episode_title,omitempty" json:"episodeTitle,omitempty"`
	SeriesName   string `yaml:"series_name,omitempty" json:"seriesName,omitempty"`
	Type         Type   `yaml:"type,omitempty" json:"type,omitempty"`
}

// Int returns a pointer to n, for filling optional numeric fields.
func Int(n int) *int { return &n }

// HasTitle reports whether a title is known.
func (m Metadata) HasTitle() bool { return m.Title != "" }

// HasYear reports whether a year is known.
func (m Metadata) HasYear() bool { return m.Year != nil }

// HasSeason reports whether a season number is known.
func (m Metadata) HasSeason() bool { return m.Season != nil }

// HasEpisode reports whether an episode number is known.
func (m Metadata) HasEpisode() bool { return m.Episode != nil }

// IsZero reports whether no attribute at all is set.
func (m Metadata) IsZero() bool {
	return m.Title == "" && m.Year == nil && m.Season == nil && m.Episode == nil &&
		m.EpisodeTitle == "" && m.SeriesName == "" && (m.Type == "" || m.Type == TypeUnknown)
}

// Clone returns a deep copy so callers never share the optional pointers.
func (m Metadata) Clone() Metadata {
	out := m
	if m.Year != nil {
		out.Year = Int(*m.Year)
	}
	if m.Season != nil {
		out.Season = Int(*m.Season)
	}
	if m.Episode != nil {
		out.Episode = Int(*m.Episode)
	}
	return out
}

// Fingerprint returns a stable string identifying the metadata by value.
// Two values with equal fields yield equal fingerprints regardless of
// pointer identity.
func (m Metadata) Fingerprint() string {
	var b strings.Builder
	b.WriteString(string(m.Type))
	b.WriteByte(0)
	b.WriteString(m.Title)
	b.WriteByte(0)
	writeOptInt(&b, m.Year)
	writeOptInt(&b, m.Season)
	writeOptInt(&b, m.Episode)
	b.WriteString(m.EpisodeTitle)
	b.WriteByte(0)
	b.WriteString(m.SeriesName)
	return b.String()
}

func writeOptInt(b *strings.Builder, p *int) {
	if p == nil {
		b.WriteString("-")
	} else {
		b.WriteString(strconv.Itoa(*p))
	}
	b.WriteByte(0)
}
