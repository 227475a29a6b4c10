package template

import (
	"fmt"

	"github.com/backmassage/mediarename/internal/media"
)

// FormatMetadataDisplay returns a one-line human summary of meta.
//
//	tv:     "01|05, Show, Pilot"  (?? for a missing season or episode)
//	movie:  "Saga, Movie" or "Movie"
//	other:  the title
func FormatMetadataDisplay(meta media.Metadata) string {
	switch meta.Type {
	case media.TypeTV:
		return fmt.Sprintf("%s|%s, %s, %s",
			padOrUnknown(meta.Season),
			padOrUnknown(meta.Episode),
			orDefault(meta.Title, "Unknown Show"),
			orDefault(meta.EpisodeTitle, "Unknown Episode"))
	case media.TypeMovie:
		movie := orDefault(meta.Title, "Unknown Movie")
		if meta.SeriesName != "" {
			return meta.SeriesName + ", " + movie
		}
		return movie
	default:
		return orDefault(meta.Title, fallbackUnknown)
	}
}

func padOrUnknown(n *int) string {
	if n == nil {
		return "??"
	}
	return pad2(*n)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
