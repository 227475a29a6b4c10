package naming

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/backmassage/mediarename/internal/media"
)

// rule is one entry of the ordered inference table.
type rule struct {
	name    string
	pattern *regexp.Regexp
	extract func(base string, loc []int, ctx dirContext) media.Metadata
}

var (
	reSxxExx    = regexp.MustCompile(`(?i)(?:^|[^[:alnum:]])s([0-9]{1,2})e([0-9]{1,3})(?:v[0-9]+)?(?:[^[:alnum:]]|$)`)
	reNxNN      = regexp.MustCompile(`(?:^|[^0-9])([0-9]{1,2})[xX]([0-9]{1,3})(?:[^0-9]|$)`)
	reAnimeDash = regexp.MustCompile(`^(?:\[[^\]]+\]\s*)?(.+?)\s+-\s+([0-9]{1,3})(?:v[0-9]+)?(?:\s|\[|$)`)
	reMovieYear = regexp.MustCompile(`^(.+?)[\s._]\(?((?:19|20)[0-9]{2})\)?(?:[\s._\[(]|$)`)
)

// rules is evaluated in order; first match wins.
var rules = []rule{
	{"SxxExx", reSxxExx, extractEpisodeToken},
	{"NxNN", reNxNN, extractEpisodeToken},
	{"Anime-dash", reAnimeDash, extractAnimeDash},
	{"Movie-year", reMovieYear, extractMovieYear},
}

// extractEpisodeToken handles "Show.S01E05.Title" and "Show.1x05.Title":
// show before the token, episode title after it.
func extractEpisodeToken(base string, loc []int, ctx dirContext) media.Metadata {
	season := atoi(base[loc[2]:loc[3]])
	episode := atoi(base[loc[4]:loc[5]])

	show, year := splitYear(tidy(cleanName(base[:loc[0]])))
	if show == "" {
		show, year = splitYear(ctx.show)
	}
	return media.Metadata{
		Type:         media.TypeTV,
		Title:        show,
		Year:         year,
		Season:       media.Int(season),
		Episode:      media.Int(episode),
		EpisodeTitle: tidy(cleanName(base[loc[1]:])),
	}
}

// extractAnimeDash handles "[Group] Show - 12 [1080p]". There is no season
// token, so the directory hint or season 1 applies.
func extractAnimeDash(base string, loc []int, ctx dirContext) media.Metadata {
	show, year := splitYear(tidy(base[loc[2]:loc[3]]))
	season := 1
	if ctx.hasSeason {
		season = ctx.season
	}
	return media.Metadata{
		Type:    media.TypeTV,
		Title:   show,
		Year:    year,
		Season:  media.Int(season),
		Episode: media.Int(atoi(base[loc[4]:loc[5]])),
	}
}

func extractMovieYear(base string, loc []int, _ dirContext) media.Metadata {
	return media.Metadata{
		Type:  media.TypeMovie,
		Title: tidy(cleanName(base[loc[2]:loc[3]])),
		Year:  media.Int(atoi(base[loc[4]:loc[5]])),
	}
}

func atoi(s string) int {
	n, _ := strconv.Atoi(strings.TrimSpace(s))
	return n
}
