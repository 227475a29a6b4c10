package naming

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var sepReplacer = strings.NewReplacer(".", " ", "_", " ")

func sepsToSpaces(s string) string { return sepReplacer.Replace(s) }

// cleanName turns separators into spaces and trims dangling dashes.
func cleanName(s string) string {
	s = sepsToSpaces(s)
	s = strings.Trim(s, " -")
	return strings.TrimSpace(s)
}

// reReleaseTags matches the first scene/release tag and everything after it.
var reReleaseTags = regexp.MustCompile(
	`(?i)(^|[\s._\-])(` +
		`480p|576p|720p|1080p|2160p|4K|UHD|` +
		`WEB-DL|WEBRip|WEB|BluRay|BDRip|BRRip|DVDRip|HDTV|` +
		`x264|x265|HEVC|AVC|H\.?264|H\.?265|` +
		`AAC|AC3|DTS|TrueHD|FLAC|EAC3|DDP?5\.1|Atmos|` +
		`10bit|HDR|HDR10|DV|` +
		`MULTI|REMUX|PROPER|REPACK|INTERNAL|` +
		`NF|AMZN|DSNP|HMAX|ATVP` +
		`)([\s._\-]|$)`)

func stripReleaseTags(s string) string {
	loc := reReleaseTags.FindStringIndex(s)
	if loc == nil {
		return s
	}
	return strings.TrimSpace(s[:loc[0]])
}

var reBrackets = regexp.MustCompile(`\[[^\]]*\]`)

func stripBrackets(s string) string {
	return strings.TrimSpace(reBrackets.ReplaceAllString(s, ""))
}

// titleCase upper-cases the first letter of each space-, dash- or
// underscore-separated word and leaves the rest alone.
func titleCase(s string) string {
	prev := ' '
	return strings.Map(func(r rune) rune {
		start := prev == ' ' || prev == '-' || prev == '_'
		prev = r
		if start && unicode.IsLetter(r) {
			return unicode.ToUpper(r)
		}
		return r
	}, s)
}

// tidy is the cleanup every extracted title goes through.
func tidy(s string) string {
	s = stripReleaseTags(s)
	s = stripBrackets(s)
	s = strings.Join(strings.Fields(s), " ")
	return titleCase(strings.Trim(s, " -"))
}

var reYearSuffix = regexp.MustCompile(`^(.+?)\s*\(?\b(19[0-9]{2}|20[0-9]{2})\)?$`)

// splitYear separates a trailing "(2019)" or "2019" from a title.
func splitYear(title string) (string, *int) {
	m := reYearSuffix.FindStringSubmatch(title)
	if m == nil {
		return title, nil
	}
	y, _ := strconv.Atoi(m[2])
	return strings.TrimSpace(m[1]), &y
}

var (
	reSeasonDirLong  = regexp.MustCompile(`(?i)(^|[^[:alnum:]])season[\s_.\-]*([0-9]{1,2})([^[:alnum:]]|$)`)
	reSeasonDirShort = regexp.MustCompile(`(?i)(^|[^[:alnum:]])s([0-9]{1,2})([^[:alnum:]]|$)`)
)

// seasonHint reads a season number from a directory name such as
// "Season 02" or "S2". ok is false when there is none.
func seasonHint(dir string) (int, bool) {
	for _, re := range []*regexp.Regexp{reSeasonDirLong, reSeasonDirShort} {
		if m := re.FindStringSubmatch(dir); m != nil {
			n, err := strconv.Atoi(m[2])
			return n, err == nil
		}
	}
	return 0, false
}

// showFromDir derives a show name from a directory, dropping season markers.
func showFromDir(dir string) string {
	name := sepsToSpaces(dir)
	name = reSeasonDirLong.ReplaceAllString(name, "$1")
	name = reSeasonDirShort.ReplaceAllString(name, "$1")
	return tidy(name)
}
