package naming

import (
	"path/filepath"
	"strings"

	"github.com/backmassage/mediarename/internal/media"
)

// dirContext is what the parent directory contributes to inference.
type dirContext struct {
	show      string
	season    int
	hasSeason bool
}

// specialsDirs are folder names that never carry the show name.
var specialsDirs = map[string]bool{
	"extras": true, "extra": true, "specials": true, "bonus": true, "featurettes": true,
}

func resolveDir(dir string) dirContext {
	parent := filepath.Base(dir)
	var ctx dirContext
	ctx.season, ctx.hasSeason = seasonHint(parent)

	// "Show/Season 02/file" and "Show/Extras/file" name the show one level up.
	if ctx.hasSeason || specialsDirs[strings.ToLower(parent)] {
		if gp := filepath.Base(filepath.Dir(dir)); gp != "." && gp != string(filepath.Separator) {
			if show := showFromDir(gp); show != "" {
				ctx.show = show
				return ctx
			}
		}
	}
	ctx.show = showFromDir(parent)
	return ctx
}

// Infer derives metadata from a file's base name (extension included) and
// its directory. The result is a best guess; fields it cannot find stay
// empty.
func Infer(basename, dir string) media.Metadata {
	base := strings.TrimSuffix(basename, filepath.Ext(basename))
	ctx := resolveDir(dir)

	for _, r := range rules {
		loc := r.pattern.FindStringSubmatchIndex(base)
		if loc == nil {
			continue
		}
		return r.extract(base, loc, ctx)
	}

	title := tidy(cleanName(base))
	return media.Metadata{Type: media.TypeUnknown, Title: title}
}

// RuleName reports which inference rule matches basename, or "" for the
// fallback. Used for verbose logging.
func RuleName(basename string) string {
	base := strings.TrimSuffix(basename, filepath.Ext(basename))
	for _, r := range rules {
		if r.pattern.MatchString(base) {
			return r.name
		}
	}
	return ""
}
