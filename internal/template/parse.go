package template

import (
	"fmt"
	"regexp"
	"strings"
)

var rePlaceholder = regexp.MustCompile(`\[[^\]]+\]`)

// vocabulary is the set of placeholder names Validate accepts.
var vocabulary = map[string]bool{
	"title":         true,
	"year":          true,
	"season":        true,
	"episode":       true,
	"episode_title": true,
	"#":             true,
	"##":            true,
}

// Parse returns the bracketed tokens of pattern, brackets stripped, in
// left-to-right order. Duplicates are kept.
func Parse(pattern string) []string {
	matches := rePlaceholder.FindAllString(pattern, -1)
	tokens := make([]string, 0, len(matches))
	for _, m := range matches {
		tokens = append(tokens, m[1:len(m)-1])
	}
	return tokens
}

// Validation is the outcome of [Validate].
type Validation struct {
	Valid  bool
	Errors []string
}

// Validate reports every problem it finds in pattern. The bracket check
// compares the counts of '[' against ']' and of '(' against ')'; it does
// not check nesting.
func Validate(pattern string) Validation {
	errs := []string{}

	if !balanced(pattern, "[", "]") || !balanced(pattern, "(", ")") {
		errs = append(errs, "Unmatched brackets in template")
	}
	for _, tok := range Parse(pattern) {
		if !vocabulary[tok] {
			errs = append(errs, fmt.Sprintf("Unknown template variable: [%s]", tok))
		}
	}
	return Validation{Valid: len(errs) == 0, Errors: errs}
}

func balanced(s, open, close string) bool {
	return strings.Count(s, open) == strings.Count(s, close)
}
