// Package term holds the ANSI color state shared by the logger and the
// display tables, plus the color choices for render statuses.
//
// [Configure] runs once from [logging.NewLogger]. While colors are off every
// color variable is the empty string, so [Paint] returns its input as is.
package term

import (
	"os"
	"strings"

	"github.com/backmassage/mediarename/internal/config"
	"github.com/backmassage/mediarename/internal/template"
)

// ANSI color codes. Empty when colors are disabled.
var (
	Red     = ""
	Green   = ""
	Yellow  = ""
	Orange  = ""
	Blue    = ""
	Cyan    = ""
	Magenta = ""
	NC      = "" // Reset sequence.
)

// Configure resolves mode and sets the color variables.
func Configure(mode config.ColorMode) {
	if !resolve(mode) {
		Red, Green, Yellow, Orange, Blue, Cyan, Magenta, NC = "", "", "", "", "", "", "", ""
		return
	}
	Red = "\033[1;91m"
	Green = "\033[1;92m"
	Yellow = "\033[1;93m"
	Orange = "\033[1;38;5;208m"
	Blue = "\033[1;94m"
	Cyan = "\033[1;96m"
	Magenta = "\033[1;95m"
	NC = "\033[0m"
}

// Enabled reports whether ANSI colors are currently active.
func Enabled() bool { return NC != "" }

// StatusColor maps a render status to its color: ready is green, warning
// yellow, error red. Unknown statuses get no color.
func StatusColor(s template.Status) string {
	switch s {
	case template.StatusReady:
		return Green
	case template.StatusWarning:
		return Yellow
	case template.StatusError:
		return Red
	default:
		return ""
	}
}

// Paint wraps s in color and a reset. An empty color leaves s untouched,
// which keeps padded table cells aligned when colors are off.
func Paint(color, s string) string {
	if color == "" || NC == "" {
		return s
	}
	return color + s + NC
}

// resolve honors --color/--no-color, then TTY detection, NO_COLOR
// (https://no-color.org) and TERM=dumb.
func resolve(mode config.ColorMode) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default: // ColorAuto
		return IsTerminal(os.Stdout) &&
			os.Getenv("NO_COLOR") == "" &&
			strings.ToLower(os.Getenv("TERM")) != "dumb"
	}
}

// IsTerminal reports whether f is attached to a TTY (character device).
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}
