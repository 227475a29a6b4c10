// Package display renders human-facing output: the banner, the rename
// plan table and the template list.
package display

import (
	"fmt"
	"os"

	"github.com/backmassage/mediarename/internal/term"
)

// PrintBanner prints the ASCII art banner; uses Magenta if colors are enabled.
func PrintBanner() {
	fmt.Fprint(os.Stdout, term.Magenta)
	fmt.Fprint(os.Stdout, `                    _ _                                         
 _ __ ___   ___  __| (_) __ _ _ __ ___ _ __   __ _ _ __ ___   ___ 
| '_ ` + "`" + ` _ \ / _ \/ _` + "`" + ` | |/ _` + "`" + ` | '__/ _ \ '_ \ / _` + "`" + ` | '_ ` + "`" + ` _ \ / _ \
| | | | | |  __/ (_| | | (_| | | |  __/ | | | (_| | | | | | |  __/
|_| |_| |_|\___|\__,_|_|\__,_|_|  \___|_| |_|\__,_|_| |_| |_|\___|
`)
	fmt.Fprintln(os.Stdout, term.NC)
}
