package display

import (
	"fmt"
	"os"

	"github.com/backmassage/pathforge/internal/term"
)

// PrintBanner prints the ASCII art banner; uses Magenta if colors are enabled.
func PrintBanner() {
	if term.Enabled() {
		fmt.Fprint(os.Stdout, term.Magenta)
	}
	fmt.Fprint(os.Stdout, ` ____       _   _     __
|  _ \ __ _| |_| |__ / _| ___  _ __ __ _  ___
| |_) / _` + "`" + ` | __| '_ \ |_ / _ \| '__/ _` + "`" + ` |/ _ \
|  __/ (_| | |_| | | |  _| (_) | | | (_| |  __/
|_|   \__,_|\__|_| |_|_|  \___/|_|  \__, |\___|
                                    |___/
`)
	if term.Enabled() {
		fmt.Fprintln(os.Stdout, term.NC)
	}
}
