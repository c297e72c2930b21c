package ui

import (
	"os"

	"golang.org/x/term"
)

// interactive reports whether animated output may be drawn. Spinners and
// progress bars are skipped when stderr is redirected.
var interactive = func() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}

// IsTerminal reports whether stdout is attached to a terminal
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
