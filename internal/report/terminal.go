package report

import (
	"io"
	"os"

	"golang.org/x/term"
)

// TerminalWidth returns the column count of w when it is a terminal, else
// zero.
func TerminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}
