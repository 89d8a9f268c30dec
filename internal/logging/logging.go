package logging

import (
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/mattn/go-isatty"
)

const name = "mediascan"

// DefaultLevel keeps an interactive terminal quiet and turns on debug output
// when stderr is redirected ("2> errorfile").
func DefaultLevel(stderr io.Writer) hclog.Level {
	if f, ok := stderr.(*os.File); ok && isTerminal(f) {
		return hclog.Warn
	}
	return hclog.Debug
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// New builds the root logger. An empty or unknown level falls back to
// DefaultLevel.
func New(stderr io.Writer, level string) hclog.Logger {
	lvl := hclog.LevelFromString(level)
	if lvl == hclog.NoLevel {
		lvl = DefaultLevel(stderr)
	}
	opts := &hclog.LoggerOptions{
		Name:   name,
		Level:  lvl,
		Output: stderr,
	}
	// hclog only colours *os.File writers.
	if _, ok := stderr.(*os.File); ok {
		opts.Color = hclog.AutoColor
	}
	return hclog.New(opts)
}
