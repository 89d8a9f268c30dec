package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/autobrr/go-mediascan/internal/config"
	"github.com/autobrr/go-mediascan/internal/logging"
	"github.com/autobrr/go-mediascan/internal/probe"
	"github.com/autobrr/go-mediascan/internal/report"
	"github.com/autobrr/go-mediascan/internal/scan"
)

const (
	exitOK    = 0
	exitError = 1
)

// Options are the command line settings. Zero values leave the
// configuration untouched.
type Options struct {
	ConfigPath string
	Mediainfo  string
	LogLevel   string
	Workers    int
	Width      int
	Header     bool
	Human      bool
}

func Run(ctx context.Context, program string, opts Options, files []string, stdout, stderr io.Writer) int {
	program = programName(program)
	if len(files) == 0 {
		return Usage(program, stdout)
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return exitError
	}
	applyOptions(cfg, opts)

	logger := logging.New(stderr, cfg.LogLevel)
	logger.Debug("starting scan", "args", len(files), "mediainfo", cfg.MediainfoPath, "workers", cfg.Workers)

	prober := probe.New(cfg.MediainfoPath, cfg.MediainfoOutput, cfg.Timeout, logger.Named("probe"))
	inv, err := scan.New(prober, cfg.Workers, logger.Named("scan")).Scan(ctx, files)
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return exitError
	}

	width := cfg.Width
	if width == 0 {
		width = report.TerminalWidth(stdout)
	}
	err = report.Render(stdout, inv, report.Options{
		Width:  width,
		Header: opts.Header,
		Human:  opts.Human,
		Logger: logger.Named("report"),
	})
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return exitError
	}

	if inv.Len() > 0 {
		return exitOK
	}
	return exitError
}

func applyOptions(cfg *config.Config, opts Options) {
	if opts.Mediainfo != "" {
		cfg.MediainfoPath = opts.Mediainfo
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}
	if opts.Workers > 0 {
		cfg.Workers = opts.Workers
	}
	if opts.Width > 0 {
		cfg.Width = opts.Width
	}
}

func programName(arg0 string) string {
	name := filepath.Base(arg0)
	if runtime.GOOS == "windows" {
		ext := filepath.Ext(name)
		name = strings.TrimSuffix(name, ext)
	}
	return name
}
