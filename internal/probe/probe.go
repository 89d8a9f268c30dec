package probe

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
)

const reportExt = ".xml"

// Prober produces mediainfo XML for one input argument, either by running
// the mediainfo binary or by opening a report that was generated earlier.
type Prober struct {
	Path    string
	Output  string
	Timeout time.Duration
	Logger  hclog.Logger
}

func New(path, output string, timeout time.Duration, logger hclog.Logger) *Prober {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	if output == "" {
		output = "XML"
	}
	return &Prober{Path: path, Output: output, Timeout: timeout, Logger: logger}
}

// IsReport reports whether arg names a pre-generated XML report.
func IsReport(arg string) bool {
	return strings.EqualFold(filepath.Ext(arg), reportExt)
}

// Open returns the XML document for arg and a name identifying its source.
// Closing the reader waits for the mediainfo process and reports its
// failure, if any.
func (p *Prober) Open(ctx context.Context, arg string) (io.ReadCloser, string, error) {
	if IsReport(arg) {
		p.Logger.Debug("reading report", "path", arg)
		f, err := os.Open(arg)
		if err != nil {
			return nil, arg, err
		}
		return f, arg, nil
	}
	return p.run(ctx, arg)
}

func (p *Prober) run(ctx context.Context, arg string) (io.ReadCloser, string, error) {
	cancel := context.CancelFunc(func() {})
	if p.Timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, p.Timeout)
	}

	cmd := exec.CommandContext(ctx, p.Path, "--Output="+p.Output, arg)
	source := fmt.Sprintf("%s(%s)", filepath.Base(p.Path), arg)
	stderr := &bytes.Buffer{}
	cmd.Stderr = stderr
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		cancel()
		return nil, source, err
	}
	if err := cmd.Start(); err != nil {
		cancel()
		return nil, source, fmt.Errorf("failed to start %s: %w", p.Path, err)
	}
	p.Logger.Debug("started mediainfo", "pid", cmd.Process.Pid, "arg", arg)

	return &process{
		ReadCloser: stdout,
		cmd:        cmd,
		stderr:     stderr,
		source:     source,
		cancel:     cancel,
		logger:     p.Logger,
	}, source, nil
}

type process struct {
	io.ReadCloser
	cmd    *exec.Cmd
	stderr *bytes.Buffer
	source string
	cancel context.CancelFunc
	logger hclog.Logger
	closed bool
}

func (p *process) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true
	defer p.cancel()

	// Drain what the reader left so the process can exit before Wait.
	_, _ = io.Copy(io.Discard, p.ReadCloser)
	err := p.cmd.Wait()
	p.logger.Debug("mediainfo exited", "source", p.source, "error", err)
	if err != nil {
		msg := strings.TrimSpace(p.stderr.String())
		if msg != "" {
			return fmt.Errorf("%s: %w: %s", p.source, err, msg)
		}
		return fmt.Errorf("%s: %w", p.source, err)
	}
	return nil
}
