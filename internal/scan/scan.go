package scan

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/sync/errgroup"

	"github.com/autobrr/go-mediascan/internal/mediainfo"
)

// Opener yields the XML document for one input argument.
type Opener interface {
	Open(ctx context.Context, arg string) (io.ReadCloser, string, error)
}

// Inventory splits scanned records into files with video tracks and
// audio-only files, each in the order they arrived.
type Inventory struct {
	Videos []*mediainfo.MediaInfo
	Songs  []*mediainfo.MediaInfo
}

func (inv *Inventory) add(info *mediainfo.MediaInfo) {
	if info.HasVideo() {
		inv.Videos = append(inv.Videos, info)
		return
	}
	inv.Songs = append(inv.Songs, info)
}

func (inv *Inventory) Len() int {
	return len(inv.Videos) + len(inv.Songs)
}

type Scanner struct {
	opener  Opener
	workers int
	logger  hclog.Logger
}

// New returns a Scanner running at most workers documents at once; zero
// means one per CPU.
func New(opener Opener, workers int, logger hclog.Logger) *Scanner {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Scanner{opener: opener, workers: workers, logger: logger}
}

// Scan reads every argument on its own goroutine. Records are collected as
// workers produce them, so the result does not follow argument order. The
// first failure cancels the remaining workers.
func (s *Scanner) Scan(ctx context.Context, args []string) (Inventory, error) {
	var inv Inventory
	records := make(chan *mediainfo.MediaInfo)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for info := range records {
			inv.add(info)
		}
	}()

	for _, arg := range args {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			return s.read(ctx, arg, records)
		})
	}
	err := g.Wait()
	close(records)
	<-done

	s.logger.Debug("scan finished", "args", len(args), "videos", len(inv.Videos), "songs", len(inv.Songs))
	return inv, err
}

func (s *Scanner) read(ctx context.Context, arg string, records chan<- *mediainfo.MediaInfo) (err error) {
	logger := s.logger.With("arg", arg)
	rc, source, err := s.opener.Open(ctx, arg)
	if err != nil {
		return fmt.Errorf("%s: %w", arg, err)
	}
	defer func() {
		if cerr := rc.Close(); cerr != nil {
			err = errors.Join(err, cerr)
		}
	}()

	reader := mediainfo.NewReader(rc, source, mediainfo.WithLogger(logger.Named("reader")))
	count := 0
	for info, rerr := range reader.All() {
		if rerr != nil {
			return rerr
		}
		select {
		case records <- info:
			count++
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	logger.Debug("read documents", "source", source, "files", count)
	return nil
}
