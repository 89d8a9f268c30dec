package report

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/hashicorp/go-hclog"

	"github.com/autobrr/go-mediascan/internal/mediainfo"
	"github.com/autobrr/go-mediascan/internal/scan"
)

const (
	videoNameWidth = 47
	dimsWidth      = 15
	sizeWidth      = 15
	songNameWidth  = 63
	durationWidth  = 7

	// Columns used by everything but the name in an 80 column layout.
	videoFixedWidth = 80 - videoNameWidth
	songFixedWidth  = 80 - songNameWidth
)

type Options struct {
	// Width is the terminal width; the name column grows into any space
	// beyond 80 columns. Zero keeps the default layout.
	Width  int
	Header bool
	// Human prints live sizes with binary units instead of a byte count.
	Human  bool
	Logger hclog.Logger
}

type videoRow struct {
	name string
	dims string
	size mediainfo.Size
}

// Render writes the videos, smallest first, followed by the audio-only
// files in the order they were scanned.
func Render(w io.Writer, inv scan.Inventory, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	rows := make([]videoRow, 0, len(inv.Videos))
	for _, info := range inv.Videos {
		rows = append(rows, videoRow{
			name: info.Name(),
			dims: maxDimensions(info, logger),
			size: info.Size(),
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].size.Bytes < rows[j].size.Bytes
	})

	heading := color.New(color.Bold)
	if opts.Header && len(rows) > 0 {
		if _, err := heading.Fprintf(w, "Videos (%d)\n", len(rows)); err != nil {
			return err
		}
	}
	nameWidth := columnWidth(videoNameWidth, videoFixedWidth, opts.Width)
	for _, row := range rows {
		_, err := fmt.Fprintf(w, "%s\t%s\t%s\n",
			padRight(row.name, nameWidth),
			center(row.dims, dimsWidth),
			padLeft(sizeText(row.size, opts.Human), sizeWidth))
		if err != nil {
			return err
		}
	}

	if opts.Header && len(inv.Songs) > 0 {
		if _, err := heading.Fprintf(w, "Audio (%d)\n", len(inv.Songs)); err != nil {
			return err
		}
	}
	nameWidth = columnWidth(songNameWidth, songFixedWidth, opts.Width)
	for _, info := range inv.Songs {
		_, err := fmt.Fprintf(w, "%s\t%s\n",
			padRight(info.Name(), nameWidth),
			padLeft(info.Duration(), durationWidth))
		if err != nil {
			return err
		}
	}
	return nil
}

func maxDimensions(info *mediainfo.MediaInfo, logger hclog.Logger) string {
	best, ok, err := info.MaxDimensions()
	if err != nil {
		logger.Warn("unreadable dimensions", "file", info.Filename(), "error", err)
		return "?"
	}
	if !ok {
		return ""
	}
	return best.String()
}

func sizeText(size mediainfo.Size, human bool) string {
	if human {
		return size.Human()
	}
	return size.String()
}

func columnWidth(base, fixed, width int) int {
	if width-fixed > base {
		return width - fixed
	}
	return base
}

func padRight(value string, width int) string {
	n := utf8.RuneCountInString(value)
	if n >= width {
		return value
	}
	return value + strings.Repeat(" ", width-n)
}

func padLeft(value string, width int) string {
	n := utf8.RuneCountInString(value)
	if n >= width {
		return value
	}
	return strings.Repeat(" ", width-n) + value
}

// center puts any odd leftover space on the right.
func center(value string, width int) string {
	n := utf8.RuneCountInString(value)
	if n >= width {
		return value
	}
	left := (width - n) / 2
	return strings.Repeat(" ", left) + value + strings.Repeat(" ", width-n-left)
}
