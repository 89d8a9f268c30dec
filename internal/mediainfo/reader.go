package mediainfo

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/net/html/charset"
)

type ReaderOption func(*Reader)

func WithLogger(logger hclog.Logger) ReaderOption {
	return func(r *Reader) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// Reader pulls MediaInfo records out of a Mediainfo document one File at a
// time. It is single-consumer: once it fails or reaches the end, every
// further call returns the same error.
type Reader struct {
	dec     *xml.Decoder
	source  string
	logger  hclog.Logger
	builder *Builder
	started bool
	count   int
	err     error
}

func NewReader(r io.Reader, source string, opts ...ReaderOption) *Reader {
	dec := xml.NewDecoder(r)
	// Older mediainfo builds declare the platform code page instead of UTF-8.
	dec.CharsetReader = charset.NewReaderLabel
	reader := &Reader{
		dec:    dec,
		source: source,
		logger: hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(reader)
	}
	reader.builder = NewBuilder(reader.logger)
	return reader
}

// ReadFile opens a pre-generated report. The caller closes the returned
// closer once done with the reader.
func ReadFile(path string, opts ...ReaderOption) (*Reader, io.Closer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return NewReader(f, path, opts...), f, nil
}

// Next returns the next record, or io.EOF once the document is exhausted.
func (r *Reader) Next() (*MediaInfo, error) {
	if r.err != nil {
		return nil, r.err
	}
	info, err := r.next()
	if err != nil {
		r.err = err
		return nil, err
	}
	r.count++
	return info, nil
}

// All yields each record in document order. Iteration stops after the
// first error, which is yielded with a nil record.
func (r *Reader) All() iter.Seq2[*MediaInfo, error] {
	return func(yield func(*MediaInfo, error) bool) {
		for {
			info, err := r.Next()
			if errors.Is(err, io.EOF) {
				return
			}
			if !yield(info, err) || err != nil {
				return
			}
		}
	}
}

func (r *Reader) next() (*MediaInfo, error) {
	if !r.started {
		if err := r.openRoot(); err != nil {
			return nil, err
		}
		r.started = true
	}
	for {
		tok, err := r.dec.Token()
		if err != nil {
			return nil, r.syntaxError(err)
		}
		switch tok := tok.(type) {
		case xml.StartElement:
			info, err := r.builder.Decode(r.dec, tok)
			if err != nil {
				return nil, r.syntaxError(err)
			}
			return info, nil
		case xml.EndElement:
			r.logger.Debug("finished document", "source", r.source, "files", r.count)
			return nil, io.EOF
		}
	}
}

func (r *Reader) openRoot() error {
	for {
		tok, err := r.dec.Token()
		if err != nil {
			return r.syntaxError(err)
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if start.Name.Local != documentTag {
			return fmt.Errorf("%s: %w: expected root <%s>, found <%s>", r.source, ErrMalformedDocument, documentTag, start.Name.Local)
		}
		r.logger.Debug("reading document", "source", r.source, "root", start.Name.Local)
		return nil
	}
}

func (r *Reader) syntaxError(err error) error {
	if errors.Is(err, io.EOF) {
		err = io.ErrUnexpectedEOF
	}
	var syntax *xml.SyntaxError
	if errors.As(err, &syntax) || errors.Is(err, io.ErrUnexpectedEOF) {
		r.logger.Error("perhaps source is not valid XML", "source", r.source, "error", err)
	}
	if errors.Is(err, ErrMalformedDocument) {
		return fmt.Errorf("%s: %w", r.source, err)
	}
	return fmt.Errorf("%s: %w: %w", r.source, ErrMalformedDocument, err)
}
