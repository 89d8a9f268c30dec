package mediainfo

import (
	"io"

	"github.com/autobrr/go-mediascan/internal/mediainfo"
)

// Types
type Properties = mediainfo.Properties
type Property = mediainfo.Property
type TrackKind = mediainfo.TrackKind
type Track = mediainfo.Track
type AudioTrack = mediainfo.AudioTrack
type VideoTrack = mediainfo.VideoTrack
type Dimensions = mediainfo.Dimensions
type Size = mediainfo.Size
type MediaInfo = mediainfo.MediaInfo
type Reader = mediainfo.Reader
type ReaderOption = mediainfo.ReaderOption
type FieldError = mediainfo.FieldError

// Constants
const (
	TrackGeneral = mediainfo.TrackGeneral
	TrackVideo   = mediainfo.TrackVideo
	TrackAudio   = mediainfo.TrackAudio
	TrackText    = mediainfo.TrackText
	TrackImage   = mediainfo.TrackImage
	TrackMenu    = mediainfo.TrackMenu
)

// Errors
var (
	ErrMalformedDocument = mediainfo.ErrMalformedDocument
	ErrMalformedField    = mediainfo.ErrMalformedField
)

// Functions
func NewReader(r io.Reader, source string, opts ...ReaderOption) *Reader {
	return mediainfo.NewReader(r, source, opts...)
}

func ReadFile(path string, opts ...ReaderOption) (*Reader, io.Closer, error) {
	return mediainfo.ReadFile(path, opts...)
}

var WithLogger = mediainfo.WithLogger

func NewProperties(pairs ...Property) *Properties {
	return mediainfo.NewProperties(pairs...)
}

func NewDimensions(width, height uint64) Dimensions {
	return mediainfo.NewDimensions(width, height)
}

func MaxDimensions(dims []Dimensions) (Dimensions, bool) {
	return mediainfo.MaxDimensions(dims)
}

func FormatVersion(version string) string {
	return mediainfo.FormatVersion(version)
}
