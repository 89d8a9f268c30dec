package mediainfo

import (
	"math/big"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	fieldCompleteName = "Complete_name"
	fieldFormat       = "Format"
	fieldUniqueID     = "Unique_ID"
	fieldFileSize     = "File_size"
	fieldTrackName    = "Track_name"
	fieldDuration     = "Duration"
)

// MediaInfo is the model of one File element: its General pseudo-track and
// the audio and video tracks indexed by stream. Nil entries in Audio and
// Video are slots skipped by an explicit streamid.
type MediaInfo struct {
	General  *Properties
	Audio    []*AudioTrack
	Video    []*VideoTrack
	Warnings []string
}

func NewMediaInfo() *MediaInfo {
	return &MediaInfo{General: NewProperties()}
}

func (m *MediaInfo) AddAudioTrack(props *Properties) {
	m.Audio = append(m.Audio, NewAudioTrack(props))
}

// PlaceAudioTrack stores the track at index, growing the list with empty
// slots when needed.
func (m *MediaInfo) PlaceAudioTrack(props *Properties, index int) {
	m.Audio = place(m.Audio, index, NewAudioTrack(props))
}

func (m *MediaInfo) AddVideoTrack(props *Properties) {
	m.Video = append(m.Video, NewVideoTrack(props))
}

func (m *MediaInfo) PlaceVideoTrack(props *Properties, index int) {
	m.Video = place(m.Video, index, NewVideoTrack(props))
}

func place[T any](list []*T, index int, item *T) []*T {
	if index >= len(list) {
		list = append(list, make([]*T, index-len(list)+1)...)
	}
	list[index] = item
	return list
}

func (m *MediaInfo) Filename() string {
	name, _ := m.General.Get(fieldCompleteName)
	return name
}

func (m *MediaInfo) Format() string {
	format, _ := m.General.Get(fieldFormat)
	return format
}

func (m *MediaInfo) Duration() string {
	duration, _ := m.General.Get(fieldDuration)
	return duration
}

// UID is the leading integer of Unique_ID ("2838... (0x2762...)").
func (m *MediaInfo) UID() (*big.Int, bool, error) {
	raw, ok := m.General.Get(fieldUniqueID)
	if !ok {
		return nil, false, nil
	}
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return nil, false, &FieldError{Field: fieldUniqueID, Value: raw, Reason: "empty"}
	}
	uid, ok := new(big.Int).SetString(fields[0], 10)
	if !ok {
		return nil, false, &FieldError{Field: fieldUniqueID, Value: raw, Reason: "not an integer"}
	}
	return uid, true, nil
}

// Exists reports whether Complete_name is a regular file relative to the
// current working directory.
func (m *MediaInfo) Exists() bool {
	_, ok := m.stat()
	return ok
}

func (m *MediaInfo) stat() (os.FileInfo, bool) {
	name := m.Filename()
	if name == "" {
		return nil, false
	}
	info, err := os.Stat(name)
	if err != nil || !info.Mode().IsRegular() {
		return nil, false
	}
	return info, true
}

// Size prefers the live size of the file on disk and falls back to the
// reported File_size.
func (m *MediaInfo) Size() Size {
	if info, ok := m.stat(); ok {
		return liveSize(info.Size())
	}
	reported, _ := m.General.Get(fieldFileSize)
	return reportedSize(reported)
}

// Name picks a display name: the first video Movie_name, then the General
// Track_name, then the base name of Complete_name.
func (m *MediaInfo) Name() string {
	for _, video := range m.Video {
		if name, ok := video.MovieName(); ok {
			return name
		}
	}
	if name, ok := m.General.Get(fieldTrackName); ok {
		return name
	}
	filename := m.Filename()
	if filename == "" {
		return ""
	}
	return filepath.Base(filename)
}

func (m *MediaInfo) HasVideo() bool {
	return len(m.Video) > 0
}

// Dimensions returns the dimensions of each video slot, skipping empty
// slots.
func (m *MediaInfo) Dimensions() ([]Dimensions, error) {
	dims := make([]Dimensions, 0, len(m.Video))
	for _, video := range m.Video {
		if video == nil {
			continue
		}
		d, err := video.Dimensions()
		if err != nil {
			return nil, err
		}
		dims = append(dims, d)
	}
	return dims, nil
}

func (m *MediaInfo) MaxDimensions() (Dimensions, bool, error) {
	dims, err := m.Dimensions()
	if err != nil {
		return Dimensions{}, false, err
	}
	best, ok := MaxDimensions(dims)
	return best, ok, nil
}

func (m *MediaInfo) FrameRates() ([]decimal.NullDecimal, error) {
	rates := make([]decimal.NullDecimal, 0, len(m.Video))
	for _, video := range m.Video {
		if video == nil {
			continue
		}
		rate, err := video.FrameRate()
		if err != nil {
			return nil, err
		}
		rates = append(rates, rate)
	}
	return rates, nil
}
