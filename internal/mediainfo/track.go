package mediainfo

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

type TrackKind string

const (
	TrackGeneral TrackKind = "General"
	TrackVideo   TrackKind = "Video"
	TrackAudio   TrackKind = "Audio"
	TrackText    TrackKind = "Text"
	TrackImage   TrackKind = "Image"
	TrackMenu    TrackKind = "Menu"
)

const (
	fieldWidth            = "Width"
	fieldHeight           = "Height"
	fieldFrameRate        = "Frame_rate"
	fieldEncodingSettings = "Encoding_settings"
	fieldMovieName        = "Movie_name"

	unitPixels = "pixels"
	unitFPS    = "fps"

	encodingSettingsDelim = " / "
)

// Track is one track element of a File: its kind plus its raw properties.
type Track struct {
	Kind       TrackKind
	Properties *Properties
}

func (t *Track) Get(key string) (string, bool) {
	if t == nil {
		return "", false
	}
	return t.Properties.Get(key)
}

func (t *Track) Has(key string) bool {
	if t == nil {
		return false
	}
	return t.Properties.Has(key)
}

type AudioTrack struct {
	Track
}

func NewAudioTrack(props *Properties) *AudioTrack {
	return &AudioTrack{Track{Kind: TrackAudio, Properties: props}}
}

type VideoTrack struct {
	Track
}

func NewVideoTrack(props *Properties) *VideoTrack {
	return &VideoTrack{Track{Kind: TrackVideo, Properties: props}}
}

func (v *VideoTrack) track() *Track {
	if v == nil {
		return nil
	}
	return &v.Track
}

// Dimensions parses Width and Height. A missing field leaves that side
// absent; a field that is present but not "<digits> pixels" is an error.
func (v *VideoTrack) Dimensions() (Dimensions, error) {
	var dims Dimensions
	if raw, ok := v.track().Get(fieldWidth); ok && raw != "" {
		width, err := parsePixels(fieldWidth, raw)
		if err != nil {
			return Dimensions{}, err
		}
		dims.width, dims.hasWidth = width, true
	}
	if raw, ok := v.track().Get(fieldHeight); ok && raw != "" {
		height, err := parsePixels(fieldHeight, raw)
		if err != nil {
			return Dimensions{}, err
		}
		dims.height, dims.hasHeight = height, true
	}
	return dims, nil
}

// FrameRate parses Frame_rate ("23.976 fps") into an exact decimal.
func (v *VideoTrack) FrameRate() (decimal.NullDecimal, error) {
	raw, ok := v.track().Get(fieldFrameRate)
	if !ok || raw == "" {
		return decimal.NullDecimal{}, nil
	}
	number, unit, ok := splitUnit(raw)
	if !ok {
		return decimal.NullDecimal{}, &FieldError{Field: fieldFrameRate, Value: raw, Reason: "missing unit"}
	}
	if unit != unitFPS {
		return decimal.NullDecimal{}, &FieldError{Field: fieldFrameRate, Value: raw, Reason: "unit is not " + unitFPS}
	}
	rate, err := decimal.NewFromString(number)
	if err != nil {
		return decimal.NullDecimal{}, &FieldError{Field: fieldFrameRate, Value: raw, Reason: "not a decimal number"}
	}
	return decimal.NewNullDecimal(rate), nil
}

// EncodingSettings splits Encoding_settings ("cabac=1 / ref=3") into an
// ordered map. Each entry is split on its first '='; an entry without one
// is kept with an empty value.
func (v *VideoTrack) EncodingSettings() (*Properties, bool) {
	raw, ok := v.track().Get(fieldEncodingSettings)
	if !ok {
		return nil, false
	}
	settings := NewProperties()
	for _, entry := range strings.Split(raw, encodingSettingsDelim) {
		key, value, found := strings.Cut(entry, "=")
		if !found {
			settings.Set(key, nil)
			continue
		}
		settings.SetText(key, value)
	}
	return settings, true
}

func (v *VideoTrack) MovieName() (string, bool) {
	return v.track().Get(fieldMovieName)
}

func parsePixels(field, raw string) (uint64, error) {
	number, unit, ok := splitUnit(raw)
	if !ok {
		return 0, &FieldError{Field: field, Value: raw, Reason: "missing unit"}
	}
	if unit != unitPixels {
		return 0, &FieldError{Field: field, Value: raw, Reason: "unit is not " + unitPixels}
	}
	digits := strings.Join(strings.Fields(number), "")
	if !isDigits(digits) {
		return 0, &FieldError{Field: field, Value: raw, Reason: "not a whole number"}
	}
	n, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return 0, &FieldError{Field: field, Value: raw, Reason: "out of range"}
	}
	return n, nil
}

// splitUnit splits "1 920 pixels" into "1 920" and "pixels" at the last run
// of whitespace.
func splitUnit(raw string) (string, string, bool) {
	trimmed := strings.TrimSpace(raw)
	idx := strings.LastIndexFunc(trimmed, unicode.IsSpace)
	if idx == -1 {
		return "", "", false
	}
	number := strings.TrimRightFunc(trimmed[:idx], unicode.IsSpace)
	if number == "" {
		return "", "", false
	}
	_, width := utf8.DecodeRuneInString(trimmed[idx:])
	return number, trimmed[idx+width:], true
}

func isDigits(value string) bool {
	if value == "" {
		return false
	}
	for i := 0; i < len(value); i++ {
		if value[i] < '0' || value[i] > '9' {
			return false
		}
	}
	return true
}
