package mediainfo

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// Stream indices beyond this are treated as corrupt rather than padded.
const maxStreamID = 1 << 16

// Builder turns File elements into MediaInfo records. Unsupported track
// types and repeated General tracks are logged and recorded as warnings.
type Builder struct {
	logger hclog.Logger
}

func NewBuilder(logger hclog.Logger) *Builder {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Builder{logger: logger}
}

// Decode consumes the File element opened by start.
func (b *Builder) Decode(dec *xml.Decoder, start xml.StartElement) (*MediaInfo, error) {
	if start.Name.Local != fileTag {
		return nil, fmt.Errorf("%w: expected <%s>, found <%s>", ErrMalformedDocument, fileTag, start.Name.Local)
	}
	var file xmlFile
	if err := dec.DecodeElement(&file, &start); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	}
	return b.build(file)
}

func (b *Builder) build(file xmlFile) (*MediaInfo, error) {
	info := NewMediaInfo()
	for i, track := range file.Tracks {
		kind, attrs, ok := takeAttr(track.Attrs, attrType)
		if !ok {
			return nil, fmt.Errorf("%w: track %d <%s> has no %s attribute", ErrMalformedDocument, i, track.XMLName.Local, attrType)
		}
		streamID := -1
		if raw, _, ok := takeAttr(attrs, attrStreamID); ok {
			id, err := strconv.Atoi(strings.TrimSpace(raw))
			if err != nil || id < 0 || id > maxStreamID {
				return nil, fmt.Errorf("%w: track %d has invalid %s %q", ErrMalformedDocument, i, attrStreamID, raw)
			}
			streamID = id
		}

		props := track.properties()
		switch TrackKind(kind) {
		case TrackAudio:
			if streamID < 0 {
				info.AddAudioTrack(props)
			} else {
				info.PlaceAudioTrack(props, streamID)
			}
		case TrackVideo:
			if streamID < 0 {
				info.AddVideoTrack(props)
			} else {
				info.PlaceVideoTrack(props, streamID)
			}
		case TrackGeneral:
			if !info.General.Empty() {
				b.warn(info, "multiple General tracks, overriding current", "fields", info.General.Len())
			}
			info.General = props
		default:
			b.warn(info, "ignoring track type", "type", kind)
		}
	}
	return info, nil
}

func (b *Builder) warn(info *MediaInfo, msg, key string, value interface{}) {
	b.logger.Warn(msg, key, value)
	info.Warnings = append(info.Warnings, fmt.Sprintf("%s (%s=%v)", msg, key, value))
}
