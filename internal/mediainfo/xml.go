package mediainfo

import "encoding/xml"

const (
	documentTag  = "Mediainfo"
	fileTag      = "File"
	attrType     = "type"
	attrStreamID = "streamid"
)

type xmlFile struct {
	XMLName xml.Name
	Tracks  []xmlTrack `xml:",any"`
}

type xmlTrack struct {
	XMLName xml.Name
	Attrs   []xml.Attr `xml:",any,attr"`
	Fields  []xmlField `xml:",any"`
}

type xmlField struct {
	XMLName xml.Name
	Value   string `xml:",chardata"`
}

// takeAttr removes the unqualified attribute name from attrs.
func takeAttr(attrs []xml.Attr, name string) (string, []xml.Attr, bool) {
	for i, attr := range attrs {
		if attr.Name.Space == "" && attr.Name.Local == name {
			rest := append(attrs[:i:i], attrs[i+1:]...)
			return attr.Value, rest, true
		}
	}
	return "", attrs, false
}

func (t xmlTrack) properties() *Properties {
	props := &Properties{values: make(map[string]*string, len(t.Fields))}
	for _, field := range t.Fields {
		if field.Value == "" {
			props.Set(field.XMLName.Local, nil)
			continue
		}
		props.SetText(field.XMLName.Local, field.Value)
	}
	return props
}
