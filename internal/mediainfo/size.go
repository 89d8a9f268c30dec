package mediainfo

import (
	"math"
	"strconv"
	"strings"
)

// Size is a file size either taken live from the filesystem or parsed from
// the report's File_size text. Bytes is approximate for reported sizes.
type Size struct {
	Bytes int64
	Text  string
	Live  bool
	Known bool
}

func liveSize(bytes int64) Size {
	return Size{Bytes: bytes, Text: strconv.FormatInt(bytes, 10), Live: true, Known: true}
}

func reportedSize(text string) Size {
	size := Size{Text: text, Known: text != ""}
	if bytes, ok := parseBytes(text); ok {
		size.Bytes = bytes
	}
	return size
}

func (s Size) String() string {
	return s.Text
}

// Human renders live sizes with binary units and keeps the reported text
// otherwise, since that text already carries mediainfo's own unit.
func (s Size) Human() string {
	if !s.Live {
		return s.Text
	}
	return formatBytes(s.Bytes)
}

var binaryUnits = []string{"B", "KiB", "MiB", "GiB", "TiB", "PiB"}

func formatBytes(n int64) string {
	if n < 1<<10 {
		return strconv.FormatInt(n, 10) + " B"
	}
	value, idx := float64(n), 0
	for value >= 1<<10 && idx < len(binaryUnits)-1 {
		value /= 1 << 10
		idx++
	}
	return strconv.FormatFloat(value, 'f', 2, 64) + " " + binaryUnits[idx]
}

var byteUnits = map[string]float64{
	"b":     1,
	"byte":  1,
	"bytes": 1,
	"kib":   1 << 10,
	"mib":   1 << 20,
	"gib":   1 << 30,
	"tib":   1 << 40,
	"pib":   1 << 50,
	"kb":    1e3,
	"mb":    1e6,
	"gb":    1e9,
	"tb":    1e12,
}

// parseBytes reads sizes the way mediainfo prints them: "734 MiB",
// "1.37 GiB", "12 345 Bytes" or a bare byte count.
func parseBytes(text string) (int64, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0, false
	}
	number, unit, ok := splitUnit(trimmed)
	multiplier := 1.0
	if ok {
		m, known := byteUnits[strings.ToLower(unit)]
		if !known {
			return 0, false
		}
		multiplier = m
	} else {
		number = trimmed
	}
	value, err := strconv.ParseFloat(strings.ReplaceAll(number, " ", ""), 64)
	if err != nil || value < 0 || math.IsInf(value, 0) || math.IsNaN(value) {
		return 0, false
	}
	return int64(math.Round(value * multiplier)), true
}
