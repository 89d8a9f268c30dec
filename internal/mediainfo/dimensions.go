package mediainfo

import (
	"math"
	"math/bits"
	"strconv"
)

// Dimensions is a width/height pair ordered by pixel area. Either side may
// be absent when the track did not report it.
type Dimensions struct {
	width, height       uint64
	hasWidth, hasHeight bool
}

func NewDimensions(width, height uint64) Dimensions {
	return Dimensions{width: width, height: height, hasWidth: true, hasHeight: true}
}

func (d Dimensions) Width() (uint64, bool) {
	return d.width, d.hasWidth
}

func (d Dimensions) Height() (uint64, bool) {
	return d.height, d.hasHeight
}

// Complete reports whether both sides are known.
func (d Dimensions) Complete() bool {
	return d.hasWidth && d.hasHeight
}

// Area is width*height, treating an absent side as zero. It saturates at
// math.MaxUint64; Compare uses the full product.
func (d Dimensions) Area() uint64 {
	hi, lo := bits.Mul64(d.width, d.height)
	if hi != 0 {
		return math.MaxUint64
	}
	return lo
}

func (d Dimensions) Equal(other Dimensions) bool {
	return d == other
}

// Compare returns 0 when both sides match, otherwise orders by area.
func (d Dimensions) Compare(other Dimensions) int {
	if d.Equal(other) {
		return 0
	}
	lhsHi, lhsLo := bits.Mul64(d.width, d.height)
	rhsHi, rhsLo := bits.Mul64(other.width, other.height)
	switch {
	case lhsHi < rhsHi, lhsHi == rhsHi && lhsLo < rhsLo:
		return -1
	case lhsHi > rhsHi, lhsHi == rhsHi && lhsLo > rhsLo:
		return 1
	}
	return 0
}

func (d Dimensions) Less(other Dimensions) bool {
	return d.Compare(other) < 0
}

func (d Dimensions) String() string {
	return formatSide(d.width, d.hasWidth) + "x" + formatSide(d.height, d.hasHeight)
}

func formatSide(value uint64, ok bool) string {
	if !ok {
		return "?"
	}
	return strconv.FormatUint(value, 10)
}

// MaxDimensions returns the largest entry by area. Ties keep the first.
func MaxDimensions(dims []Dimensions) (Dimensions, bool) {
	if len(dims) == 0 {
		return Dimensions{}, false
	}
	best := dims[0]
	for _, d := range dims[1:] {
		if best.Less(d) {
			best = d
		}
	}
	return best, true
}
