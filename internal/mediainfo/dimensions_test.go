package mediainfo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDimensionsCompare(t *testing.T) {
	cases := []struct {
		name string
		lhs  Dimensions
		rhs  Dimensions
		want int
	}{
		{name: "larger area", lhs: NewDimensions(1920, 1080), rhs: NewDimensions(1280, 720), want: 1},
		{name: "smaller area", lhs: NewDimensions(720, 480), rhs: NewDimensions(1280, 720), want: -1},
		{name: "equal", lhs: NewDimensions(100, 100), rhs: NewDimensions(100, 100), want: 0},
		{name: "same area different shape", lhs: NewDimensions(200, 50), rhs: NewDimensions(100, 100), want: 0},
		{name: "absent side counts as zero", lhs: Dimensions{width: 1920, hasWidth: true}, rhs: NewDimensions(1, 1), want: -1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.lhs.Compare(tc.rhs))
		})
	}
}

func TestDimensionsString(t *testing.T) {
	assert.Equal(t, "1920x1080", NewDimensions(1920, 1080).String())
	assert.Equal(t, "0x0", NewDimensions(0, 0).String())
	assert.Equal(t, "1920x?", Dimensions{width: 1920, hasWidth: true}.String())
	assert.Equal(t, "?x?", Dimensions{}.String())
}

func TestMaxDimensions(t *testing.T) {
	first := NewDimensions(200, 50)
	second := NewDimensions(100, 100)
	dims := []Dimensions{NewDimensions(64, 36), first, second, NewDimensions(10, 10)}

	got, ok := MaxDimensions(dims)
	assert.True(t, ok)
	assert.Equal(t, first, got)

	_, ok = MaxDimensions(nil)
	assert.False(t, ok)
}

func TestDimensionsAreaBeyondUint64(t *testing.T) {
	huge := NewDimensions(1<<32, 1<<32)
	larger := NewDimensions(1<<33, 1<<32)

	assert.Equal(t, uint64(math.MaxUint64), huge.Area())
	assert.Equal(t, 1, huge.Compare(NewDimensions(1, 1)))
	assert.Equal(t, -1, huge.Compare(larger))

	best, ok := MaxDimensions([]Dimensions{NewDimensions(1920, 1080), huge, NewDimensions(1, 1)})
	assert.True(t, ok)
	assert.Equal(t, huge, best)
}
