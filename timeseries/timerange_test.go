package timeseries

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRangeDelta(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)

	tests := []struct {
		name       string
		start, end time.Time
		expected   float64
	}{
		{"no delta", now, now, 0},
		{"one day", yesterday, now, 86400},
		{"minus one day", now, yesterday, -86400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := RangeFromTimes(tt.start, tt.end)
			assert.InDelta(t, tt.expected, r.Delta(), 0.002)
		})
	}
}

func TestRangeShiftAndZoom(t *testing.T) {
	r := NewRange(1000, 2000)

	assert.Equal(t, r, r.Shift(0))
	assert.Equal(t, NewRange(999, 1999), r.Shift(-1))
	assert.Equal(t, r, r.Grow(1))

	grown := r.Grow(1.2)
	assert.InDelta(t, 900, grown.Start, 1e-9)
	assert.InDelta(t, 2100, grown.Stop, 1e-9)
	assert.InDelta(t, r.Center(), grown.Center(), 1e-9)

	shrunk := r.Shrink(0.8)
	assert.InDelta(t, 1100, shrunk.Start, 1e-9)
	assert.InDelta(t, 1900, shrunk.Stop, 1e-9)

	tr := r.Transform(2, 100)
	assert.InDelta(t, 600, tr.Start, 1e-9)
	assert.InDelta(t, 2600, tr.Stop, 1e-9)
}

func TestRangeContainsIntersects(t *testing.T) {
	r := NewRange(0, 86400)

	tests := []struct {
		name       string
		other      Range
		contains   bool
		intersects bool
	}{
		{"same", r, true, true},
		{"smaller", r.Shrink(0.8), true, true},
		{"bigger", r.Grow(1.2), false, true},
		{"shifted with overlap", r.Shift(1000), false, true},
		{"shifted without overlap", r.Shift(86400 * 10), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.contains, r.Contains(tt.other))
			assert.Equal(t, tt.intersects, r.Intersects(tt.other))
		})
	}
}

func TestRangeSub(t *testing.T) {
	r := NewRange(0, 10)

	assert.Equal(t, []Range{r}, r.Sub(InvalidRange))
	assert.Equal(t, []Range{r}, r.Sub(NewRange(20, 30)))
	assert.Equal(t, []Range{{0, 2}, {8, 10}}, r.Sub(NewRange(2, 8)))
	assert.Equal(t, []Range{{5, 10}}, r.Sub(NewRange(-1, 5)))
	assert.Empty(t, r.Sub(NewRange(-1, 11)))
}

func TestRangeString(t *testing.T) {
	r := RangeFromTimes(
		time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC),
		time.Date(2020, 1, 2, 4, 4, 5, 500e6, time.UTC),
	)
	assert.Equal(t, "2020-01-02 03:04:05.000 : 2020-01-02 04:04:05.500", r.String())
	assert.Equal(t, "invalid range", InvalidRange.String())
	assert.False(t, Range{Start: 0, Stop: math.NaN()}.IsValid())
}
