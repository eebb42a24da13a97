package timeseries

import (
	"fmt"
	"math"
	"time"
)

// Range is a closed time interval in seconds since the Unix epoch.
type Range struct {
	Start float64
	Stop  float64
}

// InvalidRange is the zero-information range; IsValid reports false for it.
var InvalidRange = Range{Start: math.NaN(), Stop: math.NaN()}

// NewRange builds a range from two epoch timestamps in seconds.
func NewRange(start, stop float64) Range {
	return Range{Start: start, Stop: stop}
}

// RangeFromTimes builds a range from two instants, at millisecond
// resolution.
func RangeFromTimes(start, stop time.Time) Range {
	return Range{Start: epochSeconds(start), Stop: epochSeconds(stop)}
}

func epochSeconds(t time.Time) float64 {
	return float64(t.UnixMilli()) / 1000
}

func fromEpochSeconds(s float64) time.Time {
	sec, frac := math.Modf(s)
	return time.Unix(int64(sec), int64(frac*1e9)).UTC()
}

// IsValid reports whether both bounds are numbers.
func (r Range) IsValid() bool {
	return !math.IsNaN(r.Start) && !math.IsNaN(r.Stop)
}

// Delta returns Stop - Start in seconds.
func (r Range) Delta() float64 {
	return r.Stop - r.Start
}

// Center returns the midpoint of the range.
func (r Range) Center() float64 {
	return (r.Start + r.Stop) / 2
}

// Contains reports whether o lies entirely within r.
func (r Range) Contains(o Range) bool {
	return r.Start <= o.Start && r.Stop >= o.Stop
}

// Intersects reports whether r and o overlap.
func (r Range) Intersects(o Range) bool {
	return r.Stop >= o.Start && r.Start <= o.Stop
}

// Shift moves both bounds by offset seconds.
func (r Range) Shift(offset float64) Range {
	return Range{Start: r.Start + offset, Stop: r.Stop + offset}
}

// Grow widens the range around its center by factor.
func (r Range) Grow(factor float64) Range {
	g := r.Delta() * (factor - 1) / 2
	return Range{Start: r.Start - g, Stop: r.Stop + g}
}

// Shrink narrows the range around its center by factor.
func (r Range) Shrink(factor float64) Range {
	s := r.Delta() * (1 - factor) / 2
	return Range{Start: r.Start + s, Stop: r.Stop - s}
}

// Transform zooms the range by zoom, then shifts it by shift seconds.
func (r Range) Transform(zoom, shift float64) Range {
	return r.Grow(zoom).Shift(shift)
}

// Sub returns the parts of r not covered by o.
func (r Range) Sub(o Range) []Range {
	if !o.IsValid() || !r.Intersects(o) {
		return []Range{r}
	}
	var out []Range
	if r.Start < o.Start {
		out = append(out, Range{Start: r.Start, Stop: o.Start})
	}
	if r.Stop > o.Stop {
		out = append(out, Range{Start: o.Stop, Stop: r.Stop})
	}
	return out
}

// StartTime returns the start bound as a UTC time.
func (r Range) StartTime() time.Time {
	return fromEpochSeconds(r.Start)
}

// StopTime returns the stop bound as a UTC time.
func (r Range) StopTime() time.Time {
	return fromEpochSeconds(r.Stop)
}

func (r Range) String() string {
	if !r.IsValid() {
		return "invalid range"
	}
	const layout = "2006-01-02 15:04:05.000"
	return fmt.Sprintf("%s : %s", r.StartTime().Format(layout), r.StopTime().Format(layout))
}
