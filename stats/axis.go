package stats

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/sciqlop/sciqlopcore/timeseries"
)

// AxisOptions controls AnalyzeAxis.
type AxisOptions struct {
	IsLog         bool    // Analyse log10 of the coordinates
	CheckMedian   bool    // Prefer the median step when it dwarfs the smallest one
	MaxResolution float64 // Known resolution; NaN means derive it from the steps
}

// DefaultAxisOptions returns options for a linear axis with no known
// resolution and no median check.
func DefaultAxisOptions() *AxisOptions {
	return &AxisOptions{MaxResolution: math.NaN()}
}

// AxisProperties summarises a sorted coordinate axis. For log axes every
// field but IsLog is expressed in log10 units.
type AxisProperties struct {
	Range         float64
	MaxResolution float64
	IsLog         bool
	Min           float64
	Max           float64
}

// AnalyzeAxis computes the extent and finest step of a sorted axis, as
// needed to resample it onto a regular grid.
//
// The resolution is the smallest step between consecutive coordinates. With
// CheckMedian, the median step is used instead when it exceeds four times
// the smallest one, so that a few near-duplicate coordinates do not force a
// needlessly fine grid.
func AnalyzeAxis(axis []float64, opts *AxisOptions) (AxisProperties, error) {
	if opts == nil {
		opts = DefaultAxisOptions()
	}
	if len(axis) < 2 {
		return AxisProperties{}, fmt.Errorf("%w: axis analysis needs 2 points, got %d", timeseries.ErrInvalidArgument, len(axis))
	}

	coords := make([]float64, len(axis))
	copy(coords, axis)
	if opts.IsLog {
		for i, v := range coords {
			coords[i] = math.Log10(v)
		}
	}

	props := AxisProperties{
		IsLog: opts.IsLog,
		Min:   coords[0],
		Max:   coords[len(coords)-1],
	}
	props.Range = props.Max - props.Min

	resolution := opts.MaxResolution
	if math.IsNaN(resolution) {
		steps := make([]float64, len(coords)-1)
		floats.SubTo(steps, coords[1:], coords[:len(coords)-1])
		resolution = floats.Min(steps)
		if opts.CheckMedian {
			sort.Float64s(steps)
			median := steps[len(coords)/2-1]
			if median > 4*resolution {
				resolution = median
			}
		}
	}
	props.MaxResolution = resolution

	return props, nil
}

// AnalyzeTime runs AnalyzeAxis on the time axis of a series.
func AnalyzeTime(s timeseries.Series, checkMedian bool) (AxisProperties, error) {
	opts := DefaultAxisOptions()
	opts.CheckMedian = checkMedian
	return AnalyzeAxis(s.T().Values(), opts)
}

// AnalyzeSpectrogramY runs AnalyzeAxis on the bin axis of a spectrogram,
// honouring its log flag.
func AnalyzeSpectrogramY(s *timeseries.SpectrogramSeries) (AxisProperties, error) {
	opts := DefaultAxisOptions()
	opts.IsLog = s.Meta().YIsLog
	opts.CheckMedian = true
	return AnalyzeAxis(s.Y().Values(), opts)
}
