package stats

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/sciqlop/sciqlopcore/timeseries"
)

// Bounds holds the extrema of a set of values.
type Bounds struct {
	Min float64
	Max float64
}

// Valid reports whether the bounds were computed from at least one value.
func (b Bounds) Valid() bool {
	return !math.IsNaN(b.Min) && !math.IsNaN(b.Max)
}

// finite drops NaNs.
func finite(values []float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}

// BoundsOf returns the min and max of values, skipping NaN. Both are NaN
// when no value is a number.
func BoundsOf(values []float64) Bounds {
	f := finite(values)
	if len(f) == 0 {
		return Bounds{Min: math.NaN(), Max: math.NaN()}
	}
	return Bounds{Min: floats.Min(f), Max: floats.Max(f)}
}

// Mean returns the mean of values, skipping NaN. It is NaN when no value is
// a number.
func Mean(values []float64) float64 {
	f := finite(values)
	if len(f) == 0 {
		return math.NaN()
	}
	return stat.Mean(f, nil)
}

// ValueBounds returns the extrema over every value of a series, all
// components included.
func ValueBounds(s timeseries.Series) Bounds {
	data := s.Data()
	rows, cols := data.Dims()
	all := make([]float64, 0, rows*cols)
	for j := 0; j < cols; j++ {
		all = append(all, column(data, j)...)
	}
	return BoundsOf(all)
}

// ComponentBounds returns the extrema of each component of a series.
func ComponentBounds(s timeseries.Series) []Bounds {
	data := s.Data()
	_, cols := data.Dims()
	out := make([]Bounds, cols)
	for j := range out {
		out[j] = BoundsOf(column(data, j))
	}
	return out
}

// ComponentMeans returns the NaN-skipping mean of each component.
func ComponentMeans(s timeseries.Series) []float64 {
	data := s.Data()
	_, cols := data.Dims()
	out := make([]float64, cols)
	for j := range out {
		out[j] = Mean(column(data, j))
	}
	return out
}

func column(m mat.Matrix, j int) []float64 {
	rows, _ := m.Dims()
	return mat.Col(make([]float64, rows), j, m)
}
