package timeseries

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ScalarSeries holds one real value per timestamp.
type ScalarSeries struct {
	base
	values []float64
}

// NewScalar creates a zero-filled scalar series of n samples.
func NewScalar(n int) (*ScalarSeries, error) {
	if err := checkLength(n); err != nil {
		return nil, err
	}
	return &ScalarSeries{
		base:   newBase(make([]float64, n), []int{n}, TimeMajor),
		values: make([]float64, n),
	}, nil
}

// NewScalarFromSlices pairs timestamps with values. Both slices are copied.
func NewScalarFromSlices(time, values []float64) (*ScalarSeries, error) {
	if len(time) != len(values) {
		return nil, fmt.Errorf("%w: %d timestamps for %d values", ErrShapeMismatch, len(time), len(values))
	}
	v := make([]float64, len(values))
	copy(v, values)
	return &ScalarSeries{
		base:   newBase(time, []int{len(time)}, TimeMajor),
		values: v,
	}, nil
}

// NewScalarFromMatrix builds a scalar series from an (N, 1) or (1, N)
// buffer.
func NewScalarFromMatrix(time []float64, values mat.Matrix) (*ScalarSeries, error) {
	s, err := ingest(len(time), values, 1)
	if err != nil {
		return nil, err
	}
	return &ScalarSeries{
		base:   newBase(time, []int{s.n}, s.layout),
		values: s.data,
	}, nil
}

// NewScalarFromFrame uses the frame index as time and its single column as
// values.
func NewScalarFromFrame(f *Frame) (*ScalarSeries, error) {
	if err := checkFrame(f); err != nil {
		return nil, err
	}
	return NewScalarFromMatrix(f.Index, f.Body)
}

func (s *ScalarSeries) Kind() Kind {
	return KindScalar
}

// At returns the value of sample i.
func (s *ScalarSeries) At(i int) (float64, error) {
	if err := checkIndex(i, len(s.values)); err != nil {
		return 0, err
	}
	return s.values[i], nil
}

// Set overwrites the value of sample i.
func (s *ScalarSeries) Set(i int, v float64) error {
	if err := checkIndex(i, len(s.values)); err != nil {
		return err
	}
	s.values[i] = v
	return nil
}

// Values returns a copy of the values.
func (s *ScalarSeries) Values() []float64 {
	out := make([]float64, len(s.values))
	copy(out, s.values)
	return out
}

// Data returns an N×1 buffer sharing the series storage.
func (s *ScalarSeries) Data() mat.Matrix {
	return &Buffer{rows: len(s.values), cols: 1, data: s.values}
}

// Clone returns a deep copy.
func (s *ScalarSeries) Clone() *ScalarSeries {
	v := make([]float64, len(s.values))
	copy(v, s.values)
	return &ScalarSeries{base: s.base.clone(), values: v}
}

// Slice returns a copy of samples [start, end).
func (s *ScalarSeries) Slice(start, end int) (*ScalarSeries, error) {
	b, err := s.base.slice(start, end)
	if err != nil {
		return nil, err
	}
	v := make([]float64, end-start)
	copy(v, s.values[start:end])
	return &ScalarSeries{base: b, values: v}, nil
}
