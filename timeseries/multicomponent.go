package timeseries

import "gonum.org/v1/gonum/mat"

// MultiComponentSeries holds a fixed number of components per timestamp.
type MultiComponentSeries struct {
	base
	values grid
}

// NewMultiComponent creates a zero-filled series of the given shape. The
// first dimension is the number of samples; the remaining dimensions are
// flattened into the components of each sample.
func NewMultiComponent(shape ...int) (*MultiComponentSeries, error) {
	width, err := checkShape(shape)
	if err != nil {
		return nil, err
	}
	if err := checkWidth(width); err != nil {
		return nil, err
	}
	n := shape[0]
	return &MultiComponentSeries{
		base:   newBase(make([]float64, n), shape, TimeMajor),
		values: grid{data: make([]float64, n*width), width: width},
	}, nil
}

// NewMultiComponentFromMatrix builds a series from an (N, W) or (W, N)
// buffer, where N is the number of timestamps.
func NewMultiComponentFromMatrix(time []float64, values mat.Matrix) (*MultiComponentSeries, error) {
	s, err := ingest(len(time), values, anyWidth)
	if err != nil {
		return nil, err
	}
	if err := checkWidth(s.width); err != nil {
		return nil, err
	}
	return &MultiComponentSeries{
		base:   newBase(time, s.dims(), s.layout),
		values: grid{data: s.data, width: s.width},
	}, nil
}

// NewMultiComponentFromFrame uses the frame index as time and one component
// per column.
func NewMultiComponentFromFrame(f *Frame) (*MultiComponentSeries, error) {
	if err := checkFrame(f); err != nil {
		return nil, err
	}
	return NewMultiComponentFromMatrix(f.Index, f.Body)
}

func (s *MultiComponentSeries) Kind() Kind {
	return KindMultiComponent
}

// Width returns the number of components per sample.
func (s *MultiComponentSeries) Width() int {
	return s.values.width
}

// Row returns a view over the components of sample i.
func (s *MultiComponentSeries) Row(i int) (Row, error) {
	return s.values.row(i, s.Len())
}

// At returns component j of sample i.
func (s *MultiComponentSeries) At(i, j int) (float64, error) {
	r, err := s.Row(i)
	if err != nil {
		return 0, err
	}
	return r.At(j)
}

// Set overwrites component j of sample i.
func (s *MultiComponentSeries) Set(i, j int, v float64) error {
	r, err := s.Row(i)
	if err != nil {
		return err
	}
	return r.Set(j, v)
}

// Data returns an N×W buffer sharing the series storage.
func (s *MultiComponentSeries) Data() mat.Matrix {
	return s.values.buffer(s.Len())
}

// Clone returns a deep copy.
func (s *MultiComponentSeries) Clone() *MultiComponentSeries {
	return &MultiComponentSeries{base: s.base.clone(), values: s.values.clone()}
}

// Slice returns a copy of samples [start, end).
func (s *MultiComponentSeries) Slice(start, end int) (*MultiComponentSeries, error) {
	b, err := s.base.slice(start, end)
	if err != nil {
		return nil, err
	}
	return &MultiComponentSeries{base: b, values: s.values.slice(start, end)}, nil
}
