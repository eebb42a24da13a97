package timeseries

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Vector is a three-component sample.
type Vector struct {
	X, Y, Z float64
}

func (v Vector) String() string {
	return fmt.Sprintf("vector(%g, %g, %g)", v.X, v.Y, v.Z)
}

// VectorSeries holds one Vector per timestamp.
type VectorSeries struct {
	base
	values []Vector
}

// NewVector creates a zero-filled vector series of n samples.
func NewVector(n int) (*VectorSeries, error) {
	if err := checkLength(n); err != nil {
		return nil, err
	}
	return &VectorSeries{
		base:   newBase(make([]float64, n), []int{n}, TimeMajor),
		values: make([]Vector, n),
	}, nil
}

// NewVectorFromSlices pairs timestamps with vectors. Both slices are copied.
func NewVectorFromSlices(time []float64, values []Vector) (*VectorSeries, error) {
	if len(time) != len(values) {
		return nil, fmt.Errorf("%w: %d timestamps for %d vectors", ErrShapeMismatch, len(time), len(values))
	}
	v := make([]Vector, len(values))
	copy(v, values)
	return &VectorSeries{
		base:   newBase(time, []int{len(time)}, TimeMajor),
		values: v,
	}, nil
}

// NewVectorFromMatrix builds a vector series from an (N, 3) or (3, N)
// buffer. Column (or row) 0, 1 and 2 become X, Y and Z.
func NewVectorFromMatrix(time []float64, values mat.Matrix) (*VectorSeries, error) {
	s, err := ingest(len(time), values, 3)
	if err != nil {
		return nil, err
	}
	v := make([]Vector, s.n)
	for i := range v {
		row := s.data[i*3 : i*3+3]
		v[i] = Vector{X: row[0], Y: row[1], Z: row[2]}
	}
	return &VectorSeries{
		base:   newBase(time, []int{s.n}, s.layout),
		values: v,
	}, nil
}

// NewVectorFromFrame uses the frame index as time and its three columns as
// X, Y and Z.
func NewVectorFromFrame(f *Frame) (*VectorSeries, error) {
	if err := checkFrame(f); err != nil {
		return nil, err
	}
	return NewVectorFromMatrix(f.Index, f.Body)
}

func (s *VectorSeries) Kind() Kind {
	return KindVector
}

// At returns sample i. The pointer aliases the series storage, so
// assigning to its fields updates the series.
func (s *VectorSeries) At(i int) (*Vector, error) {
	if err := checkIndex(i, len(s.values)); err != nil {
		return nil, err
	}
	return &s.values[i], nil
}

// Set overwrites sample i.
func (s *VectorSeries) Set(i int, v Vector) error {
	if err := checkIndex(i, len(s.values)); err != nil {
		return err
	}
	s.values[i] = v
	return nil
}

// Values returns a copy of the samples.
func (s *VectorSeries) Values() []Vector {
	out := make([]Vector, len(s.values))
	copy(out, s.values)
	return out
}

// Data returns an N×3 copy of the samples.
func (s *VectorSeries) Data() mat.Matrix {
	data := make([]float64, 0, 3*len(s.values))
	for _, v := range s.values {
		data = append(data, v.X, v.Y, v.Z)
	}
	return &Buffer{rows: len(s.values), cols: 3, data: data}
}

// Clone returns a deep copy.
func (s *VectorSeries) Clone() *VectorSeries {
	v := make([]Vector, len(s.values))
	copy(v, s.values)
	return &VectorSeries{base: s.base.clone(), values: v}
}

// Slice returns a copy of samples [start, end).
func (s *VectorSeries) Slice(start, end int) (*VectorSeries, error) {
	b, err := s.base.slice(start, end)
	if err != nil {
		return nil, err
	}
	v := make([]Vector, end-start)
	copy(v, s.values[start:end])
	return &VectorSeries{base: b, values: v}, nil
}
