package timeseries

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// TimeAxisName is the name of axis 0 of every series.
const TimeAxisName = "time"

// Series is the behaviour shared by every kind of time series.
type Series interface {
	// Kind reports the per-sample payload.
	Kind() Kind
	// Len returns the number of samples N.
	Len() int
	// Shape returns the shape as constructed: (N,), (N, d1, ...), or
	// (W, N) for a 2-D series built from a component-major buffer.
	Shape() []int
	// T returns the time axis.
	T() *Axis
	// Axis returns axis k; axis 0 is time.
	Axis(k int) (*Axis, error)
	// Data returns the values as a time-major matrix with one row per sample.
	Data() mat.Matrix
}

// base holds the axes and shape common to all kinds. The shape keeps the
// dimension order of the constructor input.
type base struct {
	axes   []*Axis
	shape  []int
	layout Layout
}

func newBase(time []float64, shape []int, layout Layout) base {
	s := make([]int, len(shape))
	copy(s, shape)
	return base{axes: []*Axis{newAxis(TimeAxisName, time)}, shape: s, layout: layout}
}

func (b *base) Len() int {
	return b.axes[0].Len()
}

// timeDim is the position of the time dimension in shape.
func (b *base) timeDim() int {
	if b.layout == ComponentMajor && len(b.shape) == 2 {
		return 1
	}
	return 0
}

func (b *base) Shape() []int {
	s := make([]int, len(b.shape))
	copy(s, b.shape)
	return s
}

func (b *base) T() *Axis {
	return b.axes[0]
}

func (b *base) Axis(k int) (*Axis, error) {
	if k < 0 || k >= len(b.axes) {
		return nil, fmt.Errorf("%w: axis %d, series has %d", ErrIndexOutOfRange, k, len(b.axes))
	}
	return b.axes[k], nil
}

// Layout reports how the value buffer was laid out at construction.
// Series built from a size or shape are TimeMajor.
func (b *base) Layout() Layout {
	return b.layout
}

func (b *base) clone() base {
	axes := make([]*Axis, len(b.axes))
	for i, a := range b.axes {
		axes[i] = a.clone()
	}
	return base{axes: axes, shape: b.Shape(), layout: b.layout}
}

func (b *base) slice(start, end int) (base, error) {
	if err := checkSlice(start, end, b.Len()); err != nil {
		return base{}, err
	}
	out := b.clone()
	out.axes[0] = b.axes[0].slice(start, end)
	out.shape[b.timeDim()] = end - start
	return out, nil
}

func checkSlice(start, end, n int) error {
	if start < 0 || end > n || start > end {
		return fmt.Errorf("%w: slice [%d:%d] of %d samples", ErrIndexOutOfRange, start, end, n)
	}
	return nil
}

func checkIndex(i, n int) error {
	if i < 0 || i >= n {
		return fmt.Errorf("%w: sample %d, series has %d", ErrIndexOutOfRange, i, n)
	}
	return nil
}

func checkLength(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: negative length %d", ErrInvalidArgument, n)
	}
	return nil
}

// checkShape validates an explicit shape of at least two dimensions and
// returns the flattened per-sample width.
func checkShape(shape []int) (int, error) {
	if len(shape) < 2 {
		return 0, fmt.Errorf("%w: shape %v needs at least 2 dimensions", ErrInvalidArgument, shape)
	}
	width := 1
	for _, d := range shape {
		if d < 0 {
			return 0, fmt.Errorf("%w: negative dimension in shape %v", ErrInvalidArgument, shape)
		}
	}
	for _, d := range shape[1:] {
		width *= d
	}
	return width, nil
}

// checkWidth rejects samples without components.
func checkWidth(width int) error {
	if width < 1 {
		return fmt.Errorf("%w: %d components per sample", ErrInvalidArgument, width)
	}
	return nil
}

// IndexRange returns the half-open sample interval [lo, hi) whose timestamps
// fall inside r. The time axis must be sorted in increasing order.
func IndexRange(t *Axis, r Range) (lo, hi int) {
	lo = sort.SearchFloat64s(t.data, r.Start)
	hi = sort.Search(len(t.data), func(i int) bool { return t.data[i] > r.Stop })
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

// Copy returns a deep copy of s, or nil for a series of unknown type.
func Copy(s Series) Series {
	switch ts := s.(type) {
	case *ScalarSeries:
		return ts.Clone()
	case *VectorSeries:
		return ts.Clone()
	case *MultiComponentSeries:
		return ts.Clone()
	case *SpectrogramSeries:
		return ts.Clone()
	}
	return nil
}

// Between returns the samples of s whose timestamps fall inside r.
func Between(s Series, r Range) (Series, error) {
	if !r.IsValid() {
		return nil, fmt.Errorf("%w: range %s", ErrInvalidArgument, r)
	}
	lo, hi := IndexRange(s.T(), r)
	switch ts := s.(type) {
	case *ScalarSeries:
		sub, err := ts.Slice(lo, hi)
		if err != nil {
			return nil, err
		}
		return sub, nil
	case *VectorSeries:
		sub, err := ts.Slice(lo, hi)
		if err != nil {
			return nil, err
		}
		return sub, nil
	case *MultiComponentSeries:
		sub, err := ts.Slice(lo, hi)
		if err != nil {
			return nil, err
		}
		return sub, nil
	case *SpectrogramSeries:
		sub, err := ts.Slice(lo, hi)
		if err != nil {
			return nil, err
		}
		return sub, nil
	}
	return nil, fmt.Errorf("%w: unsupported series %T", ErrInvalidArgument, s)
}
