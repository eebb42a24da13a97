package timeseries

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Layout records how a 2-D value buffer was laid out when it was ingested.
type Layout int

const (
	// TimeMajor buffers hold one sample per row: shape (N, W).
	TimeMajor Layout = iota
	// ComponentMajor buffers hold one component per row: shape (W, N).
	// They are transposed on ingestion.
	ComponentMajor
)

func (l Layout) String() string {
	if l == ComponentMajor {
		return "component-major"
	}
	return "time-major"
}

// anyWidth is passed to orient when the component width is not fixed by the
// series kind.
const anyWidth = -1

// orient decides the layout of a rows×cols buffer holding n samples.
//
// With an unknown width, the dimension equal to n is the time dimension and
// rows win a tie. With a known width the other dimension must equal it, and
// the time-major reading is tried first.
func orient(n, width, rows, cols int) (Layout, error) {
	if width == anyWidth {
		switch {
		case rows == n:
			return TimeMajor, nil
		case cols == n:
			return ComponentMajor, nil
		}
		return 0, fmt.Errorf("%w: %d timestamps for a %dx%d value buffer", ErrShapeMismatch, n, rows, cols)
	}
	switch {
	case rows == n && cols == width:
		return TimeMajor, nil
	case cols == n && rows == width:
		return ComponentMajor, nil
	}
	return 0, fmt.Errorf("%w: %d timestamps of width %d for a %dx%d value buffer", ErrShapeMismatch, n, width, rows, cols)
}

// samples is a value buffer normalized to time-major row-major storage.
type samples struct {
	data   []float64
	n      int
	width  int
	layout Layout
}

// ingest is the single entry point turning an arbitrary 2-D buffer into
// time-major storage aligned with n timestamps. The result never aliases m.
func ingest(n int, m mat.Matrix, width int) (samples, error) {
	if m == nil {
		return samples{}, fmt.Errorf("%w: nil value buffer", ErrInvalidArgument)
	}
	rows, cols := m.Dims()
	layout, err := orient(n, width, rows, cols)
	if err != nil {
		return samples{}, err
	}
	w := cols
	if layout == ComponentMajor {
		w = rows
	}
	data := make([]float64, n*w)
	if layout == ComponentMajor {
		copyMatrix(data, m.T())
	} else {
		copyMatrix(data, m)
	}
	return samples{data: data, n: n, width: w, layout: layout}, nil
}

// dims returns the buffer dimensions in the order they were given.
func (s samples) dims() []int {
	if s.layout == ComponentMajor {
		return []int{s.width, s.n}
	}
	return []int{s.n, s.width}
}

func copyMatrix(dst []float64, m mat.Matrix) {
	r, c := m.Dims()
	if r == 0 || c == 0 {
		return
	}
	switch src := m.(type) {
	case *Buffer:
		copy(dst, src.data)
		return
	case mat.RawMatrixer:
		raw := src.RawMatrix()
		for i := 0; i < r; i++ {
			copy(dst[i*c:(i+1)*c], raw.Data[i*raw.Stride:i*raw.Stride+c])
		}
		return
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			dst[i*c+j] = m.At(i, j)
		}
	}
}
