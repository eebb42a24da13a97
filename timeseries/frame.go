package timeseries

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Frame is a table of numeric columns with an explicit row index. Series
// built from a frame take the index as their time axis and the body as their
// value buffer.
//
// Frame satisfies mat.Matrix by delegating to its body.
type Frame struct {
	Index   []float64
	Columns []string
	Body    mat.Matrix
}

var _ mat.Matrix = (*Frame)(nil)

// NewFrame checks that index and column labels agree with the body.
// Column labels are optional.
func NewFrame(index []float64, columns []string, body mat.Matrix) (*Frame, error) {
	if body == nil {
		return nil, fmt.Errorf("%w: nil frame body", ErrInvalidArgument)
	}
	rows, cols := body.Dims()
	if rows != len(index) {
		return nil, fmt.Errorf("%w: %d index entries for %d rows", ErrShapeMismatch, len(index), rows)
	}
	if columns != nil && len(columns) != cols {
		return nil, fmt.Errorf("%w: %d column labels for %d columns", ErrShapeMismatch, len(columns), cols)
	}
	return &Frame{Index: index, Columns: columns, Body: body}, nil
}

func checkFrame(f *Frame) error {
	if f == nil {
		return fmt.Errorf("%w: nil frame", ErrInvalidArgument)
	}
	return nil
}

// Dims returns the dimensions of the body.
func (f *Frame) Dims() (r, c int) {
	return f.Body.Dims()
}

// At returns the body element at row i, column j.
func (f *Frame) At(i, j int) float64 {
	return f.Body.At(i, j)
}

// T returns the transposed body. The index does not follow.
func (f *Frame) T() mat.Matrix {
	return f.Body.T()
}

// Column returns a copy of column j.
func (f *Frame) Column(j int) ([]float64, error) {
	rows, cols := f.Body.Dims()
	if j < 0 || j >= cols {
		return nil, fmt.Errorf("%w: column %d of %d", ErrIndexOutOfRange, j, cols)
	}
	return mat.Col(make([]float64, rows), j, f.Body), nil
}

// ColumnIndex returns the position of the named column, or -1.
func (f *Frame) ColumnIndex(name string) int {
	for j, c := range f.Columns {
		if c == name {
			return j
		}
	}
	return -1
}
