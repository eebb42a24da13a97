package timeseries

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Buffer is a dense row-major 2-D numeric buffer. It satisfies mat.Matrix
// and, unlike mat.Dense, may have zero rows or columns, which is what an
// empty series needs.
type Buffer struct {
	rows, cols int
	data       []float64
}

var _ mat.Matrix = (*Buffer)(nil)

// NewBuffer wraps data as a rows×cols row-major buffer. The slice is used
// as backing storage, not copied.
func NewBuffer(rows, cols int, data []float64) (*Buffer, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%w: buffer dims %dx%d", ErrInvalidArgument, rows, cols)
	}
	if data == nil {
		data = make([]float64, rows*cols)
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("%w: %d values for a %dx%d buffer", ErrShapeMismatch, len(data), rows, cols)
	}
	return &Buffer{rows: rows, cols: cols, data: data}, nil
}

// BufferFromRows copies a slice of equal-length rows into a Buffer.
func BufferFromRows(rows [][]float64) (*Buffer, error) {
	if len(rows) == 0 {
		return &Buffer{}, nil
	}
	cols := len(rows[0])
	data := make([]float64, 0, len(rows)*cols)
	for i, r := range rows {
		if len(r) != cols {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d", ErrShapeMismatch, i, len(r), cols)
		}
		data = append(data, r...)
	}
	return &Buffer{rows: len(rows), cols: cols, data: data}, nil
}

// BufferFromColumns copies a slice of equal-length columns into a Buffer.
// Column j becomes column j of the result.
func BufferFromColumns(columns [][]float64) (*Buffer, error) {
	if len(columns) == 0 {
		return &Buffer{}, nil
	}
	rows := len(columns[0])
	cols := len(columns)
	data := make([]float64, rows*cols)
	for j, c := range columns {
		if len(c) != rows {
			return nil, fmt.Errorf("%w: column %d has %d values, want %d", ErrShapeMismatch, j, len(c), rows)
		}
		for i, v := range c {
			data[i*cols+j] = v
		}
	}
	return &Buffer{rows: rows, cols: cols, data: data}, nil
}

// Dims returns the number of rows and columns.
func (b *Buffer) Dims() (r, c int) {
	return b.rows, b.cols
}

// At returns the element at row i, column j. It panics with
// mat.ErrIndexOutOfRange like the gonum matrix types.
func (b *Buffer) At(i, j int) float64 {
	if i < 0 || i >= b.rows || j < 0 || j >= b.cols {
		panic(mat.ErrIndexOutOfRange)
	}
	return b.data[i*b.cols+j]
}

// T returns the implicit transpose of the buffer.
func (b *Buffer) T() mat.Matrix {
	return mat.Transpose{Matrix: b}
}

// RawRowView returns row i without copying.
func (b *Buffer) RawRowView(i int) []float64 {
	if i < 0 || i >= b.rows {
		panic(mat.ErrRowAccess)
	}
	return b.data[i*b.cols : (i+1)*b.cols]
}

// Dense returns a *mat.Dense sharing the buffer storage, or nil when the
// buffer has a zero dimension (mat.Dense cannot represent it).
func (b *Buffer) Dense() *mat.Dense {
	if b.rows == 0 || b.cols == 0 {
		return nil
	}
	return mat.NewDense(b.rows, b.cols, b.data)
}
