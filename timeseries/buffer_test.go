package timeseries

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestNewBuffer(t *testing.T) {
	b, err := NewBuffer(2, 3, nil)
	require.NoError(t, err)
	r, c := b.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)

	_, err = NewBuffer(2, 3, make([]float64, 5))
	assert.ErrorIs(t, err, ErrShapeMismatch)

	_, err = NewBuffer(-1, 3, nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	empty, err := NewBuffer(0, 10, nil)
	require.NoError(t, err)
	assert.Nil(t, empty.Dense())
}

func TestBufferFromRowsAndColumns(t *testing.T) {
	rows, err := BufferFromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	cols, err := BufferFromColumns([][]float64{{1, 4}, {2, 5}, {3, 6}})
	require.NoError(t, err)

	assert.True(t, mat.Equal(rows, cols))
	assert.Equal(t, []float64{4, 5, 6}, rows.RawRowView(1))
	assert.Equal(t, 6.0, rows.T().At(2, 1))

	_, err = BufferFromRows([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, ErrShapeMismatch)
	_, err = BufferFromColumns([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestBufferAtPanics(t *testing.T) {
	b, err := NewBuffer(1, 1, []float64{1})
	require.NoError(t, err)
	assert.Panics(t, func() { b.At(1, 0) })
}

func TestNewFrame(t *testing.T) {
	body := mat.NewDense(2, 2, []float64{1, 2, 3, 4})

	_, err := NewFrame([]float64{0}, nil, body)
	assert.ErrorIs(t, err, ErrShapeMismatch)

	_, err = NewFrame([]float64{0, 1}, []string{"a"}, body)
	assert.ErrorIs(t, err, ErrShapeMismatch)

	_, err = NewFrame([]float64{0, 1}, nil, nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	f, err := NewFrame([]float64{0, 1}, []string{"a", "b"}, body)
	require.NoError(t, err)
	_, err = f.Column(2)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.Equal(t, -1, f.ColumnIndex("c"))
}
