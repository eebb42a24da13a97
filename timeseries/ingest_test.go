package timeseries

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// powerColumns returns a 10x3 matrix whose column j is arange(10)*10^j.
func powerColumns() *mat.Dense {
	m := mat.NewDense(10, 3, nil)
	for i := 0; i < 10; i++ {
		for j := 0; j < 3; j++ {
			m.Set(i, j, float64(i)*math.Pow(10, float64(j)))
		}
	}
	return m
}

func TestOrient(t *testing.T) {
	tests := []struct {
		name       string
		n, width   int
		rows, cols int
		want       Layout
		wantErr    bool
	}{
		{"time major", 10, anyWidth, 10, 3, TimeMajor, false},
		{"component major", 10, anyWidth, 3, 10, ComponentMajor, false},
		{"square", 4, anyWidth, 4, 4, TimeMajor, false},
		{"neither", 10, anyWidth, 5, 3, 0, true},
		{"fixed width time major", 10, 3, 10, 3, TimeMajor, false},
		{"fixed width component major", 10, 3, 3, 10, ComponentMajor, false},
		{"fixed width square", 3, 3, 3, 3, TimeMajor, false},
		{"fixed width wrong columns", 3, 3, 3, 5, 0, true},
		{"fixed width both wrong", 10, 3, 10, 4, 0, true},
		{"empty", 0, anyWidth, 0, 10, TimeMajor, false},
		{"empty transposed", 0, anyWidth, 10, 0, ComponentMajor, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := orient(tt.n, tt.width, tt.rows, tt.cols)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrShapeMismatch)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVectorScenario(t *testing.T) {
	v, err := NewVectorFromMatrix(arange(10), powerColumns())
	require.NoError(t, err)
	require.Equal(t, 10, v.Len())

	for i := 0; i < 10; i++ {
		p, err := v.At(i)
		require.NoError(t, err)
		assert.Equal(t, float64(i), p.X)
		assert.Equal(t, float64(i*10), p.Y)
		assert.Equal(t, float64(i*100), p.Z)
	}
}

func TestVectorOrientationNormalization(t *testing.T) {
	m := powerColumns()

	rowMajor, err := NewVectorFromMatrix(arange(10), m)
	require.NoError(t, err)
	colMajor, err := NewVectorFromMatrix(arange(10), mat.DenseCopyOf(m.T()))
	require.NoError(t, err)

	assert.Equal(t, TimeMajor, rowMajor.Layout())
	assert.Equal(t, ComponentMajor, colMajor.Layout())
	assert.Equal(t, rowMajor.Values(), colMajor.Values())
	assert.Equal(t, []int{10}, colMajor.Shape())
}

func TestVectorMutatesInPlace(t *testing.T) {
	v, err := NewVector(4)
	require.NoError(t, err)

	p, err := v.At(2)
	require.NoError(t, err)
	p.X = 1.5
	p.Z = -2

	again, err := v.At(2)
	require.NoError(t, err)
	assert.Equal(t, Vector{X: 1.5, Y: 0, Z: -2}, *again)

	require.NoError(t, v.Set(3, Vector{1, 2, 3}))
	assert.Equal(t, Vector{1, 2, 3}, v.Values()[3])
}

func TestVectorMismatch(t *testing.T) {
	tests := []struct {
		name   string
		time   []float64
		values mat.Matrix
	}{
		{"time 10 values 5x3", arange(10), mat.NewDense(5, 3, nil)},
		{"width 4", arange(10), mat.NewDense(10, 4, nil)},
		{"transposed width 2", arange(10), mat.NewDense(2, 10, nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewVectorFromMatrix(tt.time, tt.values)
			assert.ErrorIs(t, err, ErrShapeMismatch)
		})
	}

	_, err := NewVectorFromSlices(arange(2), []Vector{{}})
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestMultiComponentNaNLocality(t *testing.T) {
	data := arange(12)
	data[1*4+2] = math.NaN()
	m := mat.NewDense(3, 4, data)

	for _, src := range []mat.Matrix{m, mat.DenseCopyOf(m.T())} {
		mc, err := NewMultiComponentFromMatrix(arange(3), src)
		require.NoError(t, err)
		require.Equal(t, 4, mc.Width())

		for i := 0; i < 3; i++ {
			for j := 0; j < 4; j++ {
				v, err := mc.At(i, j)
				require.NoError(t, err)
				if i == 1 && j == 2 {
					assert.True(t, math.IsNaN(v))
					continue
				}
				assert.Equal(t, float64(i*4+j), v)
			}
		}
	}
}

func TestMultiComponentRowView(t *testing.T) {
	mc, err := NewMultiComponent(3, 5)
	require.NoError(t, err)

	row, err := mc.Row(1)
	require.NoError(t, err)
	assert.Equal(t, 5, row.Len())
	require.NoError(t, row.Set(4, 7))

	v, err := mc.At(1, 4)
	require.NoError(t, err)
	assert.Equal(t, 7.0, v)

	next, err := mc.Row(2)
	require.NoError(t, err)
	assert.Equal(t, make([]float64, 5), next.Values())
}

func TestMultiComponentMismatch(t *testing.T) {
	_, err := NewMultiComponentFromMatrix(arange(10), mat.NewDense(5, 3, nil))
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestIngestDoesNotAlias(t *testing.T) {
	m := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	mc, err := NewMultiComponentFromMatrix([]float64{0, 1}, m)
	require.NoError(t, err)

	m.Set(0, 0, 100)
	v, _ := mc.At(0, 0)
	assert.Equal(t, 1.0, v)
}

func TestSpectrogramFromMatrix(t *testing.T) {
	y := []float64{10, 100, 1000, 10000}
	values := mat.NewDense(4, 6, arange(24)) // bins x time

	sp, err := NewSpectrogramFromMatrix(arange(6), y, values, nil)
	require.NoError(t, err)

	assert.Equal(t, []int{4, 6}, sp.Shape())
	assert.Equal(t, ComponentMajor, sp.Layout())
	assert.Equal(t, 6, sp.Len())
	assert.Equal(t, 4, sp.Width())
	assert.Equal(t, y, sp.Y().Values())

	v, err := sp.At(2, 3)
	require.NoError(t, err)
	assert.Equal(t, values.At(3, 2), v)

	meta := sp.Meta()
	assert.True(t, math.IsNaN(meta.MinSampling))
	assert.True(t, meta.YIsLog)
}

func TestSpectrogramMeta(t *testing.T) {
	meta := &SpectrogramMeta{MinSampling: 1, MaxSampling: 4, YIsLog: false}
	sp, err := NewSpectrogramFromMatrix(arange(2), []float64{1, 2}, mat.NewDense(2, 2, nil), meta)
	require.NoError(t, err)
	assert.Equal(t, *meta, sp.Meta())

	cp := sp.Clone()
	sp.SetMeta(*DefaultSpectrogramMeta())
	assert.Equal(t, *meta, cp.Meta())
}

func TestSpectrogramAuxAxisMismatch(t *testing.T) {
	_, err := NewSpectrogramFromMatrix(arange(6), []float64{1, 2, 3}, mat.NewDense(6, 4, nil), nil)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestSpectrogramEmptyKeepsAxis(t *testing.T) {
	sp, err := NewSpectrogram(0, 10)
	require.NoError(t, err)
	assert.Equal(t, 0, sp.Len())

	y, err := sp.Axis(1)
	require.NoError(t, err)
	assert.Equal(t, 10, y.Len())
	assert.Equal(t, "y", y.Name)

	require.NoError(t, y.Set(9, 3.5))
	got, err := sp.AxisByName("y")
	require.NoError(t, err)
	v, _ := got.At(9)
	assert.Equal(t, 3.5, v)
}

func TestSpectrogramHigherRank(t *testing.T) {
	sp, err := NewSpectrogram(2, 3, 4)
	require.NoError(t, err)
	assert.Equal(t, 12, sp.Width())

	a2, err := sp.AxisByName("axis2")
	require.NoError(t, err)
	assert.Equal(t, 4, a2.Len())
}

func TestRoundTripThroughAccessors(t *testing.T) {
	data := arange(30)
	data[7] = math.NaN()
	orig, err := NewMultiComponentFromMatrix(arange(10), mat.NewDense(3, 10, data))
	require.NoError(t, err)

	again, err := NewMultiComponentFromMatrix(orig.T().Values(), orig.Data())
	require.NoError(t, err)

	assert.Equal(t, []int{3, 10}, orig.Shape())
	assert.Equal(t, []int{10, 3}, again.Shape())
	assert.Equal(t, orig.Width(), again.Width())
	assert.Equal(t, orig.T().Values(), again.T().Values())
	for i := 0; i < orig.Len(); i++ {
		a, _ := orig.Row(i)
		b, _ := again.Row(i)
		for j := 0; j < a.Len(); j++ {
			x, _ := a.At(j)
			y, _ := b.At(j)
			if math.IsNaN(x) {
				assert.True(t, math.IsNaN(y))
				continue
			}
			assert.Equal(t, x, y)
		}
	}
}

func TestDataSharesStorage(t *testing.T) {
	mc, err := NewMultiComponent(2, 2)
	require.NoError(t, err)

	d := mc.Data().(*Buffer).Dense()
	require.NotNil(t, d)
	d.Set(1, 1, 9)

	v, _ := mc.At(1, 1)
	assert.Equal(t, 9.0, v)
}

func TestShapeKeepsInputOrder(t *testing.T) {
	tests := []struct {
		name   string
		values mat.Matrix
		shape  []int
		layout Layout
	}{
		{"time major", mat.NewDense(10, 3, nil), []int{10, 3}, TimeMajor},
		{"component major", mat.NewDense(3, 10, nil), []int{3, 10}, ComponentMajor},
		{"square", mat.NewDense(10, 10, nil), []int{10, 10}, TimeMajor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mc, err := NewMultiComponentFromMatrix(arange(10), tt.values)
			require.NoError(t, err)
			assert.Equal(t, tt.shape, mc.Shape())
			assert.Equal(t, tt.layout, mc.Layout())
			assert.Equal(t, 10, mc.Len())
		})
	}
}

func TestSliceKeepsInputOrder(t *testing.T) {
	sp, err := NewSpectrogramFromMatrix(arange(10), []float64{1, 10}, mat.NewDense(2, 10, arange(20)), nil)
	require.NoError(t, err)

	sub, err := sp.Slice(2, 5)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, sub.Shape())
	assert.Equal(t, 3, sub.Len())

	v, err := sub.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 12.0, v)
}

func TestMultiComponentNeedsComponents(t *testing.T) {
	tests := []struct {
		name  string
		build func() error
	}{
		{"zero width shape", func() error { _, err := NewMultiComponent(3, 0); return err }},
		{"zero inner dim", func() error { _, err := NewMultiComponent(3, 2, 0); return err }},
		{"zero width buffer", func() error { _, err := NewMultiComponentFromMatrix(arange(3), &Buffer{rows: 3}); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.build(), ErrInvalidArgument)
		})
	}

	empty, err := NewMultiComponent(0, 3)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Len())
}
