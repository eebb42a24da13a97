package timeseries

import "fmt"

// Row is a view over the components of one sample of a 2-D series.
// Writes through a Row update the series.
type Row struct {
	data []float64
}

// Len returns the number of components.
func (r Row) Len() int {
	return len(r.data)
}

// At returns component j.
func (r Row) At(j int) (float64, error) {
	if j < 0 || j >= len(r.data) {
		return 0, fmt.Errorf("%w: component %d, row has %d", ErrIndexOutOfRange, j, len(r.data))
	}
	return r.data[j], nil
}

// Set overwrites component j.
func (r Row) Set(j int, v float64) error {
	if j < 0 || j >= len(r.data) {
		return fmt.Errorf("%w: component %d, row has %d", ErrIndexOutOfRange, j, len(r.data))
	}
	r.data[j] = v
	return nil
}

// Values returns a copy of the components.
func (r Row) Values() []float64 {
	out := make([]float64, len(r.data))
	copy(out, r.data)
	return out
}

// grid is time-major N×W storage shared by the 2-D kinds.
type grid struct {
	data  []float64
	width int
}

func (g *grid) row(i, n int) (Row, error) {
	if err := checkIndex(i, n); err != nil {
		return Row{}, err
	}
	return Row{data: g.data[i*g.width : (i+1)*g.width : (i+1)*g.width]}, nil
}

func (g *grid) buffer(n int) *Buffer {
	return &Buffer{rows: n, cols: g.width, data: g.data}
}

func (g *grid) clone() grid {
	d := make([]float64, len(g.data))
	copy(d, g.data)
	return grid{data: d, width: g.width}
}

func (g *grid) slice(start, end int) grid {
	d := make([]float64, (end-start)*g.width)
	copy(d, g.data[start*g.width:end*g.width])
	return grid{data: d, width: g.width}
}
