package timeseries

import "fmt"

// Axis is a named coordinate axis. Axis 0 of every series is the time axis;
// spectrograms carry auxiliary axes (frequency or energy bins) after it.
//
// An Axis returned by a series aliases that series' storage.
type Axis struct {
	Name string
	data []float64
}

func newAxis(name string, values []float64) *Axis {
	data := make([]float64, len(values))
	copy(data, values)
	return &Axis{Name: name, data: data}
}

// Len returns the number of coordinates on the axis.
func (a *Axis) Len() int {
	return len(a.data)
}

// At returns the i-th coordinate.
func (a *Axis) At(i int) (float64, error) {
	if i < 0 || i >= len(a.data) {
		return 0, fmt.Errorf("%w: axis %q index %d, length %d", ErrIndexOutOfRange, a.Name, i, len(a.data))
	}
	return a.data[i], nil
}

// Set overwrites the i-th coordinate.
func (a *Axis) Set(i int, v float64) error {
	if i < 0 || i >= len(a.data) {
		return fmt.Errorf("%w: axis %q index %d, length %d", ErrIndexOutOfRange, a.Name, i, len(a.data))
	}
	a.data[i] = v
	return nil
}

// Values returns a copy of the coordinates.
func (a *Axis) Values() []float64 {
	out := make([]float64, len(a.data))
	copy(out, a.data)
	return out
}

func (a *Axis) clone() *Axis {
	return newAxis(a.Name, a.data)
}

func (a *Axis) slice(start, end int) *Axis {
	return newAxis(a.Name, a.data[start:end])
}
