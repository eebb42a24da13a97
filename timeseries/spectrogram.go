package timeseries

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// SpectrogramMeta describes how a spectrogram was sampled.
type SpectrogramMeta struct {
	MinSampling float64 // Smallest time step between spectra (NaN if unknown)
	MaxSampling float64 // Largest time step between spectra (NaN if unknown)
	YIsLog      bool    // Whether the bins are spaced logarithmically
}

// DefaultSpectrogramMeta returns unknown sampling on a logarithmic y axis.
func DefaultSpectrogramMeta() *SpectrogramMeta {
	return &SpectrogramMeta{
		MinSampling: math.NaN(),
		MaxSampling: math.NaN(),
		YIsLog:      true,
	}
}

// SpectrogramSeries holds one spectrum per timestamp along with the bin
// coordinates of the spectrum.
type SpectrogramSeries struct {
	base
	values grid
	meta   SpectrogramMeta
}

// auxAxisName names auxiliary axis k (k >= 1).
func auxAxisName(k int) string {
	if k == 1 {
		return "y"
	}
	return fmt.Sprintf("axis%d", k)
}

// NewSpectrogram creates a zero-filled spectrogram of the given shape. Each
// dimension after the first gets its own zero-filled auxiliary axis.
func NewSpectrogram(shape ...int) (*SpectrogramSeries, error) {
	width, err := checkShape(shape)
	if err != nil {
		return nil, err
	}
	n := shape[0]
	s := &SpectrogramSeries{
		base:   newBase(make([]float64, n), shape, TimeMajor),
		values: grid{data: make([]float64, n*width), width: width},
		meta:   *DefaultSpectrogramMeta(),
	}
	for k, d := range shape[1:] {
		s.axes = append(s.axes, newAxis(auxAxisName(k+1), make([]float64, d)))
	}
	return s, nil
}

// NewSpectrogramFromMatrix builds a spectrogram from timestamps, bin
// coordinates y and an (N, M) or (M, N) buffer with M = len(y).
// A nil meta means DefaultSpectrogramMeta.
func NewSpectrogramFromMatrix(time, y []float64, values mat.Matrix, meta *SpectrogramMeta) (*SpectrogramSeries, error) {
	s, err := ingest(len(time), values, len(y))
	if err != nil {
		return nil, err
	}
	if meta == nil {
		meta = DefaultSpectrogramMeta()
	}
	b := newBase(time, s.dims(), s.layout)
	b.axes = append(b.axes, newAxis(auxAxisName(1), y))
	return &SpectrogramSeries{
		base:   b,
		values: grid{data: s.data, width: s.width},
		meta:   *meta,
	}, nil
}

// NewSpectrogramFromFrame uses the frame index as time and one bin per
// column, with y giving the bin coordinates.
func NewSpectrogramFromFrame(f *Frame, y []float64, meta *SpectrogramMeta) (*SpectrogramSeries, error) {
	if err := checkFrame(f); err != nil {
		return nil, err
	}
	return NewSpectrogramFromMatrix(f.Index, y, f.Body, meta)
}

func (s *SpectrogramSeries) Kind() Kind {
	return KindSpectrogram
}

// Meta returns the sampling description.
func (s *SpectrogramSeries) Meta() SpectrogramMeta {
	return s.meta
}

// SetMeta replaces the sampling description.
func (s *SpectrogramSeries) SetMeta(m SpectrogramMeta) {
	s.meta = m
}

// Y returns the first auxiliary axis.
func (s *SpectrogramSeries) Y() *Axis {
	return s.axes[1]
}

// AxisByName returns the axis with the given name.
func (s *SpectrogramSeries) AxisByName(name string) (*Axis, error) {
	for _, a := range s.axes {
		if a.Name == name {
			return a, nil
		}
	}
	return nil, fmt.Errorf("%w: no axis named %q", ErrIndexOutOfRange, name)
}

// Width returns the number of bins per spectrum.
func (s *SpectrogramSeries) Width() int {
	return s.values.width
}

// Row returns a view over the spectrum of sample i.
func (s *SpectrogramSeries) Row(i int) (Row, error) {
	return s.values.row(i, s.Len())
}

// At returns bin j of sample i.
func (s *SpectrogramSeries) At(i, j int) (float64, error) {
	r, err := s.Row(i)
	if err != nil {
		return 0, err
	}
	return r.At(j)
}

// Set overwrites bin j of sample i.
func (s *SpectrogramSeries) Set(i, j int, v float64) error {
	r, err := s.Row(i)
	if err != nil {
		return err
	}
	return r.Set(j, v)
}

// Data returns an N×M buffer sharing the series storage.
func (s *SpectrogramSeries) Data() mat.Matrix {
	return s.values.buffer(s.Len())
}

// Clone returns a deep copy.
func (s *SpectrogramSeries) Clone() *SpectrogramSeries {
	return &SpectrogramSeries{base: s.base.clone(), values: s.values.clone(), meta: s.meta}
}

// Slice returns a copy of samples [start, end). Auxiliary axes are kept
// whole.
func (s *SpectrogramSeries) Slice(start, end int) (*SpectrogramSeries, error) {
	b, err := s.base.slice(start, end)
	if err != nil {
		return nil, err
	}
	return &SpectrogramSeries{base: b, values: s.values.slice(start, end), meta: s.meta}, nil
}
