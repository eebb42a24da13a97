// Package timeseries provides typed time series containers.
//
// Four kinds of series share a time axis and differ in what each sample
// holds:
//
//   - ScalarSeries: one real value
//   - VectorSeries: a Vector with X, Y and Z components
//   - MultiComponentSeries: a fixed number of components
//   - SpectrogramSeries: a spectrum, plus the bin coordinates on an
//     auxiliary axis
//
// # Creating a Series
//
// Allocate a zero-filled series from a size or a shape:
//
//	s, err := timeseries.NewScalar(10)
//	sp, err := timeseries.NewSpectrogram(0, 32) // no samples, 32 bins
//
// Or pair timestamps with values:
//
//	s, err := timeseries.NewScalarFromSlices([]float64{0, 1, 2}, []float64{1, 2, 3})
//
// # Value Buffers
//
// The 2-D kinds ingest any gonum mat.Matrix. The buffer may be laid out one
// sample per row, (N, W), or one component per row, (W, N); the dimension
// matching the number of timestamps is taken as time and the other is
// transposed to the front. A square buffer is read one sample per row. When
// neither dimension fits, construction fails with ErrShapeMismatch.
//
//	m := mat.NewDense(3, 10, data) // x, y and z rows
//	v, err := timeseries.NewVectorFromMatrix(t, m)
//	p, _ := v.At(4)
//	p.X = 0 // writes through to the series
//
// Buffer adapts plain slices, and Frame pairs a buffer with a row index
// (for example from LoadFrameCSV):
//
//	f, err := timeseries.LoadFrameCSV("b_gse.csv", nil)
//	mc, err := timeseries.NewMultiComponentFromFrame(f)
//
// NaN values are stored as given.
//
// # Errors
//
// Constructors and accessors return errors wrapping ErrInvalidArgument,
// ErrShapeMismatch or ErrIndexOutOfRange; test them with errors.Is.
//
// # Concurrency
//
// Series are plain values without internal locking. Share a series between
// goroutines only under external synchronization.
package timeseries
