// Package sciqlopcore holds the data core of a space-physics time-series
// browser: typed time-series containers, axis statistics and a registry of
// data providers.
//
// # Packages
//
//   - timeseries: Scalar, Vector, MultiComponent and Spectrogram series,
//     orientation-normalizing construction from gonum matrices and frames,
//     time ranges and CSV frames
//   - stats: axis resolution analysis and NaN-aware value bounds
//   - provider: product registry dispatching range requests to providers
//
// # Quick Start
//
// Build a vector series from a component-major buffer:
//
//	buf, _ := timeseries.BufferFromRows([][]float64{
//		{1, 2, 3, 4}, // x
//		{5, 6, 7, 8}, // y
//		{9, 10, 11, 12}, // z
//	})
//	v, _ := timeseries.NewVectorFromMatrix([]float64{0, 1, 2, 3}, buf)
//	p, _ := v.At(2) // vector(3, 7, 11)
//
// Build a spectrogram with its frequency axis:
//
//	sp, _ := timeseries.NewSpectrogramFromMatrix(t, freqs, m, nil)
//	props, _ := stats.AnalyzeSpectrogramY(sp)
//
// Serve series through a registry:
//
//	reg := provider.NewRegistry(logger)
//	reg.Register(myProvider, provider.Product{Path: "/mms/b", Kind: timeseries.KindVector})
//	s, _ := reg.Fetch(ctx, "/mms/b", timeseries.NewRange(start, stop))
package sciqlopcore
