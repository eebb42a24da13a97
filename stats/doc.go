// Package stats provides summaries of time series used to lay them out for
// display.
//
// # Axis Analysis
//
// Find the extent and resolution of a coordinate axis, for example before
// resampling a spectrogram onto a regular grid:
//
//	props, err := stats.AnalyzeAxis(times, nil)
//
//	opts := stats.DefaultAxisOptions()
//	opts.IsLog = true
//	opts.CheckMedian = true
//	props, err = stats.AnalyzeAxis(energies, opts)
//
// # Value Bounds
//
// Compute NaN-skipping extrema and means:
//
//	b := stats.ValueBounds(series)        // over every value
//	perComponent := stats.ComponentBounds(series)
//	means := stats.ComponentMeans(series)
package stats
