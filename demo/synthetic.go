package main

import (
	"context"
	"fmt"
	"math"

	"github.com/sciqlop/sciqlopcore/provider"
	"github.com/sciqlop/sciqlopcore/timeseries"
)

// synthetic serves analytic signals sampled every step seconds. The product
// metadata "type" selects the kind of series.
type synthetic struct {
	step float64
	bins int
}

func registerSynthetic(reg *provider.Registry, cfg Config) error {
	p := &synthetic{step: cfg.Step, bins: cfg.Bins}
	_, err := reg.Register(p,
		provider.Product{Path: "/synthetic/cos", Kind: timeseries.KindScalar, Metadata: map[string]string{"type": "scalar"}},
		provider.Product{Path: "/synthetic/helix", Kind: timeseries.KindVector, Components: []string{"x", "y", "z"}, Metadata: map[string]string{"type": "vector"}},
		provider.Product{Path: "/synthetic/spectrum", Kind: timeseries.KindSpectrogram, Metadata: map[string]string{"type": "spectrogram"}},
	)
	return err
}

func (p *synthetic) times(r timeseries.Range) []float64 {
	var t []float64
	for x := r.Start; x < r.Stop; x += p.step {
		t = append(t, x)
	}
	return t
}

func (p *synthetic) GetData(ctx context.Context, metadata map[string]string, r timeseries.Range) (timeseries.Series, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !(p.step > 0) {
		return nil, fmt.Errorf("synthetic: step must be positive, got %g", p.step)
	}
	if p.bins < 0 {
		return nil, fmt.Errorf("synthetic: negative bin count %d", p.bins)
	}
	t := p.times(r)

	switch timeseries.ParseKind(metadata["type"]) {
	case timeseries.KindScalar:
		v := make([]float64, len(t))
		for i, x := range t {
			v[i] = math.Cos(x / 600)
		}
		return timeseries.NewScalarFromSlices(t, v)

	case timeseries.KindVector:
		x, y, z := make([]float64, len(t)), make([]float64, len(t)), make([]float64, len(t))
		for i, ts := range t {
			x[i] = math.Cos(ts / 600)
			y[i] = math.Sin(ts / 600)
			z[i] = (ts - r.Start) / r.Delta()
		}
		buf, err := timeseries.BufferFromColumns([][]float64{x, y, z})
		if err != nil {
			return nil, err
		}
		return timeseries.NewVectorFromMatrix(t, buf)

	case timeseries.KindSpectrogram:
		y := make([]float64, p.bins)
		for j := range y {
			y[j] = math.Pow(10, 1+3*float64(j)/float64(max(p.bins-1, 1)))
		}
		data := make([]float64, len(t)*p.bins)
		for i, x := range t {
			for j := range y {
				data[i*p.bins+j] = math.Exp(-float64(j)/4) * (1 + 0.5*math.Sin(x/300))
			}
		}
		buf, err := timeseries.NewBuffer(len(t), p.bins, data)
		if err != nil {
			return nil, err
		}
		meta := timeseries.DefaultSpectrogramMeta()
		meta.MinSampling = p.step
		meta.MaxSampling = p.step
		return timeseries.NewSpectrogramFromMatrix(t, y, buf, meta)
	}
	return nil, provider.ErrKindMismatch
}
