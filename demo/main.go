// Package main registers synthetic data providers, fetches every product
// over one time range and reports the shape and bounds of what came back.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"

	"github.com/sciqlop/sciqlopcore/provider"
	"github.com/sciqlop/sciqlopcore/stats"
	"github.com/sciqlop/sciqlopcore/timeseries"
)

// Config is read from SCIQLOP_* environment variables.
type Config struct {
	// Range start and stop, seconds since epoch.
	Start float64 `envconfig:"START" default:"0"`
	Stop  float64 `envconfig:"STOP" default:"3600"`
	// Sampling step of the synthetic products, in seconds.
	Step float64 `envconfig:"STEP" default:"10"`
	// Number of spectrogram bins.
	Bins int `envconfig:"BINS" default:"32"`
	// Optional CSV file loaded as a multicomponent series.
	CSV string `envconfig:"CSV"`
	// Optional JSON report path.
	Output string `envconfig:"OUTPUT"`
	Debug  bool   `envconfig:"DEBUG" default:"false"`
}

// ProductResult holds the summary of one fetched product for JSON export.
type ProductResult struct {
	Path       string                `json:"path"`
	Kind       string                `json:"kind"`
	Shape      []int                 `json:"shape"`
	Bounds     []float64             `json:"bounds"`
	Resolution float64               `json:"time_resolution,omitempty"`
	Components []stats.Bounds        `json:"components,omitempty"`
	YAxis      *stats.AxisProperties `json:"y_axis,omitempty"`
}

func main() {
	var cfg Config
	if err := envconfig.Process("sciqlop", &cfg); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}

	logger, err := newLogger(cfg.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(context.Background(), cfg, logger); err != nil {
		logger.Error("demo failed", zap.Error(err))
		os.Exit(1)
	}
}

// Validate checks the sampling parameters and the range.
func (c Config) Validate() error {
	switch {
	case !(c.Step > 0):
		return fmt.Errorf("SCIQLOP_STEP must be positive, got %g", c.Step)
	case c.Bins < 0:
		return fmt.Errorf("SCIQLOP_BINS must not be negative, got %d", c.Bins)
	case !(c.Stop >= c.Start):
		return fmt.Errorf("SCIQLOP_STOP (%g) is before SCIQLOP_START (%g)", c.Stop, c.Start)
	}
	return nil
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func run(ctx context.Context, cfg Config, logger *zap.Logger) error {
	fmt.Println(strings.Repeat("=", 80))
	fmt.Println("sciqlopcore demonstration - providers and time series")
	fmt.Println(strings.Repeat("=", 80))

	reg := provider.NewRegistry(logger)
	if err := registerSynthetic(reg, cfg); err != nil {
		return err
	}

	rng := timeseries.NewRange(cfg.Start, cfg.Stop)
	fmt.Printf("\nRange: %s (%.0f s)\n", rng, rng.Delta())

	var paths []string
	for _, p := range reg.Products() {
		paths = append(paths, p.Path)
	}
	fetched, err := reg.FetchAll(ctx, paths, rng)
	if err != nil {
		return err
	}

	var results []ProductResult
	for _, path := range paths {
		res := summarize(path, fetched[path])
		results = append(results, res)
		printResult(res)
	}

	if cfg.CSV != "" {
		res, err := summarizeCSV(cfg.CSV)
		if err != nil {
			return err
		}
		results = append(results, res)
		printResult(res)
	}

	if cfg.Output != "" {
		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return err
		}
		if err := os.WriteFile(cfg.Output, data, 0644); err != nil {
			return err
		}
		fmt.Printf("\nExported %d products to %s\n", len(results), cfg.Output)
	}

	fmt.Println(strings.Repeat("=", 80))
	return nil
}

func summarize(path string, s timeseries.Series) ProductResult {
	b := stats.ValueBounds(s)
	res := ProductResult{
		Path:       path,
		Kind:       s.Kind().String(),
		Shape:      s.Shape(),
		Bounds:     []float64{b.Min, b.Max},
		Components: stats.ComponentBounds(s),
	}
	if !b.Valid() {
		res.Bounds = nil
	}
	// JSON has no NaN.
	for _, c := range res.Components {
		if !c.Valid() {
			res.Components = nil
			break
		}
	}
	if s.Len() >= 2 {
		if tp, err := stats.AnalyzeTime(s, true); err == nil {
			res.Resolution = tp.MaxResolution
		}
	}
	if sp, ok := s.(*timeseries.SpectrogramSeries); ok {
		yp, err := stats.AnalyzeSpectrogramY(sp)
		if err == nil && finite(yp.Min, yp.Max, yp.Range, yp.MaxResolution) {
			res.YAxis = &yp
		}
	}
	return res
}

func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func summarizeCSV(filename string) (ProductResult, error) {
	f, err := timeseries.LoadFrameCSV(filename, nil)
	if err != nil {
		return ProductResult{}, fmt.Errorf("load %s: %w", filename, err)
	}
	mc, err := timeseries.NewMultiComponentFromFrame(f)
	if err != nil {
		return ProductResult{}, fmt.Errorf("load %s: %w", filename, err)
	}
	return summarize(filename, mc), nil
}

func printResult(r ProductResult) {
	fmt.Printf("\n%s [%s]\n", r.Path, r.Kind)
	fmt.Printf("   Shape: %v\n", r.Shape)
	if r.Bounds != nil {
		fmt.Printf("   Values: %.4f to %.4f\n", r.Bounds[0], r.Bounds[1])
	}
	if r.Resolution > 0 {
		fmt.Printf("   Time resolution: %g s\n", r.Resolution)
	}
	if r.YAxis != nil {
		fmt.Printf("   Y axis: %g to %g (log=%v)\n", r.YAxis.Min, r.YAxis.Max, r.YAxis.IsLog)
	}
}
