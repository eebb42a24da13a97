// Package provider registers data providers and the products they serve,
// and fetches product data over a time range.
package provider

import (
	"context"
	"errors"

	"github.com/sciqlop/sciqlopcore/timeseries"
)

var (
	ErrUnknownProduct   = errors.New("unknown product")
	ErrDuplicateProduct = errors.New("product already registered")
	ErrKindMismatch     = errors.New("series kind does not match product")
	ErrInvalidRange     = errors.New("invalid time range")
)

// Product describes one dataset a provider can serve.
type Product struct {
	Path       string            // Slash-separated location in the products tree
	Components []string          // Component labels, if any
	Kind       timeseries.Kind   // Kind of series GetData returns
	Metadata   map[string]string // Passed back to the provider on every fetch
}

// Provider produces series for the products it registered.
//
// Registries may call GetData from several goroutines at once, so
// implementations must be stateless or safe for concurrent use.
type Provider interface {
	GetData(ctx context.Context, metadata map[string]string, r timeseries.Range) (timeseries.Series, error)
}

// Func adapts a function to the Provider interface.
type Func func(ctx context.Context, metadata map[string]string, r timeseries.Range) (timeseries.Series, error)

func (f Func) GetData(ctx context.Context, metadata map[string]string, r timeseries.Range) (timeseries.Series, error) {
	return f(ctx, metadata, r)
}
