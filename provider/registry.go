package provider

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sciqlop/sciqlopcore/timeseries"
)

type entry struct {
	product    Product
	provider   Provider
	providerID uuid.UUID
}

// Registry maps product paths to the providers serving them. It is safe for
// concurrent use.
type Registry struct {
	mu       sync.RWMutex
	logger   *zap.Logger
	products map[string]entry
}

// NewRegistry returns an empty registry. A nil logger disables logging.
func NewRegistry(logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		logger:   logger.Named("registry"),
		products: make(map[string]entry),
	}
}

// Register adds the products of p and returns the ID assigned to p. Nothing
// is registered if any product is invalid or already known.
func (r *Registry) Register(p Provider, products ...Product) (uuid.UUID, error) {
	if p == nil {
		return uuid.Nil, fmt.Errorf("register: nil provider")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[string]struct{}, len(products))
	for _, prod := range products {
		if prod.Path == "" {
			return uuid.Nil, fmt.Errorf("register: empty product path")
		}
		if prod.Kind == timeseries.KindNone {
			return uuid.Nil, fmt.Errorf("register %s: product kind not set", prod.Path)
		}
		if _, ok := r.products[prod.Path]; ok {
			return uuid.Nil, fmt.Errorf("register %s: %w", prod.Path, ErrDuplicateProduct)
		}
		if _, ok := seen[prod.Path]; ok {
			return uuid.Nil, fmt.Errorf("register %s: %w", prod.Path, ErrDuplicateProduct)
		}
		seen[prod.Path] = struct{}{}
	}

	id := uuid.New()
	for _, prod := range products {
		r.products[prod.Path] = entry{product: prod, provider: p, providerID: id}
	}

	r.logger.Info("provider registered",
		zap.Stringer("provider_id", id),
		zap.Int("products", len(products)),
	)
	return id, nil
}

// Unregister removes every product served by the provider with the given ID
// and returns how many were removed.
func (r *Registry) Unregister(id uuid.UUID) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for path, e := range r.products {
		if e.providerID == id {
			delete(r.products, path)
			n++
		}
	}
	if n > 0 {
		r.logger.Info("provider unregistered", zap.Stringer("provider_id", id), zap.Int("products", n))
	}
	return n
}

// Products lists the registered products sorted by path.
func (r *Registry) Products() []Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Product, 0, len(r.products))
	for _, e := range r.products {
		out = append(out, e.product)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

// Lookup returns the product registered at path and the ID of its provider.
func (r *Registry) Lookup(path string) (Product, uuid.UUID, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.products[path]
	if !ok {
		return Product{}, uuid.Nil, fmt.Errorf("%s: %w", path, ErrUnknownProduct)
	}
	return e.product, e.providerID, nil
}

// Fetch asks the provider of path for data over rng. The series returned by
// the provider must be of the product's kind.
func (r *Registry) Fetch(ctx context.Context, path string, rng timeseries.Range) (timeseries.Series, error) {
	if !rng.IsValid() || rng.Delta() < 0 {
		return nil, fmt.Errorf("fetch %s: %w: %s", path, ErrInvalidRange, rng)
	}

	r.mu.RLock()
	e, ok := r.products[path]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("fetch %s: %w", path, ErrUnknownProduct)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	log := r.logger.With(zap.String("product", path), zap.Stringer("provider_id", e.providerID))
	log.Debug("fetching", zap.Float64("start", rng.Start), zap.Float64("stop", rng.Stop))

	s, err := e.provider.GetData(ctx, e.product.Metadata, rng)
	if err != nil {
		log.Warn("fetch failed", zap.Error(err))
		return nil, fmt.Errorf("fetch %s: %w", path, err)
	}
	if got := timeseries.KindOf(s); got != e.product.Kind {
		log.Warn("provider returned wrong kind", zap.Stringer("want", e.product.Kind), zap.Stringer("got", got))
		return nil, fmt.Errorf("fetch %s: %w: want %s, got %s", path, ErrKindMismatch, e.product.Kind, got)
	}

	log.Debug("fetched", zap.Int("samples", s.Len()))
	return s, nil
}

// FetchAll fetches several products concurrently. The first failure cancels
// the remaining fetches and is returned.
func (r *Registry) FetchAll(ctx context.Context, paths []string, rng timeseries.Range) (map[string]timeseries.Series, error) {
	results := make([]timeseries.Series, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			s, err := r.Fetch(ctx, path, rng)
			if err != nil {
				return err
			}
			results[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[string]timeseries.Series, len(paths))
	for i, path := range paths {
		out[path] = results[i]
	}
	return out, nil
}
