// internal/domain/catalog/store.go
package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
)

// ErrLoadSuperseded is returned when a load completes after a newer
// load has already started; its result is discarded.
var ErrLoadSuperseded = errors.New("catalog load superseded by a newer load")

// ErrProductNotFound is returned when a product id is not present in
// the current catalog.
var ErrProductNotFound = errors.New("product not found in catalog")

// Source fetches the full product list from the remote catalog
type Source interface {
	FetchProducts(ctx context.Context) ([]Product, error)
}

// Store holds the fetched product collection, the derived category
// facet and the filtered view. All access is serialized; the filtered
// view is always recomputed from products and criteria, never mutated
// independently.
type Store struct {
	mu         sync.Mutex
	source     Source
	logger     *logrus.Logger
	products   []Product
	filtered   []Product
	categories []string
	criteria   FilterCriteria
	lastErr    error
	loadSeq    uint64
	defaultMax float64
}

// NewStore creates a catalog store backed by the given source
func NewStore(source Source, defaultMaxPrice float64, logger *logrus.Logger) *Store {
	return &Store{
		source:     source,
		logger:     logger,
		criteria:   DefaultCriteria(defaultMaxPrice),
		defaultMax: defaultMaxPrice,
	}
}

// Load fetches the full product list from the source. On success the
// product collection and the unfiltered view are replaced and the
// category facet is rederived. On failure the previous collection is
// kept (empty on first load) and the error is retained for the view.
// A load that completes after a newer one started publishes nothing.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	s.loadSeq++
	seq := s.loadSeq
	src := s.source
	s.mu.Unlock()

	products, err := src.FetchProducts(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.loadSeq {
		return ErrLoadSuperseded
	}

	if err != nil {
		s.lastErr = err
		s.logger.WithError(err).Warn("Catalog load failed")
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	s.products = products
	s.filtered = append([]Product(nil), products...)
	s.categories = deriveCategories(products)
	s.lastErr = nil

	s.logger.WithFields(logrus.Fields{
		"products":   len(s.products),
		"categories": len(s.categories) - 1,
	}).Info("Catalog loaded")

	return nil
}

// Products returns a copy of the full product collection
func (s *Store) Products() []Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Product(nil), s.products...)
}

// Filtered returns a copy of the current filtered view
func (s *Store) Filtered() []Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Product(nil), s.filtered...)
}

// Categories returns the category facet: distinct categories in
// catalog insertion order, prefixed with the "all" sentinel.
func (s *Store) Categories() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.categories...)
}

// Product looks up a product by id in the full catalog
func (s *Store) Product(id int) (Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// LastError returns the error from the most recent failed load, or
// nil if the last load succeeded.
func (s *Store) LastError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// View returns the display-ready catalog projection
func (s *Store) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	view := View{
		Products:   append([]Product(nil), s.filtered...),
		Categories: append([]string(nil), s.categories...),
		Criteria:   s.criteria,
		Showing:    len(s.filtered),
		Total:      len(s.products),
		Summary:    fmt.Sprintf("Showing %d of %d products", len(s.filtered), len(s.products)),
	}
	if s.lastErr != nil {
		view.LoadError = s.lastErr.Error()
	}
	return view
}

func deriveCategories(products []Product) []string {
	categories := []string{CategoryAll}
	seen := make(map[string]bool)
	for _, p := range products {
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	return categories
}
