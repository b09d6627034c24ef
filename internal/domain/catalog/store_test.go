package catalog

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

type stubSource struct {
	mu       sync.Mutex
	products []Product
	err      error
	calls    int
}

func (s *stubSource) FetchProducts(ctx context.Context) ([]Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.products, nil
}

func sampleProducts() []Product {
	return []Product{
		{ID: 1, Title: "Red Shirt", Price: 20, Category: "clothing", Rating: Rating{Rate: 4.5, Count: 10}},
		{ID: 2, Title: "Blue Jeans", Price: 45, Category: "clothing", Rating: Rating{Rate: 3.9, Count: 80}},
		{ID: 3, Title: "Gold Ring", Price: 120, Category: "jewelery", Rating: Rating{Rate: 4.8, Count: 25}},
		{ID: 4, Title: "USB Drive", Price: 12, Category: "electronics", Rating: Rating{Rate: 2.9, Count: 400}},
	}
}

func TestLoad_ReplacesProductsAndDerivesCategories(t *testing.T) {
	src := &stubSource{products: sampleProducts()}
	store := NewStore(src, 1000, testLogger())

	require.NoError(t, store.Load(context.Background()))

	assert.Len(t, store.Products(), 4)
	assert.Len(t, store.Filtered(), 4, "unfiltered view must equal the full catalog after load")
	assert.Equal(t, []string{"all", "clothing", "jewelery", "electronics"}, store.Categories(),
		"categories must be insertion-order-stable with the all sentinel first")
	assert.NoError(t, store.LastError())
}

func TestLoad_FailureKeepsPreviousStateAndSetsErrorFlag(t *testing.T) {
	src := &stubSource{products: sampleProducts()}
	store := NewStore(src, 1000, testLogger())
	require.NoError(t, store.Load(context.Background()))

	src.mu.Lock()
	src.err = errors.New("connection refused")
	src.mu.Unlock()

	err := store.Load(context.Background())
	require.Error(t, err)

	assert.Len(t, store.Products(), 4, "previous catalog must survive a failed reload")
	assert.Error(t, store.LastError())
	assert.Contains(t, store.View().LoadError, "connection refused")
}

func TestLoad_FirstFailureLeavesCatalogEmpty(t *testing.T) {
	src := &stubSource{err: errors.New("boom")}
	store := NewStore(src, 1000, testLogger())

	require.Error(t, store.Load(context.Background()))
	assert.Empty(t, store.Products())
	assert.Error(t, store.LastError())
}

func TestLoad_ErrorFlagClearsOnSuccessfulRetry(t *testing.T) {
	src := &stubSource{err: errors.New("boom")}
	store := NewStore(src, 1000, testLogger())
	require.Error(t, store.Load(context.Background()))

	src.mu.Lock()
	src.err = nil
	src.products = sampleProducts()
	src.mu.Unlock()

	require.NoError(t, store.Load(context.Background()))
	assert.NoError(t, store.LastError())
	assert.Empty(t, store.View().LoadError)
}

type gatedSource struct {
	mu        sync.Mutex
	responses [][]Product
	gates     []chan struct{}
	call      int
}

func (g *gatedSource) FetchProducts(ctx context.Context) ([]Product, error) {
	g.mu.Lock()
	i := g.call
	g.call++
	g.mu.Unlock()

	if gate := g.gates[i]; gate != nil {
		<-gate
	}
	return g.responses[i], nil
}

func (g *gatedSource) started() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.call
}

func TestLoad_StaleResponseIsDiscarded(t *testing.T) {
	stale := []Product{{ID: 1, Title: "Stale", Category: "old"}}
	fresh := []Product{{ID: 2, Title: "Fresh", Category: "new"}}

	gate := make(chan struct{})
	src := &gatedSource{
		responses: [][]Product{stale, fresh},
		gates:     []chan struct{}{gate, nil},
	}
	store := NewStore(src, 1000, testLogger())

	firstDone := make(chan error, 1)
	go func() {
		firstDone <- store.Load(context.Background())
	}()

	require.Eventually(t, func() bool { return src.started() == 1 }, time.Second, 5*time.Millisecond)

	// Newer load starts and completes while the first is still in flight.
	require.NoError(t, store.Load(context.Background()))

	close(gate)
	err := <-firstDone
	require.ErrorIs(t, err, ErrLoadSuperseded)

	products := store.Products()
	require.Len(t, products, 1)
	assert.Equal(t, "Fresh", products[0].Title, "a stale load must not overwrite a newer one")
}

func TestProduct_Lookup(t *testing.T) {
	src := &stubSource{products: sampleProducts()}
	store := NewStore(src, 1000, testLogger())
	require.NoError(t, store.Load(context.Background()))

	p, ok := store.Product(3)
	require.True(t, ok)
	assert.Equal(t, "Gold Ring", p.Title)

	_, ok = store.Product(99)
	assert.False(t, ok)
}
