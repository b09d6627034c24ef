package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadedStore(t *testing.T, products []Product) *Store {
	t.Helper()
	store := NewStore(&stubSource{products: products}, 1000, testLogger())
	require.NoError(t, store.Load(context.Background()))
	return store
}

func TestApply_Scenarios(t *testing.T) {
	products := []Product{
		{ID: 1, Title: "Red Shirt", Price: 20, Category: "clothing", Rating: Rating{Rate: 4.5, Count: 10}},
	}

	tests := []struct {
		name     string
		criteria FilterCriteria
		wantIDs  []int
	}{
		{
			name:     "search match with wildcard category",
			criteria: FilterCriteria{Search: "red", Category: "all", MinPrice: 0, MaxPrice: 100, MinRating: 0},
			wantIDs:  []int{1},
		},
		{
			name:     "search miss",
			criteria: FilterCriteria{Search: "blue", Category: "all", MinPrice: 0, MaxPrice: 100, MinRating: 0},
			wantIDs:  nil,
		},
		{
			name:     "exact category match",
			criteria: FilterCriteria{Category: "clothing", MaxPrice: 100},
			wantIDs:  []int{1},
		},
		{
			name:     "category mismatch",
			criteria: FilterCriteria{Category: "electronics", MaxPrice: 100},
			wantIDs:  nil,
		},
		{
			name:     "price range excludes",
			criteria: FilterCriteria{Category: "all", MinPrice: 30, MaxPrice: 100},
			wantIDs:  nil,
		},
		{
			name:     "price range boundaries are inclusive",
			criteria: FilterCriteria{Category: "all", MinPrice: 20, MaxPrice: 20},
			wantIDs:  []int{1},
		},
		{
			name:     "rating threshold excludes",
			criteria: FilterCriteria{Category: "all", MaxPrice: 100, MinRating: 4.6},
			wantIDs:  nil,
		},
		{
			name:     "inverted price range yields empty set",
			criteria: FilterCriteria{Category: "all", MinPrice: 50, MaxPrice: 10},
			wantIDs:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := loadedStore(t, products)
			store.Apply(tt.criteria)

			var gotIDs []int
			for _, p := range store.Filtered() {
				gotIDs = append(gotIDs, p.ID)
			}
			assert.Equal(t, tt.wantIDs, gotIDs)
		})
	}
}

func TestApply_IsIdempotent(t *testing.T) {
	store := loadedStore(t, sampleProducts())
	criteria := FilterCriteria{Search: "s", Category: "all", MinPrice: 10, MaxPrice: 50, MinRating: 3}

	store.Apply(criteria)
	first := store.Filtered()
	store.Apply(criteria)
	second := store.Filtered()

	assert.Equal(t, first, second)
}

func TestApply_ReturnsCountPair(t *testing.T) {
	store := loadedStore(t, sampleProducts())

	filtered, total := store.Apply(FilterCriteria{Category: "clothing", MaxPrice: 1000})
	assert.Equal(t, 2, filtered)
	assert.Equal(t, 4, total)
}

func TestClearFilters_RestoresFullCatalog(t *testing.T) {
	store := loadedStore(t, sampleProducts())

	store.Apply(FilterCriteria{Search: "no-such-product", Category: "all", MaxPrice: 1000})
	require.Empty(t, store.Filtered())

	filtered, total := store.ClearFilters()
	assert.Equal(t, total, filtered)
	assert.Equal(t, store.Products(), store.Filtered())
	assert.Equal(t, DefaultCriteria(1000), store.Criteria())
}

func TestApply_SearchIsCaseInsensitive(t *testing.T) {
	store := loadedStore(t, sampleProducts())

	store.Apply(FilterCriteria{Search: "RED sh", Category: "all", MaxPrice: 1000})
	require.Len(t, store.Filtered(), 1)
	assert.Equal(t, 1, store.Filtered()[0].ID)
}

func TestFilteredView_IsAlwaysSubsetOfProducts(t *testing.T) {
	store := loadedStore(t, sampleProducts())
	store.Apply(FilterCriteria{Category: "all", MaxPrice: 50})

	byID := make(map[int]Product)
	for _, p := range store.Products() {
		byID[p.ID] = p
	}
	for _, p := range store.Filtered() {
		assert.Equal(t, byID[p.ID], p)
	}
}
