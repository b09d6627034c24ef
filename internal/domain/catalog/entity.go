// internal/domain/catalog/entity.go
package catalog

import "strings"

// CategoryAll is the wildcard category sentinel that matches every product
const CategoryAll = "all"

// Rating represents a product's aggregate rating
type Rating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

// Product represents a single catalog product. Products are immutable
// once fetched; the store owns them exclusively.
type Product struct {
	ID       int     `json:"id"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	Image    string  `json:"image"`
	Rating   Rating  `json:"rating"`
}

// FilterCriteria describes the active product filters. Criteria are
// replaced wholesale on each application, never mutated in place.
type FilterCriteria struct {
	Search    string  `json:"search"`
	Category  string  `json:"category"`
	MinPrice  float64 `json:"min_price"`
	MaxPrice  float64 `json:"max_price"`
	MinRating float64 `json:"min_rating"`
}

// DefaultCriteria returns the criteria the engine resets to on clear
func DefaultCriteria(maxPrice float64) FilterCriteria {
	return FilterCriteria{
		Search:    "",
		Category:  CategoryAll,
		MinPrice:  0,
		MaxPrice:  maxPrice,
		MinRating: 0,
	}
}

// Matches reports whether the product satisfies all four filter
// predicates: case-insensitive title substring, category (exact or
// wildcard), inclusive price range, and minimum rating.
func (c FilterCriteria) Matches(p Product) bool {
	matchesSearch := strings.Contains(strings.ToLower(p.Title), strings.ToLower(c.Search))
	matchesCategory := c.Category == CategoryAll || p.Category == c.Category
	matchesPrice := p.Price >= c.MinPrice && p.Price <= c.MaxPrice
	matchesRating := p.Rating.Rate >= c.MinRating

	return matchesSearch && matchesCategory && matchesPrice && matchesRating
}

// View is the display-ready projection of the catalog state
type View struct {
	Products   []Product      `json:"products"`
	Categories []string       `json:"categories"`
	Criteria   FilterCriteria `json:"criteria"`
	Showing    int            `json:"showing"`
	Total      int            `json:"total"`
	Summary    string         `json:"summary"`
	LoadError  string         `json:"load_error,omitempty"`
}
