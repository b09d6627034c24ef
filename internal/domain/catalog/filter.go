// internal/domain/catalog/filter.go
package catalog

// Apply replaces the active filter criteria wholesale and recomputes
// the filtered view as the conjunction of the four predicates. It
// returns the resulting (filtered, total) count pair.
func (s *Store) Apply(criteria FilterCriteria) (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.criteria = criteria
	s.refilterLocked()

	return len(s.filtered), len(s.products)
}

// ClearFilters resets the criteria to their defaults and reapplies
func (s *Store) ClearFilters() (int, int) {
	return s.Apply(DefaultCriteria(s.defaultMax))
}

// Criteria returns the active filter criteria
func (s *Store) Criteria() FilterCriteria {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.criteria
}

// Counts returns the (filtered, total) count pair
func (s *Store) Counts() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.filtered), len(s.products)
}

func (s *Store) refilterLocked() {
	filtered := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		if s.criteria.Matches(p) {
			filtered = append(filtered, p)
		}
	}
	s.filtered = filtered
}
