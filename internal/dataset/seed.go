package dataset

import "fmt"

// Seed loads the built-in catalog into an empty store. It is
// idempotent: when any dataset already exists the store is left
// untouched and the existing count is returned.
func Seed(s *Store) (int, error) {
	n, err := s.Count()
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return n, nil
	}

	catalog := SeedCatalog()
	for _, d := range catalog {
		if err := s.Insert(d); err != nil {
			return 0, fmt.Errorf("failed to seed dataset %q: %w", d.Name, err)
		}
	}
	return len(catalog), nil
}
