package store

import (
	"errors"
	"strconv"
)

// Resolve maps a user-supplied identifier to an entry name. An exact name
// match wins; otherwise a positive integer N selects the N-th name in
// ascending order, counting from 1.
//
// Positions are computed from this store only. An index printed by an earlier
// listing refers to a different entry once names have been added or removed.
func (s *Store) Resolve(id string) (string, error) {
	if s.ContainsKey(id) {
		return id, nil
	}

	n, err := strconv.Atoi(id)
	if err != nil {
		// Out-of-range numbers are still numbers, so they count as index
		// misses, like zero and negatives below.
		if errors.Is(err, strconv.ErrRange) {
			return "", &ResolutionError{ID: id, Kind: NotFoundByIndex}
		}
		return "", &ResolutionError{ID: id, Kind: NotFoundByName}
	}
	if n < 1 || n > s.Len() {
		return "", &ResolutionError{ID: id, Kind: NotFoundByIndex}
	}

	i := 1
	for name := range s.Keys() {
		if i == n {
			return name, nil
		}
		i++
	}
	return "", &ResolutionError{ID: id, Kind: NotFoundByIndex}
}
