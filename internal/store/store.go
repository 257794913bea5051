// Package store implements the persistent entry store: an immutable map from
// entry name to Entry, kept in ascending key order, with copy-on-write updates
// and a deterministic JSON form.
package store

import (
	"iter"

	iradix "github.com/hashicorp/go-immutable-radix/v2"
)

// Store maps entry names to entries. A Store is never modified after it is
// built; Update and Without return new values that share structure with the
// receiver. The zero value and a nil *Store are both empty stores.
type Store struct {
	tree *iradix.Tree[Entry]
}

// New returns an empty store.
func New() *Store {
	return &Store{tree: iradix.New[Entry]()}
}

func (s *Store) root() *iradix.Tree[Entry] {
	if s == nil || s.tree == nil {
		return iradix.New[Entry]()
	}
	return s.tree
}

// Update returns a store in which name maps to entry, replacing any previous
// value. Names and fields are expected to be UTF-8 text; Serialize
// refuses a store holding anything else.
func (s *Store) Update(name string, entry Entry) *Store {
	tree, _, _ := s.root().Insert([]byte(name), entry)
	return &Store{tree: tree}
}

// Without returns a store in which name is absent.
func (s *Store) Without(name string) *Store {
	tree, _, _ := s.root().Delete([]byte(name))
	return &Store{tree: tree}
}

// Get returns the entry stored under name.
func (s *Store) Get(name string) (Entry, bool) {
	return s.root().Get([]byte(name))
}

func (s *Store) ContainsKey(name string) bool {
	_, ok := s.Get(name)
	return ok
}

func (s *Store) Len() int {
	return s.root().Len()
}

// Keys yields entry names in ascending lexicographic order. Each call starts a
// new, independent iteration.
func (s *Store) Keys() iter.Seq[string] {
	return func(yield func(string) bool) {
		for name := range s.All() {
			if !yield(name) {
				return
			}
		}
	}
}

// All yields name/entry pairs in ascending name order.
func (s *Store) All() iter.Seq2[string, Entry] {
	tree := s.root()
	return func(yield func(string, Entry) bool) {
		it := tree.Root().Iterator()
		for k, v, ok := it.Next(); ok; k, v, ok = it.Next() {
			if !yield(string(k), v) {
				return
			}
		}
	}
}

// Equal reports whether both stores hold the same names mapped to equal
// entries.
func (s *Store) Equal(other *Store) bool {
	a, b := s.root(), other.root()
	if a.Len() != b.Len() {
		return false
	}
	ia, ib := a.Root().Iterator(), b.Root().Iterator()
	for {
		ka, va, oka := ia.Next()
		kb, vb, okb := ib.Next()
		if oka != okb {
			return false
		}
		if !oka {
			return true
		}
		if string(ka) != string(kb) || va != vb {
			return false
		}
	}
}
