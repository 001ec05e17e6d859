package set

import (
	"sort"

	"facette.io/natsort"

	"github.com/amp-labs/amp-acquire/hashing"
)

// StringSet is a specialized Set implementation for string elements.
// It provides additional methods for sorting entries.
type StringSet struct {
	hash hashing.HashFunc
	set  Set[hashing.HashableString]
}

// NewStringSet creates a new StringSet with the provided hash function.
func NewStringSet(hash hashing.HashFunc) *StringSet {
	return &StringSet{
		hash: hash,
		set:  NewHashSet[hashing.HashableString](hash),
	}
}

// AddAll adds multiple string elements to the set.
func (s *StringSet) AddAll(elements ...string) error {
	for _, elem := range elements {
		if err := s.Add(elem); err != nil {
			return err
		}
	}

	return nil
}

// Add adds a single string element to the set.
func (s *StringSet) Add(element string) error {
	return s.set.Add(hashing.HashableString(element))
}

// Remove removes a string element from the set.
func (s *StringSet) Remove(element string) error {
	return s.set.Remove(hashing.HashableString(element))
}

// Clear removes all elements from the set.
func (s *StringSet) Clear() error {
	return s.set.Clear()
}

// Contains checks if a string element exists in the set.
func (s *StringSet) Contains(element string) (bool, error) {
	return s.set.Contains(hashing.HashableString(element))
}

// Size returns the number of elements in the set.
func (s *StringSet) Size() (int, error) {
	return s.set.Size()
}

// Entries returns all string elements in the set. The order is not guaranteed.
func (s *StringSet) Entries() ([]string, error) {
	entries, err := s.set.Entries()
	if err != nil {
		return nil, err
	}

	items := make([]string, 0, len(entries))
	for _, item := range entries {
		items = append(items, string(item))
	}

	return items, nil
}

// SortedEntries returns all string elements in the set sorted alphabetically.
func (s *StringSet) SortedEntries() ([]string, error) {
	items, err := s.Entries()
	if err != nil {
		return nil, err
	}

	sort.Strings(items)

	return items, nil
}

// NaturalSortedEntries returns all string elements in the set sorted using natural sort order.
// Natural sort treats numbers within strings numerically (e.g., "file2" comes before "file10").
func (s *StringSet) NaturalSortedEntries() ([]string, error) {
	items, err := s.Entries()
	if err != nil {
		return nil, err
	}

	natsort.Sort(items)

	return items, nil
}
