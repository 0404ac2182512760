package models

import (
	"encoding/json"
	"sort"
)

// StringSet is a set of strings that serializes as a sorted JSON array so
// index structures encode deterministically.
type StringSet struct {
	items map[string]struct{}
}

// NewStringSet creates a set containing the given values.
func NewStringSet(values ...string) *StringSet {
	s := &StringSet{items: make(map[string]struct{}, len(values))}
	for _, v := range values {
		s.items[v] = struct{}{}
	}
	return s
}

// Add inserts a value into the set.
func (s *StringSet) Add(value string) {
	if s.items == nil {
		s.items = make(map[string]struct{})
	}
	s.items[value] = struct{}{}
}

// Has reports whether the set contains value.
func (s *StringSet) Has(value string) bool {
	if s == nil {
		return false
	}
	_, ok := s.items[value]
	return ok
}

// Len returns the number of elements.
func (s *StringSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// Values returns the elements in sorted order.
func (s *StringSet) Values() []string {
	if s == nil || len(s.items) == 0 {
		return nil
	}
	out := make([]string, 0, len(s.items))
	for v := range s.items {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// MarshalJSON encodes the set as a sorted array.
func (s *StringSet) MarshalJSON() ([]byte, error) {
	values := s.Values()
	if values == nil {
		values = []string{}
	}
	return json.Marshal(values)
}

// UnmarshalJSON decodes a JSON array into the set.
func (s *StringSet) UnmarshalJSON(data []byte) error {
	var values []string
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	s.items = make(map[string]struct{}, len(values))
	for _, v := range values {
		s.items[v] = struct{}{}
	}
	return nil
}
