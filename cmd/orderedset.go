package main

import "strings"

// orderedSet is a set of strings that remembers insertion order
type orderedSet struct {
	items []string
	index map[string]bool
}

func newOrderedSet() *orderedSet {
	return &orderedSet{index: make(map[string]bool)}
}

// add appends each value not already in the set. blank values are ignored
func (s *orderedSet) add(values ...string) {
	for _, val := range values {
		if val == "" || s.index[val] {
			continue
		}
		s.index[val] = true
		s.items = append(s.items, val)
	}
}

func (s *orderedSet) contains(val string) bool {
	return s.index[val]
}

func (s *orderedSet) len() int {
	return len(s.items)
}

// values returns the set contents, or nil if the set is empty
func (s *orderedSet) values() []string {
	if len(s.items) == 0 {
		return nil
	}
	out := make([]string, len(s.items))
	copy(out, s.items)
	return out
}

func (s *orderedSet) join(sep string) string {
	return strings.Join(s.items, sep)
}
