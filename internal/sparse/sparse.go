// Package sparse provides a sparse set over dense uint32 values.
//
// A sparse set supports O(1) insertion and membership testing while keeping
// the inserted values in a dense, insertion-ordered list. The dfa package
// uses it to deduplicate target state ids without losing the order in which
// they were first seen, when grouping a state's outgoing transitions by
// target.
package sparse

// Set is a set of uint32 values with O(1) Insert, Contains and Clear.
// It keeps a sparse array (value -> dense index) and a dense array (the
// values in insertion order). The universe of possible values must be known
// at construction time; for this module that is the DFA's state count.
type Set struct {
	sparse []uint32 // maps value -> index in dense
	dense  []uint32 // values, in insertion order
	size   uint32   // current number of elements
}

// NewSet creates a set able to hold values in [0, capacity).
func NewSet(capacity uint32) *Set {
	return &Set{
		sparse: make([]uint32, capacity),
		dense:  make([]uint32, 0, capacity),
	}
}

// Insert adds value to the set. Inserting a value already present is a
// no-op. Panics if value >= capacity.
func (s *Set) Insert(value uint32) {
	if s.Contains(value) {
		return
	}
	s.dense = append(s.dense, value)
	s.sparse[value] = s.size
	s.size++
}

// Contains reports whether value is in the set.
func (s *Set) Contains(value uint32) bool {
	if value >= uint32(len(s.sparse)) {
		return false
	}
	idx := s.sparse[value]
	return idx < s.size && s.dense[idx] == value
}

// Index returns the insertion position of value. The value must be present;
// Index on an absent value returns an unspecified result. Use Contains
// first.
//
// The insertion position is stable: it is the number of distinct values
// inserted before this one, which is exactly the ordering the grouped
// transition index needs.
func (s *Set) Index(value uint32) int {
	return int(s.sparse[value])
}

// Clear removes all elements in O(1), retaining capacity for reuse.
func (s *Set) Clear() {
	s.size = 0
	s.dense = s.dense[:0]
}
