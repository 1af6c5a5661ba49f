package sparse

import "testing"

func TestSetInsertContains(t *testing.T) {
	s := NewSet(10)

	if s.Contains(3) {
		t.Error("empty set should not contain 3")
	}

	s.Insert(3)
	s.Insert(7)
	s.Insert(3) // duplicate, no-op

	if !s.Contains(3) {
		t.Error("set should contain 3")
	}
	if !s.Contains(7) {
		t.Error("set should contain 7")
	}
	if s.Contains(5) {
		t.Error("set should not contain 5")
	}
}

func TestSetIndexIsInsertionOrder(t *testing.T) {
	s := NewSet(16)
	values := []uint32{9, 2, 11, 0}
	for _, v := range values {
		s.Insert(v)
	}
	for want, v := range values {
		if got := s.Index(v); got != want {
			t.Errorf("Index(%d) = %d, want %d", v, got, want)
		}
	}
}

func TestSetDuplicateInsertKeepsIndex(t *testing.T) {
	s := NewSet(8)
	s.Insert(5)
	s.Insert(1)
	s.Insert(5)
	s.Insert(3)

	if got := s.Index(5); got != 0 {
		t.Errorf("Index(5) = %d, want 0: re-insert must not move a value", got)
	}
	if got := s.Index(1); got != 1 {
		t.Errorf("Index(1) = %d, want 1", got)
	}
	if got := s.Index(3); got != 2 {
		t.Errorf("Index(3) = %d, want 2", got)
	}
}

func TestSetClear(t *testing.T) {
	s := NewSet(4)
	s.Insert(0)
	s.Insert(2)
	s.Clear()

	if s.Contains(0) || s.Contains(2) {
		t.Error("cleared set should contain nothing")
	}

	// Reuse after Clear: stale sparse entries must not leak through.
	s.Insert(2)
	if !s.Contains(2) {
		t.Error("set should contain 2 after re-insert")
	}
	if s.Contains(0) {
		t.Error("set should not contain 0 after Clear")
	}
	if got := s.Index(2); got != 0 {
		t.Errorf("Index(2) after Clear = %d, want 0", got)
	}
}

func TestSetContainsOutOfRange(t *testing.T) {
	s := NewSet(4)
	if s.Contains(4) {
		t.Error("value at capacity should not be contained")
	}
	if s.Contains(100) {
		t.Error("value beyond capacity should not be contained")
	}
}
