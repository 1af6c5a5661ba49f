package traverse

import (
	"testing"

	"github.com/coregx/whynot/dfa"
	"github.com/coregx/whynot/record"
)

func TestFindBase(t *testing.T) {
	init := record.Initial(0)
	m1 := record.Missing(init, []string{"a", "b"}, 1)
	a1 := record.Accept(m1, "c", 2)

	tests := []struct {
		name   string
		tested *record.Record
		other  *record.Record
		want   *record.Record
	}{
		{
			name:   "match on the record itself",
			tested: record.Missing(init, []string{"a"}, 1),
			other:  m1,
			want:   m1,
		},
		{
			name:   "match on an ancestor",
			tested: record.Missing(init, []string{"b"}, 1),
			other:  a1,
			want:   m1,
		},
		{
			name:   "match on the shared root",
			tested: record.Missing(record.Missing(init, []string{"a"}, 1), []string{"b"}, 0),
			other:  a1,
			want:   init,
		},
		{
			name:   "no state match",
			tested: record.Missing(init, []string{"x"}, 3),
			other:  a1,
			want:   nil,
		},
		{
			name:   "walk stops below tested accepted count",
			tested: record.Accept(init, "c", 1),
			other:  m1, // only accepted count 0 in this chain
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := findBase(tt.tested, tt.other); got != tt.want {
				t.Errorf("findBase() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUselesslyExtends(t *testing.T) {
	init := record.Initial(0)

	t.Run("partial variant of a peer missing record", func(t *testing.T) {
		full := record.Missing(init, []string{"a", "b"}, 1)
		part := record.Missing(init, []string{"a"}, 1)
		if !uselesslyExtends(part, full) {
			t.Error("a partial variant reaching the same state uselessly extends the full record")
		}
		if uselesslyExtends(full, part) {
			t.Error("the full record does not extend its own partial variant")
		}
	})

	t.Run("equal content is not identity", func(t *testing.T) {
		// other: init -> missing[a]->1
		// tested: init -> missing[x]->2 -> missing[a]->1
		// tested reaches (1, accepted 0) with an extra insertion, but its
		// final step is a distinct record that merely equals other's in
		// content. Only shared records and partial variants line up in
		// the extension walk, so this is not an extension.
		other := record.Missing(init, []string{"a"}, 1)
		detour := record.Missing(init, []string{"x"}, 2)
		tested := record.Missing(detour, []string{"a"}, 1)
		if uselesslyExtends(tested, other) {
			t.Error("content equality must not satisfy the identity check")
		}
	})

	t.Run("reaching the root again costs more", func(t *testing.T) {
		// tested loops back to the initial state by insertions; the
		// cheaper way to be at (0, accepted 0) is the root itself.
		tested := record.Missing(record.Missing(init, []string{"a"}, 1), []string{"b"}, 0)
		if !uselesslyExtends(tested, record.Missing(init, []string{"a"}, 1)) {
			t.Error("an insertion cycle back to the root is useless")
		}
	})

	t.Run("different accept history is not an extension", func(t *testing.T) {
		// Both reach state 3 at accepted count 1, but through different
		// accepted prefixes; the cheaper chain does not cover the other.
		left := record.Accept(record.Missing(init, []string{"a"}, 1), "c", 3)
		right := record.Accept(record.Missing(init, []string{"b"}, 2), "c", 3)
		if uselesslyExtends(right, left) {
			t.Error("chains with diverging steps of equal cost are alternatives, not extensions")
		}
		if uselesslyExtends(left, right) {
			t.Error("chains with diverging steps of equal cost are alternatives, not extensions")
		}
	})

	t.Run("no base candidate", func(t *testing.T) {
		other := record.Accept(init, "a", 1)
		tested := record.Missing(init, []string{"b"}, 2)
		if uselesslyExtends(tested, other) {
			t.Error("no record in other's chain matches tested's state and count")
		}
	})
}

func TestExtendsBaseSharedAncestry(t *testing.T) {
	init := record.Initial(0)
	shared := record.Missing(init, []string{"a"}, 1)

	// base is an ancestor of tested: the lockstep walk must meet the
	// shared record and confirm the extension.
	tested := record.Missing(record.Missing(shared, []string{"b"}, 2), []string{"c"}, 1)
	base := findBase(tested, shared)
	if base != shared {
		t.Fatalf("findBase() = %v, want %v", base, shared)
	}
	if !extendsBase(tested, base) {
		t.Error("a chain growing out of base itself extends base")
	}
}

func TestUsefulAlternativeChecksOnlyEarlierPeers(t *testing.T) {
	d := mustDFA(t, 0, [][]dfa.Edge{
		{{Symbol: "a", Target: 1}, {Symbol: "b", Target: 1}},
		{},
	}, nil)
	tr := mustTraverser(t, d)

	init := record.Initial(0)
	full := record.Missing(init, []string{"a", "b"}, 1)
	part := record.Missing(init, []string{"a"}, 1)
	tr.tails = []*record.Record{full, part}

	if !tr.usefulAlternative(full, 0) {
		t.Error("the first tail has no earlier peers and must survive")
	}
	if tr.usefulAlternative(part, 1) {
		t.Error("the partial variant is useless against its earlier peer")
	}
}
