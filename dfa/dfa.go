// Package dfa implements the deterministic finite automaton the traverser
// walks: a validated forward transition table plus a grouped-reverse index
// that clusters each state's outgoing symbols by the state they lead to.
//
// The automaton is immutable after construction and may be shared by any
// number of traversers.
package dfa

import (
	"fmt"
	"strings"

	"github.com/coregx/whynot/internal/conv"
	"github.com/coregx/whynot/internal/sparse"
)

// StateID uniquely identifies a DFA state.
// This is a 32-bit unsigned integer for compact representation.
type StateID uint32

// InvalidState represents an invalid/uninitialized state ID.
const InvalidState StateID = 0xFFFFFFFF

// Edge is a single transition: consuming Symbol moves the automaton to
// Target. Symbols are opaque tokens; equality is string equality. The empty
// string is reserved for the traverser's epsilon placeholder and is not a
// legal transition symbol.
type Edge struct {
	Symbol string
	Target StateID
}

// Group is one cluster of the grouped-reverse index: the symbols that all
// lead from some state to Target. Symbols preserves the order the edges
// were declared in; it is never empty.
type Group struct {
	Target  StateID
	Symbols []string
}

// row holds one state's outgoing transitions: the declared edge order plus
// a lookup map for the forward table.
type row struct {
	edges []Edge
	next  map[string]StateID
}

// DFA is a deterministic finite automaton over string symbols.
//
// State ids are dense: a DFA with n states uses ids 0..n-1. Transitions may
// be partial; a missing entry means "no edge on this symbol from this
// state". Iteration order over a state's transitions is the declaration
// order of its edges, which keeps every traversal over the same DFA
// deterministic.
type DFA struct {
	initial StateID
	rows    []row
	final   []bool
	grouped [][]Group
}

// New constructs a DFA from dense per-state edge lists.
//
// transitions[i] lists state i's outgoing edges in iteration order. finals
// lists the accepting states. Returns an *Error (see error.go) if the
// description is malformed: initial or any referenced state id out of
// range, an empty transition symbol, or two edges from the same state on
// the same symbol.
func New(initial StateID, transitions [][]Edge, finals []StateID) (*DFA, error) {
	n := conv.IntToUint32(len(transitions))
	if uint32(initial) >= n {
		return nil, newError(BadInitialState,
			fmt.Sprintf("initial state %d out of range [0, %d)", initial, n))
	}

	rows := make([]row, n)
	for i, edges := range transitions {
		next := make(map[string]StateID, len(edges))
		for _, e := range edges {
			if e.Symbol == "" {
				return nil, newError(EmptySymbol,
					fmt.Sprintf("state %d has a transition on the empty symbol", i))
			}
			if uint32(e.Target) >= n {
				return nil, newError(StateOutOfRange,
					fmt.Sprintf("state %d transition on %q targets state %d, out of range [0, %d)",
						i, e.Symbol, e.Target, n))
			}
			if _, dup := next[e.Symbol]; dup {
				return nil, newError(DuplicateSymbol,
					fmt.Sprintf("state %d has two transitions on %q", i, e.Symbol))
			}
			next[e.Symbol] = e.Target
		}
		// Copy the edge list so later mutation of the caller's slices
		// cannot reach into the automaton.
		rows[i] = row{edges: append([]Edge(nil), edges...), next: next}
	}

	final := make([]bool, n)
	for _, f := range finals {
		if uint32(f) >= n {
			return nil, newError(StateOutOfRange,
				fmt.Sprintf("final state %d out of range [0, %d)", f, n))
		}
		final[f] = true
	}

	d := &DFA{
		initial: initial,
		rows:    rows,
		final:   final,
	}
	d.grouped = buildGrouped(rows, n)
	return d, nil
}

// buildGrouped derives the grouped-reverse index: for each state, its
// outgoing symbols clustered by target state. Group order is the order each
// target first appears in the state's edge list, and symbol order within a
// group is edge order, so concatenating a state's groups reproduces exactly
// the domain of its transition function.
func buildGrouped(rows []row, n uint32) [][]Group {
	grouped := make([][]Group, n)
	seen := sparse.NewSet(n)
	for i := range rows {
		seen.Clear()
		var groups []Group
		for _, e := range rows[i].edges {
			t := uint32(e.Target)
			if seen.Contains(t) {
				g := &groups[seen.Index(t)]
				g.Symbols = append(g.Symbols, e.Symbol)
				continue
			}
			seen.Insert(t)
			groups = append(groups, Group{Target: e.Target, Symbols: []string{e.Symbol}})
		}
		grouped[i] = groups
	}
	return grouped
}

// Initial returns the initial state.
func (d *DFA) Initial() StateID {
	return d.initial
}

// NumStates returns the number of states.
func (d *DFA) NumStates() int {
	return len(d.rows)
}

// IsFinal reports whether s is an accepting state.
func (d *DFA) IsFinal(s StateID) bool {
	return uint32(s) < uint32(len(d.final)) && d.final[s]
}

// Next is the forward transition table: the state reached from s on symbol.
// Returns (InvalidState, false) if no transition exists.
func (d *DFA) Next(s StateID, symbol string) (StateID, bool) {
	if uint32(s) >= uint32(len(d.rows)) {
		return InvalidState, false
	}
	next, ok := d.rows[s].next[symbol]
	if !ok {
		return InvalidState, false
	}
	return next, true
}

// Groups returns the grouped-reverse index for s: each reachable target
// paired with the symbols leading to it, in first-appearance order. The
// returned slice and its Symbols lists are shared with the automaton and
// must not be modified.
func (d *DFA) Groups(s StateID) []Group {
	if uint32(s) >= uint32(len(d.grouped)) {
		return nil
	}
	return d.grouped[s]
}

// Edges returns s's outgoing edges in declaration order. The returned slice
// is shared with the automaton and must not be modified.
func (d *DFA) Edges(s StateID) []Edge {
	if uint32(s) >= uint32(len(d.rows)) {
		return nil
	}
	return d.rows[s].edges
}

// String returns a compact human-readable description of the automaton.
func (d *DFA) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "DFA(states=%d, initial=%d, final=[", len(d.rows), d.initial)
	sep := ""
	for i, f := range d.final {
		if f {
			fmt.Fprintf(&b, "%s%d", sep, i)
			sep = " "
		}
	}
	b.WriteString("])")
	return b.String()
}
