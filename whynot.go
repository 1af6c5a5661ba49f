// Package whynot enumerates the minimal ways to fix a rejected input.
//
// Given a deterministic finite automaton and an input sequence the
// automaton does not accept, whynot answers the question "why not?" by
// listing every minimal set of insertions that would make the automaton
// accept. Each answer is a derivation trace interleaving accepted input
// symbols with hypothetical insertions.
//
// Basic usage:
//
//	tr, err := whynot.Compile(whynot.Description{
//	    InitialState: 0,
//	    Transitions: [][]whynot.Edge{
//	        {{Symbol: "a", Target: 1}},
//	        {{Symbol: "b", Target: 2}},
//	        {},
//	    },
//	    FinalStates: []int{2},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	finals, err := tr.ExecuteSlice([]string{"b"})
//	// one completion: insert "a", then accept "b"
//
// The enumeration is exhaustive and non-redundant: traces that loop without
// consuming input, or that pay more insertions to reach a point a cheaper
// trace already covers, are pruned. Results are deterministic: the order of
// Transitions fixes the expansion order end to end.
package whynot

import (
	"fmt"
	"math"

	"github.com/coregx/whynot/dfa"
	"github.com/coregx/whynot/record"
	"github.com/coregx/whynot/traverse"
)

// Edge is one transition of a Description: consuming Symbol moves the
// automaton to the state with id Target.
type Edge struct {
	Symbol string
	Target int
}

// Description is the biverse-DFA input object: per-state edge lists (dense,
// indexed by state id), an initial state, and the accepting states. Edge
// order is significant — it is the iteration order of the transition
// function and therefore the enumeration order of results.
type Description struct {
	InitialState int
	Transitions  [][]Edge
	FinalStates  []int
}

// InputFunc produces the input one symbol at a time; see traverse.InputFunc.
type InputFunc = traverse.InputFunc

// Traverser is a compiled automaton ready to enumerate completions.
//
// The compiled automaton is immutable and may back several Traversers, but
// a single Traverser runs one Execute at a time.
type Traverser struct {
	d  *dfa.DFA
	tr *traverse.Traverser
}

// Compile validates a description, builds the automaton with its transition
// indices, and returns a Traverser with the default configuration.
func Compile(desc Description) (*Traverser, error) {
	return CompileWithConfig(desc, traverse.DefaultConfig())
}

// CompileWithConfig is Compile with an explicit traversal configuration.
//
// Description fields are untrusted ints (they typically arrive from decoded
// files); out-of-range values, negative ones included, surface as the same
// malformed-description errors dfa.New reports, never as a panic.
func CompileWithConfig(desc Description, cfg traverse.Config) (*Traverser, error) {
	initial, ok := stateID(desc.InitialState)
	if !ok {
		return nil, &dfa.Error{
			Kind:    dfa.BadInitialState,
			Message: fmt.Sprintf("initial state %d out of range", desc.InitialState),
		}
	}
	transitions := make([][]dfa.Edge, len(desc.Transitions))
	for i, edges := range desc.Transitions {
		row := make([]dfa.Edge, len(edges))
		for j, e := range edges {
			target, ok := stateID(e.Target)
			if !ok {
				return nil, &dfa.Error{
					Kind:    dfa.StateOutOfRange,
					Message: fmt.Sprintf("state %d transition on %q targets state %d, out of range", i, e.Symbol, e.Target),
				}
			}
			row[j] = dfa.Edge{Symbol: e.Symbol, Target: target}
		}
		transitions[i] = row
	}
	finals := make([]dfa.StateID, len(desc.FinalStates))
	for i, f := range desc.FinalStates {
		final, ok := stateID(f)
		if !ok {
			return nil, &dfa.Error{
				Kind:    dfa.StateOutOfRange,
				Message: fmt.Sprintf("final state %d out of range", f),
			}
		}
		finals[i] = final
	}

	d, err := dfa.New(initial, transitions, finals)
	if err != nil {
		return nil, err
	}
	tr, err := traverse.New(d, cfg)
	if err != nil {
		return nil, err
	}
	return &Traverser{d: d, tr: tr}, nil
}

// stateID converts an untrusted description int to a state id. Reports
// false for values no automaton can contain; the caller turns those into
// the matching malformed-description error.
func stateID(n int) (dfa.StateID, bool) {
	if n < 0 || uint64(n) > math.MaxUint32 {
		return dfa.InvalidState, false
	}
	return dfa.StateID(n), true
}

// MustCompile is like Compile but panics on a malformed description.
// It simplifies safe initialization of package-level variables.
func MustCompile(desc Description) *Traverser {
	tr, err := Compile(desc)
	if err != nil {
		panic(`whynot: Compile failed: ` + err.Error())
	}
	return tr
}

// DFA returns the compiled automaton.
func (t *Traverser) DFA() *dfa.DFA {
	return t.d
}

// Execute enumerates all minimal accepting extensions of the input produced
// by next. See traverse.Traverser.Execute.
func (t *Traverser) Execute(next InputFunc) ([]*record.Record, error) {
	return t.tr.Execute(next)
}

// ExecuteSlice is Execute over an in-memory input sequence.
func (t *Traverser) ExecuteSlice(symbols []string) ([]*record.Record, error) {
	i := 0
	return t.tr.Execute(func() (string, bool) {
		if i >= len(symbols) {
			return "", false
		}
		sym := symbols[i]
		i++
		return sym, true
	})
}

// Step is one element of a flattened completion. For an accepted step,
// Symbols has exactly one element: the consumed input symbol. For a missing
// step, Symbols lists the alternative symbols any one of which could be
// inserted to take the same transition.
type Step struct {
	Symbols  []string
	Target   int
	Accepted bool
}

// Completion is the caller-friendly view of one final record: its chain
// flattened root-to-tip, with the cost counts alongside.
type Completion struct {
	Steps         []Step
	AcceptedCount int
	MissingCount  int
}

// Expand flattens a final record's chain into a Completion. The initial
// record's epsilon placeholder is dropped; the remaining steps read in
// derivation order.
func Expand(final *record.Record) Completion {
	var steps []Step
	for r := final; r.Prev() != nil; r = r.Prev() {
		steps = append(steps, Step{
			Symbols:  r.Characters(),
			Target:   int(r.Target()),
			Accepted: r.Accepted(),
		})
	}
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}
	return Completion{
		Steps:         steps,
		AcceptedCount: final.AcceptedCount(),
		MissingCount:  final.MissingCount(),
	}
}
