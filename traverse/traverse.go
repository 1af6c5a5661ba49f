// Package traverse implements the whynot traversal: a breadth-first search
// over derivation records that enumerates every minimal way to extend an
// input sequence so the DFA accepts it.
//
// The driver works generation by generation. Each surviving tail record is
// expanded into at most one accept child (consume the next real input
// symbol) plus missing children (hypothetically insert a symbol for each
// transition the input does not take). Pruning keeps the set finite and
// non-redundant: chains that loop without consuming input, chains that
// shortcut past their own insertions, and chains that pay more insertions
// to reach a point a cheaper chain already covers are all dropped.
package traverse

import (
	"sort"

	"github.com/coregx/whynot/dfa"
	"github.com/coregx/whynot/record"
)

// InputFunc produces the input sequence one symbol at a time: (symbol,
// true) for the next symbol, ("", false) once the input is exhausted.
//
// The traverser calls it at most once per position and never again after it
// reports exhaustion, so a source that would misbehave by yielding further
// symbols afterwards is never consulted and cannot re-open the input.
type InputFunc func() (string, bool)

// Traverser enumerates minimal accepting extensions of an input against one
// automaton.
//
// The automaton is shared and read-only; the Traverser's own state (input
// buffer, tails, finals) belongs to one Execute call at a time, so a
// Traverser must not be used concurrently.
type Traverser struct {
	d   *dfa.DFA
	cfg Config

	next      InputFunc
	buf       []string
	inputOver bool

	tails  []*record.Record
	finals []*record.Record
}

// New creates a Traverser for the given automaton.
func New(d *dfa.DFA, cfg Config) (*Traverser, error) {
	if d == nil {
		return nil, ErrNilAutomaton
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Traverser{d: d, cfg: cfg}, nil
}

// Execute runs the traversal over the input produced by next and returns
// every terminal record: one per distinct minimal completion, each chain
// reading (root to tip) as the interleaving of accepted input symbols and
// hypothetical insertions that reaches a final state.
//
// Execute resets all per-run state at entry, so a Traverser is reusable
// across calls. The result order is deterministic for a deterministic input
// source: the automaton's edge order fixes the expansion order end to end.
func (t *Traverser) Execute(next InputFunc) ([]*record.Record, error) {
	t.next = next
	t.buf = t.buf[:0]
	t.inputOver = false
	t.finals = nil
	t.tails = []*record.Record{record.Initial(t.d.Initial())}

	generation := 0
	for len(t.tails) > 0 {
		if t.cfg.MaxGenerations > 0 && generation >= t.cfg.MaxGenerations {
			return nil, ErrGenerationLimit
		}
		var nextTails []*record.Record
		for i, tail := range t.tails {
			if tail.HasLoops(t.cfg.MinLoopLength) {
				continue
			}
			if !t.usefulAlternative(tail, i) {
				continue
			}
			if t.isRecordFinal(tail) {
				t.finals = append(t.finals, tail)
				continue
			}
			nextTails = t.expand(tail, nextTails)
		}
		t.tails = nextTails
		generation++
	}
	return t.finals, nil
}

// symbolAt returns the input symbol at position i, pulling from the source
// as needed. Returns ("", false) once the input ends at or before i.
func (t *Traverser) symbolAt(i int) (string, bool) {
	for len(t.buf) <= i {
		if t.inputOver {
			return "", false
		}
		sym, ok := t.next()
		if !ok {
			t.inputOver = true
			return "", false
		}
		t.buf = append(t.buf, sym)
	}
	return t.buf[i], true
}

// isRecordFinal reports whether tail terminates a completion: it landed in
// an accepting state and has consumed the entire input. Probing one
// position past the consumed prefix is what establishes "entire": the
// source is pulled until it either yields a further symbol (not final) or
// reports exhaustion.
func (t *Traverser) isRecordFinal(tail *record.Record) bool {
	if !t.d.IsFinal(tail.Target()) {
		return false
	}
	if _, ok := t.symbolAt(tail.AcceptedCount()); ok {
		return false
	}
	return tail.AcceptedCount() == len(t.buf)
}

// expand produces tail's children and inserts them into the next
// generation: the accept child if the next input symbol has a transition
// (and the shortcut check does not suppress it), the partial-missing child
// alongside it when other symbols share its transition, and one missing
// child per remaining reachable target.
func (t *Traverser) expand(tail *record.Record, nextTails []*record.Record) []*record.Record {
	s := tail.Target()
	groups := t.d.Groups(s)

	a, haveInput := t.symbolAt(tail.AcceptedCount())
	ns := dfa.InvalidState
	haveNext := false
	if haveInput {
		ns, haveNext = t.d.Next(s, a)
	}

	if haveNext {
		if !t.shortcutsSelf(tail, a, ns) {
			nextTails = insertByMissingCount(nextTails, record.Accept(tail, a, ns))
		}
		for _, g := range groups {
			if g.Target == ns && len(g.Symbols) >= 2 {
				nextTails = insertByMissingCount(nextTails, record.PartialMissing(tail, g.Symbols, a, ns))
				break
			}
		}
	}
	for _, g := range groups {
		if haveNext && g.Target == ns {
			continue
		}
		nextTails = insertByMissingCount(nextTails, record.Missing(tail, g.Symbols, g.Target))
	}
	return nextTails
}

// shortcutsSelf is the shortcut check on tail's accept child: when tail is
// a missing record and the input symbol already has a transition from the
// last accept record's state straight to the child's target, the child
// duplicates a route that skips tail's insertions and is suppressed.
func (t *Traverser) shortcutsSelf(tail *record.Record, symbol string, ns dfa.StateID) bool {
	if tail.Accepted() {
		return false
	}
	last := tail.LastAccept()
	shortcut, ok := t.d.Next(last.Target(), symbol)
	return ok && shortcut == ns
}

// insertByMissingCount inserts r into tails, kept sorted by ascending
// missing count. The insertion point is the right-biased upper bound, so a
// new record goes after its equal-count peers: cheaper tails stay first and
// drive the pruning decisions of the next generation.
func insertByMissingCount(tails []*record.Record, r *record.Record) []*record.Record {
	i := sort.Search(len(tails), func(j int) bool {
		return tails[j].MissingCount() > r.MissingCount()
	})
	tails = append(tails, nil)
	copy(tails[i+1:], tails[i:])
	tails[i] = r
	return tails
}
