// Package record implements the derivation-record graph: immutable nodes,
// each describing one step of a traversal, linked backwards to a shared
// root. A record either accepted one real input symbol or hypothetically
// inserted ("missed") one of a set of symbols to take a transition.
//
// Records are never mutated after construction. Many traversal tails share
// ancestry through the prev links, so the graph is a tree of chains rooted
// at the initial record.
package record

import (
	"fmt"
	"strings"

	"github.com/coregx/whynot/dfa"
)

// Record is one immutable derivation step.
//
// The accepted/missing counts and the nearest accept ancestor are cached at
// construction time (each is the parent's value plus a constant), so every
// query on them is O(1) even though they are defined over the whole chain.
type Record struct {
	prev       *Record
	target     dfa.StateID
	characters []string
	accepted   bool

	acceptedCount int
	missingCount  int
	lastAccept    *Record
}

// Initial creates the root record for a traversal starting at q0.
//
// It carries the epsilon placeholder (the empty symbol) and counts as an
// accept record with an accepted count of zero, so the pruning rules and
// the shortcut check have a uniform chain end to work against.
func Initial(q0 dfa.StateID) *Record {
	r := &Record{
		target:     q0,
		characters: []string{""},
		accepted:   true,
	}
	r.lastAccept = r
	return r
}

// Accept creates the record for consuming one real input symbol, landing in
// target.
func Accept(prev *Record, symbol string, target dfa.StateID) *Record {
	r := &Record{
		prev:          prev,
		target:        target,
		characters:    []string{symbol},
		accepted:      true,
		acceptedCount: prev.acceptedCount + 1,
		missingCount:  prev.missingCount,
	}
	r.lastAccept = r
	return r
}

// Missing creates the record for a hypothetical insertion: any one of
// symbols would take the transition into target. symbols must be non-empty;
// it is copied, so the caller's slice may alias shared structures.
func Missing(prev *Record, symbols []string, target dfa.StateID) *Record {
	if len(symbols) == 0 {
		panic("record: missing record with no symbols")
	}
	return &Record{
		prev:          prev,
		target:        target,
		characters:    append([]string(nil), symbols...),
		accepted:      false,
		acceptedCount: prev.acceptedCount,
		missingCount:  prev.missingCount + 1,
		lastAccept:    prev.lastAccept,
	}
}

// PartialMissing creates a missing record for symbols with the first
// occurrence of excluded removed. The caller guarantees len(symbols) >= 2,
// so the resulting list is non-empty.
func PartialMissing(prev *Record, symbols []string, excluded string, target dfa.StateID) *Record {
	rest := make([]string, 0, len(symbols)-1)
	dropped := false
	for _, s := range symbols {
		if !dropped && s == excluded {
			dropped = true
			continue
		}
		rest = append(rest, s)
	}
	if len(rest) == 0 {
		panic("record: partial missing record with no symbols")
	}
	return &Record{
		prev:          prev,
		target:        target,
		characters:    rest,
		accepted:      false,
		acceptedCount: prev.acceptedCount,
		missingCount:  prev.missingCount + 1,
		lastAccept:    prev.lastAccept,
	}
}

// Prev returns the preceding record, or nil for the initial record.
func (r *Record) Prev() *Record {
	return r.prev
}

// Target returns the DFA state this record lands in.
func (r *Record) Target() dfa.StateID {
	return r.target
}

// Characters returns this step's symbols: a single real symbol for an
// accept record, or the alternative insertion symbols for a missing record.
// The returned slice must not be modified.
func (r *Record) Characters() []string {
	return r.characters
}

// Accepted reports whether this record consumed a real input symbol.
func (r *Record) Accepted() bool {
	return r.accepted
}

// AcceptedCount returns the number of real input symbols consumed along the
// chain up to and including this record. The initial record contributes
// zero despite counting as an accept record.
func (r *Record) AcceptedCount() int {
	return r.acceptedCount
}

// MissingCount returns the number of insertion steps along the chain.
func (r *Record) MissingCount() int {
	return r.missingCount
}

// TotalCount returns AcceptedCount + MissingCount.
func (r *Record) TotalCount() int {
	return r.acceptedCount + r.missingCount
}

// LastAccept returns the nearest record on the chain, including r itself,
// that consumed a real symbol. The initial record qualifies, so this is
// never nil.
func (r *Record) LastAccept() *Record {
	return r.lastAccept
}

// HasLoops reports whether the chain of r's ancestors revisits a DFA state
// without consuming input: two ancestors (r itself excluded) share the same
// target state and accepted count, more than minLen steps apart. Any such
// revisit means the traversal went through a cycle of pure insertions,
// which a shorter chain already covers.
func (r *Record) HasLoops(minLen int) bool {
	type visit struct {
		target   dfa.StateID
		accepted int
	}
	// Walking backwards, accepted counts are non-increasing, so a map
	// keyed by (target, acceptedCount) sees each cohort contiguously.
	first := make(map[visit]int)
	step := 0
	for a := r.prev; a != nil; a = a.prev {
		v := visit{target: a.target, accepted: a.acceptedCount}
		if seen, ok := first[v]; ok {
			if step-seen > minLen {
				return true
			}
		} else {
			first[v] = step
		}
		step++
	}
	return false
}

// IsPartialOf reports whether r and other are both missing records into the
// same target state and r's symbol list is other's with exactly one element
// removed. It expresses that r explored all but one of the same insertion
// alternatives other did.
func (r *Record) IsPartialOf(other *Record) bool {
	if r.accepted || other.accepted {
		return false
	}
	if r.target != other.target {
		return false
	}
	if len(r.characters) != len(other.characters)-1 {
		return false
	}
	// One mismatch is allowed: skip a single element of other.
	skipped := false
	i := 0
	for _, c := range other.characters {
		if i < len(r.characters) && r.characters[i] == c {
			i++
			continue
		}
		if skipped {
			return false
		}
		skipped = true
	}
	return i == len(r.characters)
}

// String returns a compact rendering of this record (not its chain), mainly
// for debugging and test failure messages.
func (r *Record) String() string {
	kind := "missing"
	if r.accepted {
		kind = "accept"
	}
	return fmt.Sprintf("%s(%s -> %d)", kind, strings.Join(r.characters, "|"), r.target)
}
