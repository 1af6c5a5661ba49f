package traverse

import "github.com/coregx/whynot/record"

// Pruning predicates. A tail survives expansion iff it is loop-free and a
// useful alternative relative to the finals found so far and the tails
// before it in the current generation. The shortcut check lives in
// traverse.go next to accept-child production, since it is local to one
// candidate transition rather than a property of the tail.

// usefulAlternative reports whether the tail at index idx in the current
// generation is worth expanding: no already-final record and no earlier
// in-generation peer is uselessly extended by it.
//
// Only earlier peers are consulted. Later peers have a higher-or-equal
// missing count and are themselves tested against this tail when their turn
// comes; consulting them here would let two tails eliminate each other.
func (t *Traverser) usefulAlternative(tail *record.Record, idx int) bool {
	for _, f := range t.finals {
		if uselesslyExtends(tail, f) {
			return false
		}
	}
	for _, peer := range t.tails[:idx] {
		if peer == tail {
			continue
		}
		if uselesslyExtends(tail, peer) {
			return false
		}
	}
	return true
}

// uselesslyExtends reports whether tested reaches the same point as some
// record in other's chain while paying at least as many steps along a
// structurally comparable path (extra insertions, or a partial variant of
// one of that record's insertions). Such a tested chain can never
// contribute a completion its counterpart does not already cover.
func uselesslyExtends(tested, other *record.Record) bool {
	base := findBase(tested, other)
	if base == nil {
		return false
	}
	return extendsBase(tested, base)
}

// findBase walks other's chain looking for the first record matching
// tested's (target state, accepted count). Accepted counts are
// non-increasing walking backwards, so the walk stops as soon as they drop
// below tested's: no match is possible past that point.
func findBase(tested, other *record.Record) *record.Record {
	for b := other; b != nil; b = b.Prev() {
		if b.AcceptedCount() < tested.AcceptedCount() {
			return nil
		}
		if b.AcceptedCount() == tested.AcceptedCount() && b.Target() == tested.Target() {
			return b
		}
	}
	return nil
}

// extendsBase walks tested's chain and base's chain backwards in near
// lockstep. tested extends base when the walk reaches a shared record, or
// exhausts base's chain, with every base record matched along the way —
// either as the identical record or with tested carrying a partial variant
// of it. tested is allowed extra interstitial records (its pointer advances
// alone when the current pair does not line up); those extras are exactly
// the insertions that make it the more expensive route.
func extendsBase(tested, base *record.Record) bool {
	tp, bp := tested, base
	for {
		if tp == bp {
			return true
		}
		if tp == nil {
			return false
		}
		if bp == nil {
			return true
		}
		if tp.TotalCount() < bp.TotalCount() {
			return false
		}
		if tp.IsPartialOf(bp) {
			tp, bp = tp.Prev(), bp.Prev()
		} else {
			tp = tp.Prev()
		}
	}
}
