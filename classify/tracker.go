// SPDX-License-Identifier: EPL-2.0

package classify

import (
	"cmp"
	"slices"
	"sync"
)

// Tracker keeps the History of every pair in contact.
type Tracker struct {
	th    Thresholds
	mtx   sync.Mutex
	pairs map[Pair]History
}

func NewTracker(th Thresholds) *Tracker {
	return &Tracker{th: th, pairs: make(map[Pair]History)}
}

func (t *Tracker) Thresholds() Thresholds { return t.th }

// Classify runs Classify with the stored history of ev's pair and stores
// the new one.
func (t *Tracker) Classify(ev ContactEvent) Result {
	key := ev.Pair()

	t.mtx.Lock()
	defer t.mtx.Unlock()

	res, next := Classify(ev, t.pairs[key], t.th)
	if next.Fresh() {
		delete(t.pairs, key)
	} else {
		t.pairs[key] = next
	}
	return res
}

// History returns the stored history of p.
func (t *Tracker) History(p Pair) (History, bool) {
	t.mtx.Lock()
	defer t.mtx.Unlock()

	h, ok := t.pairs[p]
	return h, ok
}

// Forget drops the history of p, so its next event starts a new contact.
func (t *Tracker) Forget(p Pair) {
	t.mtx.Lock()
	defer t.mtx.Unlock()

	delete(t.pairs, p)
}

// Pairs returns the tracked pairs in a stable order.
func (t *Tracker) Pairs() []Pair {
	t.mtx.Lock()
	out := make([]Pair, 0, len(t.pairs))
	for p := range t.pairs {
		out = append(out, p)
	}
	t.mtx.Unlock()

	slices.SortFunc(out, func(a, b Pair) int {
		if c := cmp.Compare(a.A, b.A); c != 0 {
			return c
		}
		if c := cmp.Compare(a.B, b.B); c != 0 {
			return c
		}
		switch {
		case a.Environment == b.Environment:
			return 0
		case a.Environment:
			return 1
		default:
			return -1
		}
	})
	return out
}
