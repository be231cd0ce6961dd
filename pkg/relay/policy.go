package relay

import "time"

// Policy holds the two hand-off durations of a run. Steady applies to
// every operation after the first; First, when positive, replaces
// Steady for the very first operation on a side. Offer side and
// retrieve side each track their own first operation via a Tracker.
type Policy struct {
	Steady time.Duration
	First  time.Duration
}

func (p Policy) first() time.Duration {
	if p.First > 0 {
		return p.First
	}
	return p.Steady
}

// Tracker returns the first-vs-steady state for one side of a run.
// Each side (offer, retrieve) owns exactly one Tracker; they are
// never shared.
func (p Policy) Tracker() *Tracker {
	return &Tracker{policy: p}
}

// Tracker remembers whether the first timeout of its side has been
// consumed. Timeout is consulted before each operation; Advance is
// called once after each successful one.
type Tracker struct {
	policy    Policy
	usedFirst bool
}

func (t *Tracker) Timeout() time.Duration {
	if !t.usedFirst {
		return t.policy.first()
	}
	return t.policy.Steady
}

func (t *Tracker) Advance() {
	t.usedFirst = true
}
