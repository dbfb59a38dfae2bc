package cli

import (
	"time"

	"github.com/ajrivet/tassel/internal/domain"
)

// DoubleTapWindow is how long a tap stays pending before it resolves as
// a single activation. Short enough to tell tap from double-tap apart
// reliably.
const DoubleTapWindow = 300 * time.Millisecond

// ClassifiedTap is a resolved gesture ready for dispatch into the
// progress state machine.
type ClassifiedTap struct {
	Code       string
	Activation domain.Activation
}

type pendingTap struct {
	code string
	at   time.Time
}

// TapClassifier turns raw slot activations into single or double
// activations. A tap is held pending for the window; a second tap on
// the same code inside the window upgrades it to a double, anything
// else (a different code, or the window elapsing via Expire) releases
// it as a single. Time is passed in explicitly so the classifier stays
// deterministic; the caller owns the timer that drives Expire.
type TapClassifier struct {
	window  time.Duration
	pending *pendingTap
	seq     int
}

// NewTapClassifier creates a classifier with the given double-tap
// window.
func NewTapClassifier(window time.Duration) *TapClassifier {
	return &TapClassifier{window: window}
}

// Tap records an activation at now and returns any taps that resolved
// because of it. A nil result means the tap is pending: schedule a
// timer for the window and call Expire(Seq()) when it fires.
func (c *TapClassifier) Tap(code string, now time.Time) []ClassifiedTap {
	if c.pending == nil {
		c.hold(code, now)
		return nil
	}

	prev := *c.pending
	if prev.code == code && now.Sub(prev.at) < c.window {
		c.pending = nil
		c.seq++
		return []ClassifiedTap{{Code: code, Activation: domain.ActivationDouble}}
	}

	// Different slot, or a stale pending tap whose timer has not fired
	// yet: release it as a single and hold the new tap.
	c.hold(code, now)
	return []ClassifiedTap{{Code: prev.code, Activation: domain.ActivationSingle}}
}

// Seq identifies the currently pending tap. A later Tap call
// invalidates earlier sequence numbers, so a timer fired for a
// superseded tap expires nothing.
func (c *TapClassifier) Seq() int {
	return c.seq
}

// Expire resolves the pending tap as a single activation, provided seq
// still identifies it.
func (c *TapClassifier) Expire(seq int) []ClassifiedTap {
	if c.pending == nil || seq != c.seq {
		return nil
	}
	code := c.pending.code
	c.pending = nil
	return []ClassifiedTap{{Code: code, Activation: domain.ActivationSingle}}
}

func (c *TapClassifier) hold(code string, now time.Time) {
	c.pending = &pendingTap{code: code, at: now}
	c.seq++
}
