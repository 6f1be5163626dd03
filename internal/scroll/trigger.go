// Package scroll decides when an infinite list should load its next page.
//
// A Trigger watches a boolean "sentinel visible" signal supplied by its
// host. It never sleeps or starts timers itself: every delay is returned to
// the host as a Request carrying a token, and the host calls back with that
// token when the delay elapses. Requests issued before Stop, or superseded
// by a newer request, are recognised by their token and ignored.
package scroll

import "time"

const (
	DefaultDelay    = 100 * time.Millisecond
	DefaultCooldown = 500 * time.Millisecond
)

// State is the trigger's position in idle -> triggered -> cooling -> idle
type State int

const (
	Idle State = iota
	Triggered
	Cooling
	Stopped
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Triggered:
		return "triggered"
	case Cooling:
		return "cooling"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Phase tells the host which callback a Request is for
type Phase int

const (
	PhaseFire Phase = iota // call Fire
	PhaseCool              // call Cool
)

// Request asks the host to call Fire or Cool with Token after After
type Request struct {
	Phase Phase
	Token uint64
	After time.Duration
}

// Options configures a Trigger
type Options struct {
	Delay    time.Duration // between the sentinel appearing and loading
	Cooldown time.Duration // minimum gap after a load before re-arming
}

// Trigger is the load-more state machine. It is not safe for concurrent
// use; hosts drive it from a single event loop.
type Trigger struct {
	opts  Options
	state State

	seq     uint64
	pending uint64 // token of the outstanding request, 0 if none

	observed    bool
	lastVisible bool
	lastHasMore bool
	missed      bool // a visible transition arrived while busy
}

// New creates an idle trigger
func New(opts Options) *Trigger {
	if opts.Delay <= 0 {
		opts.Delay = DefaultDelay
	}
	if opts.Cooldown <= 0 {
		opts.Cooldown = DefaultCooldown
	}
	return &Trigger{opts: opts}
}

// State returns the current state
func (t *Trigger) State() State {
	return t.state
}

// Observe reports the latest sentinel visibility and whether more items
// exist. It returns a fire request when a change in either input finds the
// sentinel visible, more items available, and the trigger idle.
func (t *Trigger) Observe(visible, hasMore bool) (Request, bool) {
	if t.state == Stopped {
		return Request{}, false
	}

	changed := !t.observed || visible != t.lastVisible || hasMore != t.lastHasMore
	t.observed = true
	t.lastVisible = visible
	t.lastHasMore = hasMore

	if !changed {
		return Request{}, false
	}
	if !visible || !hasMore {
		t.missed = false
		return Request{}, false
	}
	if t.state != Idle {
		t.missed = true
		return Request{}, false
	}
	return t.schedule(Triggered, PhaseFire, t.opts.Delay), true
}

// Fire completes a fire request. load reports whether the host should load
// the next page now; hasMore is re-checked because items may have changed
// during the delay. The returned request starts the cooldown.
func (t *Trigger) Fire(token uint64, hasMore bool) (load bool, next Request, ok bool) {
	if t.state != Triggered || token != t.pending {
		return false, Request{}, false
	}
	return hasMore, t.schedule(Cooling, PhaseCool, t.opts.Cooldown), true
}

// Cool ends a cooldown. If the sentinel became visible again while the
// trigger was busy, the missed transition is replayed as a new fire request.
func (t *Trigger) Cool(token uint64) (Request, bool) {
	if t.state != Cooling || token != t.pending {
		return Request{}, false
	}
	t.state = Idle
	t.pending = 0

	if t.missed && t.lastVisible && t.lastHasMore {
		t.missed = false
		return t.schedule(Triggered, PhaseFire, t.opts.Delay), true
	}
	t.missed = false
	return Request{}, false
}

// Stop tears the trigger down. Outstanding requests become stale and
// further observations are ignored.
func (t *Trigger) Stop() {
	t.state = Stopped
	t.pending = 0
	t.missed = false
}

// Label is the sentinel text for the given hasMore state
func Label(hasMore bool) string {
	if hasMore {
		return "Loading more links..."
	}
	return "No more links to show"
}

func (t *Trigger) schedule(state State, phase Phase, after time.Duration) Request {
	t.seq++
	t.state = state
	t.pending = t.seq
	return Request{Phase: phase, Token: t.seq, After: after}
}
