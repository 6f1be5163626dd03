package views

import "time"

// RevealOptions sets the staggered card entrance timing:
// card i of a page appears after Base + min(i, MaxIndex)*Step.
type RevealOptions struct {
	Base     time.Duration
	Step     time.Duration
	MaxIndex int
}

// DefaultRevealOptions matches a 100ms lead-in and 50ms stagger
var DefaultRevealOptions = RevealOptions{
	Base:     100 * time.Millisecond,
	Step:     50 * time.Millisecond,
	MaxIndex: 20,
}

// Delay returns the entrance delay for the card at index within its page
func (o RevealOptions) Delay(index int) time.Duration {
	return o.Base + time.Duration(min(index, o.MaxIndex))*o.Step
}

// RevealRequest asks the host to call Reveal(ID, Token) after After
type RevealRequest struct {
	ID    string
	Token uint64
	After time.Duration
}

// RevealTracker remembers which cards have played their entrance.
// A card animates once while it stays on screen; a card that leaves the
// visible set forgets its state and any pending reveal becomes stale.
type RevealTracker struct {
	opts    RevealOptions
	seq     uint64
	pending map[string]uint64
	shown   map[string]bool
}

// NewRevealTracker creates an empty tracker
func NewRevealTracker(opts RevealOptions) *RevealTracker {
	return &RevealTracker{
		opts:    opts,
		pending: make(map[string]uint64),
		shown:   make(map[string]bool),
	}
}

// Sync reconciles the tracker with the cards now on screen, in order, and
// returns a request for every card that still has to appear.
func (r *RevealTracker) Sync(ids []string, pageSize int) []RevealRequest {
	present := make(map[string]bool, len(ids))
	for _, id := range ids {
		present[id] = true
	}
	for id := range r.shown {
		if !present[id] {
			delete(r.shown, id)
		}
	}
	for id := range r.pending {
		if !present[id] {
			delete(r.pending, id)
		}
	}

	pageSize = max(pageSize, 1)
	var reqs []RevealRequest
	for i, id := range ids {
		if r.shown[id] || r.pending[id] != 0 {
			continue
		}
		r.seq++
		r.pending[id] = r.seq
		reqs = append(reqs, RevealRequest{ID: id, Token: r.seq, After: r.opts.Delay(i % pageSize)})
	}
	return reqs
}

// Reveal completes a request. Stale tokens are ignored.
func (r *RevealTracker) Reveal(id string, token uint64) bool {
	if token == 0 || r.pending[id] != token {
		return false
	}
	delete(r.pending, id)
	r.shown[id] = true
	return true
}

// Shown reports whether a card has appeared
func (r *RevealTracker) Shown(id string) bool {
	return r.shown[id]
}

// Stop cancels every pending reveal
func (r *RevealTracker) Stop() {
	clear(r.pending)
}
