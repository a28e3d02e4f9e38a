// Package invite holds the eligibility tracker and the invite composer.
package invite

import "sync"

// Tracker records which students have already been sent an offer this
// session. Entries only ever flip to true; there is no undo. The flag is set
// after a submission attempt returns, so two attempts racing before the first
// completes are not suppressed; the backend stays the source of truth for
// duplicates.
type Tracker struct {
	mu   sync.Mutex
	sent map[string]bool
}

func NewTracker() *Tracker {
	return &Tracker{sent: make(map[string]bool)}
}

func (t *Tracker) IsDisabled(studentID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.sent[studentID]
}

func (t *Tracker) MarkInvited(studentID string) {
	t.mu.Lock()
	t.sent[studentID] = true
	t.mu.Unlock()
}

// Disabled returns a snapshot of every marked student, for the UI.
func (t *Tracker) Disabled() map[string]bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make(map[string]bool, len(t.sent))
	for id := range t.sent {
		out[id] = true
	}
	return out
}
