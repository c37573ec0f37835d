package progress

import "sync"

// Tracker holds the current step statuses for display. It is reset at the
// start of every submission and mutated only through Update.
type Tracker struct {
	mu    sync.RWMutex
	steps []Step
}

// NewTracker creates a tracker with all steps pending.
func NewTracker() *Tracker {
	return &Tracker{steps: InitialSteps()}
}

// Reset puts every step back to pending.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.steps = InitialSteps()
}

// Update sets the status of the step with the given id. Unknown ids are
// ignored.
func (t *Tracker) Update(id string, status Status) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i := range t.steps {
		if t.steps[i].ID == id {
			t.steps[i].Status = status
			return
		}
	}
}

// Snapshot returns a copy of the current step list in display order.
func (t *Tracker) Snapshot() []Step {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]Step, len(t.steps))
	copy(out, t.steps)
	return out
}
