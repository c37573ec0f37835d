package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTracker_InitialStateAllPending(t *testing.T) {
	tracker := NewTracker()

	steps := tracker.Snapshot()
	assert.Len(t, steps, 6)
	for _, step := range steps {
		assert.Equal(t, StatusPending, step.Status)
	}
	assert.Equal(t, StepPayment, steps[0].ID)
	assert.Equal(t, StepFinalize, steps[5].ID)
}

func TestTracker_Update(t *testing.T) {
	tracker := NewTracker()

	tracker.Update(StepSubaccount, StatusLoading)

	steps := tracker.Snapshot()
	assert.Equal(t, StatusLoading, steps[1].Status)
	assert.Equal(t, StatusPending, steps[0].Status)
}

func TestTracker_Update_UnknownIDIgnored(t *testing.T) {
	tracker := NewTracker()

	tracker.Update("bogus", StatusCompleted)

	for _, step := range tracker.Snapshot() {
		assert.Equal(t, StatusPending, step.Status)
	}
}

func TestTracker_Reset(t *testing.T) {
	tracker := NewTracker()
	tracker.Update(StepPayment, StatusCompleted)
	tracker.Update(StepSubaccount, StatusError)

	tracker.Reset()

	for _, step := range tracker.Snapshot() {
		assert.Equal(t, StatusPending, step.Status)
	}
}

func TestTracker_SnapshotIsACopy(t *testing.T) {
	tracker := NewTracker()

	steps := tracker.Snapshot()
	steps[0].Status = StatusError

	assert.Equal(t, StatusPending, tracker.Snapshot()[0].Status)
}
