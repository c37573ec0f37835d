package progress

import (
	"context"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/stretchr/testify/assert"
)

func fastTimings() Timings {
	return Timings{
		Payment:    time.Millisecond,
		Subaccount: time.Millisecond,
		Assets:     time.Millisecond,
		Contact:    time.Millisecond,
		Campaign:   time.Millisecond,
		Finalize:   time.Millisecond,
	}
}

type recorder struct {
	mu      sync.Mutex
	updates []string
}

func (r *recorder) record(id string, status Status) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updates = append(r.updates, id+":"+string(status))
}

func (r *recorder) all() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.updates...)
}

func TestSimulation_Run_AllStepsComplete(t *testing.T) {
	sim := NewSimulation(fastTimings(), zap.NewNop())
	rec := &recorder{}

	sim.Run(context.Background(), true, rec.record)

	assert.Equal(t, []string{
		"payment:loading", "payment:completed",
		"subaccount:loading", "subaccount:completed",
		"assets:loading", "assets:completed",
		"contact:loading", "contact:completed",
		"campaign:loading", "campaign:completed",
		"finalize:loading", "finalize:completed",
	}, rec.all())
}

func TestSimulation_Run_NoLogoCompletesAssetsWithoutLoading(t *testing.T) {
	sim := NewSimulation(fastTimings(), zap.NewNop())
	rec := &recorder{}

	sim.Run(context.Background(), false, rec.record)

	updates := rec.all()
	assert.Contains(t, updates, "assets:completed")
	assert.NotContains(t, updates, "assets:loading")
}

func TestSimulation_Run_CancelledContextStopsEarly(t *testing.T) {
	timings := fastTimings()
	timings.Subaccount = time.Minute
	sim := NewSimulation(timings, zap.NewNop())
	rec := &recorder{}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		sim.Run(ctx, true, rec.record)
		close(done)
	}()

	// Let the first step finish, then cancel during the long second step.
	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("simulation did not stop after cancellation")
	}

	updates := rec.all()
	assert.Contains(t, updates, "payment:completed")
	assert.NotContains(t, updates, "subaccount:completed")
}
