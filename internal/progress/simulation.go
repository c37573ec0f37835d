package progress

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Timings configures the synthetic per-step delays. The delays bear no
// relationship to the real platform calls' latency; they exist so the
// overlay advances at a smooth, predictable pace while the real work runs
// alongside it.
type Timings struct {
	Payment    time.Duration
	Subaccount time.Duration
	Assets     time.Duration
	Contact    time.Duration
	Campaign   time.Duration
	Finalize   time.Duration
}

// DefaultTimings returns the production pacing.
func DefaultTimings() Timings {
	return Timings{
		Payment:    1500 * time.Millisecond,
		Subaccount: 2500 * time.Millisecond,
		Assets:     2000 * time.Millisecond,
		Contact:    1000 * time.Millisecond,
		Campaign:   1500 * time.Millisecond,
		Finalize:   1000 * time.Millisecond,
	}
}

// Simulation walks the six steps on a fixed timer, independent of the
// orchestrator. Callers run it concurrently with the real onboarding and
// join both before declaring success.
type Simulation struct {
	timings Timings
	log     *zap.Logger
}

// NewSimulation creates a simulation with the given pacing.
func NewSimulation(timings Timings, log *zap.Logger) *Simulation {
	return &Simulation{
		timings: timings,
		log:     log,
	}
}

// Run advances each step loading -> completed in order, sleeping the
// configured delay in between. The assets step completes immediately when
// no logo was supplied, mirroring the skipped upload stage. Run stops
// early if ctx is cancelled.
func (s *Simulation) Run(ctx context.Context, hasLogo bool, update func(id string, status Status)) {
	step := func(id string, d time.Duration) bool {
		update(id, StatusLoading)
		select {
		case <-ctx.Done():
			s.log.Info("Progress simulation cancelled", zap.String("step", id))
			return false
		case <-time.After(d):
		}
		update(id, StatusCompleted)
		return true
	}

	if !step(StepPayment, s.timings.Payment) {
		return
	}
	if !step(StepSubaccount, s.timings.Subaccount) {
		return
	}

	if hasLogo {
		if !step(StepAssets, s.timings.Assets) {
			return
		}
	} else {
		update(StepAssets, StatusCompleted)
	}

	if !step(StepContact, s.timings.Contact) {
		return
	}
	if !step(StepCampaign, s.timings.Campaign) {
		return
	}
	step(StepFinalize, s.timings.Finalize)
}
