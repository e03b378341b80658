package orchestrator

import (
	"sync"

	"github.com/nvoss/staff-mesh/internal/domain/dispatch"
)

// Accumulator tracks batch counters and a streaming mean of confidence.
// Safe for concurrent use: the batch loop and the manual assignment path
// may report at the same time.
type Accumulator struct {
	mu    sync.Mutex
	stats dispatch.Stats
}

func NewAccumulator() *Accumulator {
	return &Accumulator{}
}

// BeginRun resets the counters for a new batch pass. Manual overrides recorded
// after this point count against the new run.
func (a *Accumulator) BeginRun() {
	a.mu.Lock()
	a.stats = dispatch.Stats{}
	a.mu.Unlock()
}

// Processed records one scored task and folds its confidence into the
// running average.
func (a *Accumulator) Processed(confidence float64) {
	a.mu.Lock()
	n := float64(a.stats.TasksProcessed)
	a.stats.AvgConfidence = (a.stats.AvgConfidence*n + confidence) / (n + 1)
	a.stats.TasksProcessed++
	a.mu.Unlock()
}

func (a *Accumulator) AutoAssigned() {
	a.mu.Lock()
	a.stats.AutoAssigned++
	a.mu.Unlock()
}

func (a *Accumulator) ManualOverride() {
	a.mu.Lock()
	a.stats.ManualOverrides++
	a.mu.Unlock()
}

func (a *Accumulator) SkippedConflict() {
	a.mu.Lock()
	a.stats.SkippedConflicts++
	a.mu.Unlock()
}

func (a *Accumulator) Unassignable() {
	a.mu.Lock()
	a.stats.Unassignable++
	a.mu.Unlock()
}

// Snapshot returns a copy of the current counters.
func (a *Accumulator) Snapshot() dispatch.Stats {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.stats
}
