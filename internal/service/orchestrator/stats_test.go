package orchestrator_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nvoss/staff-mesh/internal/service/orchestrator"
)

func TestAccumulator_StreamingAverage(t *testing.T) {
	acc := orchestrator.NewAccumulator()
	acc.BeginRun()

	acc.Processed(90)
	acc.Processed(70)
	acc.Processed(80)

	stats := acc.Snapshot()
	assert.Equal(t, 3, stats.TasksProcessed)
	assert.InDelta(t, 80.0, stats.AvgConfidence, 1e-9)
}

func TestAccumulator_BeginRunResetsCounters(t *testing.T) {
	acc := orchestrator.NewAccumulator()
	acc.Processed(90)
	acc.AutoAssigned()
	acc.ManualOverride()
	acc.SkippedConflict()
	acc.Unassignable()

	acc.BeginRun()
	stats := acc.Snapshot()
	assert.Zero(t, stats.TasksProcessed)
	assert.Zero(t, stats.AutoAssigned)
	assert.Zero(t, stats.ManualOverrides)
	assert.Zero(t, stats.SkippedConflicts)
	assert.Zero(t, stats.Unassignable)
	assert.Zero(t, stats.AvgConfidence)
}

func TestAccumulator_ConcurrentReports(t *testing.T) {
	acc := orchestrator.NewAccumulator()
	acc.BeginRun()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			acc.Processed(80)
			acc.AutoAssigned()
		}()
	}
	wg.Wait()

	stats := acc.Snapshot()
	assert.Equal(t, 50, stats.TasksProcessed)
	assert.Equal(t, 50, stats.AutoAssigned)
	assert.InDelta(t, 80.0, stats.AvgConfidence, 1e-9)
}
