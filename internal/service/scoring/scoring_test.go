package scoring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvoss/staff-mesh/internal/domain/dispatch"
	domainstaff "github.com/nvoss/staff-mesh/internal/domain/staff"
	domaintask "github.com/nvoss/staff-mesh/internal/domain/task"
	"github.com/nvoss/staff-mesh/internal/service/scoring"
)

func newEngine() *scoring.Engine {
	return scoring.NewEngine(scoring.DefaultPolicy())
}

func electricalTask() domaintask.Task {
	return domaintask.Task{
		Title:          "Repair panel",
		Location:       "floor-1",
		RequiredSkills: []string{"electrical"},
	}
}

func TestScore_WorkloadAndLocationBeatPerformance(t *testing.T) {
	// A is lightly loaded and on site; B is nearly saturated and elsewhere.
	// B's higher performance must not flip the ranking.
	engine := newEngine()
	task := electricalTask()

	a := domainstaff.Staff{
		Name: "A", OnShift: true, CurrentLoad: 20, Location: "floor-1",
		Skills:      []string{"electrical"},
		Performance: domainstaff.Performance{Efficiency: 90, Quality: 90, Speed: 90},
	}
	b := domainstaff.Staff{
		Name: "B", OnShift: true, CurrentLoad: 90, Location: "floor-2",
		Skills:      []string{"electrical"},
		Performance: domainstaff.Performance{Efficiency: 95, Quality: 95, Speed: 95},
	}

	ra := engine.Score(task, a, dispatch.DefaultSettings)
	rb := engine.Score(task, b, dispatch.DefaultSettings)

	require.False(t, ra.Excluded)
	require.False(t, rb.Excluded)
	assert.Greater(t, ra.Score, rb.Score)

	// All four criteria enabled under adaptive matching:
	// (0.30*80 + 0.40*100 + 0.25*90 + 0.15*100) / 1.10
	assert.InDelta(t, 92.27, ra.Score, 0.01)
	// (0.30*10 + 0.40*100 + 0.25*95 + 0.15*70) / 1.10
	assert.InDelta(t, 70.23, rb.Score, 0.01)
}

func TestScore_OfflineStaffExcluded(t *testing.T) {
	engine := newEngine()

	s := domainstaff.Staff{
		Name: "C", OnShift: false,
		Skills: []string{"electrical"},
	}

	res := engine.Score(electricalTask(), s, dispatch.DefaultSettings)
	assert.True(t, res.Excluded)
	assert.Zero(t, res.Score)
	assert.Equal(t, []string{"staff offline"}, res.Reasoning)
}

func TestScore_StrictMatchingVetoesMissingSkill(t *testing.T) {
	engine := newEngine()
	settings := dispatch.DefaultSettings
	settings.SkillMatching = dispatch.SkillStrict

	s := domainstaff.Staff{
		Name: "D", OnShift: true,
		Skills:      []string{"plumbing"},
		Performance: domainstaff.Performance{Efficiency: 100, Quality: 100, Speed: 100},
	}

	res := engine.Score(electricalTask(), s, settings)
	assert.True(t, res.Excluded)
	assert.Equal(t, []string{"missing required skills"}, res.Reasoning)
}

func TestScore_FlexibleMatchingScoresPartialOverlap(t *testing.T) {
	engine := newEngine()
	settings := dispatch.DefaultSettings
	settings.SkillMatching = dispatch.SkillFlexible

	task := electricalTask()
	task.RequiredSkills = []string{"electrical", "welding"}

	s := domainstaff.Staff{
		Name: "E", OnShift: true, Location: "floor-1",
		Skills:      []string{"electrical"},
		Performance: domainstaff.Performance{Efficiency: 80, Quality: 80, Speed: 80},
	}

	res := engine.Score(task, s, settings)
	require.False(t, res.Excluded)
	// Flexible keeps the base skill weight:
	// (0.30*100 + 0.30*50 + 0.25*80 + 0.15*100) / 1.00
	assert.InDelta(t, 80.0, res.Score, 0.01)
	assert.Contains(t, res.Reasoning, "Skills: 1/2 required skills matched")
}

func TestScore_RenormalizesWhenCriteriaDisabled(t *testing.T) {
	// With everything but skills toggled off, a full skill match still scores
	// 100: the scale does not shrink with the enabled-weight sum.
	engine := newEngine()
	settings := dispatch.Settings{
		SkillMatching:       dispatch.SkillAdaptive,
		AutoAssignThreshold: 85,
	}

	s := domainstaff.Staff{
		Name: "F", OnShift: true, CurrentLoad: 95,
		Skills: []string{"electrical"},
	}

	res := engine.Score(electricalTask(), s, settings)
	require.False(t, res.Excluded)
	assert.InDelta(t, 100.0, res.Score, 1e-9)
	require.Len(t, res.Reasoning, 1)
}

func TestScore_NoRequiredSkillsCountsAsFullMatch(t *testing.T) {
	engine := newEngine()
	task := electricalTask()
	task.RequiredSkills = nil

	s := domainstaff.Staff{Name: "G", OnShift: true, Location: "floor-1"}

	res := engine.Score(task, s, dispatch.DefaultSettings)
	require.False(t, res.Excluded)
	assert.Contains(t, res.Reasoning, "Skills: no specific skills required")
}

func TestScore_ReasoningCoversEnabledCriteria(t *testing.T) {
	engine := newEngine()

	s := domainstaff.Staff{
		Name: "H", OnShift: true, CurrentLoad: 40, Location: "floor-1",
		Skills:      []string{"electrical"},
		Performance: domainstaff.Performance{Efficiency: 75, Quality: 75, Speed: 75},
	}

	res := engine.Score(electricalTask(), s, dispatch.DefaultSettings)
	require.Len(t, res.Reasoning, 4)
	assert.Equal(t, "Workload: 60% available capacity", res.Reasoning[0])
	assert.Equal(t, "Skills: 1/1 required skills matched", res.Reasoning[1])
	assert.Equal(t, "Performance: 75 average rating", res.Reasoning[2])
	assert.Equal(t, "Location: on site at floor-1", res.Reasoning[3])
}
