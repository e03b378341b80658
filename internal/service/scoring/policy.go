package scoring

import (
	"fmt"

	"github.com/nvoss/staff-mesh/internal/domain/dispatch"
	domainstaff "github.com/nvoss/staff-mesh/internal/domain/staff"
	domaintask "github.com/nvoss/staff-mesh/internal/domain/task"
)

// Criterion weights. The skill weight rises under adaptive matching.
const (
	weightWorkload      = 0.30
	weightSkills        = 0.30
	weightSkillsAdapted = 0.40
	weightPerformance   = 0.25
	weightLocation      = 0.15

	locationMatchValue  = 100
	locationRemoteValue = 70
)

// Factor is one criterion's contribution to a candidate's score.
type Factor struct {
	Label   string  // human-readable reasoning entry, e.g. "Workload: 80% available capacity"
	Value   float64 // raw 0–100 value before weighting
	Weight  float64
	Enabled bool
	Veto    bool   // hard exclusion regardless of other factors
	Reason  string // recorded when Veto is set
}

// Criterion computes one factor for a (task, staff) pair under the given settings.
// Criteria are pure: no side effects, inputs treated as snapshots.
type Criterion func(t domaintask.Task, s domainstaff.Staff, cfg dispatch.Settings) Factor

// Policy is the ordered list of criteria the engine sums. Replacing or
// extending the list changes scoring behavior without touching the
// ranking or commit machinery.
type Policy []Criterion

// DefaultPolicy is the four-criterion additive policy: workload balance,
// skill match, performance, and location affinity.
func DefaultPolicy() Policy {
	return Policy{
		WorkloadCriterion,
		SkillCriterion,
		PerformanceCriterion,
		LocationCriterion,
	}
}

// WorkloadCriterion rewards spare capacity: value is 100 minus current load.
func WorkloadCriterion(_ domaintask.Task, s domainstaff.Staff, cfg dispatch.Settings) Factor {
	value := 100 - s.CurrentLoad
	return Factor{
		Label:   fmt.Sprintf("Workload: %.0f%% available capacity", value),
		Value:   value,
		Weight:  weightWorkload,
		Enabled: cfg.BalanceWorkload,
	}
}

// SkillCriterion scores the overlap between required and held skills.
// Under strict matching a single missing skill vetoes the candidate.
// Tasks with no required skills count as a full match.
func SkillCriterion(t domaintask.Task, s domainstaff.Staff, cfg dispatch.Settings) Factor {
	required := len(t.RequiredSkills)
	matched := s.MatchedSkills(t.RequiredSkills)

	if cfg.SkillMatching == dispatch.SkillStrict && matched < required {
		return Factor{Veto: true, Reason: "missing required skills"}
	}

	value := float64(100)
	label := "Skills: no specific skills required"
	if required > 0 {
		value = 100 * float64(matched) / float64(required)
		label = fmt.Sprintf("Skills: %d/%d required skills matched", matched, required)
	}

	weight := weightSkills
	if cfg.SkillMatching == dispatch.SkillAdaptive {
		weight = weightSkillsAdapted
	}
	return Factor{Label: label, Value: value, Weight: weight, Enabled: true}
}

// PerformanceCriterion averages the three tracked performance dimensions.
func PerformanceCriterion(_ domaintask.Task, s domainstaff.Staff, cfg dispatch.Settings) Factor {
	value := s.Performance.Average()
	return Factor{
		Label:   fmt.Sprintf("Performance: %.0f average rating", value),
		Value:   value,
		Weight:  weightPerformance,
		Enabled: cfg.PrioritizeEfficiency,
	}
}

// LocationCriterion prefers staff already at the task's location. A mismatch
// still scores 70: relocation is a cost, not a disqualifier.
func LocationCriterion(t domaintask.Task, s domainstaff.Staff, cfg dispatch.Settings) Factor {
	value := float64(locationRemoteValue)
	label := fmt.Sprintf("Location: %s, task at %s", s.Location, t.Location)
	if s.Location == t.Location {
		value = locationMatchValue
		label = fmt.Sprintf("Location: on site at %s", t.Location)
	}
	return Factor{
		Label:   label,
		Value:   value,
		Weight:  weightLocation,
		Enabled: cfg.ConsiderLocation,
	}
}
