// Package scoring implements the pure scoring engine: it evaluates one
// (task, staff) pair against a weighted criterion policy and produces a
// numeric score plus a reasoning trace. It never mutates anything and
// never blocks.
package scoring

import (
	"github.com/nvoss/staff-mesh/internal/domain/dispatch"
	domainstaff "github.com/nvoss/staff-mesh/internal/domain/staff"
	domaintask "github.com/nvoss/staff-mesh/internal/domain/task"
)

// Result is the scoring output for a single candidate.
type Result struct {
	Score     float64  `json:"score"` // 0–100
	Excluded  bool     `json:"excluded"`
	Reasoning []string `json:"reasoning"`
}

// Engine sums the active criteria of its policy.
type Engine struct {
	policy Policy
}

func NewEngine(policy Policy) *Engine {
	return &Engine{policy: policy}
}

// Score evaluates one candidate for one task under the given settings.
//
// The weighted sum is renormalized by the sum of the enabled weights, so the
// score stays on a 0–100 scale no matter which criteria are toggled on. The
// result is clamped to [0,100] as a final guard.
//
// Offline staff are excluded outright; callers are expected to filter them
// before scoring, but the engine enforces it regardless.
func (e *Engine) Score(t domaintask.Task, s domainstaff.Staff, cfg dispatch.Settings) Result {
	if s.Availability() == domainstaff.Offline {
		return Result{Excluded: true, Reasoning: []string{"staff offline"}}
	}

	var weighted, weightSum float64
	var reasoning []string

	for _, criterion := range e.policy {
		f := criterion(t, s, cfg)
		if f.Veto {
			return Result{Excluded: true, Reasoning: []string{f.Reason}}
		}
		if !f.Enabled {
			continue
		}
		weighted += f.Value * f.Weight
		weightSum += f.Weight
		reasoning = append(reasoning, f.Label)
	}

	if weightSum == 0 {
		return Result{Reasoning: reasoning}
	}

	score := weighted / weightSum
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return Result{Score: score, Reasoning: reasoning}
}
