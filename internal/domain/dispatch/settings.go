package dispatch

import "fmt"

type SkillMatching string

const (
	SkillStrict   SkillMatching = "strict"
	SkillFlexible SkillMatching = "flexible"
	SkillAdaptive SkillMatching = "adaptive"
)

// Settings is the policy configuration for one distribution pass.
// It is immutable for the duration of a batch run.
type Settings struct {
	PrioritizeEfficiency bool          `json:"prioritize_efficiency"`
	BalanceWorkload      bool          `json:"balance_workload"`
	ConsiderLocation     bool          `json:"consider_location"`
	SkillMatching        SkillMatching `json:"skill_matching"`
	AutoAssignThreshold  int           `json:"auto_assign_threshold"`
}

// DefaultSettings enables every criterion with a conservative threshold.
var DefaultSettings = Settings{
	PrioritizeEfficiency: true,
	BalanceWorkload:      true,
	ConsiderLocation:     true,
	SkillMatching:        SkillAdaptive,
	AutoAssignThreshold:  85,
}

// Validate rejects malformed settings before any scoring begins.
// A batch run with invalid settings is refused in full, never partially run.
func (s Settings) Validate() error {
	if s.AutoAssignThreshold < 0 || s.AutoAssignThreshold > 100 {
		return fmt.Errorf("auto_assign_threshold %d outside [0,100]", s.AutoAssignThreshold)
	}
	switch s.SkillMatching {
	case SkillStrict, SkillFlexible, SkillAdaptive:
		return nil
	default:
		return fmt.Errorf("unknown skill_matching %q", s.SkillMatching)
	}
}
