package dispatch

import "github.com/google/uuid"

// NoSuitableStaff is the reasoning recorded when no candidate survives filtering.
const NoSuitableStaff = "No suitable staff found"

// Recommendation is the ranked outcome of scoring one task against the roster.
// It is ephemeral: stale the instant staff or task state changes, never persisted.
type Recommendation struct {
	TaskID     uuid.UUID   `json:"task_id"`
	Primary    uuid.UUID   `json:"primary_choice"` // uuid.Nil when no candidate remains
	Alternates []uuid.UUID `json:"alternate_choices"`
	Confidence float64     `json:"confidence"` // 0–100
	Reasoning  []string    `json:"reasoning"`
}

// Unassignable reports whether the scoring pass found no eligible candidate.
func (r Recommendation) Unassignable() bool {
	return r.Primary == uuid.Nil
}
