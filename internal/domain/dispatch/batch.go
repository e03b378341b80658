package dispatch

import "github.com/google/uuid"

// Disposition classifies what the orchestrator did with one task in a batch pass.
type Disposition string

const (
	DispositionAssigned     Disposition = "auto_assigned"
	DispositionDeferred     Disposition = "deferred"     // confidence below threshold, left for manual review
	DispositionSkipped      Disposition = "skipped"      // a concurrent commit claimed the task first
	DispositionUnassignable Disposition = "unassignable" // no eligible candidate this pass
)

// TaskOutcome records the per-task result of a batch pass.
type TaskOutcome struct {
	TaskID      uuid.UUID   `json:"task_id"`
	Disposition Disposition `json:"disposition"`
	AssignedTo  uuid.UUID   `json:"assigned_to,omitempty"`
	Confidence  float64     `json:"confidence"`
	Detail      string      `json:"detail,omitempty"`
}

// Stats is a read-only snapshot of the accumulated batch counters.
type Stats struct {
	TasksProcessed   int     `json:"tasks_processed"`
	AutoAssigned     int     `json:"auto_assigned"`
	ManualOverrides  int     `json:"manual_overrides"`
	SkippedConflicts int     `json:"skipped_conflicts"`
	Unassignable     int     `json:"unassignable"`
	AvgConfidence    float64 `json:"avg_confidence"`
}

// BatchResult is the full outcome of one orchestrated pass.
type BatchResult struct {
	Outcomes []TaskOutcome `json:"outcomes"`
	Stats    Stats         `json:"stats"`
}
