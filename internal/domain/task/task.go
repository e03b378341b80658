package task

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusAssigned   Status = "assigned"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

type Priority string

const (
	PriorityUrgent Priority = "urgent"
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Rank orders priorities for batch processing: urgent first, low last.
// Unknown priorities sort after low.
func (p Priority) Rank() int {
	switch p {
	case PriorityUrgent:
		return 0
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	default:
		return 4
	}
}

type Complexity string

const (
	ComplexitySimple  Complexity = "simple"
	ComplexityMedium  Complexity = "medium"
	ComplexityComplex Complexity = "complex"
)

type Task struct {
	ID             uuid.UUID  `json:"id"`
	Title          string     `json:"title"`
	Priority       Priority   `json:"priority"`
	Category       string     `json:"category"`
	Location       string     `json:"location"`
	EstimatedHours float64    `json:"estimated_hours"`
	RequiredSkills []string   `json:"required_skills"`
	Complexity     Complexity `json:"complexity"`
	Status         Status     `json:"status"`
	AssignedTo     *uuid.UUID `json:"assigned_to,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	StartedAt      *time.Time `json:"started_at,omitempty"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
}

func New(title, category, location string, priority Priority, complexity Complexity, estimatedHours float64, requiredSkills []string) Task {
	now := time.Now().UTC()
	return Task{
		ID:             uuid.New(),
		Title:          title,
		Priority:       priority,
		Category:       category,
		Location:       location,
		EstimatedHours: estimatedHours,
		RequiredSkills: requiredSkills,
		Complexity:     complexity,
		Status:         StatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// Claimable reports whether the task can still be assigned.
// Invariant: AssignedTo is nil exactly while Status is pending.
func (t Task) Claimable() bool {
	return t.Status == StatusPending && t.AssignedTo == nil
}

type ListFilters struct {
	Status      *Status
	Priority    *Priority
	AssignedTo  *uuid.UUID
	Unassigned  bool // WHERE assigned_to IS NULL
	OldestFirst bool // ORDER BY created_at ASC (default is DESC)
}
