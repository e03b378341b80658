package task_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	. "github.com/nvoss/staff-mesh/internal/domain/task"
)

func TestPriorityRank(t *testing.T) {
	tests := []struct {
		name     string
		priority Priority
		want     int
	}{
		{name: "urgent first", priority: PriorityUrgent, want: 0},
		{name: "high second", priority: PriorityHigh, want: 1},
		{name: "medium third", priority: PriorityMedium, want: 2},
		{name: "low last", priority: PriorityLow, want: 3},
		{name: "unknown sorts after low", priority: Priority("garbage"), want: 4},
		{name: "empty sorts after low", priority: Priority(""), want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.priority.Rank())
		})
	}
}

func TestClaimable(t *testing.T) {
	staffID := uuid.New()

	tests := []struct {
		name       string
		status     Status
		assignedTo *uuid.UUID
		want       bool
	}{
		{name: "pending unassigned", status: StatusPending, want: true},
		{name: "assigned", status: StatusAssigned, assignedTo: &staffID, want: false},
		{name: "in progress", status: StatusInProgress, assignedTo: &staffID, want: false},
		{name: "completed", status: StatusCompleted, assignedTo: &staffID, want: false},
		// AssignedTo must be nil exactly while status is pending; a row
		// violating that is never claimable.
		{name: "pending but assigned", status: StatusPending, assignedTo: &staffID, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk := Task{Status: tt.status, AssignedTo: tt.assignedTo}
			assert.Equal(t, tt.want, tk.Claimable())
		})
	}
}

func TestNew(t *testing.T) {
	tk := New("Replace breaker", "maintenance", "floor-2", PriorityHigh, ComplexityMedium, 3, []string{"electrical"})

	assert.NotEqual(t, uuid.Nil, tk.ID)
	assert.Equal(t, StatusPending, tk.Status)
	assert.Nil(t, tk.AssignedTo)
	assert.True(t, tk.Claimable())
	assert.Equal(t, tk.CreatedAt, tk.UpdatedAt)
}
