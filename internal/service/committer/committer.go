// Package committer is the single point of mutation in the dispatch core:
// every assignment, batch or manual, funnels through Commit's compare-and-swap.
package committer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/nvoss/staff-mesh/internal/domain/event"
	portbus "github.com/nvoss/staff-mesh/internal/port/eventbus"
	portstaff "github.com/nvoss/staff-mesh/internal/port/staff"
	porttask "github.com/nvoss/staff-mesh/internal/port/task"
)

type Service struct {
	tasks porttask.Repository
	staff portstaff.Repository
	bus   portbus.EventBus
}

func NewService(tasks porttask.Repository, staff portstaff.Repository, bus portbus.EventBus) *Service {
	return &Service{tasks: tasks, staff: staff, bus: bus}
}

// Commit atomically claims the task for the staff member. The storage layer
// performs the CAS (pending and unassigned, or nothing happens); losing
// callers get porttask.ErrAlreadyAssigned, unknown tasks porttask.ErrNotFound.
//
// On success the assignee's load is rederived immediately so the next scoring
// pass in the same batch sees it, and a TaskAssigned event is published.
func (s *Service) Commit(ctx context.Context, taskID, staffID uuid.UUID) error {
	if _, err := s.staff.GetByID(ctx, staffID); err != nil {
		return fmt.Errorf("get assignee: %w", err)
	}

	if err := s.tasks.Claim(ctx, taskID, staffID); err != nil {
		return err
	}

	load, err := s.staff.RecomputeLoad(ctx, staffID)
	if err != nil {
		// The claim is already durable and correct; a failed load recompute
		// is repaired by the next successful one.
		slog.ErrorContext(ctx, "load recompute failed after commit", "staff_id", staffID, "error", err)
	} else {
		slog.InfoContext(ctx, "task committed", "task_id", taskID, "staff_id", staffID, "new_load", load)
		s.bus.Publish(ctx, event.New(event.TypeStaffLoadChanged, staffID)) //nolint:errcheck
	}

	s.bus.Publish(ctx, event.New(event.TypeTaskAssigned, taskID)) //nolint:errcheck
	return nil
}
