package task

import (
	"context"
	"errors"

	"github.com/google/uuid"

	domaintask "github.com/nvoss/staff-mesh/internal/domain/task"
)

// ErrNotFound is returned when the task id is unknown at commit time,
// e.g. the task was deleted concurrently.
var ErrNotFound = errors.New("task not found")

// ErrAlreadyAssigned is the CAS failure: the task was claimed by another
// caller between scoring and commit. Never fatal to a batch run.
var ErrAlreadyAssigned = errors.New("task already assigned")

// Repository manages task state in the store.
type Repository interface {
	Create(ctx context.Context, t domaintask.Task) (domaintask.Task, error)
	GetByID(ctx context.Context, id uuid.UUID) (domaintask.Task, error)
	List(ctx context.Context, filters domaintask.ListFilters) ([]domaintask.Task, error)

	// ListPending returns unassigned pending tasks ordered by priority rank
	// then creation time, which is the batch processing order.
	ListPending(ctx context.Context) ([]domaintask.Task, error)

	// Claim atomically transitions a pending, unassigned task to in_progress
	// with the given assignee. Exactly one concurrent caller succeeds; the
	// rest get ErrAlreadyAssigned. Unknown ids return ErrNotFound.
	Claim(ctx context.Context, taskID, staffID uuid.UUID) error

	// Complete marks an in-progress task completed so the assignee's load
	// can be rederived on the next recompute.
	Complete(ctx context.Context, taskID uuid.UUID) error
}
