package committer

import (
	"context"

	"github.com/google/uuid"
)

// Committer atomically claims a task for a staff member. It is the only
// writer of task or staff state; both the batch orchestrator and the manual
// assignment path go through it.
type Committer interface {
	Commit(ctx context.Context, taskID, staffID uuid.UUID) error
}
