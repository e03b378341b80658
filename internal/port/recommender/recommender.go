package recommender

import (
	"context"

	"github.com/google/uuid"

	"github.com/nvoss/staff-mesh/internal/domain/dispatch"
	domainstaff "github.com/nvoss/staff-mesh/internal/domain/staff"
	domaintask "github.com/nvoss/staff-mesh/internal/domain/task"
)

// Recommender produces a ranked recommendation for one task against the
// current roster snapshot. It only reads; committing is a separate concern.
type Recommender interface {
	Recommend(ctx context.Context, taskID uuid.UUID, settings dispatch.Settings) (dispatch.Recommendation, error)
}

// Ranker scores a task against an explicit roster snapshot. The batch
// orchestrator uses it so each task is ranked against the freshest staff
// loads without refetching the task.
type Ranker interface {
	RankSnapshot(t domaintask.Task, pool []domainstaff.Staff, settings dispatch.Settings) dispatch.Recommendation
}
