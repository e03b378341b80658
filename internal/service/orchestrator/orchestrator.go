// Package orchestrator drives batch distribution passes and is the façade
// the transports call: run a batch, assign manually, read stats.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"log/slog"

	"github.com/google/uuid"

	"github.com/nvoss/staff-mesh/internal/domain/dispatch"
	"github.com/nvoss/staff-mesh/internal/domain/event"
	portcommitter "github.com/nvoss/staff-mesh/internal/port/committer"
	portbus "github.com/nvoss/staff-mesh/internal/port/eventbus"
	portlocker "github.com/nvoss/staff-mesh/internal/port/locker"
	portrecommender "github.com/nvoss/staff-mesh/internal/port/recommender"
	portstaff "github.com/nvoss/staff-mesh/internal/port/staff"
	porttask "github.com/nvoss/staff-mesh/internal/port/task"
)

// Service runs batch passes sequentially: commits change the assignee's load,
// which must be visible to scoring of the next task in the same pass.
// [DIP] Depends on ports only, never on adapters or transport.
type Service struct {
	tasks     porttask.Repository
	roster    portstaff.RosterReader
	ranker    portrecommender.Ranker
	committer portcommitter.Committer
	bus       portbus.EventBus
	locker    portlocker.AdvisoryLocker
	acc       *Accumulator
}

func NewService(
	tasks porttask.Repository,
	roster portstaff.RosterReader,
	ranker portrecommender.Ranker,
	committer portcommitter.Committer,
	bus portbus.EventBus,
	locker portlocker.AdvisoryLocker,
) *Service {
	return &Service{
		tasks:     tasks,
		roster:    roster,
		ranker:    ranker,
		committer: committer,
		bus:       bus,
		locker:    locker,
		acc:       NewAccumulator(),
	}
}

// RunBatch executes one distribution pass: pending tasks in priority order,
// each scored against a fresh roster snapshot, committed when confidence
// clears the threshold.
//
// Concurrent batch runs are serialised with an advisory lock; a concurrent
// manual assignment is not, and loses or wins each task individually at the
// CAS. Cancellation takes effect between tasks; commits already applied
// stand on their own.
func (s *Service) RunBatch(ctx context.Context, settings dispatch.Settings) (dispatch.BatchResult, error) {
	if err := settings.Validate(); err != nil {
		return dispatch.BatchResult{}, fmt.Errorf("refusing batch: %w", err)
	}

	var result dispatch.BatchResult
	err := s.locker.WithLock(ctx, batchLockKey(), func(ctx context.Context) error {
		var err error
		result, err = s.runLocked(ctx, settings)
		return err
	})
	if err != nil {
		// A cancelled run still reports the outcomes it produced.
		return result, err
	}

	s.bus.Publish(ctx, event.New(event.TypeBatchCompleted, uuid.Nil)) //nolint:errcheck
	return result, nil
}

func (s *Service) runLocked(ctx context.Context, settings dispatch.Settings) (dispatch.BatchResult, error) {
	pending, err := s.tasks.ListPending(ctx)
	if err != nil {
		return dispatch.BatchResult{}, fmt.Errorf("list pending tasks: %w", err)
	}

	s.acc.BeginRun()
	outcomes := make([]dispatch.TaskOutcome, 0, len(pending))

	for _, t := range pending {
		if err := ctx.Err(); err != nil {
			// Cancelled between tasks: prior commits remain valid.
			slog.InfoContext(ctx, "batch cancelled", "remaining", len(pending)-len(outcomes))
			return dispatch.BatchResult{Outcomes: outcomes, Stats: s.acc.Snapshot()}, err
		}

		// Fresh snapshot per task so loads committed earlier in this pass
		// influence the next ranking.
		pool, err := s.roster.Roster(ctx)
		if err != nil {
			return dispatch.BatchResult{}, fmt.Errorf("roster snapshot: %w", err)
		}

		rec := s.ranker.RankSnapshot(t, pool, settings)
		s.acc.Processed(rec.Confidence)
		outcomes = append(outcomes, s.decide(ctx, t.ID, rec, settings))
	}

	return dispatch.BatchResult{Outcomes: outcomes, Stats: s.acc.Snapshot()}, nil
}

// decide turns one recommendation into a commit, a deferral, or a skip.
func (s *Service) decide(ctx context.Context, taskID uuid.UUID, rec dispatch.Recommendation, settings dispatch.Settings) dispatch.TaskOutcome {
	out := dispatch.TaskOutcome{TaskID: taskID, Confidence: rec.Confidence}

	if rec.Unassignable() {
		s.acc.Unassignable()
		out.Disposition = dispatch.DispositionUnassignable
		out.Detail = dispatch.NoSuitableStaff
		return out
	}

	if rec.Confidence < float64(settings.AutoAssignThreshold) {
		out.Disposition = dispatch.DispositionDeferred
		out.Detail = "deferred for manual review"
		return out
	}

	switch err := s.committer.Commit(ctx, taskID, rec.Primary); {
	case err == nil:
		s.acc.AutoAssigned()
		out.Disposition = dispatch.DispositionAssigned
		out.AssignedTo = rec.Primary
	case errors.Is(err, porttask.ErrAlreadyAssigned):
		// A manual assignment raced ahead. Not an error.
		s.acc.SkippedConflict()
		out.Disposition = dispatch.DispositionSkipped
		out.Detail = "skipped, already assigned"
	case errors.Is(err, porttask.ErrNotFound):
		slog.WarnContext(ctx, "task vanished before commit", "task_id", taskID)
		out.Disposition = dispatch.DispositionSkipped
		out.Detail = "task no longer exists"
	default:
		slog.ErrorContext(ctx, "commit failed", "task_id", taskID, "error", err)
		out.Disposition = dispatch.DispositionSkipped
		out.Detail = err.Error()
	}
	return out
}

// Assign is the manual entry point. It uses the same CAS contract as the
// batch path but bypasses the threshold check.
func (s *Service) Assign(ctx context.Context, taskID, staffID uuid.UUID) error {
	if err := s.committer.Commit(ctx, taskID, staffID); err != nil {
		return err
	}
	s.acc.ManualOverride()
	return nil
}

// Stats returns the counters accumulated since the last batch started.
func (s *Service) Stats() dispatch.Stats {
	return s.acc.Snapshot()
}

// batchLockKey hashes a stable name into the advisory-lock keyspace.
func batchLockKey() int64 {
	h := fnv.New64a()
	h.Write([]byte("staff-mesh/dispatch-batch"))
	return int64(h.Sum64())
}
