package recommender

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/nvoss/staff-mesh/internal/domain/dispatch"
	domainstaff "github.com/nvoss/staff-mesh/internal/domain/staff"
	domaintask "github.com/nvoss/staff-mesh/internal/domain/task"
	portrecommender "github.com/nvoss/staff-mesh/internal/port/recommender"
	portstaff "github.com/nvoss/staff-mesh/internal/port/staff"
	porttask "github.com/nvoss/staff-mesh/internal/port/task"
	"github.com/nvoss/staff-mesh/internal/service/scoring"
)

const maxAlternates = 2

var _ portrecommender.Recommender = (*Service)(nil)

// Service ranks roster candidates for a task. It only reads snapshots;
// committing an assignment is the committer's job.
// [ISP] Depends on RosterReader, not the full staff repository.
type Service struct {
	tasks  porttask.Repository
	roster portstaff.RosterReader
	engine *scoring.Engine
}

func NewService(tasks porttask.Repository, roster portstaff.RosterReader, engine *scoring.Engine) *Service {
	return &Service{tasks: tasks, roster: roster, engine: engine}
}

type candidate struct {
	staff  domainstaff.Staff
	result scoring.Result
}

// Recommend scores every eligible roster member against the task and returns
// the ranked recommendation: primary choice, up to two alternates, confidence
// (the top score), and the winner's reasoning trace.
func (s *Service) Recommend(ctx context.Context, taskID uuid.UUID, settings dispatch.Settings) (dispatch.Recommendation, error) {
	if err := settings.Validate(); err != nil {
		return dispatch.Recommendation{}, fmt.Errorf("invalid settings: %w", err)
	}

	t, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return dispatch.Recommendation{}, fmt.Errorf("get task: %w", err)
	}

	pool, err := s.roster.Roster(ctx)
	if err != nil {
		return dispatch.Recommendation{}, fmt.Errorf("get roster: %w", err)
	}

	return s.rank(t, pool, settings), nil
}

// rank is the pure core of Recommend, shared with the orchestrator so a batch
// pass can score against an already-fetched roster snapshot.
func (s *Service) rank(t domaintask.Task, pool []domainstaff.Staff, settings dispatch.Settings) dispatch.Recommendation {
	candidates := make([]candidate, 0, len(pool))
	for _, member := range pool {
		if member.Availability() == domainstaff.Offline {
			continue
		}
		res := s.engine.Score(t, member, settings)
		if res.Excluded || res.Score == 0 {
			continue
		}
		candidates = append(candidates, candidate{staff: member, result: res})
	}

	if len(candidates) == 0 {
		return dispatch.Recommendation{
			TaskID:    t.ID,
			Reasoning: []string{dispatch.NoSuitableStaff},
		}
	}

	// Descending by score. Equal scores break by lower current load, then by
	// staff id, so ranking is deterministic regardless of roster order.
	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.result.Score != b.result.Score {
			return a.result.Score > b.result.Score
		}
		if a.staff.CurrentLoad != b.staff.CurrentLoad {
			return a.staff.CurrentLoad < b.staff.CurrentLoad
		}
		return a.staff.ID.String() < b.staff.ID.String()
	})

	rec := dispatch.Recommendation{
		TaskID:     t.ID,
		Primary:    candidates[0].staff.ID,
		Confidence: candidates[0].result.Score,
		Reasoning:  candidates[0].result.Reasoning,
	}
	for _, alt := range candidates[1:] {
		if len(rec.Alternates) == maxAlternates {
			break
		}
		rec.Alternates = append(rec.Alternates, alt.staff.ID)
	}
	return rec
}

// RankSnapshot ranks a task against an explicit roster snapshot without
// touching the repositories. The orchestrator uses it so that load changes
// from earlier commits in the same batch are reflected in later scoring.
func (s *Service) RankSnapshot(t domaintask.Task, pool []domainstaff.Staff, settings dispatch.Settings) dispatch.Recommendation {
	return s.rank(t, pool, settings)
}
