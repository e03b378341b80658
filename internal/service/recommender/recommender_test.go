package recommender_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/nvoss/staff-mesh/internal/domain/dispatch"
	domainstaff "github.com/nvoss/staff-mesh/internal/domain/staff"
	domaintask "github.com/nvoss/staff-mesh/internal/domain/task"
	"github.com/nvoss/staff-mesh/internal/mocks"
	"github.com/nvoss/staff-mesh/internal/service/recommender"
	"github.com/nvoss/staff-mesh/internal/service/scoring"
)

func newRecommenderSvc(t *testing.T) (*recommender.Service, *mocks.MockTaskRepository, *mocks.MockRosterReader) {
	t.Helper()
	ctrl := gomock.NewController(t)
	tasks := mocks.NewMockTaskRepository(ctrl)
	roster := mocks.NewMockRosterReader(ctrl)
	svc := recommender.NewService(tasks, roster, scoring.NewEngine(scoring.DefaultPolicy()))
	return svc, tasks, roster
}

func pendingTask() domaintask.Task {
	return domaintask.Task{
		ID:             uuid.New(),
		Title:          "Repair panel",
		Location:       "floor-1",
		RequiredSkills: []string{"electrical"},
		Status:         domaintask.StatusPending,
	}
}

func member(name string, load float64, location string, skills ...string) domainstaff.Staff {
	return domainstaff.Staff{
		ID:          uuid.New(),
		Name:        name,
		OnShift:     true,
		CurrentLoad: load,
		Location:    location,
		Skills:      skills,
		Performance: domainstaff.Performance{Efficiency: 80, Quality: 80, Speed: 80},
	}
}

func TestRecommend_PicksHighestScorer(t *testing.T) {
	svc, tasks, roster := newRecommenderSvc(t)
	task := pendingTask()

	onSite := member("on-site", 20, "floor-1", "electrical")
	remote := member("remote", 20, "floor-2", "electrical")

	tasks.EXPECT().GetByID(gomock.Any(), task.ID).Return(task, nil)
	roster.EXPECT().Roster(gomock.Any()).Return([]domainstaff.Staff{remote, onSite}, nil)

	rec, err := svc.Recommend(context.Background(), task.ID, dispatch.DefaultSettings)
	require.NoError(t, err)
	assert.Equal(t, onSite.ID, rec.Primary)
	assert.Equal(t, []uuid.UUID{remote.ID}, rec.Alternates)
	assert.Greater(t, rec.Confidence, 0.0)
	assert.NotEmpty(t, rec.Reasoning)
}

func TestRecommend_NoSuitableStaff(t *testing.T) {
	// The only skilled member is off shift: unassignable, confidence 0.
	svc, tasks, roster := newRecommenderSvc(t)
	task := pendingTask()

	offline := member("off-shift", 0, "floor-1", "electrical")
	offline.OnShift = false

	tasks.EXPECT().GetByID(gomock.Any(), task.ID).Return(task, nil)
	roster.EXPECT().Roster(gomock.Any()).Return([]domainstaff.Staff{offline}, nil)

	rec, err := svc.Recommend(context.Background(), task.ID, dispatch.DefaultSettings)
	require.NoError(t, err)
	assert.True(t, rec.Unassignable())
	assert.Zero(t, rec.Confidence)
	assert.Equal(t, []string{dispatch.NoSuitableStaff}, rec.Reasoning)
}

func TestRecommend_EmptyRoster(t *testing.T) {
	svc, tasks, roster := newRecommenderSvc(t)
	task := pendingTask()

	tasks.EXPECT().GetByID(gomock.Any(), task.ID).Return(task, nil)
	roster.EXPECT().Roster(gomock.Any()).Return([]domainstaff.Staff{}, nil)

	rec, err := svc.Recommend(context.Background(), task.ID, dispatch.DefaultSettings)
	require.NoError(t, err)
	assert.True(t, rec.Unassignable())
	assert.Equal(t, []string{dispatch.NoSuitableStaff}, rec.Reasoning)
}

func TestRecommend_StrictExcludesAll(t *testing.T) {
	svc, tasks, roster := newRecommenderSvc(t)
	task := pendingTask()
	settings := dispatch.DefaultSettings
	settings.SkillMatching = dispatch.SkillStrict

	unskilled := member("unskilled", 10, "floor-1", "plumbing")

	tasks.EXPECT().GetByID(gomock.Any(), task.ID).Return(task, nil)
	roster.EXPECT().Roster(gomock.Any()).Return([]domainstaff.Staff{unskilled}, nil)

	rec, err := svc.Recommend(context.Background(), task.ID, settings)
	require.NoError(t, err)
	assert.True(t, rec.Unassignable())
}

func TestRecommend_AtMostTwoAlternates(t *testing.T) {
	svc, tasks, roster := newRecommenderSvc(t)
	task := pendingTask()

	pool := []domainstaff.Staff{
		member("w", 10, "floor-1", "electrical"),
		member("x", 20, "floor-1", "electrical"),
		member("y", 30, "floor-1", "electrical"),
		member("z", 40, "floor-1", "electrical"),
	}

	tasks.EXPECT().GetByID(gomock.Any(), task.ID).Return(task, nil)
	roster.EXPECT().Roster(gomock.Any()).Return(pool, nil)

	rec, err := svc.Recommend(context.Background(), task.ID, dispatch.DefaultSettings)
	require.NoError(t, err)
	assert.Equal(t, pool[0].ID, rec.Primary)
	assert.Len(t, rec.Alternates, 2)
}

func TestRecommend_TieBreaksByLowerLoadThenID(t *testing.T) {
	svc, tasks, roster := newRecommenderSvc(t)
	task := pendingTask()

	// Identical except load: the lighter one wins the tie on score.
	light := member("light", 20, "floor-1", "electrical")
	heavy := member("heavy", 20, "floor-1", "electrical")
	heavy.CurrentLoad = 40

	tasks.EXPECT().GetByID(gomock.Any(), task.ID).Return(task, nil).Times(2)

	// heavy scores lower on workload, so this is score order; make them equal
	// by disabling workload and checking the load tie-break directly.
	settings := dispatch.DefaultSettings
	settings.BalanceWorkload = false

	roster.EXPECT().Roster(gomock.Any()).Return([]domainstaff.Staff{heavy, light}, nil)
	rec, err := svc.Recommend(context.Background(), task.ID, settings)
	require.NoError(t, err)
	assert.Equal(t, light.ID, rec.Primary)

	// Equal score and equal load: lower id string wins, regardless of input order.
	twinA := member("twin-a", 20, "floor-1", "electrical")
	twinB := member("twin-b", 20, "floor-1", "electrical")
	want := twinA.ID
	if twinB.ID.String() < twinA.ID.String() {
		want = twinB.ID
	}

	roster.EXPECT().Roster(gomock.Any()).Return([]domainstaff.Staff{twinB, twinA}, nil)
	rec, err = svc.Recommend(context.Background(), task.ID, settings)
	require.NoError(t, err)
	assert.Equal(t, want, rec.Primary)
}

func TestRecommend_InvalidSettings(t *testing.T) {
	svc, _, _ := newRecommenderSvc(t)
	settings := dispatch.DefaultSettings
	settings.AutoAssignThreshold = 150

	_, err := svc.Recommend(context.Background(), uuid.New(), settings)
	require.Error(t, err)
}

func TestRecommend_TaskLookupError(t *testing.T) {
	svc, tasks, _ := newRecommenderSvc(t)
	taskID := uuid.New()

	tasks.EXPECT().GetByID(gomock.Any(), taskID).Return(domaintask.Task{}, errors.New("db down"))

	_, err := svc.Recommend(context.Background(), taskID, dispatch.DefaultSettings)
	require.Error(t, err)
}

func TestRecommend_RosterError(t *testing.T) {
	svc, tasks, roster := newRecommenderSvc(t)
	task := pendingTask()

	tasks.EXPECT().GetByID(gomock.Any(), task.ID).Return(task, nil)
	roster.EXPECT().Roster(gomock.Any()).Return(nil, errors.New("db down"))

	_, err := svc.Recommend(context.Background(), task.ID, dispatch.DefaultSettings)
	require.Error(t, err)
}
