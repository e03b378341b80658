package memory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvoss/staff-mesh/internal/adapter/memory"
	"github.com/nvoss/staff-mesh/internal/domain/event"
	domainstaff "github.com/nvoss/staff-mesh/internal/domain/staff"
	domaintask "github.com/nvoss/staff-mesh/internal/domain/task"
	porttask "github.com/nvoss/staff-mesh/internal/port/task"
)

func newTask(title string, priority domaintask.Priority) domaintask.Task {
	return domaintask.New(title, "maintenance", "floor-1", priority, domaintask.ComplexitySimple, 1, nil)
}

func TestClaim_ExactlyOneWinner(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	task, err := store.TaskRepo().Create(ctx, newTask("contested", domaintask.PriorityHigh))
	require.NoError(t, err)

	const racers = 16
	var wg sync.WaitGroup
	errs := make([]error, racers)
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = store.TaskRepo().Claim(ctx, task.ID, uuid.New())
		}(i)
	}
	wg.Wait()

	wins := 0
	for _, err := range errs {
		if err == nil {
			wins++
		} else {
			assert.ErrorIs(t, err, porttask.ErrAlreadyAssigned)
		}
	}
	assert.Equal(t, 1, wins)
}

func TestClaim_TransitionsAndTimestamps(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	staffID := uuid.New()

	task, err := store.TaskRepo().Create(ctx, newTask("one", domaintask.PriorityHigh))
	require.NoError(t, err)
	require.NoError(t, store.TaskRepo().Claim(ctx, task.ID, staffID))

	got, err := store.TaskRepo().GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, domaintask.StatusInProgress, got.Status)
	require.NotNil(t, got.AssignedTo)
	assert.Equal(t, staffID, *got.AssignedTo)
	require.NotNil(t, got.StartedAt)
	assert.False(t, got.UpdatedAt.Before(task.UpdatedAt))
}

func TestClaim_UnknownTask(t *testing.T) {
	store := memory.NewStore()
	err := store.TaskRepo().Claim(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, porttask.ErrNotFound)
}

func TestListPending_PriorityThenCreationOrder(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	lowFirst, err := store.TaskRepo().Create(ctx, newTask("low, created first", domaintask.PriorityLow))
	require.NoError(t, err)
	urgent, err := store.TaskRepo().Create(ctx, newTask("urgent", domaintask.PriorityUrgent))
	require.NoError(t, err)
	highA, err := store.TaskRepo().Create(ctx, newTask("high a", domaintask.PriorityHigh))
	require.NoError(t, err)
	highB, err := store.TaskRepo().Create(ctx, newTask("high b", domaintask.PriorityHigh))
	require.NoError(t, err)

	// A claimed task leaves the pending set.
	claimed, err := store.TaskRepo().Create(ctx, newTask("claimed", domaintask.PriorityUrgent))
	require.NoError(t, err)
	require.NoError(t, store.TaskRepo().Claim(ctx, claimed.ID, uuid.New()))

	pending, err := store.TaskRepo().ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 4)
	assert.Equal(t, urgent.ID, pending[0].ID)
	assert.Equal(t, highA.ID, pending[1].ID)
	assert.Equal(t, highB.ID, pending[2].ID)
	assert.Equal(t, lowFirst.ID, pending[3].ID)
}

func TestComplete_FreesLoad(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	member, err := store.StaffRepo().Create(ctx, domainstaff.New("Dana", "technician", "floor-1", nil, domainstaff.Performance{}))
	require.NoError(t, err)
	task, err := store.TaskRepo().Create(ctx, newTask("one", domaintask.PriorityHigh))
	require.NoError(t, err)

	require.NoError(t, store.TaskRepo().Claim(ctx, task.ID, member.ID))
	load, err := store.StaffRepo().RecomputeLoad(ctx, member.ID)
	require.NoError(t, err)
	assert.Equal(t, float64(domainstaff.LoadPerActiveTask), load)

	require.NoError(t, store.TaskRepo().Complete(ctx, task.ID))
	load, err = store.StaffRepo().RecomputeLoad(ctx, member.ID)
	require.NoError(t, err)
	assert.Zero(t, load)

	got, err := store.TaskRepo().GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, domaintask.StatusCompleted, got.Status)
	require.NotNil(t, got.CompletedAt)
}

func TestComplete_RequiresInProgress(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	task, err := store.TaskRepo().Create(ctx, newTask("still pending", domaintask.PriorityHigh))
	require.NoError(t, err)

	assert.ErrorIs(t, store.TaskRepo().Complete(ctx, task.ID), porttask.ErrNotFound)
	assert.ErrorIs(t, store.TaskRepo().Complete(ctx, uuid.New()), porttask.ErrNotFound)
}

func TestRecomputeLoad_ClampsAtHundred(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	member, err := store.StaffRepo().Create(ctx, domainstaff.New("Max", "technician", "floor-1", nil, domainstaff.Performance{}))
	require.NoError(t, err)

	// Six active tasks would derive 120; the load caps at 100.
	for i := 0; i < 6; i++ {
		task, err := store.TaskRepo().Create(ctx, newTask("load", domaintask.PriorityMedium))
		require.NoError(t, err)
		require.NoError(t, store.TaskRepo().Claim(ctx, task.ID, member.ID))
	}

	load, err := store.StaffRepo().RecomputeLoad(ctx, member.ID)
	require.NoError(t, err)
	assert.Equal(t, 100.0, load)

	got, err := store.StaffRepo().GetByID(ctx, member.ID)
	require.NoError(t, err)
	assert.Equal(t, domainstaff.Busy, got.Availability())
}

func TestRoster_OnShiftOnly(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	on, err := store.StaffRepo().Create(ctx, domainstaff.New("On", "technician", "floor-1", nil, domainstaff.Performance{}))
	require.NoError(t, err)
	off, err := store.StaffRepo().Create(ctx, domainstaff.New("Off", "technician", "floor-1", nil, domainstaff.Performance{}))
	require.NoError(t, err)
	require.NoError(t, store.StaffRepo().SetOnShift(ctx, off.ID, false))

	roster, err := store.StaffRepo().Roster(ctx)
	require.NoError(t, err)
	require.Len(t, roster, 1)
	assert.Equal(t, on.ID, roster[0].ID)
}

func TestStaffList_Filters(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	_, err := store.StaffRepo().Create(ctx, domainstaff.New("Tech1", "technician", "floor-1", nil, domainstaff.Performance{}))
	require.NoError(t, err)
	_, err = store.StaffRepo().Create(ctx, domainstaff.New("Tech2", "technician", "floor-2", nil, domainstaff.Performance{}))
	require.NoError(t, err)
	_, err = store.StaffRepo().Create(ctx, domainstaff.New("Sup", "supervisor", "floor-1", nil, domainstaff.Performance{}))
	require.NoError(t, err)

	role := "technician"
	members, err := store.StaffRepo().List(ctx, domainstaff.ListFilters{Role: &role})
	require.NoError(t, err)
	assert.Len(t, members, 2)

	location := "floor-1"
	members, err = store.StaffRepo().List(ctx, domainstaff.ListFilters{Role: &role, Location: &location})
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "Tech1", members[0].Name)
}

func TestBus_DeliversToMatchingChannel(t *testing.T) {
	bus := memory.NewBus()
	ctx := context.Background()

	var got []event.Event
	sub, err := bus.Subscribe(ctx, event.ChannelDispatch, func(_ context.Context, e event.Event) {
		got = append(got, e)
	})
	require.NoError(t, err)

	require.NoError(t, bus.Publish(ctx, event.New(event.TypeTaskAssigned, uuid.New())))
	require.NoError(t, bus.Publish(ctx, event.New(event.TypeStaffLoadChanged, uuid.New())))
	require.Len(t, got, 1)
	assert.Equal(t, event.TypeTaskAssigned, got[0].Type)

	sub.Unsubscribe()
	require.NoError(t, bus.Publish(ctx, event.New(event.TypeTaskAssigned, uuid.New())))
	assert.Len(t, got, 1)
}
