//go:build integration

package staff_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pgstaff "github.com/nvoss/staff-mesh/internal/adapter/postgres/staff"
	pgtask "github.com/nvoss/staff-mesh/internal/adapter/postgres/task"
	domainstaff "github.com/nvoss/staff-mesh/internal/domain/staff"
	domaintask "github.com/nvoss/staff-mesh/internal/domain/task"
	"github.com/nvoss/staff-mesh/internal/testutil"
)

func makeStaff(t *testing.T, ctx context.Context, r *pgstaff.Repository, location string) domainstaff.Staff {
	t.Helper()
	created, err := r.Create(ctx, domainstaff.New(
		"t-"+uuid.New().String()[:6], "technician", location,
		[]string{"electrical", "plumbing"}, domainstaff.Performance{Efficiency: 85, Quality: 90, Speed: 75},
	))
	require.NoError(t, err)
	return created
}

func TestStaffRepo_CreateGet(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	ctx := context.Background()
	repo := pgstaff.New(pool)

	member := makeStaff(t, ctx, repo, "floor-1")

	got, err := repo.GetByID(ctx, member.ID)
	require.NoError(t, err)
	assert.Equal(t, member.Name, got.Name)
	assert.Equal(t, []string{"electrical", "plumbing"}, got.Skills)
	assert.True(t, got.OnShift)
	assert.Zero(t, got.CurrentLoad)

	_, err = repo.GetByID(ctx, uuid.New())
	assert.Error(t, err)
}

func TestStaffRepo_RosterExcludesOffShift(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	ctx := context.Background()
	repo := pgstaff.New(pool)

	on := makeStaff(t, ctx, repo, "floor-1")
	off := makeStaff(t, ctx, repo, "floor-1")
	require.NoError(t, repo.SetOnShift(ctx, off.ID, false))

	roster, err := repo.Roster(ctx)
	require.NoError(t, err)

	ids := make(map[uuid.UUID]bool, len(roster))
	for _, m := range roster {
		ids[m.ID] = true
	}
	assert.True(t, ids[on.ID])
	assert.False(t, ids[off.ID])
}

func TestStaffRepo_RecomputeLoad(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	ctx := context.Background()
	staffRepo := pgstaff.New(pool)
	taskRepo := pgtask.New(pool)

	member := makeStaff(t, ctx, staffRepo, "floor-1")

	load, err := staffRepo.RecomputeLoad(ctx, member.ID)
	require.NoError(t, err)
	assert.Zero(t, load)

	task, err := taskRepo.Create(ctx, domaintask.New(
		"t-"+uuid.New().String()[:8], "maintenance", "floor-1",
		domaintask.PriorityHigh, domaintask.ComplexitySimple, 1, nil,
	))
	require.NoError(t, err)
	require.NoError(t, taskRepo.Claim(ctx, task.ID, member.ID))

	load, err = staffRepo.RecomputeLoad(ctx, member.ID)
	require.NoError(t, err)
	assert.Equal(t, float64(domainstaff.LoadPerActiveTask), load)

	// Completion frees the slot on the next recompute.
	require.NoError(t, taskRepo.Complete(ctx, task.ID))
	load, err = staffRepo.RecomputeLoad(ctx, member.ID)
	require.NoError(t, err)
	assert.Zero(t, load)

	_, err = staffRepo.RecomputeLoad(ctx, uuid.New())
	assert.Error(t, err)
}

func TestStaffRepo_ListFilters(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	ctx := context.Background()
	repo := pgstaff.New(pool)

	member := makeStaff(t, ctx, repo, "wing-"+uuid.New().String()[:6])

	members, err := repo.List(ctx, domainstaff.ListFilters{Location: &member.Location})
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, member.ID, members[0].ID)
}
