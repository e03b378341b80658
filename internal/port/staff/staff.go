package staff

import (
	"context"

	"github.com/google/uuid"

	domainstaff "github.com/nvoss/staff-mesh/internal/domain/staff"
)

// Repository manages staff state in the store.
type Repository interface {
	Create(ctx context.Context, s domainstaff.Staff) (domainstaff.Staff, error)
	GetByID(ctx context.Context, id uuid.UUID) (domainstaff.Staff, error)
	List(ctx context.Context, filters domainstaff.ListFilters) ([]domainstaff.Staff, error)

	SetOnShift(ctx context.Context, id uuid.UUID, onShift bool) error

	// RecomputeLoad rederives current_load from the staff member's active
	// (assigned or in-progress) task count, clamped to [0,100], and returns
	// the new value. Called only by the committer after a successful claim.
	RecomputeLoad(ctx context.Context, id uuid.UUID) (float64, error)
}

// RosterReader is the narrow interface the recommender needs: a point-in-time
// snapshot of the on-shift roster. Offline staff never appear in the snapshot.
type RosterReader interface {
	Roster(ctx context.Context) ([]domainstaff.Staff, error)
}
