// Package memory provides mutex-guarded in-memory implementations of the
// staff and task ports, plus an in-process event bus and locker. It backs
// unit tests and the no-database dev mode; the claim CAS holds the same
// contract as the Postgres adapter.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	domainstaff "github.com/nvoss/staff-mesh/internal/domain/staff"
	domaintask "github.com/nvoss/staff-mesh/internal/domain/task"
	porttask "github.com/nvoss/staff-mesh/internal/port/task"
)

type taskEntry struct {
	task domaintask.Task
	seq  int // insertion order, the stable tie-break for equal timestamps
}

// Store holds both collections behind one mutex so that the claim CAS and the
// load recompute observe a consistent view.
type Store struct {
	mu      sync.Mutex
	staff   map[uuid.UUID]domainstaff.Staff
	tasks   map[uuid.UUID]taskEntry
	nextSeq int
}

func NewStore() *Store {
	return &Store{
		staff: make(map[uuid.UUID]domainstaff.Staff),
		tasks: make(map[uuid.UUID]taskEntry),
	}
}

// StaffRepo returns the port/staff.Repository view of the store.
func (s *Store) StaffRepo() *StaffRepo { return &StaffRepo{s: s} }

// TaskRepo returns the port/task.Repository view of the store.
func (s *Store) TaskRepo() *TaskRepo { return &TaskRepo{s: s} }

// ── staff repository ─────────────────────────────────────────────────────────

type StaffRepo struct {
	s *Store
}

func (r *StaffRepo) Create(ctx context.Context, m domainstaff.Staff) (domainstaff.Staff, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.staff[m.ID] = m
	return m, nil
}

func (r *StaffRepo) GetByID(ctx context.Context, id uuid.UUID) (domainstaff.Staff, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	m, ok := r.s.staff[id]
	if !ok {
		return domainstaff.Staff{}, fmt.Errorf("staff %s not found", id)
	}
	return m, nil
}

func (r *StaffRepo) List(ctx context.Context, filters domainstaff.ListFilters) ([]domainstaff.Staff, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var members []domainstaff.Staff
	for _, m := range r.s.staff {
		if filters.Role != nil && m.Role != *filters.Role {
			continue
		}
		if filters.Location != nil && m.Location != *filters.Location {
			continue
		}
		if filters.OnShift != nil && m.OnShift != *filters.OnShift {
			continue
		}
		members = append(members, m)
	}
	sortStaff(members)
	return members, nil
}

// Roster implements port/staff.RosterReader: on-shift staff only.
func (r *StaffRepo) Roster(ctx context.Context) ([]domainstaff.Staff, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var members []domainstaff.Staff
	for _, m := range r.s.staff {
		if m.OnShift {
			members = append(members, m)
		}
	}
	sortStaff(members)
	return members, nil
}

func (r *StaffRepo) SetOnShift(ctx context.Context, id uuid.UUID, onShift bool) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	m, ok := r.s.staff[id]
	if !ok {
		return fmt.Errorf("staff %s not found", id)
	}
	m.OnShift = onShift
	r.s.staff[id] = m
	return nil
}

func (r *StaffRepo) RecomputeLoad(ctx context.Context, id uuid.UUID) (float64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	m, ok := r.s.staff[id]
	if !ok {
		return 0, fmt.Errorf("staff %s not found", id)
	}

	active := 0
	for _, e := range r.s.tasks {
		t := e.task
		if t.AssignedTo != nil && *t.AssignedTo == id &&
			(t.Status == domaintask.StatusAssigned || t.Status == domaintask.StatusInProgress) {
			active++
		}
	}

	load := float64(active * domainstaff.LoadPerActiveTask)
	if load > 100 {
		load = 100
	}
	m.CurrentLoad = load
	r.s.staff[id] = m
	return load, nil
}

// ── task repository ──────────────────────────────────────────────────────────

type TaskRepo struct {
	s *Store
}

func (r *TaskRepo) Create(ctx context.Context, t domaintask.Task) (domaintask.Task, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.tasks[t.ID] = taskEntry{task: t, seq: r.s.nextSeq}
	r.s.nextSeq++
	return t, nil
}

func (r *TaskRepo) GetByID(ctx context.Context, id uuid.UUID) (domaintask.Task, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e, ok := r.s.tasks[id]
	if !ok {
		return domaintask.Task{}, porttask.ErrNotFound
	}
	return e.task, nil
}

func (r *TaskRepo) List(ctx context.Context, filters domaintask.ListFilters) ([]domaintask.Task, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var entries []taskEntry
	for _, e := range r.s.tasks {
		t := e.task
		if filters.Status != nil && t.Status != *filters.Status {
			continue
		}
		if filters.Priority != nil && t.Priority != *filters.Priority {
			continue
		}
		if filters.AssignedTo != nil && (t.AssignedTo == nil || *t.AssignedTo != *filters.AssignedTo) {
			continue
		}
		if filters.Unassigned && t.AssignedTo != nil {
			continue
		}
		entries = append(entries, e)
	}

	sort.Slice(entries, func(i, j int) bool {
		if filters.OldestFirst {
			return entries[i].seq < entries[j].seq
		}
		return entries[i].seq > entries[j].seq
	})
	return tasksOf(entries), nil
}

func (r *TaskRepo) ListPending(ctx context.Context) ([]domaintask.Task, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var entries []taskEntry
	for _, e := range r.s.tasks {
		if e.task.Claimable() {
			entries = append(entries, e)
		}
	}

	// Batch order: priority rank, then creation order.
	sort.Slice(entries, func(i, j int) bool {
		ri, rj := entries[i].task.Priority.Rank(), entries[j].task.Priority.Rank()
		if ri != rj {
			return ri < rj
		}
		return entries[i].seq < entries[j].seq
	})
	return tasksOf(entries), nil
}

// Claim holds the store mutex across check and set, giving the same
// exactly-one-winner guarantee as the Postgres conditional UPDATE.
func (r *TaskRepo) Claim(ctx context.Context, taskID, staffID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	e, ok := r.s.tasks[taskID]
	if !ok {
		return porttask.ErrNotFound
	}
	if !e.task.Claimable() {
		return porttask.ErrAlreadyAssigned
	}

	now := time.Now().UTC()
	e.task.Status = domaintask.StatusInProgress
	e.task.AssignedTo = &staffID
	e.task.UpdatedAt = now
	e.task.StartedAt = &now
	r.s.tasks[taskID] = e
	return nil
}

func (r *TaskRepo) Complete(ctx context.Context, taskID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	e, ok := r.s.tasks[taskID]
	if !ok || e.task.Status != domaintask.StatusInProgress {
		return porttask.ErrNotFound
	}

	now := time.Now().UTC()
	e.task.Status = domaintask.StatusCompleted
	e.task.UpdatedAt = now
	e.task.CompletedAt = &now
	r.s.tasks[taskID] = e
	return nil
}

func sortStaff(members []domainstaff.Staff) {
	sort.Slice(members, func(i, j int) bool {
		if !members[i].CreatedAt.Equal(members[j].CreatedAt) {
			return members[i].CreatedAt.Before(members[j].CreatedAt)
		}
		return members[i].ID.String() < members[j].ID.String()
	})
}

func tasksOf(entries []taskEntry) []domaintask.Task {
	tasks := make([]domaintask.Task, len(entries))
	for i, e := range entries {
		tasks[i] = e.task
	}
	return tasks
}
