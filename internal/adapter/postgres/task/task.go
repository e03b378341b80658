package task

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domaintask "github.com/nvoss/staff-mesh/internal/domain/task"
	porttask "github.com/nvoss/staff-mesh/internal/port/task"
)

const taskColumns = `id, title, priority, category, location, estimated_hours,
	required_skills, complexity, status, assigned_to, created_at, updated_at,
	started_at, completed_at`

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) Create(ctx context.Context, t domaintask.Task) (domaintask.Task, error) {
	query := `
		INSERT INTO tasks (id, title, priority, category, location, estimated_hours,
			required_skills, complexity, status, assigned_to, created_at, updated_at,
			started_at, completed_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
		RETURNING ` + taskColumns

	var created domaintask.Task
	err := r.pool.QueryRow(ctx, query,
		t.ID, t.Title, t.Priority, t.Category, t.Location, t.EstimatedHours,
		t.RequiredSkills, t.Complexity, t.Status, t.AssignedTo,
		t.CreatedAt, t.UpdatedAt, t.StartedAt, t.CompletedAt,
	).Scan(
		&created.ID, &created.Title, &created.Priority, &created.Category,
		&created.Location, &created.EstimatedHours, &created.RequiredSkills,
		&created.Complexity, &created.Status, &created.AssignedTo,
		&created.CreatedAt, &created.UpdatedAt, &created.StartedAt, &created.CompletedAt,
	)
	if err != nil {
		return domaintask.Task{}, fmt.Errorf("inserting task: %w", err)
	}
	return created, nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (domaintask.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`

	var t domaintask.Task
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.Title, &t.Priority, &t.Category, &t.Location, &t.EstimatedHours,
		&t.RequiredSkills, &t.Complexity, &t.Status, &t.AssignedTo,
		&t.CreatedAt, &t.UpdatedAt, &t.StartedAt, &t.CompletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domaintask.Task{}, porttask.ErrNotFound
		}
		return domaintask.Task{}, fmt.Errorf("querying task: %w", err)
	}
	return t, nil
}

func (r *Repository) List(ctx context.Context, filters domaintask.ListFilters) ([]domaintask.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE 1=1`

	args := []interface{}{}
	argIdx := 1

	if filters.Status != nil {
		query += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, string(*filters.Status))
		argIdx++
	}
	if filters.Priority != nil {
		query += fmt.Sprintf(" AND priority = $%d", argIdx)
		args = append(args, string(*filters.Priority))
		argIdx++
	}
	if filters.AssignedTo != nil {
		query += fmt.Sprintf(" AND assigned_to = $%d", argIdx)
		args = append(args, *filters.AssignedTo)
		argIdx++
	}
	if filters.Unassigned {
		query += " AND assigned_to IS NULL"
	}

	if filters.OldestFirst {
		query += " ORDER BY created_at ASC"
	} else {
		query += " ORDER BY created_at DESC"
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()

	return scanTasks(rows)
}

// ListPending returns unassigned pending tasks in batch order: priority rank
// first (urgent before low), creation time as the stable tie-break.
func (r *Repository) ListPending(ctx context.Context) ([]domaintask.Task, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM tasks
		WHERE status = 'pending' AND assigned_to IS NULL
		ORDER BY CASE priority
			WHEN 'urgent' THEN 0 WHEN 'high' THEN 1 WHEN 'medium' THEN 2 WHEN 'low' THEN 3
			ELSE 4 END, created_at`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing pending tasks: %w", err)
	}
	defer rows.Close()

	return scanTasks(rows)
}

// Claim performs the assignment CAS in a single statement: the WHERE clause
// only matches a still-pending, unassigned row, so exactly one concurrent
// caller ever sees RowsAffected == 1.
func (r *Repository) Claim(ctx context.Context, taskID, staffID uuid.UUID) error {
	now := time.Now().UTC()
	tag, err := r.pool.Exec(ctx, `
		UPDATE tasks
		SET status = 'in_progress', assigned_to = $2, updated_at = $3, started_at = $3
		WHERE id = $1 AND status = 'pending' AND assigned_to IS NULL`,
		taskID, staffID, now,
	)
	if err != nil {
		return fmt.Errorf("claiming task: %w", err)
	}
	if tag.RowsAffected() == 1 {
		return nil
	}

	// CAS miss: distinguish "already claimed" from "row gone".
	var exists bool
	if err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM tasks WHERE id = $1)`, taskID).Scan(&exists); err != nil {
		return fmt.Errorf("checking task after claim miss: %w", err)
	}
	if !exists {
		return porttask.ErrNotFound
	}
	return porttask.ErrAlreadyAssigned
}

func (r *Repository) Complete(ctx context.Context, taskID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE tasks SET status = 'completed', updated_at = NOW(), completed_at = NOW()
		WHERE id = $1 AND status = 'in_progress'`, taskID)
	if err != nil {
		return fmt.Errorf("completing task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return porttask.ErrNotFound
	}
	return nil
}

func scanTasks(rows pgx.Rows) ([]domaintask.Task, error) {
	var tasks []domaintask.Task
	for rows.Next() {
		var t domaintask.Task
		if err := rows.Scan(
			&t.ID, &t.Title, &t.Priority, &t.Category, &t.Location, &t.EstimatedHours,
			&t.RequiredSkills, &t.Complexity, &t.Status, &t.AssignedTo,
			&t.CreatedAt, &t.UpdatedAt, &t.StartedAt, &t.CompletedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning task row: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating task rows: %w", err)
	}
	return tasks, nil
}
