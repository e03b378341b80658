package staff

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domainstaff "github.com/nvoss/staff-mesh/internal/domain/staff"
)

const staffColumns = `id, name, role, current_load, on_shift, skills,
	perf_efficiency, perf_quality, perf_speed, location, created_at`

// Repository implements both port/staff.Repository and port/staff.RosterReader.
type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) Create(ctx context.Context, s domainstaff.Staff) (domainstaff.Staff, error) {
	query := `
		INSERT INTO staff (id, name, role, current_load, on_shift, skills,
			perf_efficiency, perf_quality, perf_speed, location, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		RETURNING ` + staffColumns

	row := r.pool.QueryRow(ctx, query,
		s.ID, s.Name, s.Role, s.CurrentLoad, s.OnShift, s.Skills,
		s.Performance.Efficiency, s.Performance.Quality, s.Performance.Speed,
		s.Location, s.CreatedAt,
	)
	created, err := scanStaff(row)
	if err != nil {
		return domainstaff.Staff{}, fmt.Errorf("inserting staff: %w", err)
	}
	return created, nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (domainstaff.Staff, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+staffColumns+` FROM staff WHERE id = $1`, id)
	s, err := scanStaff(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domainstaff.Staff{}, fmt.Errorf("staff %s not found", id)
		}
		return domainstaff.Staff{}, fmt.Errorf("querying staff: %w", err)
	}
	return s, nil
}

func (r *Repository) List(ctx context.Context, filters domainstaff.ListFilters) ([]domainstaff.Staff, error) {
	query := `SELECT ` + staffColumns + ` FROM staff WHERE 1=1`

	args := []interface{}{}
	argIdx := 1

	if filters.Role != nil {
		query += fmt.Sprintf(" AND role = $%d", argIdx)
		args = append(args, *filters.Role)
		argIdx++
	}
	if filters.Location != nil {
		query += fmt.Sprintf(" AND location = $%d", argIdx)
		args = append(args, *filters.Location)
		argIdx++
	}
	if filters.OnShift != nil {
		query += fmt.Sprintf(" AND on_shift = $%d", argIdx)
		args = append(args, *filters.OnShift)
		argIdx++
	}

	query += " ORDER BY created_at"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing staff: %w", err)
	}
	defer rows.Close()

	return scanStaffRows(rows)
}

// Roster implements port/staff.RosterReader: the point-in-time snapshot the
// recommender scores against. Off-shift staff are excluded here so they can
// never surface as candidates.
func (r *Repository) Roster(ctx context.Context) ([]domainstaff.Staff, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+staffColumns+` FROM staff WHERE on_shift ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("reading roster: %w", err)
	}
	defer rows.Close()

	return scanStaffRows(rows)
}

func (r *Repository) SetOnShift(ctx context.Context, id uuid.UUID, onShift bool) error {
	tag, err := r.pool.Exec(ctx, `UPDATE staff SET on_shift = $2 WHERE id = $1`, id, onShift)
	if err != nil {
		return fmt.Errorf("setting shift state: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("staff %s not found", id)
	}
	return nil
}

// RecomputeLoad rederives current_load from the live active-task count in one
// statement, so a concurrent commit cannot interleave between read and write.
func (r *Repository) RecomputeLoad(ctx context.Context, id uuid.UUID) (float64, error) {
	var load float64
	err := r.pool.QueryRow(ctx, `
		UPDATE staff s
		SET current_load = LEAST(100, (
			SELECT COUNT(*) FROM tasks t
			WHERE t.assigned_to = s.id AND t.status IN ('assigned', 'in_progress')
		) * $2)
		WHERE s.id = $1
		RETURNING current_load`,
		id, domainstaff.LoadPerActiveTask,
	).Scan(&load)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("staff %s not found", id)
		}
		return 0, fmt.Errorf("recomputing load: %w", err)
	}
	return load, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanStaff(row rowScanner) (domainstaff.Staff, error) {
	var s domainstaff.Staff
	err := row.Scan(
		&s.ID, &s.Name, &s.Role, &s.CurrentLoad, &s.OnShift, &s.Skills,
		&s.Performance.Efficiency, &s.Performance.Quality, &s.Performance.Speed,
		&s.Location, &s.CreatedAt,
	)
	return s, err
}

func scanStaffRows(rows pgx.Rows) ([]domainstaff.Staff, error) {
	var members []domainstaff.Staff
	for rows.Next() {
		s, err := scanStaff(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning staff row: %w", err)
		}
		members = append(members, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating staff rows: %w", err)
	}
	return members, nil
}
