package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/GuilhermeVerrone/process-mapper/internal/db"
	"github.com/GuilhermeVerrone/process-mapper/internal/domain"
)

// processColumns is the canonical SELECT column list for processes.
const processColumns = `id, area_id, parent_id, name, description, owner,
		systems_and_tools, color, type, position_x, position_y, created_at, updated_at`

// SQLiteProcessRepo implements ProcessRepo using a SQLite database.
type SQLiteProcessRepo struct {
	db db.DBTX
}

// NewSQLiteProcessRepo creates a new SQLiteProcessRepo.
func NewSQLiteProcessRepo(conn db.DBTX) *SQLiteProcessRepo {
	return &SQLiteProcessRepo{db: conn}
}

func (r *SQLiteProcessRepo) Create(ctx context.Context, p *domain.Process) error {
	query := `INSERT INTO processes (id, area_id, parent_id, name, description, owner,
		systems_and_tools, color, type, position_x, position_y, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.AreaID,
		p.ParentID, // *string: nil becomes SQL NULL
		p.Name,
		p.Description,
		p.Owner,
		p.SystemsAndTools,
		p.Color,
		string(p.Type),
		p.Position.X,
		p.Position.Y,
		p.CreatedAt.Format(time.RFC3339),
		p.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting process: %w", err)
	}
	return nil
}

func (r *SQLiteProcessRepo) GetByID(ctx context.Context, id string) (*domain.Process, error) {
	query := `SELECT ` + processColumns + ` FROM processes WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanProcess(row)
}

func (r *SQLiteProcessRepo) ListByArea(ctx context.Context, areaID string) ([]*domain.Process, error) {
	query := `SELECT ` + processColumns + ` FROM processes WHERE area_id = ? ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query, areaID)
	if err != nil {
		return nil, fmt.Errorf("listing processes by area: %w", err)
	}
	defer rows.Close()
	return r.scanProcesses(rows)
}

func (r *SQLiteProcessRepo) Update(ctx context.Context, p *domain.Process) error {
	// area_id is immutable after creation and deliberately absent here.
	query := `UPDATE processes SET parent_id = ?, name = ?, description = ?, owner = ?,
		systems_and_tools = ?, color = ?, type = ?, position_x = ?, position_y = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		p.ParentID,
		p.Name,
		p.Description,
		p.Owner,
		p.SystemsAndTools,
		p.Color,
		string(p.Type),
		p.Position.X,
		p.Position.Y,
		p.UpdatedAt.Format(time.RFC3339),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating process: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("process %s: %w", p.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteProcessRepo) UpdatePosition(ctx context.Context, id string, x, y float64) error {
	query := `UPDATE processes SET position_x = ?, position_y = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, x, y, nowUTC(), id)
	if err != nil {
		return fmt.Errorf("updating process position: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("process %s: %w", id, ErrNotFound)
	}
	return nil
}

// CountChildren returns the number of processes whose parent is the given id.
func (r *SQLiteProcessRepo) CountChildren(ctx context.Context, id string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM processes WHERE parent_id = ?`, id).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting subprocesses: %w", err)
	}
	return count, nil
}

func (r *SQLiteProcessRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM processes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting process: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("process %s: %w", id, ErrNotFound)
	}
	return nil
}

// DeleteByArea removes every process in an area, children before parents so
// the parent_id foreign key restriction never trips mid-delete.
func (r *SQLiteProcessRepo) DeleteByArea(ctx context.Context, areaID string) error {
	for {
		// Delete the current leaves of the area's forest; repeat until empty.
		res, err := r.db.ExecContext(ctx, `DELETE FROM processes WHERE area_id = ?
			AND id NOT IN (SELECT parent_id FROM processes WHERE parent_id IS NOT NULL)`, areaID)
		if err != nil {
			return fmt.Errorf("deleting area processes: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("deleting area processes: %w", err)
		}
		if n == 0 {
			return nil
		}
	}
}

// scanProcess scans a single process from a *sql.Row.
func (r *SQLiteProcessRepo) scanProcess(row *sql.Row) (*domain.Process, error) {
	var p domain.Process
	var typeStr, createdAtStr, updatedAtStr string
	var parentID sql.NullString

	err := row.Scan(
		&p.ID, &p.AreaID, &parentID, &p.Name, &p.Description, &p.Owner,
		&p.SystemsAndTools, &p.Color, &typeStr, &p.Position.X, &p.Position.Y,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("process: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning process: %w", err)
	}

	p.ParentID = parseNullableStr(parentID)
	p.Type = domain.ProcessType(typeStr)
	p.CreatedAt = parseTime(createdAtStr)
	p.UpdatedAt = parseTime(updatedAtStr)
	return &p, nil
}

// scanProcesses scans multiple processes from *sql.Rows.
func (r *SQLiteProcessRepo) scanProcesses(rows *sql.Rows) ([]*domain.Process, error) {
	var processes []*domain.Process
	for rows.Next() {
		var p domain.Process
		var typeStr, createdAtStr, updatedAtStr string
		var parentID sql.NullString

		err := rows.Scan(
			&p.ID, &p.AreaID, &parentID, &p.Name, &p.Description, &p.Owner,
			&p.SystemsAndTools, &p.Color, &typeStr, &p.Position.X, &p.Position.Y,
			&createdAtStr, &updatedAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning process row: %w", err)
		}

		p.ParentID = parseNullableStr(parentID)
		p.Type = domain.ProcessType(typeStr)
		p.CreatedAt = parseTime(createdAtStr)
		p.UpdatedAt = parseTime(updatedAtStr)
		processes = append(processes, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating processes: %w", err)
	}
	return processes, nil
}
