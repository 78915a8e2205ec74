package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/GuilhermeVerrone/process-mapper/internal/db"
	"github.com/GuilhermeVerrone/process-mapper/internal/domain"
)

// areaColumns is the canonical SELECT column list for areas.
const areaColumns = `id, name, owner, created_at, updated_at`

// SQLiteAreaRepo implements AreaRepo using a SQLite database.
type SQLiteAreaRepo struct {
	db db.DBTX
}

// NewSQLiteAreaRepo creates a new SQLiteAreaRepo.
func NewSQLiteAreaRepo(conn db.DBTX) *SQLiteAreaRepo {
	return &SQLiteAreaRepo{db: conn}
}

func (r *SQLiteAreaRepo) Create(ctx context.Context, a *domain.Area) error {
	query := `INSERT INTO areas (id, name, owner, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		a.ID,
		a.Name,
		a.Owner,
		a.CreatedAt.Format(time.RFC3339),
		a.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting area: %w", err)
	}
	return nil
}

func (r *SQLiteAreaRepo) GetByID(ctx context.Context, id string) (*domain.Area, error) {
	query := `SELECT ` + areaColumns + ` FROM areas WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanArea(row)
}

func (r *SQLiteAreaRepo) List(ctx context.Context) ([]*domain.Area, error) {
	query := `SELECT ` + areaColumns + ` FROM areas ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing areas: %w", err)
	}
	defer rows.Close()

	var areas []*domain.Area
	for rows.Next() {
		var a domain.Area
		var createdAtStr, updatedAtStr string
		if err := rows.Scan(&a.ID, &a.Name, &a.Owner, &createdAtStr, &updatedAtStr); err != nil {
			return nil, fmt.Errorf("scanning area row: %w", err)
		}
		a.CreatedAt = parseTime(createdAtStr)
		a.UpdatedAt = parseTime(updatedAtStr)
		areas = append(areas, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating areas: %w", err)
	}
	return areas, nil
}

func (r *SQLiteAreaRepo) Update(ctx context.Context, a *domain.Area) error {
	query := `UPDATE areas SET name = ?, owner = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		a.Name,
		a.Owner,
		a.UpdatedAt.Format(time.RFC3339),
		a.ID,
	)
	if err != nil {
		return fmt.Errorf("updating area: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("area %s: %w", a.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteAreaRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM areas WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting area: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("area %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteAreaRepo) scanArea(row *sql.Row) (*domain.Area, error) {
	var a domain.Area
	var createdAtStr, updatedAtStr string
	err := row.Scan(&a.ID, &a.Name, &a.Owner, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("area: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning area: %w", err)
	}
	a.CreatedAt = parseTime(createdAtStr)
	a.UpdatedAt = parseTime(updatedAtStr)
	return &a, nil
}
