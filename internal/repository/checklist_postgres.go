package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jaekwang-park/compliance-api/internal/model"
)

type PostgresChecklistRepository struct {
	db *sql.DB
}

func NewPostgresChecklist(db *sql.DB) *PostgresChecklistRepository {
	return &PostgresChecklistRepository{db: db}
}

func (r *PostgresChecklistRepository) Create(ctx context.Context, checklist model.Checklist) (model.Checklist, error) {
	query := `
		INSERT INTO checklists (id, owner_id, name, description, status, due_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, owner_id, name, description, status, due_date, created_at, updated_at`

	row := r.db.QueryRowContext(ctx, query,
		uuid.NewString(), checklist.OwnerID, checklist.Name,
		checklist.Description, checklist.Status, checklist.DueDate,
	)

	return scanChecklist(row)
}

func (r *PostgresChecklistRepository) GetByID(ctx context.Context, checklistID string) (model.Checklist, error) {
	query := `
		SELECT id, owner_id, name, description, status, due_date, created_at, updated_at
		FROM checklists
		WHERE id = $1`

	row := r.db.QueryRowContext(ctx, query, checklistID)
	return scanChecklist(row)
}

func (r *PostgresChecklistRepository) Update(ctx context.Context, checklist model.Checklist) (model.Checklist, error) {
	query := `
		UPDATE checklists
		SET name = $1, description = $2, status = $3, due_date = $4, updated_at = now()
		WHERE id = $5
		RETURNING id, owner_id, name, description, status, due_date, created_at, updated_at`

	row := r.db.QueryRowContext(ctx, query,
		checklist.Name, checklist.Description, checklist.Status,
		checklist.DueDate, checklist.ID,
	)

	return scanChecklist(row)
}

// Delete removes the checklist's items, then the checklist, in one
// transaction. The items table also carries ON DELETE CASCADE; the explicit
// delete keeps the cascade visible in the application layer.
func (r *PostgresChecklistRepository) Delete(ctx context.Context, checklistID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM checklist_items WHERE checklist_id = $1`, checklistID,
	); err != nil {
		return fmt.Errorf("failed to delete checklist items: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM checklists WHERE id = $1`, checklistID)
	if err != nil {
		return fmt.Errorf("failed to delete checklist: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return sql.ErrNoRows
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit delete: %w", err)
	}

	return nil
}

func (r *PostgresChecklistRepository) ListByOwner(ctx context.Context, ownerID string) ([]model.Checklist, error) {
	query := `
		SELECT id, owner_id, name, description, status, due_date, created_at, updated_at
		FROM checklists
		WHERE owner_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list checklists: %w", err)
	}
	defer rows.Close()

	checklists := []model.Checklist{}
	for rows.Next() {
		checklist, err := scanChecklist(rows)
		if err != nil {
			return nil, err
		}
		checklists = append(checklists, checklist)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate checklists: %w", err)
	}

	return checklists, nil
}

func (r *PostgresChecklistRepository) StatusCountsByOwner(ctx context.Context, ownerID string) (map[model.ChecklistStatus]int, error) {
	query := `
		SELECT status, COUNT(*)
		FROM checklists
		WHERE owner_id = $1
		GROUP BY status`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to count checklists by status: %w", err)
	}
	defer rows.Close()

	counts := map[model.ChecklistStatus]int{}
	for rows.Next() {
		var status model.ChecklistStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan status count: %w", err)
		}
		counts[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate status counts: %w", err)
	}

	return counts, nil
}

func (r *PostgresChecklistRepository) CountOverdueByOwner(ctx context.Context, ownerID string, today time.Time) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM checklists
		WHERE owner_id = $1
		  AND due_date IS NOT NULL
		  AND due_date < $2
		  AND status IN ('draft', 'active')`

	var count int
	if err := r.db.QueryRowContext(ctx, query, ownerID, today).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count overdue checklists: %w", err)
	}

	return count, nil
}

type scannable interface {
	Scan(dest ...any) error
}

func scanChecklist(row scannable) (model.Checklist, error) {
	var c model.Checklist
	var dueDate sql.NullTime
	err := row.Scan(
		&c.ID, &c.OwnerID, &c.Name, &c.Description,
		&c.Status, &dueDate, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return model.Checklist{}, fmt.Errorf("failed to scan checklist: %w", err)
	}
	if dueDate.Valid {
		c.DueDate = &dueDate.Time
	}
	return c, nil
}

var _ ChecklistRepository = (*PostgresChecklistRepository)(nil)
