package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/jaekwang-park/compliance-api/internal/model"
)

type PostgresItemRepository struct {
	db *sql.DB
}

func NewPostgresItem(db *sql.DB) *PostgresItemRepository {
	return &PostgresItemRepository{db: db}
}

func (r *PostgresItemRepository) Create(ctx context.Context, item model.ChecklistItem) (model.ChecklistItem, error) {
	query := `
		INSERT INTO checklist_items (id, checklist_id, title, description, status, assigned_owner, evidence_notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, checklist_id, title, description, status, assigned_owner, evidence_notes, completed_at, created_at, updated_at`

	row := r.db.QueryRowContext(ctx, query,
		uuid.NewString(), item.ChecklistID, item.Title, item.Description,
		item.Status, item.AssignedOwner, item.EvidenceNotes,
	)

	return scanItem(row)
}

func (r *PostgresItemRepository) GetByID(ctx context.Context, itemID string) (model.ChecklistItem, error) {
	query := `
		SELECT id, checklist_id, title, description, status, assigned_owner, evidence_notes, completed_at, created_at, updated_at
		FROM checklist_items
		WHERE id = $1`

	row := r.db.QueryRowContext(ctx, query, itemID)
	return scanItem(row)
}

func (r *PostgresItemRepository) Update(ctx context.Context, item model.ChecklistItem) (model.ChecklistItem, error) {
	query := `
		UPDATE checklist_items
		SET title = $1, description = $2, status = $3, assigned_owner = $4, evidence_notes = $5, completed_at = $6, updated_at = now()
		WHERE id = $7
		RETURNING id, checklist_id, title, description, status, assigned_owner, evidence_notes, completed_at, created_at, updated_at`

	row := r.db.QueryRowContext(ctx, query,
		item.Title, item.Description, item.Status, item.AssignedOwner,
		item.EvidenceNotes, item.CompletedAt, item.ID,
	)

	return scanItem(row)
}

func (r *PostgresItemRepository) Delete(ctx context.Context, itemID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM checklist_items WHERE id = $1`, itemID)
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *PostgresItemRepository) ListByChecklist(ctx context.Context, checklistID string) ([]model.ChecklistItem, error) {
	// Oldest first: items render in the order they were added.
	query := `
		SELECT id, checklist_id, title, description, status, assigned_owner, evidence_notes, completed_at, created_at, updated_at
		FROM checklist_items
		WHERE checklist_id = $1
		ORDER BY created_at ASC`

	rows, err := r.db.QueryContext(ctx, query, checklistID)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer rows.Close()

	items := []model.ChecklistItem{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate items: %w", err)
	}

	return items, nil
}

func (r *PostgresItemRepository) StatusCountsByChecklist(ctx context.Context, checklistID string) (map[model.ItemStatus]int, error) {
	query := `
		SELECT status, COUNT(*)
		FROM checklist_items
		WHERE checklist_id = $1
		GROUP BY status`

	return r.statusCounts(ctx, query, checklistID)
}

func (r *PostgresItemRepository) StatusCountsByOwner(ctx context.Context, ownerID string) (map[model.ItemStatus]int, error) {
	query := `
		SELECT i.status, COUNT(*)
		FROM checklist_items i
		JOIN checklists c ON c.id = i.checklist_id
		WHERE c.owner_id = $1
		GROUP BY i.status`

	return r.statusCounts(ctx, query, ownerID)
}

func (r *PostgresItemRepository) statusCounts(ctx context.Context, query string, arg any) (map[model.ItemStatus]int, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to count items by status: %w", err)
	}
	defer rows.Close()

	counts := map[model.ItemStatus]int{}
	for rows.Next() {
		var status model.ItemStatus
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

func scanItem(row scannable) (model.ChecklistItem, error) {
	var i model.ChecklistItem
	var completedAt sql.NullTime
	err := row.Scan(
		&i.ID, &i.ChecklistID, &i.Title, &i.Description, &i.Status,
		&i.AssignedOwner, &i.EvidenceNotes, &completedAt, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		return model.ChecklistItem{}, fmt.Errorf("failed to scan item: %w", err)
	}
	if completedAt.Valid {
		i.CompletedAt = &completedAt.Time
	}
	return i, nil
}

var _ ItemRepository = (*PostgresItemRepository)(nil)
