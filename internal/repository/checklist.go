package repository

import (
	"context"
	"time"

	"github.com/jaekwang-park/compliance-api/internal/model"
)

type ChecklistRepository interface {
	Create(ctx context.Context, checklist model.Checklist) (model.Checklist, error)
	GetByID(ctx context.Context, checklistID string) (model.Checklist, error)
	Update(ctx context.Context, checklist model.Checklist) (model.Checklist, error)
	// Delete removes the checklist and all of its items in one transaction.
	Delete(ctx context.Context, checklistID string) error
	ListByOwner(ctx context.Context, ownerID string) ([]model.Checklist, error)
	StatusCountsByOwner(ctx context.Context, ownerID string) (map[model.ChecklistStatus]int, error)
	// CountOverdueByOwner counts the owner's checklists whose due date falls
	// strictly before the given day and whose status is draft or active.
	CountOverdueByOwner(ctx context.Context, ownerID string, today time.Time) (int, error)
}
