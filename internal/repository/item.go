package repository

import (
	"context"

	"github.com/jaekwang-park/compliance-api/internal/model"
)

type ItemRepository interface {
	Create(ctx context.Context, item model.ChecklistItem) (model.ChecklistItem, error)
	GetByID(ctx context.Context, itemID string) (model.ChecklistItem, error)
	Update(ctx context.Context, item model.ChecklistItem) (model.ChecklistItem, error)
	Delete(ctx context.Context, itemID string) error
	ListByChecklist(ctx context.Context, checklistID string) ([]model.ChecklistItem, error)
	StatusCountsByChecklist(ctx context.Context, checklistID string) (map[model.ItemStatus]int, error)
	// StatusCountsByOwner aggregates item statuses across every checklist
	// owned by the given user.
	StatusCountsByOwner(ctx context.Context, ownerID string) (map[model.ItemStatus]int, error)
}
