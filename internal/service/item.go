package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jaekwang-park/compliance-api/internal/model"
	"github.com/jaekwang-park/compliance-api/internal/repository"
)

type CreateItemInput struct {
	Title         string
	Description   string
	Status        *string
	AssignedOwner string
	EvidenceNotes string
}

type UpdateItemInput struct {
	Title         *string
	Description   *string
	Status        *string
	AssignedOwner *string
	EvidenceNotes *string
	CompletedAt   *time.Time
}

type ItemService struct {
	itemRepo      repository.ItemRepository
	checklistRepo repository.ChecklistRepository
}

func NewItemService(itemRepo repository.ItemRepository, checklistRepo repository.ChecklistRepository) *ItemService {
	return &ItemService{
		itemRepo:      itemRepo,
		checklistRepo: checklistRepo,
	}
}

func (s *ItemService) Create(ctx context.Context, checklistID string, input CreateItemInput) (model.ChecklistItem, error) {
	checklist, err := s.checklistRepo.GetByID(ctx, checklistID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.ChecklistItem{}, ErrNotFound
		}
		return model.ChecklistItem{}, fmt.Errorf("failed to get checklist: %w", err)
	}
	if checklist.Status == model.ChecklistStatusCompleted {
		return model.ChecklistItem{}, validationErr("cannot add items to a completed checklist")
	}

	if strings.TrimSpace(input.Title) == "" {
		return model.ChecklistItem{}, fieldErr("title", "title cannot be empty")
	}

	status := model.ItemStatusPending
	if input.Status != nil {
		status = model.ItemStatus(*input.Status)
		if !status.IsValid() {
			return model.ChecklistItem{}, fieldErr("status", fmt.Sprintf("invalid status %q", *input.Status))
		}
	}

	item := model.ChecklistItem{
		ChecklistID:   checklistID,
		Title:         input.Title,
		Description:   input.Description,
		Status:        status,
		AssignedOwner: input.AssignedOwner,
		EvidenceNotes: input.EvidenceNotes,
	}

	created, err := s.itemRepo.Create(ctx, item)
	if err != nil {
		return model.ChecklistItem{}, fmt.Errorf("failed to create item: %w", err)
	}

	return created, nil
}

func (s *ItemService) GetByID(ctx context.Context, itemID string) (model.ChecklistItem, error) {
	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.ChecklistItem{}, ErrNotFound
		}
		return model.ChecklistItem{}, fmt.Errorf("failed to get item: %w", err)
	}
	return item, nil
}

// Update applies a partial update. Setting status to completed stamps
// completed_at unless the item was already completed; setting any other
// status clears it, even when it was already null.
func (s *ItemService) Update(ctx context.Context, itemID string, input UpdateItemInput) (model.ChecklistItem, error) {
	existing, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.ChecklistItem{}, ErrNotFound
		}
		return model.ChecklistItem{}, fmt.Errorf("failed to get item for update: %w", err)
	}

	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return model.ChecklistItem{}, fieldErr("title", "title cannot be empty")
		}
		existing.Title = *input.Title
	}
	if input.Description != nil {
		existing.Description = *input.Description
	}
	if input.AssignedOwner != nil {
		existing.AssignedOwner = *input.AssignedOwner
	}
	if input.EvidenceNotes != nil {
		existing.EvidenceNotes = *input.EvidenceNotes
	}
	if input.CompletedAt != nil {
		existing.CompletedAt = input.CompletedAt
	}
	if input.Status != nil {
		status := model.ItemStatus(*input.Status)
		if !status.IsValid() {
			return model.ChecklistItem{}, fieldErr("status", fmt.Sprintf("invalid status %q", *input.Status))
		}
		if status == model.ItemStatusCompleted {
			if existing.Status != model.ItemStatusCompleted {
				now := time.Now()
				existing.CompletedAt = &now
			}
		} else {
			existing.CompletedAt = nil
		}
		existing.Status = status
	}

	updated, err := s.itemRepo.Update(ctx, existing)
	if err != nil {
		return model.ChecklistItem{}, fmt.Errorf("failed to update item: %w", err)
	}

	return updated, nil
}

// Complete marks the item completed, optionally recording evidence notes.
// An empty evidence string is ignored so completion never wipes prior notes.
func (s *ItemService) Complete(ctx context.Context, itemID string, evidenceNotes *string) (model.ChecklistItem, error) {
	if evidenceNotes != nil && *evidenceNotes == "" {
		evidenceNotes = nil
	}
	status := string(model.ItemStatusCompleted)
	return s.Update(ctx, itemID, UpdateItemInput{
		Status:        &status,
		EvidenceNotes: evidenceNotes,
	})
}

// Delete removes an item by id. Item routes do not check checklist ownership.
func (s *ItemService) Delete(ctx context.Context, itemID string) error {
	if err := s.itemRepo.Delete(ctx, itemID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete item: %w", err)
	}
	return nil
}

// ListByChecklist returns the items under a checklist, oldest first.
func (s *ItemService) ListByChecklist(ctx context.Context, checklistID string) ([]model.ChecklistItem, error) {
	items, err := s.itemRepo.ListByChecklist(ctx, checklistID)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	return items, nil
}
