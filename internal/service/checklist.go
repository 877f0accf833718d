package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/jaekwang-park/compliance-api/internal/model"
	"github.com/jaekwang-park/compliance-api/internal/repository"
)

// parseDueDate parses a YYYY-MM-DD string into *time.Time.
// Returns nil for nil input and for an explicit empty string (clears the date).
func parseDueDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil, fieldErr("due_date", "invalid date, expected YYYY-MM-DD")
	}
	return &t, nil
}

// validateDueDate rejects due dates earlier than today's calendar date.
func validateDueDate(dueDate *time.Time, now time.Time) error {
	if dueDate == nil {
		return nil
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if dueDate.Before(today) {
		return fieldErr("due_date", "due date cannot be in the past")
	}
	return nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

type CreateChecklistInput struct {
	Name        string
	Description string
	DueDate     *string // YYYY-MM-DD, parsed here
	Status      *string
}

type UpdateChecklistInput struct {
	Name        *string
	Description *string
	DueDate     *string
	Status      *string
}

type ChecklistService struct {
	checklistRepo repository.ChecklistRepository
	itemRepo      repository.ItemRepository
	userRepo      repository.UserRepository
}

func NewChecklistService(checklistRepo repository.ChecklistRepository, itemRepo repository.ItemRepository, userRepo repository.UserRepository) *ChecklistService {
	return &ChecklistService{
		checklistRepo: checklistRepo,
		itemRepo:      itemRepo,
		userRepo:      userRepo,
	}
}

// OwnerUsername resolves a checklist owner's display username for read
// responses. Owners without a user row (dev-mode ids) yield an empty string.
func (s *ChecklistService) OwnerUsername(ctx context.Context, ownerID string) (string, error) {
	user, err := s.userRepo.GetByID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get owner: %w", err)
	}
	return user.Username, nil
}

func (s *ChecklistService) Create(ctx context.Context, ownerID string, input CreateChecklistInput) (model.Checklist, error) {
	if strings.TrimSpace(input.Name) == "" {
		return model.Checklist{}, fieldErr("name", "name cannot be empty")
	}

	status := model.ChecklistStatusDraft
	if input.Status != nil {
		status = model.ChecklistStatus(*input.Status)
		if !status.IsValid() {
			return model.Checklist{}, fieldErr("status", fmt.Sprintf("invalid status %q", *input.Status))
		}
	}

	dueDate, err := parseDueDate(input.DueDate)
	if err != nil {
		return model.Checklist{}, err
	}
	if err := validateDueDate(dueDate, time.Now()); err != nil {
		return model.Checklist{}, err
	}

	checklist := model.Checklist{
		OwnerID:     ownerID,
		Name:        input.Name,
		Description: input.Description,
		Status:      status,
		DueDate:     dueDate,
	}

	created, err := s.checklistRepo.Create(ctx, checklist)
	if err != nil {
		return model.Checklist{}, fmt.Errorf("failed to create checklist: %w", err)
	}

	return created, nil
}

// GetByIDForOwner loads a checklist and verifies the requester owns it.
// Ownership stands in for access control; there is no role model.
func (s *ChecklistService) GetByIDForOwner(ctx context.Context, ownerID, checklistID string) (model.Checklist, error) {
	checklist, err := s.checklistRepo.GetByID(ctx, checklistID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Checklist{}, ErrNotFound
		}
		return model.Checklist{}, fmt.Errorf("failed to get checklist: %w", err)
	}
	if checklist.OwnerID != ownerID {
		return model.Checklist{}, validationErr("you don't have permission to access this checklist")
	}
	return checklist, nil
}

func (s *ChecklistService) Update(ctx context.Context, ownerID, checklistID string, input UpdateChecklistInput) (model.Checklist, error) {
	existing, err := s.GetByIDForOwner(ctx, ownerID, checklistID)
	if err != nil {
		return model.Checklist{}, err
	}

	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return model.Checklist{}, fieldErr("name", "name cannot be empty")
		}
		existing.Name = *input.Name
	}
	if input.Description != nil {
		existing.Description = *input.Description
	}
	if input.DueDate != nil {
		dueDate, err := parseDueDate(input.DueDate)
		if err != nil {
			return model.Checklist{}, err
		}
		if err := validateDueDate(dueDate, time.Now()); err != nil {
			return model.Checklist{}, err
		}
		existing.DueDate = dueDate
	}
	if input.Status != nil {
		status := model.ChecklistStatus(*input.Status)
		if !status.IsValid() {
			return model.Checklist{}, fieldErr("status", fmt.Sprintf("invalid status %q", *input.Status))
		}
		if status == model.ChecklistStatusCompleted {
			items, err := s.itemRepo.ListByChecklist(ctx, checklistID)
			if err != nil {
				return model.Checklist{}, fmt.Errorf("failed to list items for completion check: %w", err)
			}
			for _, item := range items {
				if !item.IsResolved() {
					return model.Checklist{}, validationErr("cannot mark checklist as completed while items are incomplete")
				}
			}
		}
		existing.Status = status
	}

	updated, err := s.checklistRepo.Update(ctx, existing)
	if err != nil {
		return model.Checklist{}, fmt.Errorf("failed to update checklist: %w", err)
	}

	return updated, nil
}

func (s *ChecklistService) Delete(ctx context.Context, ownerID, checklistID string) error {
	if _, err := s.GetByIDForOwner(ctx, ownerID, checklistID); err != nil {
		return err
	}

	if err := s.checklistRepo.Delete(ctx, checklistID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete checklist: %w", err)
	}
	return nil
}

func (s *ChecklistService) ListForOwner(ctx context.Context, ownerID string) ([]model.Checklist, error) {
	checklists, err := s.checklistRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list checklists: %w", err)
	}
	return checklists, nil
}

// Items returns the items under a checklist. No existence check: a deleted
// or unknown checklist yields an empty slice, not an error.
func (s *ChecklistService) Items(ctx context.Context, checklistID string) ([]model.ChecklistItem, error) {
	items, err := s.itemRepo.ListByChecklist(ctx, checklistID)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	return items, nil
}

// Stats summarizes one checklist's items. The completion percentage here
// counts status=completed only; not-applicable items are excluded, unlike the
// presentation-level percentage.
func (s *ChecklistService) Stats(ctx context.Context, checklistID string) (model.ChecklistStats, error) {
	if _, err := s.checklistRepo.GetByID(ctx, checklistID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.ChecklistStats{}, ErrNotFound
		}
		return model.ChecklistStats{}, fmt.Errorf("failed to get checklist: %w", err)
	}

	counts, err := s.itemRepo.StatusCountsByChecklist(ctx, checklistID)
	if err != nil {
		return model.ChecklistStats{}, fmt.Errorf("failed to count items: %w", err)
	}

	total := 0
	for _, n := range counts {
		total += n
	}

	stats := model.ChecklistStats{
		TotalItems:      total,
		CompletedItems:  counts[model.ItemStatusCompleted],
		PendingItems:    counts[model.ItemStatusPending],
		InProgressItems: counts[model.ItemStatusInProgress],
	}
	if total > 0 {
		stats.CompletionPercentage = round2(float64(stats.CompletedItems) / float64(total) * 100)
	}

	return stats, nil
}

// DashboardStats aggregates over every checklist the user owns.
// AverageCompletion is completed items over total items, a global ratio.
func (s *ChecklistService) DashboardStats(ctx context.Context, ownerID string) (model.DashboardStats, error) {
	checklistCounts, err := s.checklistRepo.StatusCountsByOwner(ctx, ownerID)
	if err != nil {
		return model.DashboardStats{}, fmt.Errorf("failed to count checklists: %w", err)
	}

	itemCounts, err := s.itemRepo.StatusCountsByOwner(ctx, ownerID)
	if err != nil {
		return model.DashboardStats{}, fmt.Errorf("failed to count items: %w", err)
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	overdue, err := s.checklistRepo.CountOverdueByOwner(ctx, ownerID, today)
	if err != nil {
		return model.DashboardStats{}, fmt.Errorf("failed to count overdue checklists: %w", err)
	}

	totalChecklists := 0
	for _, n := range checklistCounts {
		totalChecklists += n
	}
	totalItems := 0
	for _, n := range itemCounts {
		totalItems += n
	}

	stats := model.DashboardStats{
		TotalChecklists:     totalChecklists,
		ActiveChecklists:    checklistCounts[model.ChecklistStatusActive],
		DraftChecklists:     checklistCounts[model.ChecklistStatusDraft],
		CompletedChecklists: checklistCounts[model.ChecklistStatusCompleted],
		TotalItems:          totalItems,
		CompletedItems:      itemCounts[model.ItemStatusCompleted],
		PendingItems:        itemCounts[model.ItemStatusPending],
		InProgressItems:     itemCounts[model.ItemStatusInProgress],
		OverdueChecklists:   overdue,
	}
	if totalItems > 0 {
		stats.AverageCompletion = round2(float64(stats.CompletedItems) / float64(totalItems) * 100)
	}

	return stats, nil
}
