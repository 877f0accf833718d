package handler

import (
	"time"

	"github.com/jaekwang-park/compliance-api/internal/model"
)

const dateLayout = "2006-01-02"

// itemResponse is the wire representation of a checklist item.
type itemResponse struct {
	ID            string     `json:"id"`
	ChecklistID   string     `json:"checklist_id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Status        string     `json:"status"`
	AssignedOwner string     `json:"assigned_owner"`
	EvidenceNotes string     `json:"evidence_notes"`
	CompletedAt   *time.Time `json:"completed_at"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	IsCompleted   bool       `json:"is_completed"`
}

func newItemResponse(item model.ChecklistItem) itemResponse {
	return itemResponse{
		ID:            item.ID,
		ChecklistID:   item.ChecklistID,
		Title:         item.Title,
		Description:   item.Description,
		Status:        string(item.Status),
		AssignedOwner: item.AssignedOwner,
		EvidenceNotes: item.EvidenceNotes,
		CompletedAt:   item.CompletedAt,
		CreatedAt:     item.CreatedAt,
		UpdatedAt:     item.UpdatedAt,
		IsCompleted:   item.IsResolved(),
	}
}

func newItemResponses(items []model.ChecklistItem) []itemResponse {
	out := make([]itemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, newItemResponse(item))
	}
	return out
}

// checklistResponse is the wire representation of a checklist. The derived
// fields are recomputed from the current items on every read.
type checklistResponse struct {
	ID                   string         `json:"id"`
	OwnerID              string         `json:"owner_id"`
	OwnerUsername        string         `json:"owner_username"`
	Name                 string         `json:"name"`
	Description          string         `json:"description"`
	Status               string         `json:"status"`
	DueDate              *string        `json:"due_date"`
	CreatedAt            time.Time      `json:"created_at"`
	UpdatedAt            time.Time      `json:"updated_at"`
	IsOverdue            bool           `json:"is_overdue"`
	CompletionPercentage float64        `json:"completion_percentage"`
	TotalItems           int            `json:"total_items"`
	CompletedItems       int            `json:"completed_items"`
	PendingItems         int            `json:"pending_items"`
	Items                []itemResponse `json:"items,omitempty"`
}

func newChecklistResponse(checklist model.Checklist, items []model.ChecklistItem, ownerUsername string, includeItems bool) checklistResponse {
	resp := checklistResponse{
		ID:                   checklist.ID,
		OwnerID:              checklist.OwnerID,
		OwnerUsername:        ownerUsername,
		Name:                 checklist.Name,
		Description:          checklist.Description,
		Status:               string(checklist.Status),
		CreatedAt:            checklist.CreatedAt,
		UpdatedAt:            checklist.UpdatedAt,
		IsOverdue:            checklist.IsOverdue(time.Now()),
		CompletionPercentage: model.CompletionPercentage(items),
		TotalItems:           len(items),
	}
	if checklist.DueDate != nil {
		due := checklist.DueDate.Format(dateLayout)
		resp.DueDate = &due
	}
	for _, item := range items {
		if item.IsResolved() {
			resp.CompletedItems++
		} else {
			resp.PendingItems++
		}
	}
	if includeItems {
		resp.Items = newItemResponses(items)
	}
	return resp
}
