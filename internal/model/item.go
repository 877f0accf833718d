package model

import "time"

type ItemStatus string

const (
	ItemStatusPending       ItemStatus = "pending"
	ItemStatusInProgress    ItemStatus = "in-progress"
	ItemStatusCompleted     ItemStatus = "completed"
	ItemStatusNotApplicable ItemStatus = "not-applicable"
)

func (s ItemStatus) IsValid() bool {
	switch s {
	case ItemStatusPending, ItemStatusInProgress, ItemStatusCompleted, ItemStatusNotApplicable:
		return true
	}
	return false
}

type ChecklistItem struct {
	ID            string     `json:"id"`
	ChecklistID   string     `json:"checklist_id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Status        ItemStatus `json:"status"`
	AssignedOwner string     `json:"assigned_owner"`
	EvidenceNotes string     `json:"evidence_notes"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// IsResolved reports whether the item no longer requires work: completed and
// not-applicable items both count toward checklist completion.
func (i ChecklistItem) IsResolved() bool {
	return i.Status == ItemStatusCompleted || i.Status == ItemStatusNotApplicable
}
