package model

import "time"

type ChecklistStatus string

const (
	ChecklistStatusDraft     ChecklistStatus = "draft"
	ChecklistStatusActive    ChecklistStatus = "active"
	ChecklistStatusCompleted ChecklistStatus = "completed"
)

func (s ChecklistStatus) IsValid() bool {
	return s == ChecklistStatusDraft || s == ChecklistStatusActive || s == ChecklistStatusCompleted
}

type Checklist struct {
	ID          string          `json:"id"`
	OwnerID     string          `json:"owner_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Status      ChecklistStatus `json:"status"`
	DueDate     *time.Time      `json:"due_date,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// IsOverdue reports whether the checklist's due date has passed without the
// checklist being completed. Comparison is by calendar date, not instant.
func (c Checklist) IsOverdue(now time.Time) bool {
	if c.DueDate == nil || c.Status == ChecklistStatusCompleted {
		return false
	}
	return dateOf(*c.DueDate).Before(dateOf(now))
}

// dateOf strips the time-of-day component so comparisons work on calendar
// dates regardless of the instant's zone.
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// CompletionPercentage is the share of resolved items (completed or
// not-applicable) among the given items, expressed 0-100. Returns 0.0 for an
// empty slice. Computed fresh on every read; never stored.
func CompletionPercentage(items []ChecklistItem) float64 {
	if len(items) == 0 {
		return 0.0
	}
	resolved := 0
	for _, item := range items {
		if item.IsResolved() {
			resolved++
		}
	}
	return float64(resolved) / float64(len(items)) * 100
}
