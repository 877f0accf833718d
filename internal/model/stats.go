package model

// ChecklistStats summarizes item progress within a single checklist.
// CompletedItems counts only status=completed; not-applicable items are
// excluded here even though they count toward CompletionPercentage at the
// presentation level.
type ChecklistStats struct {
	TotalItems           int     `json:"total_items"`
	CompletedItems       int     `json:"completed_items"`
	PendingItems         int     `json:"pending_items"`
	InProgressItems      int     `json:"in_progress_items"`
	CompletionPercentage float64 `json:"completion_percentage"`
}

// DashboardStats aggregates across every checklist owned by one user.
// AverageCompletion is a global ratio (completed items over all items), not a
// mean of per-checklist percentages.
type DashboardStats struct {
	TotalChecklists     int     `json:"total_checklists"`
	ActiveChecklists    int     `json:"active_checklists"`
	DraftChecklists     int     `json:"draft_checklists"`
	CompletedChecklists int     `json:"completed_checklists"`
	TotalItems          int     `json:"total_items"`
	CompletedItems      int     `json:"completed_items"`
	PendingItems        int     `json:"pending_items"`
	InProgressItems     int     `json:"in_progress_items"`
	OverdueChecklists   int     `json:"overdue_checklists"`
	AverageCompletion   float64 `json:"average_completion"`
}
