package model_test

import (
	"testing"

	"github.com/jaekwang-park/compliance-api/internal/model"
)

func TestItemStatus_IsValid(t *testing.T) {
	tests := []struct {
		name   string
		status model.ItemStatus
		want   bool
	}{
		{"pending", model.ItemStatusPending, true},
		{"in-progress", model.ItemStatusInProgress, true},
		{"completed", model.ItemStatusCompleted, true},
		{"not-applicable", model.ItemStatusNotApplicable, true},
		{"empty", model.ItemStatus(""), false},
		{"invalid", model.ItemStatus("done"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.status.IsValid(); got != tt.want {
				t.Errorf("ItemStatus(%q).IsValid() = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}

func TestChecklistItem_IsResolved(t *testing.T) {
	tests := []struct {
		name   string
		status model.ItemStatus
		want   bool
	}{
		{"pending", model.ItemStatusPending, false},
		{"in-progress", model.ItemStatusInProgress, false},
		{"completed", model.ItemStatusCompleted, true},
		{"not-applicable", model.ItemStatusNotApplicable, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := model.ChecklistItem{Status: tt.status}
			if got := item.IsResolved(); got != tt.want {
				t.Errorf("IsResolved() = %v, want %v", got, tt.want)
			}
		})
	}
}
