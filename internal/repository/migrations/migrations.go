// Package migrations applies the database schema at startup. Statements are
// idempotent (IF NOT EXISTS) so repeated application is safe.
package migrations

import (
	"context"
	"database/sql"
	"fmt"
)

var statements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		cognito_sub TEXT NOT NULL UNIQUE,
		email TEXT NOT NULL,
		username TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS checklists (
		id TEXT PRIMARY KEY,
		owner_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'draft',
		due_date DATE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_checklists_status_due_date ON checklists (status, due_date)`,
	`CREATE INDEX IF NOT EXISTS idx_checklists_owner_status ON checklists (owner_id, status)`,
	`CREATE TABLE IF NOT EXISTS checklist_items (
		id TEXT PRIMARY KEY,
		checklist_id TEXT NOT NULL REFERENCES checklists(id) ON DELETE CASCADE,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'pending',
		assigned_owner TEXT NOT NULL DEFAULT '',
		evidence_notes TEXT NOT NULL DEFAULT '',
		completed_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_checklist_items_checklist_status ON checklist_items (checklist_id, status)`,
	`CREATE INDEX IF NOT EXISTS idx_checklist_items_status ON checklist_items (status)`,
}

// Apply runs every schema statement in order.
func Apply(ctx context.Context, db *sql.DB) error {
	for i, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d failed: %w", i, err)
		}
	}
	return nil
}
