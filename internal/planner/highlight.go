package planner

import (
	"tableplan/internal/floor"
)

// HighlightTarget resolves the selection pointer against a table snapshot.
// The rendering layer calls this on every state change instead of holding a
// live reference, so a deleted table can never leave a dangling highlight.
func HighlightTarget(selectedID string, tables []*floor.Table) *floor.Table {
	if selectedID == "" {
		return nil
	}
	for _, t := range tables {
		if t.ID == selectedID {
			return t
		}
	}
	return nil
}
