package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryTotal is one entry of a per-category spend breakdown. ID is
// nil for the synthetic "Uncategorized" group.
type CategoryTotal struct {
	ID    *uuid.UUID      `json:"id"`
	Name  string          `json:"name"`
	Total decimal.Decimal `json:"total"`
}

// ExpenseSummary contains aggregated spend data for one period:
// total amount, record count, and the category breakdown sorted by
// total descending. Computed fresh per request, never persisted.
type ExpenseSummary struct {
	Total      decimal.Decimal `json:"total"`
	Count      int             `json:"count"`
	ByCategory []CategoryTotal `json:"by_category"`
}

// TopCategory returns the name of the largest spend group, or nil
// when the summary has no entries.
func (s *ExpenseSummary) TopCategory() *string {
	if len(s.ByCategory) == 0 {
		return nil
	}
	return &s.ByCategory[0].Name
}
