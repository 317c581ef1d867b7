package models

import (
	"time"

	"github.com/google/uuid"
)

// ExpenseFilters contains filtering options for expense queries.
// Results are always scoped to UserID and ordered by date descending,
// then creation time descending.
type ExpenseFilters struct {
	UserID     string
	StartDate  *time.Time
	EndDate    *time.Time
	CategoryID *uuid.UUID
	TagID      *uuid.UUID
	Search     string
}
