package dto

import (
	"spendtrack/internal/models"
	"spendtrack/internal/period"

	"github.com/google/uuid"
)

// PeriodQuery carries the shared query params of the summary and
// insights endpoints.
type PeriodQuery struct {
	Period   string `query:"period" validate:"omitempty,period_kind"`
	Date     string `query:"date" validate:"omitempty,iso_date"`
	Start    string `query:"start"`
	End      string `query:"end"`
	StartDay int    `query:"start_day" validate:"omitempty,min=1,max=31"`
}

// CategoryTotalResponse is one group in the by_category breakdown
type CategoryTotalResponse struct {
	ID    *uuid.UUID `json:"id"`
	Name  string     `json:"name"`
	Total string     `json:"total"`
}

// SummaryResponse is the summary endpoint's wire shape
type SummaryResponse struct {
	Period     string                  `json:"period"`
	Start      *string                 `json:"start"`
	End        *string                 `json:"end"`
	Total      string                  `json:"total"`
	Count      int                     `json:"count"`
	ByCategory []CategoryTotalResponse `json:"by_category"`
}

// InsightCards holds the headline numbers shown alongside the
// narrative. TopCategory is null when the period has no expenses.
type InsightCards struct {
	TotalSpent  string  `json:"total_spent"`
	TopCategory *string `json:"top_category"`
}

// InsightResponse is the insights endpoint's wire shape
type InsightResponse struct {
	Summary SummaryResponse `json:"summary"`
	Cards   InsightCards    `json:"cards"`
	Insight string          `json:"insight"`
}

// ToSummaryResponse maps an aggregated summary plus its resolved range
// to the wire shape. Unbounded (all-time) ranges serialize start/end
// as null.
func ToSummaryResponse(kind string, rng period.Range, summary models.ExpenseSummary) SummaryResponse {
	resp := SummaryResponse{
		Period:     kind,
		Total:      summary.Total.StringFixed(2),
		Count:      summary.Count,
		ByCategory: make([]CategoryTotalResponse, 0, len(summary.ByCategory)),
	}

	if rng.Start != nil {
		start := rng.Start.Format(period.DateLayout)
		resp.Start = &start
	}
	if rng.End != nil {
		end := rng.End.Format(period.DateLayout)
		resp.End = &end
	}

	for _, group := range summary.ByCategory {
		resp.ByCategory = append(resp.ByCategory, CategoryTotalResponse{
			ID:    group.ID,
			Name:  group.Name,
			Total: group.Total.StringFixed(2),
		})
	}

	return resp
}
