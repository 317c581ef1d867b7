package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"spendtrack/internal/ai"
	"spendtrack/internal/dto"
	"spendtrack/internal/models"
	"spendtrack/internal/period"
	"spendtrack/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidPeriod = errors.New("invalid period kind")
	ErrInvalidDate   = errors.New("invalid date")
)

// Fixed narrative fallbacks. The numeric summary is always returned;
// only the narrative degrades.
const (
	insightEmptyFallback       = "No expenses found for this period. Start adding transactions to see AI insights!"
	insightUnavailableFallback = "Analysis currently unavailable."
)

type summaryService struct {
	expenseRepo repositories.ExpenseRepositoryInterface
	aiClient    ai.ClientInterface
	metrics     MetricsRecorderInterface
}

func NewSummaryService(
	expenseRepo repositories.ExpenseRepositoryInterface,
	aiClient ai.ClientInterface,
	metrics MetricsRecorderInterface,
) SummaryServiceInterface {
	return &summaryService{
		expenseRepo: expenseRepo,
		aiClient:    aiClient,
		metrics:     metrics,
	}
}

// Aggregate folds expenses into a summary. Amounts are summed with
// decimal arithmetic; groups are keyed by category ID with nil mapped
// to the synthetic "Uncategorized" group. The breakdown is sorted by
// total descending with first-encountered order as the tiebreak.
func (s *summaryService) Aggregate(records []models.Expense) models.ExpenseSummary {
	summary := models.ExpenseSummary{
		Total:      decimal.Zero,
		ByCategory: []models.CategoryTotal{},
	}

	type groupKey struct {
		id            uuid.UUID
		uncategorized bool
	}
	index := make(map[groupKey]int)

	for i := range records {
		expense := &records[i]
		summary.Total = summary.Total.Add(expense.Amount)
		summary.Count++

		key := groupKey{uncategorized: expense.CategoryID == nil}
		if expense.CategoryID != nil {
			key.id = *expense.CategoryID
		}

		pos, seen := index[key]
		if !seen {
			group := models.CategoryTotal{
				ID:    expense.CategoryID,
				Name:  models.UncategorizedLabel,
				Total: decimal.Zero,
			}
			if name := expense.CategoryName(); name != "" {
				group.Name = name
			}
			summary.ByCategory = append(summary.ByCategory, group)
			pos = len(summary.ByCategory) - 1
			index[key] = pos
		}
		summary.ByCategory[pos].Total = summary.ByCategory[pos].Total.Add(expense.Amount)
	}

	sort.SliceStable(summary.ByCategory, func(i, j int) bool {
		return summary.ByCategory[i].Total.GreaterThan(summary.ByCategory[j].Total)
	})

	return summary
}

func (s *summaryService) GetSummary(userID string, query *dto.PeriodQuery) (*dto.SummaryResponse, error) {
	started := time.Now()

	kind, rng, err := s.resolvePeriod(query)
	if err != nil {
		return nil, err
	}

	summary, err := s.aggregateRange(userID, rng)
	if err != nil {
		return nil, err
	}

	s.metrics.RecordSummaryComputed(string(kind), time.Since(started))
	slog.Info("summary computed",
		"user_id", userID,
		"period", kind,
		"count", summary.Count,
		"total", summary.Total.String())

	resp := dto.ToSummaryResponse(string(kind), rng, summary)
	return &resp, nil
}

func (s *summaryService) GetInsights(ctx context.Context, userID string, query *dto.PeriodQuery) (*dto.InsightResponse, error) {
	kind, rng, err := s.resolvePeriod(query)
	if err != nil {
		return nil, err
	}

	summary, err := s.aggregateRange(userID, rng)
	if err != nil {
		return nil, err
	}

	resp := &dto.InsightResponse{
		Summary: dto.ToSummaryResponse(string(kind), rng, summary),
		Cards: dto.InsightCards{
			TotalSpent:  summary.Total.StringFixed(2),
			TopCategory: summary.TopCategory(),
		},
	}

	if summary.Total.IsZero() {
		resp.Insight = insightEmptyFallback
		return resp, nil
	}

	previousTotal, err := s.previousTotal(userID, rng)
	if err != nil {
		return nil, err
	}

	resp.Insight = s.generateNarrative(ctx, userID, kind, rng, summary, previousTotal)
	return resp, nil
}

// previousTotal aggregates the window preceding the resolved range so
// the narrative can compare period over period. All-time ranges have
// no previous window; nil means no comparison.
func (s *summaryService) previousTotal(userID string, rng period.Range) (*decimal.Decimal, error) {
	if rng.PrevStart == nil || rng.PrevEnd == nil {
		return nil, nil
	}

	previous, err := s.aggregateRange(userID, period.Range{
		Start: rng.PrevStart,
		End:   rng.PrevEnd,
	})
	if err != nil {
		return nil, err
	}
	return &previous.Total, nil
}

func (s *summaryService) resolvePeriod(query *dto.PeriodQuery) (period.Kind, period.Range, error) {
	kind, err := period.ParseKind(query.Period)
	if err != nil {
		return "", period.Range{}, fmt.Errorf("%w: %q", ErrInvalidPeriod, query.Period)
	}

	ref := time.Now().UTC()
	if query.Date != "" {
		parsed, err := time.Parse(period.DateLayout, query.Date)
		if err != nil {
			return "", period.Range{}, fmt.Errorf("%w: %q", ErrInvalidDate, query.Date)
		}
		ref = parsed
	}

	startDay := query.StartDay
	if startDay == 0 {
		startDay = period.DefaultMonthStartDay
	}

	return kind, period.Resolve(ref, kind, query.Start, query.End, startDay), nil
}

func (s *summaryService) aggregateRange(userID string, rng period.Range) (models.ExpenseSummary, error) {
	expenses, err := s.expenseRepo.GetWithFilters(models.ExpenseFilters{
		UserID:    userID,
		StartDate: rng.Start,
		EndDate:   rng.End,
	})
	if err != nil {
		slog.Error("failed to load expenses for aggregation",
			"user_id", userID,
			"error", err)
		return models.ExpenseSummary{}, fmt.Errorf("failed to load expenses: %w", err)
	}

	return s.Aggregate(expenses), nil
}

func (s *summaryService) generateNarrative(ctx context.Context, userID string, kind period.Kind, rng period.Range, summary models.ExpenseSummary, previousTotal *decimal.Decimal) string {
	if s.aiClient == nil || !s.aiClient.Enabled() {
		return insightUnavailableFallback
	}

	started := time.Now()
	insight, err := s.aiClient.GenerateInsight(ctx, buildInsightSummary(kind, rng, summary, previousTotal))
	if err != nil {
		s.metrics.RecordAIRequest("insight", "error", time.Since(started))
		slog.Warn("insight generation failed",
			"user_id", userID,
			"error", err)
		return insightUnavailableFallback
	}

	s.metrics.RecordAIRequest("insight", "success", time.Since(started))
	if insight == "" {
		return insightUnavailableFallback
	}
	return insight
}

func buildInsightSummary(kind period.Kind, rng period.Range, summary models.ExpenseSummary, previousTotal *decimal.Decimal) ai.InsightSummary {
	label := string(kind)
	if rng.Bounded() {
		label = fmt.Sprintf("%s to %s",
			rng.Start.Format(period.DateLayout),
			rng.End.Format(period.DateLayout))
	}

	data := ai.InsightSummary{
		PeriodLabel: label,
		Total:       summary.Total.StringFixed(2),
		Count:       summary.Count,
	}
	if previousTotal != nil {
		formatted := previousTotal.StringFixed(2)
		data.PreviousTotal = &formatted
	}
	for _, group := range summary.ByCategory {
		data.ByCategory = append(data.ByCategory, ai.CategoryLine{
			Name:  group.Name,
			Total: group.Total.StringFixed(2),
		})
	}
	return data
}
