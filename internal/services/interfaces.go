package services

import (
	"context"
	"time"

	"spendtrack/internal/dto"
	"spendtrack/internal/models"

	"github.com/google/uuid"
)

// ExpenseServiceInterface defines expense CRUD and filtering operations
type ExpenseServiceInterface interface {
	CreateExpense(ctx context.Context, userID string, req *dto.CreateExpenseRequest) (*models.Expense, error)
	GetExpense(userID string, id uuid.UUID) (*models.Expense, error)
	ListExpenses(userID string, query *dto.ListExpensesQuery) ([]models.Expense, error)
	UpdateExpense(ctx context.Context, userID string, id uuid.UUID, req *dto.UpdateExpenseRequest) (*models.Expense, error)
	DeleteExpense(userID string, id uuid.UUID) error
}

// SummaryServiceInterface aggregates expenses over resolved periods
type SummaryServiceInterface interface {
	// Aggregate folds a slice of expenses into a summary: decimal
	// total, count, category breakdown sorted by total descending.
	Aggregate(records []models.Expense) models.ExpenseSummary

	// GetSummary resolves the requested period and aggregates the
	// user's expenses inside it.
	GetSummary(userID string, query *dto.PeriodQuery) (*dto.SummaryResponse, error)

	// GetInsights returns the summary plus headline cards and an AI
	// narrative. The numbers are always present; the narrative
	// degrades to fixed fallback text.
	GetInsights(ctx context.Context, userID string, query *dto.PeriodQuery) (*dto.InsightResponse, error)
}

// CategoryServiceInterface defines category operations
type CategoryServiceInterface interface {
	CreateCategory(userID string, name string) (*models.Category, error)
	GetCategories(userID string) ([]models.Category, error)
	DeleteCategory(userID string, id uuid.UUID) error
}

// TagServiceInterface defines tag operations
type TagServiceInterface interface {
	CreateTag(userID string, name string) (*models.Tag, error)
	GetTags(userID string) ([]models.Tag, error)
	DeleteTag(userID string, id uuid.UUID) error
}

// UserSettingServiceInterface defines user preference operations
type UserSettingServiceInterface interface {
	// GetSettings returns the user's settings, creating the default
	// row on first access.
	GetSettings(userID string) (*models.UserSetting, error)
	UpdateSettings(userID string, theme string) (*models.UserSetting, error)
}

// ExpenseGeneratorInterface produces realistic expense fixtures for
// development environments.
type ExpenseGeneratorInterface interface {
	GenerateExpenses(userID string, startDate, endDate time.Time, count int) ([]*models.Expense, error)
}

// MetricsRecorderInterface abstracts the metrics backend
type MetricsRecorderInterface interface {
	RecordExpenseCreated(categorization string)
	RecordSummaryComputed(periodKind string, duration time.Duration)
	RecordAIRequest(operation, outcome string, duration time.Duration)
}
