package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
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
	ErrExpenseNotFound  = errors.New("expense not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrInvalidAmount    = errors.New("amount must be a positive decimal")
)

type expenseService struct {
	expenseRepo  repositories.ExpenseRepositoryInterface
	categoryRepo repositories.CategoryRepositoryInterface
	tagRepo      repositories.TagRepositoryInterface
	aiClient     ai.ClientInterface
	metrics      MetricsRecorderInterface
}

func NewExpenseService(
	expenseRepo repositories.ExpenseRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	tagRepo repositories.TagRepositoryInterface,
	aiClient ai.ClientInterface,
	metrics MetricsRecorderInterface,
) ExpenseServiceInterface {
	return &expenseService{
		expenseRepo:  expenseRepo,
		categoryRepo: categoryRepo,
		tagRepo:      tagRepo,
		aiClient:     aiClient,
		metrics:      metrics,
	}
}

func (s *expenseService) CreateExpense(ctx context.Context, userID string, req *dto.CreateExpenseRequest) (*models.Expense, error) {
	amount, err := parseAmount(req.Amount)
	if err != nil {
		return nil, err
	}

	expense := &models.Expense{
		UserID:      userID,
		Amount:      amount,
		Description: req.Description,
	}

	if req.Date != nil {
		date, err := time.Parse(period.DateLayout, *req.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidDate, *req.Date)
		}
		expense.Date = &date
	}

	categorization, err := s.resolveCategory(ctx, userID, req.CategoryID, req.CategoryName, req.Description, &expense.CategoryID)
	if err != nil {
		return nil, err
	}

	if err := s.expenseRepo.Create(expense); err != nil {
		slog.Error("failed to create expense", "user_id", userID, "error", err)
		return nil, err
	}

	if len(req.TagIDs) > 0 {
		tags, err := s.tagRepo.GetByIDs(userID, req.TagIDs)
		if err != nil {
			return nil, err
		}
		if err := s.expenseRepo.ReplaceTags(expense, tags); err != nil {
			return nil, err
		}
	}

	s.metrics.RecordExpenseCreated(categorization)
	slog.Info("expense created",
		"user_id", userID,
		"expense_id", expense.ID,
		"amount", expense.Amount.String(),
		"categorization", categorization)

	return s.expenseRepo.GetByID(userID, expense.ID)
}

func (s *expenseService) GetExpense(userID string, id uuid.UUID) (*models.Expense, error) {
	expense, err := s.expenseRepo.GetByID(userID, id)
	if err != nil {
		if errors.Is(err, repositories.ErrExpenseNotFound) {
			return nil, ErrExpenseNotFound
		}
		return nil, err
	}
	return expense, nil
}

func (s *expenseService) ListExpenses(userID string, query *dto.ListExpensesQuery) ([]models.Expense, error) {
	filters := models.ExpenseFilters{
		UserID: userID,
		Search: query.Search,
	}

	if query.Start != "" {
		start, err := time.Parse(period.DateLayout, query.Start)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidDate, query.Start)
		}
		filters.StartDate = &start
	}
	if query.End != "" {
		end, err := time.Parse(period.DateLayout, query.End)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidDate, query.End)
		}
		filters.EndDate = &end
	}
	if query.Category != "" {
		categoryID, err := uuid.Parse(query.Category)
		if err != nil {
			return nil, fmt.Errorf("invalid category id: %q", query.Category)
		}
		filters.CategoryID = &categoryID
	}
	if query.Tag != "" {
		tagID, err := uuid.Parse(query.Tag)
		if err != nil {
			return nil, fmt.Errorf("invalid tag id: %q", query.Tag)
		}
		filters.TagID = &tagID
	}

	return s.expenseRepo.GetWithFilters(filters)
}

func (s *expenseService) UpdateExpense(ctx context.Context, userID string, id uuid.UUID, req *dto.UpdateExpenseRequest) (*models.Expense, error) {
	expense, err := s.GetExpense(userID, id)
	if err != nil {
		return nil, err
	}

	if req.Amount != nil {
		amount, err := parseAmount(*req.Amount)
		if err != nil {
			return nil, err
		}
		expense.Amount = amount
	}
	if req.Description != nil {
		expense.Description = req.Description
	}
	if req.Date != nil {
		date, err := time.Parse(period.DateLayout, *req.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidDate, *req.Date)
		}
		expense.Date = &date
	}

	if req.CategoryID != nil || req.CategoryName != nil {
		if _, err := s.resolveCategory(ctx, userID, req.CategoryID, req.CategoryName, expense.Description, &expense.CategoryID); err != nil {
			return nil, err
		}
	}

	if err := s.expenseRepo.Update(expense); err != nil {
		if errors.Is(err, repositories.ErrExpenseNotFound) {
			return nil, ErrExpenseNotFound
		}
		return nil, err
	}

	// An expense left uncategorized after the update still gets a
	// best-effort AI suggestion when a description is available.
	if expense.CategoryID == nil && expense.Description != nil && *expense.Description != "" {
		if suggestedID := s.suggestCategoryID(ctx, userID, *expense.Description); suggestedID != nil {
			if err := s.expenseRepo.SetCategory(expense.ID, suggestedID); err != nil {
				slog.Warn("failed to apply suggested category",
					"user_id", userID,
					"expense_id", expense.ID,
					"error", err)
			}
		}
	}

	if req.TagIDs != nil {
		tags, err := s.tagRepo.GetByIDs(userID, *req.TagIDs)
		if err != nil {
			return nil, err
		}
		if err := s.expenseRepo.ReplaceTags(expense, tags); err != nil {
			return nil, err
		}
	}

	return s.expenseRepo.GetByID(userID, id)
}

func (s *expenseService) DeleteExpense(userID string, id uuid.UUID) error {
	if err := s.expenseRepo.Delete(userID, id); err != nil {
		if errors.Is(err, repositories.ErrExpenseNotFound) {
			return ErrExpenseNotFound
		}
		return err
	}

	slog.Info("expense deleted", "user_id", userID, "expense_id", id)
	return nil
}

// resolveCategory applies the categorization rules in precedence
// order: explicit category ID, manual name with get-or-create, then a
// best-effort AI suggestion when a description is available. AI
// failures are logged and swallowed; the expense stays uncategorized.
// Returns a label describing which path was taken.
func (s *expenseService) resolveCategory(ctx context.Context, userID string, categoryID *uuid.UUID, categoryName, description *string, target **uuid.UUID) (string, error) {
	if categoryID != nil {
		category, err := s.categoryRepo.GetByID(userID, *categoryID)
		if err != nil {
			if errors.Is(err, repositories.ErrCategoryNotFound) {
				return "", ErrCategoryNotFound
			}
			return "", err
		}
		*target = &category.ID
		return "explicit", nil
	}

	if categoryName != nil && *categoryName != "" {
		category, err := s.categoryRepo.GetOrCreate(userID, *categoryName)
		if err != nil {
			return "", err
		}
		*target = &category.ID
		return "manual_name", nil
	}

	if description == nil || *description == "" {
		return "none", nil
	}

	if suggestedID := s.suggestCategoryID(ctx, userID, *description); suggestedID != nil {
		*target = suggestedID
		return "ai_suggested", nil
	}
	return "none", nil
}

// suggestCategoryID asks the AI collaborator for a category matching
// the description and resolves it with get-or-create. Best effort:
// every failure is logged and reported as nil.
func (s *expenseService) suggestCategoryID(ctx context.Context, userID, description string) *uuid.UUID {
	if s.aiClient == nil || !s.aiClient.Enabled() {
		return nil
	}

	existing, err := s.categoryRepo.GetByUserID(userID)
	if err != nil {
		slog.Warn("skipping ai categorization, failed to list categories",
			"user_id", userID,
			"error", err)
		return nil
	}
	names := make([]string, 0, len(existing))
	for _, c := range existing {
		names = append(names, c.Name)
	}

	started := time.Now()
	suggested, err := s.aiClient.SuggestCategory(ctx, description, names)
	if err != nil {
		s.metrics.RecordAIRequest("categorize", "error", time.Since(started))
		slog.Warn("ai categorization failed",
			"user_id", userID,
			"error", err)
		return nil
	}
	s.metrics.RecordAIRequest("categorize", "success", time.Since(started))

	category, err := s.categoryRepo.GetOrCreate(userID, suggested)
	if err != nil {
		slog.Warn("failed to persist suggested category",
			"user_id", userID,
			"category", suggested,
			"error", err)
		return nil
	}

	return &category.ID
}

func parseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrInvalidAmount, amount.String())
	}
	return amount, nil
}
