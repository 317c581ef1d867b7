package handlers

import (
	"context"
	"net/http/httptest"
	"strings"

	"spendtrack/internal/dto"
	"spendtrack/internal/models"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Scripted service stubs for handler tests.

type stubExpenseService struct {
	expense  *models.Expense
	expenses []models.Expense
	err      error

	lastUserID string
	lastCreate *dto.CreateExpenseRequest
	lastUpdate *dto.UpdateExpenseRequest
	lastQuery  *dto.ListExpensesQuery
}

func (s *stubExpenseService) CreateExpense(ctx context.Context, userID string, req *dto.CreateExpenseRequest) (*models.Expense, error) {
	s.lastUserID = userID
	s.lastCreate = req
	return s.expense, s.err
}

func (s *stubExpenseService) GetExpense(userID string, id uuid.UUID) (*models.Expense, error) {
	s.lastUserID = userID
	return s.expense, s.err
}

func (s *stubExpenseService) ListExpenses(userID string, query *dto.ListExpensesQuery) ([]models.Expense, error) {
	s.lastUserID = userID
	s.lastQuery = query
	return s.expenses, s.err
}

func (s *stubExpenseService) UpdateExpense(ctx context.Context, userID string, id uuid.UUID, req *dto.UpdateExpenseRequest) (*models.Expense, error) {
	s.lastUserID = userID
	s.lastUpdate = req
	return s.expense, s.err
}

func (s *stubExpenseService) DeleteExpense(userID string, id uuid.UUID) error {
	s.lastUserID = userID
	return s.err
}

type stubSummaryService struct {
	summary  *dto.SummaryResponse
	insights *dto.InsightResponse
	err      error

	lastUserID string
	lastQuery  *dto.PeriodQuery
}

func (s *stubSummaryService) Aggregate(records []models.Expense) models.ExpenseSummary {
	return models.ExpenseSummary{}
}

func (s *stubSummaryService) GetSummary(userID string, query *dto.PeriodQuery) (*dto.SummaryResponse, error) {
	s.lastUserID = userID
	s.lastQuery = query
	return s.summary, s.err
}

func (s *stubSummaryService) GetInsights(ctx context.Context, userID string, query *dto.PeriodQuery) (*dto.InsightResponse, error) {
	s.lastUserID = userID
	s.lastQuery = query
	return s.insights, s.err
}

// newTestContext builds an echo context with the project validator and
// an authenticated user when userID is non-empty.
func newTestContext(method, target, body, userID string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != "" {
		c.Set("user_id", userID)
	}
	return c, rec
}
