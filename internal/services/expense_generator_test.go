package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateExpenses(t *testing.T) {
	expenseRepo := newStubExpenseRepo()
	categoryRepo := newStubCategoryRepo()
	generator := NewExpenseGenerator(expenseRepo, categoryRepo)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	expenses, err := generator.GenerateExpenses("dev-user", start, end, 50)
	require.NoError(t, err)
	require.Len(t, expenses, 50)

	for _, expense := range expenses {
		assert.Equal(t, "dev-user", expense.UserID)
		assert.True(t, expense.Amount.GreaterThan(decimal.Zero))
		require.NotNil(t, expense.Date)
		assert.False(t, expense.Date.Before(start))
		assert.False(t, expense.Date.After(end))
		assert.NotNil(t, expense.CategoryID)
		require.NotNil(t, expense.Description)
		assert.NotEmpty(t, *expense.Description)
	}

	categories, err := categoryRepo.GetByUserID("dev-user")
	require.NoError(t, err)
	assert.NotEmpty(t, categories)
}

func TestGenerateExpensesInvalidRange(t *testing.T) {
	generator := NewExpenseGenerator(newStubExpenseRepo(), newStubCategoryRepo())

	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	_, err := generator.GenerateExpenses("dev-user", date, date, 10)
	assert.ErrorIs(t, err, ErrInvalidGenerateRange)
}
