package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpenseValidate(t *testing.T) {
	tests := []struct {
		name    string
		expense Expense
		wantErr bool
	}{
		{
			name:    "valid",
			expense: Expense{UserID: "user-1", Amount: decimal.RequireFromString("10.00")},
			wantErr: false,
		},
		{
			name:    "missing user",
			expense: Expense{Amount: decimal.RequireFromString("10.00")},
			wantErr: true,
		},
		{
			name:    "zero amount",
			expense: Expense{UserID: "user-1", Amount: decimal.Zero},
			wantErr: true,
		},
		{
			name:    "negative amount",
			expense: Expense{UserID: "user-1", Amount: decimal.RequireFromString("-1.00")},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.expense.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestExpenseCategoryName(t *testing.T) {
	expense := Expense{}
	assert.Empty(t, expense.CategoryName())

	expense.Category = &Category{Name: "Food"}
	assert.Equal(t, "Food", expense.CategoryName())
}

func TestCategoryValidate(t *testing.T) {
	valid := Category{UserID: "user-1", Name: "Food"}
	assert.NoError(t, valid.Validate())

	assert.Error(t, (&Category{Name: "Food"}).Validate())
	assert.Error(t, (&Category{UserID: "user-1", Name: "   "}).Validate())
}

func TestExpenseSummaryTopCategory(t *testing.T) {
	summary := ExpenseSummary{}
	assert.Nil(t, summary.TopCategory())

	id := uuid.New()
	summary.ByCategory = []CategoryTotal{
		{ID: &id, Name: "Rent", Total: decimal.RequireFromString("900.00")},
		{Name: UncategorizedLabel, Total: decimal.RequireFromString("10.00")},
	}
	top := summary.TopCategory()
	require.NotNil(t, top)
	assert.Equal(t, "Rent", *top)
}
