package dto

import (
	"time"

	"spendtrack/internal/models"

	"github.com/google/uuid"
)

// CreateExpenseRequest is the payload for creating an expense. Amount
// travels as a string to avoid float rounding on the wire. Exactly one
// of CategoryID / CategoryName may be set; CategoryName triggers a
// get-or-create on the caller's categories.
type CreateExpenseRequest struct {
	Amount       string      `json:"amount" validate:"required,decimal_amount"`
	Description  *string     `json:"description,omitempty" validate:"omitempty,max=500"`
	Date         *string     `json:"date,omitempty" validate:"omitempty,iso_date"`
	CategoryID   *uuid.UUID  `json:"category_id,omitempty"`
	CategoryName *string     `json:"category_name,omitempty" validate:"omitempty,min=1,max=100"`
	TagIDs       []uuid.UUID `json:"tag_ids,omitempty"`
}

// UpdateExpenseRequest is the payload for updating an expense. Nil
// fields are left untouched.
type UpdateExpenseRequest struct {
	Amount       *string      `json:"amount,omitempty" validate:"omitempty,decimal_amount"`
	Description  *string      `json:"description,omitempty" validate:"omitempty,max=500"`
	Date         *string      `json:"date,omitempty" validate:"omitempty,iso_date"`
	CategoryID   *uuid.UUID   `json:"category_id,omitempty"`
	CategoryName *string      `json:"category_name,omitempty" validate:"omitempty,min=1,max=100"`
	TagIDs       *[]uuid.UUID `json:"tag_ids,omitempty"`
}

// ListExpensesQuery carries the list endpoint's filter query params
type ListExpensesQuery struct {
	Start    string `query:"start" validate:"omitempty,iso_date"`
	End      string `query:"end" validate:"omitempty,iso_date"`
	Category string `query:"category" validate:"omitempty,uuid"`
	Tag      string `query:"tag" validate:"omitempty,uuid"`
	Search   string `query:"search" validate:"omitempty,max=100"`
}

// ExpenseResponse is the wire representation of an expense
type ExpenseResponse struct {
	ID          uuid.UUID         `json:"id"`
	Amount      string            `json:"amount"`
	Description *string           `json:"description"`
	Date        *string           `json:"date"`
	Category    *CategoryResponse `json:"category"`
	Tags        []TagResponse     `json:"tags"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// ToExpenseResponse maps a model to its wire shape
func ToExpenseResponse(expense *models.Expense) ExpenseResponse {
	resp := ExpenseResponse{
		ID:          expense.ID,
		Amount:      expense.Amount.StringFixed(2),
		Description: expense.Description,
		Tags:        []TagResponse{},
		CreatedAt:   expense.CreatedAt,
		UpdatedAt:   expense.UpdatedAt,
	}

	if expense.Date != nil {
		date := expense.Date.Format("2006-01-02")
		resp.Date = &date
	}
	if expense.Category != nil {
		category := ToCategoryResponse(expense.Category)
		resp.Category = &category
	}
	for i := range expense.Tags {
		resp.Tags = append(resp.Tags, ToTagResponse(&expense.Tags[i]))
	}

	return resp
}

// ToExpenseListResponse maps a slice of models to wire shapes
func ToExpenseListResponse(expenses []models.Expense) []ExpenseResponse {
	responses := make([]ExpenseResponse, 0, len(expenses))
	for i := range expenses {
		responses = append(responses, ToExpenseResponse(&expenses[i]))
	}
	return responses
}
