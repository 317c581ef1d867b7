package repositories

import (
	"errors"
	"fmt"

	"spendtrack/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrExpenseNotFound = errors.New("expense not found")
)

// expenseRepository implements ExpenseRepositoryInterface
type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository
func NewExpenseRepository(db *gorm.DB) ExpenseRepositoryInterface {
	return &expenseRepository{
		db: db,
	}
}

// Create creates a new expense
func (r *expenseRepository) Create(expense *models.Expense) error {
	if err := r.db.Create(expense).Error; err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}
	return nil
}

// GetByID retrieves an expense owned by the given user
func (r *expenseRepository) GetByID(userID string, id uuid.UUID) (*models.Expense, error) {
	var expense models.Expense
	if err := r.db.Preload("Category").Preload("Tags").
		Where("id = ? AND user_id = ?", id, userID).
		First(&expense).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExpenseNotFound
		}
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}
	return &expense, nil
}

// GetWithFilters retrieves expenses matching the filters, ordered by
// date descending then creation time descending.
func (r *expenseRepository) GetWithFilters(filters models.ExpenseFilters) ([]models.Expense, error) {
	var expenses []models.Expense

	query := r.db.Model(&models.Expense{}).
		Preload("Category").
		Preload("Tags").
		Where("expenses.user_id = ?", filters.UserID)

	if filters.StartDate != nil {
		query = query.Where("expenses.date >= ?", *filters.StartDate)
	}
	if filters.EndDate != nil {
		query = query.Where("expenses.date <= ?", *filters.EndDate)
	}
	if filters.CategoryID != nil {
		query = query.Where("expenses.category_id = ?", *filters.CategoryID)
	}
	if filters.TagID != nil {
		query = query.Joins("JOIN expense_tags ON expense_tags.expense_id = expenses.id").
			Where("expense_tags.tag_id = ?", *filters.TagID)
	}
	if filters.Search != "" {
		query = query.Where("expenses.description LIKE ?", "%"+filters.Search+"%")
	}

	if err := query.Order("expenses.date DESC").Order("expenses.created_at DESC").
		Find(&expenses).Error; err != nil {
		return nil, fmt.Errorf("failed to get filtered expenses: %w", err)
	}

	return expenses, nil
}

// Update persists changes to an existing expense
func (r *expenseRepository) Update(expense *models.Expense) error {
	result := r.db.Model(&models.Expense{}).
		Where("id = ? AND user_id = ?", expense.ID, expense.UserID).
		Updates(map[string]interface{}{
			"amount":      expense.Amount,
			"description": expense.Description,
			"date":        expense.Date,
			"category_id": expense.CategoryID,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update expense: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrExpenseNotFound
	}
	return nil
}

// SetCategory updates only the category reference of an expense. Used
// when an AI suggestion lands after the expense row was saved.
func (r *expenseRepository) SetCategory(expenseID uuid.UUID, categoryID *uuid.UUID) error {
	result := r.db.Model(&models.Expense{}).
		Where("id = ?", expenseID).
		Update("category_id", categoryID)

	if result.Error != nil {
		return fmt.Errorf("failed to set expense category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrExpenseNotFound
	}
	return nil
}

// ReplaceTags replaces the expense's tag associations
func (r *expenseRepository) ReplaceTags(expense *models.Expense, tags []models.Tag) error {
	if err := r.db.Model(expense).Association("Tags").Replace(tags); err != nil {
		return fmt.Errorf("failed to replace expense tags: %w", err)
	}
	return nil
}

// Delete removes an expense owned by the given user
func (r *expenseRepository) Delete(userID string, id uuid.UUID) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Expense{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete expense: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrExpenseNotFound
	}
	return nil
}
