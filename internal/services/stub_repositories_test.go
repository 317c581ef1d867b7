package services

import (
	"context"
	"errors"
	"sort"
	"strings"

	"spendtrack/internal/ai"
	"spendtrack/internal/models"
	"spendtrack/internal/repositories"

	"github.com/google/uuid"
)

// In-memory repository stubs for service tests.

type stubExpenseRepo struct {
	expenses map[uuid.UUID]*models.Expense
	tags     map[uuid.UUID][]models.Tag
	failWith error
}

func newStubExpenseRepo() *stubExpenseRepo {
	return &stubExpenseRepo{
		expenses: make(map[uuid.UUID]*models.Expense),
		tags:     make(map[uuid.UUID][]models.Tag),
	}
}

func (r *stubExpenseRepo) Create(expense *models.Expense) error {
	if r.failWith != nil {
		return r.failWith
	}
	if expense.ID == uuid.Nil {
		expense.ID = uuid.New()
	}
	clone := *expense
	r.expenses[expense.ID] = &clone
	return nil
}

func (r *stubExpenseRepo) GetByID(userID string, id uuid.UUID) (*models.Expense, error) {
	expense, ok := r.expenses[id]
	if !ok || expense.UserID != userID {
		return nil, repositories.ErrExpenseNotFound
	}
	clone := *expense
	clone.Tags = r.tags[id]
	return &clone, nil
}

func (r *stubExpenseRepo) GetWithFilters(filters models.ExpenseFilters) ([]models.Expense, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	var result []models.Expense
	for _, expense := range r.expenses {
		if expense.UserID != filters.UserID {
			continue
		}
		if filters.StartDate != nil && (expense.Date == nil || expense.Date.Before(*filters.StartDate)) {
			continue
		}
		if filters.EndDate != nil && (expense.Date == nil || expense.Date.After(*filters.EndDate)) {
			continue
		}
		if filters.CategoryID != nil && (expense.CategoryID == nil || *expense.CategoryID != *filters.CategoryID) {
			continue
		}
		if filters.Search != "" && (expense.Description == nil || !strings.Contains(*expense.Description, filters.Search)) {
			continue
		}
		result = append(result, *expense)
	}
	sort.Slice(result, func(i, j int) bool {
		di, dj := result[i].Date, result[j].Date
		if di == nil || dj == nil {
			return dj == nil
		}
		return di.After(*dj)
	})
	return result, nil
}

func (r *stubExpenseRepo) Update(expense *models.Expense) error {
	existing, ok := r.expenses[expense.ID]
	if !ok || existing.UserID != expense.UserID {
		return repositories.ErrExpenseNotFound
	}
	clone := *expense
	r.expenses[expense.ID] = &clone
	return nil
}

func (r *stubExpenseRepo) SetCategory(expenseID uuid.UUID, categoryID *uuid.UUID) error {
	expense, ok := r.expenses[expenseID]
	if !ok {
		return repositories.ErrExpenseNotFound
	}
	expense.CategoryID = categoryID
	return nil
}

func (r *stubExpenseRepo) ReplaceTags(expense *models.Expense, tags []models.Tag) error {
	r.tags[expense.ID] = tags
	return nil
}

func (r *stubExpenseRepo) Delete(userID string, id uuid.UUID) error {
	expense, ok := r.expenses[id]
	if !ok || expense.UserID != userID {
		return repositories.ErrExpenseNotFound
	}
	delete(r.expenses, id)
	return nil
}

type stubCategoryRepo struct {
	categories map[uuid.UUID]*models.Category
	failWith   error
}

func newStubCategoryRepo() *stubCategoryRepo {
	return &stubCategoryRepo{categories: make(map[uuid.UUID]*models.Category)}
}

func (r *stubCategoryRepo) Create(category *models.Category) error {
	if r.failWith != nil {
		return r.failWith
	}
	for _, existing := range r.categories {
		if existing.UserID == category.UserID && existing.Name == category.Name {
			return repositories.ErrCategoryAlreadyExists
		}
	}
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	clone := *category
	r.categories[category.ID] = &clone
	return nil
}

func (r *stubCategoryRepo) GetByID(userID string, id uuid.UUID) (*models.Category, error) {
	category, ok := r.categories[id]
	if !ok || category.UserID != userID {
		return nil, repositories.ErrCategoryNotFound
	}
	clone := *category
	return &clone, nil
}

func (r *stubCategoryRepo) GetByUserID(userID string) ([]models.Category, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	var result []models.Category
	for _, category := range r.categories {
		if category.UserID == userID {
			result = append(result, *category)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (r *stubCategoryRepo) GetOrCreate(userID string, name string) (*models.Category, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	for _, category := range r.categories {
		if category.UserID == userID && category.Name == name {
			clone := *category
			return &clone, nil
		}
	}
	category := &models.Category{ID: uuid.New(), UserID: userID, Name: name}
	r.categories[category.ID] = category
	clone := *category
	return &clone, nil
}

func (r *stubCategoryRepo) Delete(userID string, id uuid.UUID) error {
	category, ok := r.categories[id]
	if !ok || category.UserID != userID {
		return repositories.ErrCategoryNotFound
	}
	delete(r.categories, id)
	return nil
}

type stubTagRepo struct {
	tags map[uuid.UUID]*models.Tag
}

func newStubTagRepo() *stubTagRepo {
	return &stubTagRepo{tags: make(map[uuid.UUID]*models.Tag)}
}

func (r *stubTagRepo) Create(tag *models.Tag) error {
	for _, existing := range r.tags {
		if existing.UserID == tag.UserID && existing.Name == tag.Name {
			return repositories.ErrTagAlreadyExists
		}
	}
	if tag.ID == uuid.Nil {
		tag.ID = uuid.New()
	}
	clone := *tag
	r.tags[tag.ID] = &clone
	return nil
}

func (r *stubTagRepo) GetByID(userID string, id uuid.UUID) (*models.Tag, error) {
	tag, ok := r.tags[id]
	if !ok || tag.UserID != userID {
		return nil, repositories.ErrTagNotFound
	}
	clone := *tag
	return &clone, nil
}

func (r *stubTagRepo) GetByIDs(userID string, ids []uuid.UUID) ([]models.Tag, error) {
	var result []models.Tag
	for _, id := range ids {
		if tag, ok := r.tags[id]; ok && tag.UserID == userID {
			result = append(result, *tag)
		}
	}
	return result, nil
}

func (r *stubTagRepo) GetByUserID(userID string) ([]models.Tag, error) {
	var result []models.Tag
	for _, tag := range r.tags {
		if tag.UserID == userID {
			result = append(result, *tag)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (r *stubTagRepo) Delete(userID string, id uuid.UUID) error {
	tag, ok := r.tags[id]
	if !ok || tag.UserID != userID {
		return repositories.ErrTagNotFound
	}
	delete(r.tags, id)
	return nil
}

type stubSettingRepo struct {
	settings map[string]*models.UserSetting
}

func newStubSettingRepo() *stubSettingRepo {
	return &stubSettingRepo{settings: make(map[string]*models.UserSetting)}
}

func (r *stubSettingRepo) GetByUserID(userID string) (*models.UserSetting, error) {
	setting, ok := r.settings[userID]
	if !ok {
		return nil, repositories.ErrUserSettingNotFound
	}
	clone := *setting
	return &clone, nil
}

func (r *stubSettingRepo) Create(setting *models.UserSetting) error {
	if setting.ID == uuid.Nil {
		setting.ID = uuid.New()
	}
	if setting.Theme == "" {
		setting.Theme = models.DefaultTheme
	}
	clone := *setting
	r.settings[setting.UserID] = &clone
	return nil
}

func (r *stubSettingRepo) Update(setting *models.UserSetting) error {
	if _, ok := r.settings[setting.UserID]; !ok {
		return repositories.ErrUserSettingNotFound
	}
	clone := *setting
	r.settings[setting.UserID] = &clone
	return nil
}

// stubAIClient scripts the AI collaborator's behavior per test.
type stubAIClient struct {
	enabled        bool
	category       string
	categoryErr    error
	insight        string
	insightErr     error
	suggestCalls   int
	insightCalls   int
	lastDesc       string
	lastCategories []string
	lastInsight    ai.InsightSummary
}

func (c *stubAIClient) Enabled() bool { return c.enabled }

func (c *stubAIClient) SuggestCategory(ctx context.Context, description string, existing []string) (string, error) {
	c.suggestCalls++
	c.lastDesc = description
	c.lastCategories = existing
	if c.categoryErr != nil {
		return "", c.categoryErr
	}
	return c.category, nil
}

func (c *stubAIClient) GenerateInsight(ctx context.Context, summary ai.InsightSummary) (string, error) {
	c.insightCalls++
	c.lastInsight = summary
	if c.insightErr != nil {
		return "", c.insightErr
	}
	return c.insight, nil
}

var errStubFailure = errors.New("stub failure")
