package services

import (
	"errors"
	"math/rand"
	"time"

	"spendtrack/internal/models"
	"spendtrack/internal/repositories"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

var ErrInvalidGenerateRange = errors.New("generation range must span at least one day")

// merchantProfile drives plausible fixture data: a merchant name pool
// per category plus an amount band.
type merchantProfile struct {
	category  string
	merchants []string
	minAmount float64
	maxAmount float64
}

type expenseGenerator struct {
	expenseRepo  repositories.ExpenseRepositoryInterface
	categoryRepo repositories.CategoryRepositoryInterface
	profiles     []merchantProfile
	rng          *rand.Rand
}

// NewExpenseGenerator creates a generator that seeds development
// environments with realistic expenses.
func NewExpenseGenerator(
	expenseRepo repositories.ExpenseRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
) ExpenseGeneratorInterface {
	return &expenseGenerator{
		expenseRepo:  expenseRepo,
		categoryRepo: categoryRepo,
		profiles:     defaultMerchantProfiles(),
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func defaultMerchantProfiles() []merchantProfile {
	return []merchantProfile{
		{
			category:  "Groceries",
			merchants: []string{"Aldi", "Whole Foods Market", "Trader Joe's", "Kroger", "Safeway"},
			minAmount: 8, maxAmount: 160,
		},
		{
			category:  "Dining Out",
			merchants: []string{"Starbucks", "Chipotle", "Panera Bread", "Olive Garden", "Five Guys"},
			minAmount: 4, maxAmount: 85,
		},
		{
			category:  "Transport",
			merchants: []string{"Uber", "Lyft", "Shell", "Metro Transit", "Amtrak"},
			minAmount: 2, maxAmount: 120,
		},
		{
			category:  "Shopping",
			merchants: []string{"Amazon.com", "Target", "Best Buy", "Home Depot"},
			minAmount: 10, maxAmount: 400,
		},
		{
			category:  "Utilities",
			merchants: []string{"Electric Co", "Water Works", "Comcast", "Verizon"},
			minAmount: 30, maxAmount: 250,
		},
		{
			category:  "Entertainment",
			merchants: []string{"Netflix", "Spotify", "AMC Theatres", "Steam"},
			minAmount: 5, maxAmount: 60,
		},
	}
}

// GenerateExpenses seeds count expenses for the user spread uniformly
// across the date range, creating the profile categories on demand.
func (g *expenseGenerator) GenerateExpenses(userID string, startDate, endDate time.Time, count int) ([]*models.Expense, error) {
	spanDays := int(endDate.Sub(startDate).Hours() / 24)
	if spanDays < 1 {
		return nil, ErrInvalidGenerateRange
	}

	categories := make(map[string]*models.Category, len(g.profiles))
	for _, profile := range g.profiles {
		category, err := g.categoryRepo.GetOrCreate(userID, profile.category)
		if err != nil {
			return nil, err
		}
		categories[profile.category] = category
	}

	expenses := make([]*models.Expense, 0, count)
	for i := 0; i < count; i++ {
		profile := g.profiles[g.rng.Intn(len(g.profiles))]
		merchant := profile.merchants[g.rng.Intn(len(profile.merchants))]
		date := startDate.AddDate(0, 0, g.rng.Intn(spanDays))
		amount := decimal.NewFromFloat(gofakeit.Price(profile.minAmount, profile.maxAmount)).Round(2)
		description := merchant + " - " + gofakeit.ProductName()

		expense := &models.Expense{
			UserID:      userID,
			Amount:      amount,
			Description: &description,
			Date:        &date,
			CategoryID:  &categories[profile.category].ID,
		}
		if err := g.expenseRepo.Create(expense); err != nil {
			return nil, err
		}
		expenses = append(expenses, expense)
	}

	return expenses, nil
}
