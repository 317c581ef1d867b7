package database

import (
	"testing"
	"time"

	"spendtrack/internal/config"
	"spendtrack/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func CreateTestCategory(t *testing.T, db *DB, userID, name string) *models.Category {
	t.Helper()

	category := &models.Category{
		UserID: userID,
		Name:   name,
	}

	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}

	return category
}

func CreateTestTag(t *testing.T, db *DB, userID, name string) *models.Tag {
	t.Helper()

	tag := &models.Tag{
		UserID: userID,
		Name:   name,
	}

	if err := db.Create(tag).Error; err != nil {
		t.Fatalf("failed to create test tag: %v", err)
	}

	return tag
}

func CreateTestExpense(t *testing.T, db *DB, userID string, amount string, date time.Time, category *models.Category) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		UserID: userID,
		Amount: decimal.RequireFromString(amount),
		Date:   &date,
	}
	if category != nil {
		expense.CategoryID = &category.ID
	}

	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}

	return expense
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	tables := []string{
		"expense_tags",
		"expenses",
		"tags",
		"categories",
		"user_settings",
	}

	for _, table := range tables {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
