package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrInvalidAmount = errors.New("expense amount must be positive")
)

// Expense represents a single spend record owned by a user. UserID is
// the opaque identifier minted by the external identity provider, so
// it is stored as an indexed string rather than a foreign key.
type Expense struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID      string          `gorm:"type:varchar(255);not null;index" json:"-"`
	Amount      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	Description *string         `gorm:"type:text" json:"description"`
	Date        *time.Time      `gorm:"type:date;index" json:"date"`
	CategoryID  *uuid.UUID      `gorm:"type:uuid;index" json:"category"`
	Category    *Category       `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"-"`
	Tags        []Tag           `gorm:"many2many:expense_tags" json:"-"`
	CreatedAt   time.Time       `gorm:"not null;index" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"-"`
}

// BeforeCreate hook for Expense
func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return e.Validate()
}

// BeforeUpdate hook for Expense
func (e *Expense) BeforeUpdate(tx *gorm.DB) error {
	return e.Validate()
}

// Validate validates the expense fields
func (e *Expense) Validate() error {
	if e.UserID == "" {
		return errors.New("user ID is required")
	}
	if e.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	return nil
}

// CategoryName returns the loaded category's name, or empty if the
// expense is uncategorized.
func (e *Expense) CategoryName() string {
	if e.Category == nil {
		return ""
	}
	return e.Category.Name
}
