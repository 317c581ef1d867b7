package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UncategorizedLabel is the breakdown label for expenses without a
// category. It is never persisted as a real category.
const UncategorizedLabel = "Uncategorized"

// Category is a per-user expense label. Names are unique within a
// user; the same name can exist independently for different users.
type Category struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID    string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_categories_user_name" json:"-"`
	Name      string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_categories_user_name" json:"name"`
	CreatedAt time.Time `gorm:"not null" json:"-"`
}

// BeforeCreate hook for Category
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return c.Validate()
}

// Validate validates the category fields
func (c *Category) Validate() error {
	if c.UserID == "" {
		return errors.New("user ID is required")
	}
	name := strings.TrimSpace(c.Name)
	if name == "" {
		return errors.New("category name is required")
	}
	if len(name) > 50 {
		return errors.New("category name too long")
	}
	return nil
}
