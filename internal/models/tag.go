package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tag is a free-form per-user label; an expense can carry many tags.
type Tag struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID    string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_tags_user_name" json:"-"`
	Name      string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_tags_user_name" json:"name"`
	CreatedAt time.Time `gorm:"not null" json:"-"`
}

// BeforeCreate hook for Tag
func (t *Tag) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return t.Validate()
}

// Validate validates the tag fields
func (t *Tag) Validate() error {
	if t.UserID == "" {
		return errors.New("user ID is required")
	}
	if strings.TrimSpace(t.Name) == "" {
		return errors.New("tag name is required")
	}
	return nil
}
