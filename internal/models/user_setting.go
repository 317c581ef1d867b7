package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const DefaultTheme = "dark"

// UserSetting holds per-user preferences. One row per user.
//
// The custom month-start-day preference that used to live here was
// removed; period anchoring is an explicit API parameter now.
type UserSetting struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"-"`
	UserID    string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"-"`
	Theme     string    `gorm:"type:varchar(20);not null;default:'dark'" json:"theme"`
	CreatedAt time.Time `gorm:"not null" json:"-"`
	UpdatedAt time.Time `gorm:"not null" json:"-"`
}

// BeforeCreate hook for UserSetting
func (s *UserSetting) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.Theme == "" {
		s.Theme = DefaultTheme
	}
	if s.UserID == "" {
		return errors.New("user ID is required")
	}
	return nil
}
