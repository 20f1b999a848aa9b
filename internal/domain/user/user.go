package user

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email       string    `gorm:"uniqueIndex;not null;column:email" json:"email"`
	Password    string    `gorm:"not null;column:password" json:"-"`
	DisplayName string    `gorm:"column:display_name" json:"display_name"`

	// Archetype is the user-selected identity label from onboarding; it
	// drives tone selection. Empty until onboarding completes.
	Archetype string `gorm:"column:archetype" json:"archetype"`

	// ProfileKey is the behavioral profile assigned by the classifier.
	ProfileKey string `gorm:"column:profile_key" json:"profile_key"`

	AvatarColor    string `gorm:"column:avatar_color" json:"avatar_color"`
	PreferredTheme string `gorm:"column:preferred_theme" json:"preferred_theme"`

	CreatedAt time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (User) TableName() string { return "user" }
