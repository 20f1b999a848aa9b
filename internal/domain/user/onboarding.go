package user

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// OnboardingRecord keeps the raw answers a user submitted during
// onboarding together with the profile the classifier assigned. One row
// per user; re-running onboarding upserts.
type OnboardingRecord struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID      `gorm:"type:uuid;uniqueIndex;not null;column:user_id" json:"user_id"`
	AnswersJSON datatypes.JSON `gorm:"column:answers_json" json:"answers_json"`
	ProfileKey  string         `gorm:"not null;column:profile_key" json:"profile_key"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (OnboardingRecord) TableName() string { return "onboarding_record" }
