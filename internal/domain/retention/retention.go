package retention

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ExitSurveyResponse is the local audit copy of an exit survey the user
// filled in before confirming deletion. The authoritative copy goes to
// the external survey service on a best-effort basis.
type ExitSurveyResponse struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID      `gorm:"type:uuid;index;not null;column:user_id" json:"user_id"`
	Concern     string         `gorm:"column:concern" json:"concern"`
	AnswersJSON datatypes.JSON `gorm:"column:answers_json" json:"answers_json"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (ExitSurveyResponse) TableName() string { return "exit_survey_response" }

// UserEvent is a lightweight analytics row (retention flow opened,
// deletion confirmed, onboarding completed, ...).
type UserEvent struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID      `gorm:"type:uuid;index;not null;column:user_id" json:"user_id"`
	Kind        string         `gorm:"not null;column:kind" json:"kind"`
	PayloadJSON datatypes.JSON `gorm:"column:payload_json" json:"payload_json"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (UserEvent) TableName() string { return "user_event" }
