package habit

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Habit struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null;column:user_id" json:"user_id"`

	// TemplateID is the catalog template this habit was created from;
	// empty for habits the user built from scratch.
	TemplateID string `gorm:"column:template_id" json:"template_id"`

	Title     string `gorm:"not null;column:title" json:"title"`
	Category  string `gorm:"column:category" json:"category"`
	Cadence   string `gorm:"column:cadence" json:"cadence"`
	ProofMode string `gorm:"column:proof_mode" json:"proof_mode"`
	Archived  bool   `gorm:"not null;default:false;column:archived" json:"archived"`

	CreatedAt time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Habit) TableName() string { return "habit" }

// CheckIn is one completed day for a habit. Day is stored at date
// granularity in UTC; at most one row per habit per day.
type CheckIn struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	HabitID uuid.UUID `gorm:"type:uuid;index:idx_checkin_habit_day,unique;not null;column:habit_id" json:"habit_id"`
	UserID  uuid.UUID `gorm:"type:uuid;index;not null;column:user_id" json:"user_id"`
	Day     time.Time `gorm:"type:date;index:idx_checkin_habit_day,unique;not null;column:day" json:"day"`
	Note    string    `gorm:"column:note" json:"note"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (CheckIn) TableName() string { return "check_in" }

// StreakStats is a computed summary, never persisted to postgres (the
// redis cache holds a short-lived JSON copy).
type StreakStats struct {
	CurrentStreak int `json:"current_streak"`
	LongestStreak int `json:"longest_streak"`
	TotalCheckIns int `json:"total_check_ins"`
}
