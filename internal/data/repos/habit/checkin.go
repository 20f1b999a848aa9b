package habit

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	habittypes "github.com/habitloop/habitloop-backend/internal/domain/habit"
	"github.com/habitloop/habitloop-backend/internal/pkg/logger"
)

type CheckInRepo interface {
	// Create inserts a check-in; a second check-in for the same habit and
	// day is a no-op and is not an error.
	Create(ctx context.Context, tx *gorm.DB, checkIn *habittypes.CheckIn) error
	ListDaysByHabitID(ctx context.Context, tx *gorm.DB, habitID uuid.UUID) ([]time.Time, error)
	CountByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error)
}

type checkInRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCheckInRepo(db *gorm.DB, baseLog *logger.Logger) CheckInRepo {
	return &checkInRepo{db: db, log: baseLog.With("repo", "CheckInRepo")}
}

func (cr *checkInRepo) Create(ctx context.Context, tx *gorm.DB, checkIn *habittypes.CheckIn) error {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	return transaction.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(checkIn).Error
}

func (cr *checkInRepo) ListDaysByHabitID(ctx context.Context, tx *gorm.DB, habitID uuid.UUID) ([]time.Time, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	var days []time.Time
	if err := transaction.WithContext(ctx).
		Model(&habittypes.CheckIn{}).
		Where("habit_id = ?", habitID).
		Order("day DESC").
		Pluck("day", &days).Error; err != nil {
		return nil, err
	}
	return days, nil
}

func (cr *checkInRepo) CountByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	var count int64
	if err := transaction.WithContext(ctx).
		Model(&habittypes.CheckIn{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
