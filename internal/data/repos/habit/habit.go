package habit

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	habittypes "github.com/habitloop/habitloop-backend/internal/domain/habit"
	"github.com/habitloop/habitloop-backend/internal/pkg/logger"
)

type HabitRepo interface {
	Create(ctx context.Context, tx *gorm.DB, habits []*habittypes.Habit) ([]*habittypes.Habit, error)
	GetByID(ctx context.Context, tx *gorm.DB, habitID uuid.UUID) (*habittypes.Habit, error)
	ListByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID, includeArchived bool) ([]*habittypes.Habit, error)
	SetArchived(ctx context.Context, tx *gorm.DB, habitID uuid.UUID, archived bool) error
}

type habitRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewHabitRepo(db *gorm.DB, baseLog *logger.Logger) HabitRepo {
	return &habitRepo{db: db, log: baseLog.With("repo", "HabitRepo")}
}

func (hr *habitRepo) Create(ctx context.Context, tx *gorm.DB, habits []*habittypes.Habit) ([]*habittypes.Habit, error) {
	transaction := tx
	if transaction == nil {
		transaction = hr.db
	}
	if len(habits) == 0 {
		return []*habittypes.Habit{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&habits).Error; err != nil {
		return nil, err
	}
	return habits, nil
}

func (hr *habitRepo) GetByID(ctx context.Context, tx *gorm.DB, habitID uuid.UUID) (*habittypes.Habit, error) {
	transaction := tx
	if transaction == nil {
		transaction = hr.db
	}
	var h habittypes.Habit
	err := transaction.WithContext(ctx).
		Where("id = ?", habitID).
		First(&h).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (hr *habitRepo) ListByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID, includeArchived bool) ([]*habittypes.Habit, error) {
	transaction := tx
	if transaction == nil {
		transaction = hr.db
	}
	query := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC")
	if !includeArchived {
		query = query.Where("archived = ?", false)
	}
	var results []*habittypes.Habit
	if err := query.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (hr *habitRepo) SetArchived(ctx context.Context, tx *gorm.DB, habitID uuid.UUID, archived bool) error {
	transaction := tx
	if transaction == nil {
		transaction = hr.db
	}
	return transaction.WithContext(ctx).
		Model(&habittypes.Habit{}).
		Where("id = ?", habitID).
		Update("archived", archived).Error
}
