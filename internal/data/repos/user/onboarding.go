package user

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	usertypes "github.com/habitloop/habitloop-backend/internal/domain/user"
	"github.com/habitloop/habitloop-backend/internal/pkg/logger"
)

type OnboardingRepo interface {
	Upsert(ctx context.Context, tx *gorm.DB, record *usertypes.OnboardingRecord) error
	GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*usertypes.OnboardingRecord, error)
}

type onboardingRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewOnboardingRepo(db *gorm.DB, baseLog *logger.Logger) OnboardingRepo {
	return &onboardingRepo{db: db, log: baseLog.With("repo", "OnboardingRepo")}
}

func (or *onboardingRepo) Upsert(ctx context.Context, tx *gorm.DB, record *usertypes.OnboardingRecord) error {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}
	return transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"answers_json", "profile_key", "updated_at"}),
		}).
		Create(record).Error
}

func (or *onboardingRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*usertypes.OnboardingRecord, error) {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}
	var record usertypes.OnboardingRecord
	err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}
