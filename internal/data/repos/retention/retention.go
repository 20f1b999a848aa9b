package retention

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	retentiontypes "github.com/habitloop/habitloop-backend/internal/domain/retention"
	"github.com/habitloop/habitloop-backend/internal/pkg/logger"
)

type ExitSurveyRepo interface {
	Create(ctx context.Context, tx *gorm.DB, response *retentiontypes.ExitSurveyResponse) error
	ListByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*retentiontypes.ExitSurveyResponse, error)
}

type exitSurveyRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewExitSurveyRepo(db *gorm.DB, baseLog *logger.Logger) ExitSurveyRepo {
	return &exitSurveyRepo{db: db, log: baseLog.With("repo", "ExitSurveyRepo")}
}

func (er *exitSurveyRepo) Create(ctx context.Context, tx *gorm.DB, response *retentiontypes.ExitSurveyResponse) error {
	transaction := tx
	if transaction == nil {
		transaction = er.db
	}
	return transaction.WithContext(ctx).Create(response).Error
}

func (er *exitSurveyRepo) ListByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*retentiontypes.ExitSurveyResponse, error) {
	transaction := tx
	if transaction == nil {
		transaction = er.db
	}
	var results []*retentiontypes.ExitSurveyResponse
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

type UserEventRepo interface {
	Create(ctx context.Context, tx *gorm.DB, event *retentiontypes.UserEvent) error
}

type userEventRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserEventRepo(db *gorm.DB, baseLog *logger.Logger) UserEventRepo {
	return &userEventRepo{db: db, log: baseLog.With("repo", "UserEventRepo")}
}

func (ur *userEventRepo) Create(ctx context.Context, tx *gorm.DB, event *retentiontypes.UserEvent) error {
	transaction := tx
	if transaction == nil {
		transaction = ur.db
	}
	return transaction.WithContext(ctx).Create(event).Error
}
