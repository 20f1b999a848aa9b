package user

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	usertypes "github.com/habitloop/habitloop-backend/internal/domain/user"
	"github.com/habitloop/habitloop-backend/internal/pkg/logger"
)

type UserRepo interface {
	Create(ctx context.Context, tx *gorm.DB, users []*usertypes.User) ([]*usertypes.User, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) ([]*usertypes.User, error)
	GetByEmails(ctx context.Context, tx *gorm.DB, emails []string) ([]*usertypes.User, error)
	EmailExists(ctx context.Context, tx *gorm.DB, email string) (bool, error)
	UpdateDisplayName(ctx context.Context, tx *gorm.DB, userID uuid.UUID, displayName string) error
	UpdateArchetype(ctx context.Context, tx *gorm.DB, userID uuid.UUID, archetype string) error
	UpdateProfileKey(ctx context.Context, tx *gorm.DB, userID uuid.UUID, profileKey string) error
	UpdatePreferredTheme(ctx context.Context, tx *gorm.DB, userID uuid.UUID, preferredTheme string) error
}

type userRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo {
	return &userRepo{db: db, log: baseLog.With("repo", "UserRepo")}
}

func (ur *userRepo) Create(ctx context.Context, tx *gorm.DB, users []*usertypes.User) ([]*usertypes.User, error) {
	transaction := tx
	if transaction == nil {
		transaction = ur.db
	}
	if len(users) == 0 {
		return []*usertypes.User{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (ur *userRepo) GetByIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) ([]*usertypes.User, error) {
	transaction := tx
	if transaction == nil {
		transaction = ur.db
	}
	var results []*usertypes.User
	if len(userIDs) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("id IN ?", userIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (ur *userRepo) GetByEmails(ctx context.Context, tx *gorm.DB, emails []string) ([]*usertypes.User, error) {
	transaction := tx
	if transaction == nil {
		transaction = ur.db
	}
	var results []*usertypes.User
	if len(emails) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("email IN ?", emails).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (ur *userRepo) EmailExists(ctx context.Context, tx *gorm.DB, email string) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = ur.db
	}
	var count int64
	if err := transaction.WithContext(ctx).
		Model(&usertypes.User{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (ur *userRepo) UpdateDisplayName(ctx context.Context, tx *gorm.DB, userID uuid.UUID, displayName string) error {
	return ur.updateColumn(ctx, tx, userID, "display_name", displayName)
}

func (ur *userRepo) UpdateArchetype(ctx context.Context, tx *gorm.DB, userID uuid.UUID, archetype string) error {
	return ur.updateColumn(ctx, tx, userID, "archetype", archetype)
}

func (ur *userRepo) UpdateProfileKey(ctx context.Context, tx *gorm.DB, userID uuid.UUID, profileKey string) error {
	return ur.updateColumn(ctx, tx, userID, "profile_key", profileKey)
}

func (ur *userRepo) UpdatePreferredTheme(ctx context.Context, tx *gorm.DB, userID uuid.UUID, preferredTheme string) error {
	return ur.updateColumn(ctx, tx, userID, "preferred_theme", preferredTheme)
}

func (ur *userRepo) updateColumn(ctx context.Context, tx *gorm.DB, userID uuid.UUID, column string, value string) error {
	transaction := tx
	if transaction == nil {
		transaction = ur.db
	}
	return transaction.WithContext(ctx).
		Model(&usertypes.User{}).
		Where("id = ?", userID).
		Update(column, value).Error
}
