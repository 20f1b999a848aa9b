package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	userrepos "github.com/habitloop/habitloop-backend/internal/data/repos/user"
	usertypes "github.com/habitloop/habitloop-backend/internal/domain/user"
	"github.com/habitloop/habitloop-backend/internal/modules/personalization"
	"github.com/habitloop/habitloop-backend/internal/pkg/logger"
	"github.com/habitloop/habitloop-backend/internal/requestdata"
)

type UserService interface {
	GetMe(ctx context.Context) (*usertypes.User, error)
	UpdateDisplayName(ctx context.Context, displayName string) (*usertypes.User, error)
	UpdateArchetype(ctx context.Context, archetype string) (*usertypes.User, error)
	UpdatePreferredTheme(ctx context.Context, preferredTheme string) (*usertypes.User, error)
}

type userService struct {
	db       *gorm.DB
	log      *logger.Logger
	userRepo userrepos.UserRepo
}

var validThemePreferences = map[string]struct{}{
	"light":  {},
	"dark":   {},
	"system": {},
}

func NewUserService(db *gorm.DB, log *logger.Logger, userRepo userrepos.UserRepo) UserService {
	return &userService{
		db:       db,
		log:      log.With("service", "UserService"),
		userRepo: userRepo,
	}
}

func requireUserID(ctx context.Context) (uuid.UUID, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return uuid.Nil, fmt.Errorf("unauthorized")
	}
	return rd.UserID, nil
}

func (us *userService) GetMe(ctx context.Context) (*usertypes.User, error) {
	userID, err := requireUserID(ctx)
	if err != nil {
		return nil, err
	}
	found, err := us.userRepo.GetByIDs(ctx, nil, []uuid.UUID{userID})
	if err != nil {
		return nil, fmt.Errorf("error fetching user: %w", err)
	}
	if len(found) == 0 || found[0] == nil {
		return nil, fmt.Errorf("user does not exist")
	}
	return found[0], nil
}

func (us *userService) UpdateDisplayName(ctx context.Context, displayName string) (*usertypes.User, error) {
	userID, err := requireUserID(ctx)
	if err != nil {
		return nil, err
	}
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		return nil, fmt.Errorf("display_name required")
	}
	return us.updateAndReload(ctx, userID, func(tx *gorm.DB) error {
		return us.userRepo.UpdateDisplayName(ctx, tx, userID, displayName)
	})
}

func (us *userService) UpdateArchetype(ctx context.Context, archetype string) (*usertypes.User, error) {
	userID, err := requireUserID(ctx)
	if err != nil {
		return nil, err
	}
	archetype = strings.ToLower(strings.TrimSpace(archetype))
	if !personalization.IsArchetype(archetype) {
		return nil, fmt.Errorf("invalid archetype")
	}
	return us.updateAndReload(ctx, userID, func(tx *gorm.DB) error {
		return us.userRepo.UpdateArchetype(ctx, tx, userID, archetype)
	})
}

func (us *userService) UpdatePreferredTheme(ctx context.Context, preferredTheme string) (*usertypes.User, error) {
	userID, err := requireUserID(ctx)
	if err != nil {
		return nil, err
	}
	preferredTheme = strings.ToLower(strings.TrimSpace(preferredTheme))
	if _, ok := validThemePreferences[preferredTheme]; !ok {
		return nil, fmt.Errorf("invalid preferred_theme")
	}
	return us.updateAndReload(ctx, userID, func(tx *gorm.DB) error {
		return us.userRepo.UpdatePreferredTheme(ctx, tx, userID, preferredTheme)
	})
}

func (us *userService) updateAndReload(ctx context.Context, userID uuid.UUID, update func(tx *gorm.DB) error) (*usertypes.User, error) {
	var out *usertypes.User
	if err := us.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := update(tx); err != nil {
			return err
		}
		found, err := us.userRepo.GetByIDs(ctx, tx, []uuid.UUID{userID})
		if err != nil || len(found) == 0 {
			return fmt.Errorf("failed to reload user")
		}
		out = found[0]
		return nil
	}); err != nil {
		us.log.Warn("User update failed", "error", err, "user_id", userID)
		return nil, err
	}
	return out, nil
}
