package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	retentionrepos "github.com/habitloop/habitloop-backend/internal/data/repos/retention"
	userrepos "github.com/habitloop/habitloop-backend/internal/data/repos/user"
	retentiontypes "github.com/habitloop/habitloop-backend/internal/domain/retention"
	usertypes "github.com/habitloop/habitloop-backend/internal/domain/user"
	"github.com/habitloop/habitloop-backend/internal/modules/personalization"
	"github.com/habitloop/habitloop-backend/internal/pkg/logger"
)

// OnboardingResult is what the client gets back after submitting
// answers: the assigned profile and the starter recommendations.
type OnboardingResult struct {
	Profile         personalization.Profile    `json:"profile"`
	Recommendations []personalization.Template `json:"recommendations"`
}

type OnboardingService interface {
	Submit(ctx context.Context, answers personalization.Answers, focusArea string) (*OnboardingResult, error)
	Get(ctx context.Context) (*usertypes.OnboardingRecord, error)
}

type onboardingService struct {
	db             *gorm.DB
	log            *logger.Logger
	userRepo       userrepos.UserRepo
	onboardingRepo userrepos.OnboardingRepo
	userEventRepo  retentionrepos.UserEventRepo
}

func NewOnboardingService(
	db *gorm.DB,
	log *logger.Logger,
	userRepo userrepos.UserRepo,
	onboardingRepo userrepos.OnboardingRepo,
	userEventRepo retentionrepos.UserEventRepo,
) OnboardingService {
	return &onboardingService{
		db:             db,
		log:            log.With("service", "OnboardingService"),
		userRepo:       userRepo,
		onboardingRepo: onboardingRepo,
		userEventRepo:  userEventRepo,
	}
}

func (os *onboardingService) Submit(ctx context.Context, answers personalization.Answers, focusArea string) (*OnboardingResult, error) {
	userID, err := requireUserID(ctx)
	if err != nil {
		return nil, err
	}

	profileKey := personalization.Classify(answers)
	profile := personalization.ProfileFor(profileKey)
	recommendations := personalization.Recommend(focusArea, answers.Motivations)

	answersJSON, err := json.Marshal(answers)
	if err != nil {
		return nil, fmt.Errorf("failed to encode answers: %w", err)
	}

	if err := os.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		record := &usertypes.OnboardingRecord{
			ID:          uuid.New(),
			UserID:      userID,
			AnswersJSON: datatypes.JSON(answersJSON),
			ProfileKey:  string(profileKey),
		}
		if err := os.onboardingRepo.Upsert(ctx, tx, record); err != nil {
			return fmt.Errorf("failed to store onboarding record: %w", err)
		}
		if err := os.userRepo.UpdateProfileKey(ctx, tx, userID, string(profileKey)); err != nil {
			return fmt.Errorf("failed to store profile key: %w", err)
		}
		event := &retentiontypes.UserEvent{
			ID:          uuid.New(),
			UserID:      userID,
			Kind:        "onboarding.completed",
			PayloadJSON: datatypes.JSON(fmt.Sprintf(`{"profile_key":%q}`, profileKey)),
		}
		return os.userEventRepo.Create(ctx, tx, event)
	}); err != nil {
		os.log.Warn("Onboarding submit failed", "error", err, "user_id", userID)
		return nil, err
	}

	return &OnboardingResult{Profile: profile, Recommendations: recommendations}, nil
}

func (os *onboardingService) Get(ctx context.Context) (*usertypes.OnboardingRecord, error) {
	userID, err := requireUserID(ctx)
	if err != nil {
		return nil, err
	}
	return os.onboardingRepo.GetByUserID(ctx, nil, userID)
}
