package services

import (
	"context"
	"time"

	"github.com/habitloop/habitloop-backend/internal/modules/personalization"
	"github.com/habitloop/habitloop-backend/internal/pkg/logger"
)

// DailyCopy is the personalized copy payload the client renders on the
// home screen.
type DailyCopy struct {
	Tone     personalization.Tone    `json:"tone"`
	Greeting string                  `json:"greeting"`
	Copy     personalization.CopySet `json:"copy"`
	Tip      string                  `json:"tip"`
}

type ToneService interface {
	// DailyCopyFor builds copy for the authenticated user. hourOfDay < 0
	// means "use server time"; clients pass their local hour so greetings
	// match the user's wall clock.
	DailyCopyFor(ctx context.Context, hourOfDay int) (*DailyCopy, error)
}

type toneService struct {
	log          *logger.Logger
	userService  UserService
	habitService HabitService
	now          func() time.Time
}

func NewToneService(log *logger.Logger, userService UserService, habitService HabitService) ToneService {
	return &toneService{
		log:          log.With("service", "ToneService"),
		userService:  userService,
		habitService: habitService,
		now:          time.Now,
	}
}

func (ts *toneService) DailyCopyFor(ctx context.Context, hourOfDay int) (*DailyCopy, error) {
	u, err := ts.userService.GetMe(ctx)
	if err != nil {
		return nil, err
	}
	if hourOfDay < 0 || hourOfDay > 23 {
		hourOfDay = ts.now().Hour()
	}

	streak, err := ts.habitService.BestCurrentStreak(ctx)
	if err != nil {
		// Copy still renders without a streak; phase falls back to early.
		ts.log.Debug("Streak lookup failed for daily copy", "error", err)
		streak = 0
	}

	tone := personalization.ToneForArchetype(u.Archetype)
	return &DailyCopy{
		Tone:     tone,
		Greeting: personalization.Greeting(u.DisplayName, hourOfDay),
		Copy:     personalization.CopyFor(u.Archetype),
		Tip:      personalization.TipFor(tone, streak),
	}, nil
}
