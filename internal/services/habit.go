package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/habitloop/habitloop-backend/internal/clients/redisbus"
	habitrepos "github.com/habitloop/habitloop-backend/internal/data/repos/habit"
	habittypes "github.com/habitloop/habitloop-backend/internal/domain/habit"
	"github.com/habitloop/habitloop-backend/internal/modules/personalization"
	"github.com/habitloop/habitloop-backend/internal/pkg/logger"
)

const streakCacheTTL = 5 * time.Minute

type HabitService interface {
	CreateFromTemplate(ctx context.Context, templateID string) (*habittypes.Habit, error)
	Create(ctx context.Context, title, category, cadence, proofMode string) (*habittypes.Habit, error)
	List(ctx context.Context, includeArchived bool) ([]*habittypes.Habit, error)
	Archive(ctx context.Context, habitID uuid.UUID) error
	CheckIn(ctx context.Context, habitID uuid.UUID, note string) error
	StreakStats(ctx context.Context, habitID uuid.UUID) (*habittypes.StreakStats, error)
	TotalCheckIns(ctx context.Context) (int64, error)
	BestCurrentStreak(ctx context.Context) (int, error)
}

type habitService struct {
	db          *gorm.DB
	log         *logger.Logger
	habitRepo   habitrepos.HabitRepo
	checkInRepo habitrepos.CheckInRepo
	bus         *redisbus.Bus
	now         func() time.Time
}

func NewHabitService(db *gorm.DB, log *logger.Logger, habitRepo habitrepos.HabitRepo, checkInRepo habitrepos.CheckInRepo, bus *redisbus.Bus) HabitService {
	return &habitService{
		db:          db,
		log:         log.With("service", "HabitService"),
		habitRepo:   habitRepo,
		checkInRepo: checkInRepo,
		bus:         bus,
		now:         time.Now,
	}
}

func (hs *habitService) CreateFromTemplate(ctx context.Context, templateID string) (*habittypes.Habit, error) {
	userID, err := requireUserID(ctx)
	if err != nil {
		return nil, err
	}
	tpl, ok := personalization.TemplateByID(templateID)
	if !ok {
		return nil, fmt.Errorf("unknown template %q", templateID)
	}
	h := &habittypes.Habit{
		ID:         uuid.New(),
		UserID:     userID,
		TemplateID: tpl.ID,
		Title:      tpl.Title,
		Category:   tpl.Category,
		Cadence:    tpl.SuggestedCadence,
		ProofMode:  tpl.SuggestedProof,
	}
	if _, err := hs.habitRepo.Create(ctx, nil, []*habittypes.Habit{h}); err != nil {
		return nil, fmt.Errorf("failed to create habit: %w", err)
	}
	return h, nil
}

func (hs *habitService) Create(ctx context.Context, title, category, cadence, proofMode string) (*habittypes.Habit, error) {
	userID, err := requireUserID(ctx)
	if err != nil {
		return nil, err
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("title required")
	}
	if cadence == "" {
		cadence = "daily"
	}
	if proofMode == "" {
		proofMode = "none"
	}
	h := &habittypes.Habit{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     title,
		Category:  strings.ToLower(strings.TrimSpace(category)),
		Cadence:   cadence,
		ProofMode: proofMode,
	}
	if _, err := hs.habitRepo.Create(ctx, nil, []*habittypes.Habit{h}); err != nil {
		return nil, fmt.Errorf("failed to create habit: %w", err)
	}
	return h, nil
}

func (hs *habitService) List(ctx context.Context, includeArchived bool) ([]*habittypes.Habit, error) {
	userID, err := requireUserID(ctx)
	if err != nil {
		return nil, err
	}
	return hs.habitRepo.ListByUserID(ctx, nil, userID, includeArchived)
}

func (hs *habitService) Archive(ctx context.Context, habitID uuid.UUID) error {
	if _, err := hs.ownedHabit(ctx, habitID); err != nil {
		return err
	}
	return hs.habitRepo.SetArchived(ctx, nil, habitID, true)
}

func (hs *habitService) CheckIn(ctx context.Context, habitID uuid.UUID, note string) error {
	h, err := hs.ownedHabit(ctx, habitID)
	if err != nil {
		return err
	}
	day := dateOnly(hs.now().UTC())
	checkIn := &habittypes.CheckIn{
		ID:      uuid.New(),
		HabitID: h.ID,
		UserID:  h.UserID,
		Day:     day,
		Note:    strings.TrimSpace(note),
	}
	if err := hs.checkInRepo.Create(ctx, nil, checkIn); err != nil {
		return fmt.Errorf("failed to record check-in: %w", err)
	}
	// Invalidate the cached streak; a miss just recomputes.
	if err := hs.bus.DeleteCache(ctx, streakCacheKey(h.ID)); err != nil {
		hs.log.Debug("Streak cache invalidation failed", "error", err)
	}
	return nil
}

func (hs *habitService) StreakStats(ctx context.Context, habitID uuid.UUID) (*habittypes.StreakStats, error) {
	h, err := hs.ownedHabit(ctx, habitID)
	if err != nil {
		return nil, err
	}

	var cached habittypes.StreakStats
	if ok, err := hs.bus.GetCache(ctx, streakCacheKey(h.ID), &cached); err == nil && ok {
		return &cached, nil
	}

	days, err := hs.checkInRepo.ListDaysByHabitID(ctx, nil, h.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load check-ins: %w", err)
	}
	stats := computeStreaks(days, hs.now().UTC())
	if err := hs.bus.SetCache(ctx, streakCacheKey(h.ID), stats, streakCacheTTL); err != nil {
		hs.log.Debug("Streak cache write failed", "error", err)
	}
	return &stats, nil
}

func (hs *habitService) TotalCheckIns(ctx context.Context) (int64, error) {
	userID, err := requireUserID(ctx)
	if err != nil {
		return 0, err
	}
	return hs.checkInRepo.CountByUserID(ctx, nil, userID)
}

// BestCurrentStreak returns the longest of the user's current streaks
// across all active habits. Used by the retention flow's progress
// summary; errors there degrade to zero rather than blocking.
func (hs *habitService) BestCurrentStreak(ctx context.Context) (int, error) {
	userID, err := requireUserID(ctx)
	if err != nil {
		return 0, err
	}
	habits, err := hs.habitRepo.ListByUserID(ctx, nil, userID, false)
	if err != nil {
		return 0, err
	}
	best := 0
	today := hs.now().UTC()
	for _, h := range habits {
		days, err := hs.checkInRepo.ListDaysByHabitID(ctx, nil, h.ID)
		if err != nil {
			return 0, err
		}
		if stats := computeStreaks(days, today); stats.CurrentStreak > best {
			best = stats.CurrentStreak
		}
	}
	return best, nil
}

func (hs *habitService) ownedHabit(ctx context.Context, habitID uuid.UUID) (*habittypes.Habit, error) {
	userID, err := requireUserID(ctx)
	if err != nil {
		return nil, err
	}
	h, err := hs.habitRepo.GetByID(ctx, nil, habitID)
	if err != nil {
		return nil, fmt.Errorf("failed to load habit: %w", err)
	}
	if h == nil || h.UserID != userID {
		return nil, fmt.Errorf("habit not found")
	}
	return h, nil
}

func streakCacheKey(habitID uuid.UUID) string {
	return "streak:" + habitID.String()
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// computeStreaks derives streak stats from check-in days. A current
// streak survives until a full day has been missed: it counts
// consecutive days ending today or yesterday.
func computeStreaks(days []time.Time, now time.Time) habittypes.StreakStats {
	unique := make(map[time.Time]struct{}, len(days))
	for _, d := range days {
		unique[dateOnly(d.UTC())] = struct{}{}
	}
	if len(unique) == 0 {
		return habittypes.StreakStats{}
	}

	sorted := make([]time.Time, 0, len(unique))
	for d := range unique {
		sorted = append(sorted, d)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].After(sorted[j]) })

	stats := habittypes.StreakStats{TotalCheckIns: len(sorted)}

	today := dateOnly(now)
	yesterday := today.AddDate(0, 0, -1)
	if sorted[0].Equal(today) || sorted[0].Equal(yesterday) {
		current := 1
		for i := 1; i < len(sorted); i++ {
			if sorted[i-1].Sub(sorted[i]) == 24*time.Hour {
				current++
			} else {
				break
			}
		}
		stats.CurrentStreak = current
	}

	longest, run := 1, 1
	for i := 1; i < len(sorted); i++ {
		if sorted[i-1].Sub(sorted[i]) == 24*time.Hour {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	stats.LongestStreak = longest
	return stats
}
