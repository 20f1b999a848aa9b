package habit

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/habitloop/habitloop-backend/internal/data/repos/testutil"
	habittypes "github.com/habitloop/habitloop-backend/internal/domain/habit"
)

func day(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("bad day literal %q: %v", value, err)
	}
	return parsed
}

func TestCheckInCreateIdempotentPerDay(t *testing.T) {
	db := testutil.DB(t)
	repo := NewCheckInRepo(db, testutil.Logger(t))
	ctx := context.Background()
	user := testutil.SeedUser(t, db)
	habit := testutil.SeedHabit(t, db, user.ID)

	today := day(t, "2026-08-30")
	for i := 0; i < 3; i++ {
		err := repo.Create(ctx, nil, &habittypes.CheckIn{
			ID:      uuid.New(),
			HabitID: habit.ID,
			UserID:  user.ID,
			Day:     today,
		})
		if err != nil {
			t.Fatalf("Create attempt %d: %v", i+1, err)
		}
	}

	count, err := repo.CountByUserID(ctx, nil, user.ID)
	if err != nil {
		t.Fatalf("CountByUserID: %v", err)
	}
	if count != 1 {
		t.Fatalf("repeat check-ins on one day must collapse to one row, got %d", count)
	}
}

func TestCheckInListDaysOrdered(t *testing.T) {
	db := testutil.DB(t)
	repo := NewCheckInRepo(db, testutil.Logger(t))
	ctx := context.Background()
	user := testutil.SeedUser(t, db)
	habit := testutil.SeedHabit(t, db, user.ID)

	for _, d := range []string{"2026-08-27", "2026-08-29", "2026-08-28"} {
		err := repo.Create(ctx, nil, &habittypes.CheckIn{
			ID:      uuid.New(),
			HabitID: habit.ID,
			UserID:  user.ID,
			Day:     day(t, d),
		})
		if err != nil {
			t.Fatalf("Create %s: %v", d, err)
		}
	}

	days, err := repo.ListDaysByHabitID(ctx, nil, habit.ID)
	if err != nil {
		t.Fatalf("ListDaysByHabitID: %v", err)
	}
	if len(days) != 3 {
		t.Fatalf("expected 3 days, got %d", len(days))
	}
	for i := 1; i < len(days); i++ {
		if !days[i].Before(days[i-1]) {
			t.Fatalf("days not in descending order: %v", days)
		}
	}
}

func TestHabitRepoArchive(t *testing.T) {
	db := testutil.DB(t)
	repo := NewHabitRepo(db, testutil.Logger(t))
	ctx := context.Background()
	user := testutil.SeedUser(t, db)
	habit := testutil.SeedHabit(t, db, user.ID)

	if err := repo.SetArchived(ctx, nil, habit.ID, true); err != nil {
		t.Fatalf("SetArchived: %v", err)
	}

	active, err := repo.ListByUserID(ctx, nil, user.ID, false)
	if err != nil {
		t.Fatalf("ListByUserID active: %v", err)
	}
	if len(active) != 0 {
		t.Fatalf("archived habit still listed as active: %+v", active)
	}

	all, err := repo.ListByUserID(ctx, nil, user.ID, true)
	if err != nil {
		t.Fatalf("ListByUserID all: %v", err)
	}
	if len(all) != 1 || !all[0].Archived {
		t.Fatalf("expected one archived habit, got %+v", all)
	}
}
