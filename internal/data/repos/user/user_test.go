package user

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/habitloop/habitloop-backend/internal/data/repos/testutil"
	usertypes "github.com/habitloop/habitloop-backend/internal/domain/user"
)

func TestUserRepoCreateAndLookup(t *testing.T) {
	db := testutil.DB(t)
	repo := NewUserRepo(db, testutil.Logger(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, nil, []*usertypes.User{{
		ID:          uuid.New(),
		Email:       "maya@example.com",
		Password:    "hashed",
		DisplayName: "Maya",
	}})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(created) != 1 {
		t.Fatalf("expected 1 created user, got %d", len(created))
	}

	byEmail, err := repo.GetByEmails(ctx, nil, []string{"maya@example.com"})
	if err != nil {
		t.Fatalf("GetByEmails: %v", err)
	}
	if len(byEmail) != 1 || byEmail[0].DisplayName != "Maya" {
		t.Fatalf("unexpected lookup result: %+v", byEmail)
	}

	exists, err := repo.EmailExists(ctx, nil, "maya@example.com")
	if err != nil {
		t.Fatalf("EmailExists: %v", err)
	}
	if !exists {
		t.Fatal("email should exist")
	}
	exists, err = repo.EmailExists(ctx, nil, "nobody@example.com")
	if err != nil {
		t.Fatalf("EmailExists: %v", err)
	}
	if exists {
		t.Fatal("email should not exist")
	}
}

func TestUserRepoUpdateColumns(t *testing.T) {
	db := testutil.DB(t)
	repo := NewUserRepo(db, testutil.Logger(t))
	ctx := context.Background()
	seeded := testutil.SeedUser(t, db)

	if err := repo.UpdateProfileKey(ctx, nil, seeded.ID, "quiet_strategist"); err != nil {
		t.Fatalf("UpdateProfileKey: %v", err)
	}
	if err := repo.UpdateArchetype(ctx, nil, seeded.ID, "analyst"); err != nil {
		t.Fatalf("UpdateArchetype: %v", err)
	}

	found, err := repo.GetByIDs(ctx, nil, []uuid.UUID{seeded.ID})
	if err != nil {
		t.Fatalf("GetByIDs: %v", err)
	}
	if len(found) != 1 {
		t.Fatalf("expected 1 user, got %d", len(found))
	}
	if found[0].ProfileKey != "quiet_strategist" || found[0].Archetype != "analyst" {
		t.Fatalf("updates not applied: %+v", found[0])
	}
}

func TestOnboardingRepoUpsert(t *testing.T) {
	db := testutil.DB(t)
	repo := NewOnboardingRepo(db, testutil.Logger(t))
	ctx := context.Background()
	seeded := testutil.SeedUser(t, db)

	first := &usertypes.OnboardingRecord{
		ID:          uuid.New(),
		UserID:      seeded.ID,
		AnswersJSON: []byte(`{"motivations":["calm"]}`),
		ProfileKey:  "gentle_sustainer",
	}
	if err := repo.Upsert(ctx, nil, first); err != nil {
		t.Fatalf("first Upsert: %v", err)
	}

	second := &usertypes.OnboardingRecord{
		ID:          uuid.New(),
		UserID:      seeded.ID,
		AnswersJSON: []byte(`{"motivations":["discipline"]}`),
		ProfileKey:  "structured_rebuilder",
	}
	if err := repo.Upsert(ctx, nil, second); err != nil {
		t.Fatalf("second Upsert: %v", err)
	}

	got, err := repo.GetByUserID(ctx, nil, seeded.ID)
	if err != nil {
		t.Fatalf("GetByUserID: %v", err)
	}
	if got == nil {
		t.Fatal("expected a record")
	}
	if got.ProfileKey != "structured_rebuilder" {
		t.Fatalf("upsert did not replace profile key, got %q", got.ProfileKey)
	}

	var count int64
	if err := db.Model(&usertypes.OnboardingRecord{}).Where("user_id = ?", seeded.ID).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly one record per user, got %d", count)
	}
}

func TestOnboardingRepoGetMissing(t *testing.T) {
	db := testutil.DB(t)
	repo := NewOnboardingRepo(db, testutil.Logger(t))

	got, err := repo.GetByUserID(context.Background(), nil, uuid.New())
	if err != nil {
		t.Fatalf("GetByUserID: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for missing record, got %+v", got)
	}
}
