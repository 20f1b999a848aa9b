package testutil

import (
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	habittypes "github.com/habitloop/habitloop-backend/internal/domain/habit"
	retentiontypes "github.com/habitloop/habitloop-backend/internal/domain/retention"
	usertypes "github.com/habitloop/habitloop-backend/internal/domain/user"
	"github.com/habitloop/habitloop-backend/internal/pkg/logger"
)

var (
	logOnce sync.Once
	logg    *logger.Logger
	logErr  error
)

func Logger(tb testing.TB) *logger.Logger {
	tb.Helper()
	logOnce.Do(func() {
		logg, logErr = logger.New("test")
	})
	if logErr != nil {
		tb.Fatalf("failed to init logger: %v", logErr)
	}
	return logg
}

// DB opens a fresh in-memory sqlite database with the full schema. Each
// test gets its own database, so no transaction rollback dance is needed
// for isolation.
func DB(tb testing.TB) *gorm.DB {
	tb.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		tb.Fatalf("failed to open test db: %v", err)
	}
	if err := autoMigrateAll(db); err != nil {
		tb.Fatalf("failed to migrate test db: %v", err)
	}
	return db
}

func autoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		&usertypes.User{},
		&usertypes.OnboardingRecord{},
		&habittypes.Habit{},
		&habittypes.CheckIn{},
		&retentiontypes.ExitSurveyResponse{},
		&retentiontypes.UserEvent{},
	)
}

func SeedUser(tb testing.TB, db *gorm.DB) *usertypes.User {
	tb.Helper()
	user := &usertypes.User{
		ID:          uuid.New(),
		Email:       fmt.Sprintf("user-%s@example.com", uuid.NewString()[:8]),
		Password:    "hashed",
		DisplayName: "Test User",
	}
	if err := db.Create(user).Error; err != nil {
		tb.Fatalf("failed to seed user: %v", err)
	}
	return user
}

func SeedHabit(tb testing.TB, db *gorm.DB, userID uuid.UUID) *habittypes.Habit {
	tb.Helper()
	habit := &habittypes.Habit{
		ID:      uuid.New(),
		UserID:  userID,
		Title:   "Morning journal",
		Cadence: "daily",
	}
	if err := db.Create(habit).Error; err != nil {
		tb.Fatalf("failed to seed habit: %v", err)
	}
	return habit
}
