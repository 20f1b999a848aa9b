package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	habittypes "github.com/habitloop/habitloop-backend/internal/domain/habit"
	retentiontypes "github.com/habitloop/habitloop-backend/internal/domain/retention"
	usertypes "github.com/habitloop/habitloop-backend/internal/domain/user"
	"github.com/habitloop/habitloop-backend/internal/pkg/logger"
	"github.com/habitloop/habitloop-backend/internal/utils"
)

type Service struct {
	db  *gorm.DB
	log *logger.Logger
}

// New connects using DB_DRIVER=postgres (default) or DB_DRIVER=sqlite
// for local development without a postgres instance.
func New(log *logger.Logger) (*Service, error) {
	serviceLog := log.With("service", "DBService")

	driver := utils.GetEnv("DB_DRIVER", "postgres", log)
	switch driver {
	case "sqlite":
		return newSQLite(serviceLog)
	default:
		return newPostgres(serviceLog)
	}
}

func newPostgres(log *logger.Logger) (*Service, error) {
	host := utils.GetEnv("POSTGRES_HOST", "localhost", log)
	port := utils.GetEnv("POSTGRES_PORT", "5432", log)
	user := utils.GetEnv("POSTGRES_USER", "postgres", log)
	password := utils.GetEnv("POSTGRES_PASSWORD", "", log)
	name := utils.GetEnv("POSTGRES_NAME", "habitloop", log)

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, port, name)

	log.Info("Connecting to Postgres...")
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		log.Error("Failed to connect to Postgres", "error", err)
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	return &Service{db: db, log: log}, nil
}

func newSQLite(log *logger.Logger) (*Service, error) {
	path := utils.GetEnv("SQLITE_PATH", "habitloop.db", log)
	log.Info("Opening sqlite database", "path", path)
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Error("Failed to open sqlite database", "error", err)
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	return &Service{db: db, log: log}, nil
}

func (s *Service) DB() *gorm.DB { return s.db }

func (s *Service) AutoMigrateAll() error {
	s.log.Info("Auto migrating tables...")
	err := s.db.AutoMigrate(
		&usertypes.User{},
		&usertypes.OnboardingRecord{},
		&habittypes.Habit{},
		&habittypes.CheckIn{},
		&retentiontypes.ExitSurveyResponse{},
		&retentiontypes.UserEvent{},
	)
	if err != nil {
		s.log.Error("Auto migration failed", "error", err)
		return err
	}
	return nil
}
