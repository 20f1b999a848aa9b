package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/habitloop/habitloop-backend/internal/clients/redisbus"
	surveyclient "github.com/habitloop/habitloop-backend/internal/clients/survey"
	habitrepos "github.com/habitloop/habitloop-backend/internal/data/repos/habit"
	retentionrepos "github.com/habitloop/habitloop-backend/internal/data/repos/retention"
	userrepos "github.com/habitloop/habitloop-backend/internal/data/repos/user"
	"github.com/habitloop/habitloop-backend/internal/db"
	"github.com/habitloop/habitloop-backend/internal/http/handlers"
	"github.com/habitloop/habitloop-backend/internal/http/middleware"
	"github.com/habitloop/habitloop-backend/internal/pkg/logger"
	"github.com/habitloop/habitloop-backend/internal/server"
	"github.com/habitloop/habitloop-backend/internal/services"
	"github.com/habitloop/habitloop-backend/internal/utils"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Env
	log.Info("Loading environment variables from main...")
	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
	accessTokenTTL := utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 3600, log)

	// Database
	dbService, err := db.New(log)
	if err != nil {
		log.Error("Database init failed", "error", err)
		os.Exit(1)
	}
	if err := dbService.AutoMigrateAll(); err != nil {
		log.Error("Auto migration failed", "error", err)
		os.Exit(1)
	}
	gormDB := dbService.DB()

	// Redis (streak cache + account deletion signal)
	bus, err := redisbus.New(log)
	if err != nil {
		log.Warn("Redis init failed, cache and deletion signal degraded", "error", err)
	}

	// Survey collaborator
	var surveyCli surveyclient.Client
	if cli, err := surveyclient.NewFromEnv(log); err != nil {
		log.Warn("Survey client init failed, retention flow degrades to no survey", "error", err)
	} else {
		surveyCli = cli
	}

	// Repos
	log.Info("Setting up repos from main...")
	userRepo := userrepos.NewUserRepo(gormDB, log)
	onboardingRepo := userrepos.NewOnboardingRepo(gormDB, log)
	habitRepo := habitrepos.NewHabitRepo(gormDB, log)
	checkInRepo := habitrepos.NewCheckInRepo(gormDB, log)
	exitSurveyRepo := retentionrepos.NewExitSurveyRepo(gormDB, log)
	userEventRepo := retentionrepos.NewUserEventRepo(gormDB, log)

	// Services
	log.Info("Setting up services from main...")
	authService := services.NewAuthService(gormDB, log, userRepo, jwtSecretKey, time.Duration(accessTokenTTL)*time.Second)
	userService := services.NewUserService(gormDB, log, userRepo)
	onboardingService := services.NewOnboardingService(gormDB, log, userRepo, onboardingRepo, userEventRepo)
	habitService := services.NewHabitService(gormDB, log, habitRepo, checkInRepo, bus)
	recommendationService := services.NewRecommendationService(log)
	toneService := services.NewToneService(log, userService, habitService)
	retentionService := services.NewRetentionService(log, surveyCli, bus, exitSurveyRepo, userEventRepo, habitService)

	// Handlers
	log.Info("Setting up handlers from main...")
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	onboardingHandler := handlers.NewOnboardingHandler(onboardingService)
	templateHandler := handlers.NewTemplateHandler(recommendationService)
	habitHandler := handlers.NewHabitHandler(habitService)
	copyHandler := handlers.NewCopyHandler(toneService)
	retentionHandler := handlers.NewRetentionHandler(retentionService)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(log, authService)

	// Router
	log.Info("Setting up router from main...")
	router := server.NewRouter(server.RouterConfig{
		Log:               log,
		AuthMiddleware:    authMiddleware,
		HealthHandler:     healthHandler,
		AuthHandler:       authHandler,
		UserHandler:       userHandler,
		OnboardingHandler: onboardingHandler,
		TemplateHandler:   templateHandler,
		HabitHandler:      habitHandler,
		CopyHandler:       copyHandler,
		RetentionHandler:  retentionHandler,
	})

	port := utils.GetEnv("PORT", "8080", log)
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("Server listening", "port", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		log.Info("Shutting down server...")
		if bus != nil {
			_ = bus.Close()
		}
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}
