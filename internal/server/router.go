package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/habitloop/habitloop-backend/internal/http/handlers"
	"github.com/habitloop/habitloop-backend/internal/http/middleware"
	"github.com/habitloop/habitloop-backend/internal/pkg/logger"
)

type RouterConfig struct {
	Log               *logger.Logger
	AuthMiddleware    *middleware.AuthMiddleware
	HealthHandler     *handlers.HealthHandler
	AuthHandler       *handlers.AuthHandler
	UserHandler       *handlers.UserHandler
	OnboardingHandler *handlers.OnboardingHandler
	TemplateHandler   *handlers.TemplateHandler
	HabitHandler      *handlers.HabitHandler
	CopyHandler       *handlers.CopyHandler
	RetentionHandler  *handlers.RetentionHandler
	AllowOrigins      []string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(cfg.Log))

	allowOrigins := cfg.AllowOrigins
	if len(allowOrigins) == 0 {
		allowOrigins = []string{"http://localhost:3000", "http://localhost:5173"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	// Public
	router.GET("/healthcheck", cfg.HealthHandler.Check)
	router.POST("/register", cfg.AuthHandler.Register)
	router.POST("/login", cfg.AuthHandler.Login)

	// Protected
	protected := router.Group("/")
	protected.Use(cfg.AuthMiddleware.RequireAuth())

	// User
	protected.GET("/me", cfg.UserHandler.GetMe)
	protected.PATCH("/user/display_name", cfg.UserHandler.ChangeDisplayName)
	protected.PATCH("/user/archetype", cfg.UserHandler.ChangeArchetype)
	protected.PATCH("/user/theme", cfg.UserHandler.ChangeTheme)

	// Onboarding
	protected.POST("/onboarding", cfg.OnboardingHandler.Submit)
	protected.GET("/onboarding", cfg.OnboardingHandler.Get)

	// Templates
	protected.GET("/templates", cfg.TemplateHandler.List)
	protected.GET("/templates/recommendations", cfg.TemplateHandler.Recommendations)
	protected.GET("/templates/:id", cfg.TemplateHandler.Get)

	// Habits
	protected.POST("/habits", cfg.HabitHandler.Create)
	protected.GET("/habits", cfg.HabitHandler.List)
	protected.DELETE("/habits/:id", cfg.HabitHandler.Archive)
	protected.POST("/habits/:id/checkins", cfg.HabitHandler.CheckIn)
	protected.GET("/habits/:id/streak", cfg.HabitHandler.Streak)

	// Daily copy
	protected.GET("/copy/today", cfg.CopyHandler.Today)

	// Retention flow
	protected.POST("/account/delete-intent", cfg.RetentionHandler.Open)
	protected.GET("/retention/session", cfg.RetentionHandler.Session)
	protected.GET("/retention/science", cfg.RetentionHandler.Science)
	protected.POST("/retention/concern", cfg.RetentionHandler.SelectConcern)
	protected.POST("/retention/continue", cfg.RetentionHandler.Continue)
	protected.POST("/retention/answers", cfg.RetentionHandler.SetAnswer)
	protected.POST("/retention/still-want-to-leave", cfg.RetentionHandler.StillWantToLeave)
	protected.POST("/retention/keep-account", cfg.RetentionHandler.KeepAccount)
	protected.POST("/retention/resume", cfg.RetentionHandler.Resume)
	protected.POST("/retention/close", cfg.RetentionHandler.Close)
	protected.POST("/retention/confirm-delete", cfg.RetentionHandler.ConfirmDelete)

	return router
}
