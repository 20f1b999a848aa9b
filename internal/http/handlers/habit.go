package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/habitloop/habitloop-backend/internal/http/response"
	"github.com/habitloop/habitloop-backend/internal/services"
)

type HabitHandler struct {
	habitService services.HabitService
}

func NewHabitHandler(habitService services.HabitService) *HabitHandler {
	return &HabitHandler{habitService: habitService}
}

// POST /habits
// body: { "template_id": "..." } or { "title": "...", "category": "...",
//         "cadence": "...", "proof_mode": "..." }
func (hh *HabitHandler) Create(c *gin.Context) {
	var req struct {
		TemplateID string `json:"template_id"`
		Title      string `json:"title"`
		Category   string `json:"category"`
		Cadence    string `json:"cadence"`
		ProofMode  string `json:"proof_mode"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	if req.TemplateID != "" {
		habit, err := hh.habitService.CreateFromTemplate(c.Request.Context(), req.TemplateID)
		if err != nil {
			response.RespondError(c, http.StatusBadRequest, "create_habit_failed", err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"habit": habit})
		return
	}

	habit, err := hh.habitService.Create(c.Request.Context(), req.Title, req.Category, req.Cadence, req.ProofMode)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "create_habit_failed", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"habit": habit})
}

// GET /habits?include_archived=true
func (hh *HabitHandler) List(c *gin.Context) {
	includeArchived := c.Query("include_archived") == "true"
	habits, err := hh.habitService.List(c.Request.Context(), includeArchived)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "list_habits_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"habits": habits})
}

// DELETE /habits/:id (archives, never hard-deletes)
func (hh *HabitHandler) Archive(c *gin.Context) {
	habitID, err := parseHabitID(c)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_habit_id", err)
		return
	}
	if err := hh.habitService.Archive(c.Request.Context(), habitID); err != nil {
		response.RespondError(c, http.StatusBadRequest, "archive_habit_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

// POST /habits/:id/checkins
// body: { "note": "..." }
func (hh *HabitHandler) CheckIn(c *gin.Context) {
	habitID, err := parseHabitID(c)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_habit_id", err)
		return
	}
	var req struct {
		Note string `json:"note"`
	}
	// An empty body is a plain check-in with no note.
	_ = c.ShouldBindJSON(&req)

	if err := hh.habitService.CheckIn(c.Request.Context(), habitID, req.Note); err != nil {
		response.RespondError(c, http.StatusBadRequest, "check_in_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

// GET /habits/:id/streak
func (hh *HabitHandler) Streak(c *gin.Context) {
	habitID, err := parseHabitID(c)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_habit_id", err)
		return
	}
	stats, err := hh.habitService.StreakStats(c.Request.Context(), habitID)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "streak_stats_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"streak": stats})
}

func parseHabitID(c *gin.Context) (uuid.UUID, error) {
	habitID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid habit id: %w", err)
	}
	return habitID, nil
}
