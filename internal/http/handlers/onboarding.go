package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/habitloop/habitloop-backend/internal/http/response"
	"github.com/habitloop/habitloop-backend/internal/modules/personalization"
	"github.com/habitloop/habitloop-backend/internal/services"
)

type OnboardingHandler struct {
	onboardingService services.OnboardingService
}

func NewOnboardingHandler(onboardingService services.OnboardingService) *OnboardingHandler {
	return &OnboardingHandler{onboardingService: onboardingService}
}

// POST /onboarding
// body: { "motivations": [...], "reward_style": [...], "change_style": "...",
//         "relapse_triggers": [...], "focus_area": "..." }
func (oh *OnboardingHandler) Submit(c *gin.Context) {
	var req struct {
		Motivations     []string `json:"motivations"`
		RewardStyle     []string `json:"reward_style"`
		ChangeStyle     string   `json:"change_style"`
		RelapseTriggers []string `json:"relapse_triggers"`
		FocusArea       string   `json:"focus_area"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	answers := personalization.Answers{
		Motivations:     req.Motivations,
		RewardStyle:     req.RewardStyle,
		ChangeStyle:     req.ChangeStyle,
		RelapseTriggers: req.RelapseTriggers,
	}
	result, err := oh.onboardingService.Submit(c.Request.Context(), answers, req.FocusArea)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "onboarding_failed", err)
		return
	}
	response.RespondOK(c, result)
}

// GET /onboarding
func (oh *OnboardingHandler) Get(c *gin.Context) {
	record, err := oh.onboardingService.Get(c.Request.Context())
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "get_onboarding_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"onboarding": record})
}
