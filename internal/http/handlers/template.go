package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/habitloop/habitloop-backend/internal/http/response"
	"github.com/habitloop/habitloop-backend/internal/services"
)

type TemplateHandler struct {
	recommendationService services.RecommendationService
}

func NewTemplateHandler(recommendationService services.RecommendationService) *TemplateHandler {
	return &TemplateHandler{recommendationService: recommendationService}
}

// GET /templates
func (th *TemplateHandler) List(c *gin.Context) {
	response.RespondOK(c, gin.H{"templates": th.recommendationService.Templates()})
}

// GET /templates/recommendations?focus_area=mind&motivations=calm,focus
func (th *TemplateHandler) Recommendations(c *gin.Context) {
	focusArea := c.Query("focus_area")
	var motivations []string
	if raw := c.Query("motivations"); raw != "" {
		motivations = strings.Split(raw, ",")
	}
	recommended := th.recommendationService.Recommend(focusArea, motivations)
	response.RespondOK(c, gin.H{"recommendations": recommended})
}

// GET /templates/:id
func (th *TemplateHandler) Get(c *gin.Context) {
	id := c.Param("id")
	template, ok := th.recommendationService.TemplateByID(id)
	if !ok {
		response.RespondError(c, http.StatusNotFound, "template_not_found", fmt.Errorf("unknown template %q", id))
		return
	}
	response.RespondOK(c, gin.H{"template": template})
}
