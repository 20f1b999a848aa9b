package services

import (
	"github.com/habitloop/habitloop-backend/internal/modules/personalization"
	"github.com/habitloop/habitloop-backend/internal/pkg/logger"
)

// RecommendationService exposes the template catalog and the scoring
// recommender to the API layer.
type RecommendationService interface {
	Recommend(focusArea string, motivations []string) []personalization.Template
	TemplateByID(id string) (personalization.Template, bool)
	Templates() []personalization.Template
}

type recommendationService struct {
	log *logger.Logger
}

func NewRecommendationService(log *logger.Logger) RecommendationService {
	return &recommendationService{log: log.With("service", "RecommendationService")}
}

func (rs *recommendationService) Recommend(focusArea string, motivations []string) []personalization.Template {
	return personalization.Recommend(focusArea, motivations)
}

func (rs *recommendationService) TemplateByID(id string) (personalization.Template, bool) {
	return personalization.TemplateByID(id)
}

func (rs *recommendationService) Templates() []personalization.Template {
	return personalization.Templates()
}
