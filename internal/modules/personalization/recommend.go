package personalization

import (
	"regexp"
	"sort"
	"strings"
)

// Scoring weights. A focus-area hit outweighs a single motivation hit,
// but motivation hits are additive and uncapped, so a template matching
// three motivations outranks a focus-only match.
const (
	focusAreaScore     = 3
	motivationTagScore = 2
	maxRecommendations = 6
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// NormalizeMotivation lower-cases a motivation and collapses whitespace
// runs to underscores, so "Mental  Clarity" matches the tag
// "mental_clarity".
func NormalizeMotivation(raw string) string {
	lowered := strings.ToLower(strings.TrimSpace(raw))
	return whitespaceRun.ReplaceAllString(lowered, "_")
}

// Recommend scores the catalog against a focus area and motivation set
// and returns the top templates, best first. Zero-score templates are
// dropped; ties keep catalog declaration order. Unknown vocabularies
// yield lower scores, never an error; an empty result is valid.
func Recommend(focusArea string, motivations []string) []Template {
	focus := strings.ToLower(strings.TrimSpace(focusArea))

	wanted := make(map[string]struct{}, len(motivations))
	for _, m := range motivations {
		if n := NormalizeMotivation(m); n != "" {
			wanted[n] = struct{}{}
		}
	}

	type scored struct {
		template Template
		score    int
	}
	candidates := make([]scored, 0, len(templateCatalog))
	for _, t := range templateCatalog {
		score := 0
		if contains(t.FocusAreas, focus) {
			score += focusAreaScore
		}
		for _, tag := range t.MotivationTags {
			if _, ok := wanted[tag]; ok {
				score += motivationTagScore
			}
		}
		if score > 0 {
			candidates = append(candidates, scored{template: t, score: score})
		}
	}

	// SliceStable keeps declaration order among equal scores.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	if len(candidates) > maxRecommendations {
		candidates = candidates[:maxRecommendations]
	}
	out := make([]Template, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.template)
	}
	return out
}
