package personalization

// Template is one candidate commitment from the static catalog.
type Template struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	Category         string   `json:"category"`
	SuggestedCadence string   `json:"suggested_cadence"`
	SuggestedProof   string   `json:"suggested_proof_mode"`
	FocusAreas       []string `json:"focus_areas"`
	MotivationTags   []string `json:"motivation_tags"`
	DurationMinutes  int      `json:"duration_minutes"`
}

// templateCatalog is the canonical template list. Declaration order is
// the ranking tie-break, and IDs are stored on habits, so treat both as
// stable.
var templateCatalog = []Template{
	{
		ID:               "morning_journal",
		Title:            "Morning pages",
		Description:      "Write one page first thing in the morning to clear your head.",
		Category:         "mind",
		SuggestedCadence: "daily",
		SuggestedProof:   "photo",
		FocusAreas:       []string{"mind", "creativity"},
		MotivationTags:   []string{"mental_clarity", "less_stress", "self_reflection"},
		DurationMinutes:  10,
	},
	{
		ID:               "breathing_reset",
		Title:            "Two-minute breathing reset",
		Description:      "A short box-breathing session to reset between tasks.",
		Category:         "mind",
		SuggestedCadence: "daily",
		SuggestedProof:   "none",
		FocusAreas:       []string{"mind"},
		MotivationTags:   []string{"mental_clarity", "less_stress", "calm"},
		DurationMinutes:  2,
	},
	{
		ID:               "evening_meditation",
		Title:            "Evening meditation",
		Description:      "Ten minutes of guided or silent meditation before bed.",
		Category:         "mind",
		SuggestedCadence: "daily",
		SuggestedProof:   "note",
		FocusAreas:       []string{"mind", "lifestyle"},
		MotivationTags:   []string{"better_sleep", "less_stress", "calm"},
		DurationMinutes:  10,
	},
	{
		ID:               "daily_walk",
		Title:            "Daily walk",
		Description:      "A twenty-minute walk outside, no phone required.",
		Category:         "body",
		SuggestedCadence: "daily",
		SuggestedProof:   "photo",
		FocusAreas:       []string{"body", "mind"},
		MotivationTags:   []string{"more_energy", "better_health", "mental_clarity"},
		DurationMinutes:  20,
	},
	{
		ID:               "strength_basics",
		Title:            "Strength basics",
		Description:      "A short bodyweight circuit: squats, push-ups, plank.",
		Category:         "body",
		SuggestedCadence: "daily",
		SuggestedProof:   "note",
		FocusAreas:       []string{"body"},
		MotivationTags:   []string{"better_health", "more_discipline", "strength"},
		DurationMinutes:  15,
	},
	{
		ID:               "hydration_habit",
		Title:            "Water first",
		Description:      "Drink a full glass of water before your first coffee.",
		Category:         "body",
		SuggestedCadence: "daily",
		SuggestedProof:   "none",
		FocusAreas:       []string{"body", "lifestyle"},
		MotivationTags:   []string{"better_health", "more_energy"},
		DurationMinutes:  1,
	},
	{
		ID:               "deep_work_block",
		Title:            "Deep work block",
		Description:      "Forty-five distraction-free minutes on your most important task.",
		Category:         "work",
		SuggestedCadence: "daily",
		SuggestedProof:   "note",
		FocusAreas:       []string{"work"},
		MotivationTags:   []string{"more_discipline", "career_growth", "focus"},
		DurationMinutes:  45,
	},
	{
		ID:               "shutdown_ritual",
		Title:            "Shutdown ritual",
		Description:      "Close the day with a five-minute review and tomorrow's top three.",
		Category:         "work",
		SuggestedCadence: "daily",
		SuggestedProof:   "note",
		FocusAreas:       []string{"work", "mind"},
		MotivationTags:   []string{"better_routine", "less_stress", "focus"},
		DurationMinutes:  5,
	},
	{
		ID:               "inbox_zero_sweep",
		Title:            "Inbox sweep",
		Description:      "One timed pass through your inbox, then close it.",
		Category:         "work",
		SuggestedCadence: "daily",
		SuggestedProof:   "none",
		FocusAreas:       []string{"work"},
		MotivationTags:   []string{"better_routine", "focus"},
		DurationMinutes:  15,
	},
	{
		ID:               "daily_sketch",
		Title:            "Daily sketch",
		Description:      "Draw anything for ten minutes. Quantity over quality.",
		Category:         "creativity",
		SuggestedCadence: "daily",
		SuggestedProof:   "photo",
		FocusAreas:       []string{"creativity"},
		MotivationTags:   []string{"creative_expression", "becoming_my_best_self"},
		DurationMinutes:  10,
	},
	{
		ID:               "write_100_words",
		Title:            "Write 100 words",
		Description:      "A tiny daily writing habit that survives busy days.",
		Category:         "creativity",
		SuggestedCadence: "daily",
		SuggestedProof:   "note",
		FocusAreas:       []string{"creativity", "mind"},
		MotivationTags:   []string{"creative_expression", "self_reflection", "mental_clarity"},
		DurationMinutes:  10,
	},
	{
		ID:               "instrument_practice",
		Title:            "Instrument practice",
		Description:      "Fifteen focused minutes with your instrument of choice.",
		Category:         "creativity",
		SuggestedCadence: "daily",
		SuggestedProof:   "none",
		FocusAreas:       []string{"creativity"},
		MotivationTags:   []string{"creative_expression", "more_discipline"},
		DurationMinutes:  15,
	},
	{
		ID:               "screen_sunset",
		Title:            "Screen sunset",
		Description:      "Screens off thirty minutes before bed.",
		Category:         "lifestyle",
		SuggestedCadence: "daily",
		SuggestedProof:   "none",
		FocusAreas:       []string{"lifestyle", "mind"},
		MotivationTags:   []string{"better_sleep", "less_stress"},
		DurationMinutes:  30,
	},
	{
		ID:               "weekly_reset",
		Title:            "Weekly reset",
		Description:      "Thirty minutes on Sunday to tidy, plan, and reset the week.",
		Category:         "lifestyle",
		SuggestedCadence: "weekly",
		SuggestedProof:   "photo",
		FocusAreas:       []string{"lifestyle", "work"},
		MotivationTags:   []string{"better_routine", "more_discipline", "less_stress"},
		DurationMinutes:  30,
	},
	{
		ID:               "gratitude_three",
		Title:            "Three good things",
		Description:      "Note three things that went well today and why.",
		Category:         "lifestyle",
		SuggestedCadence: "daily",
		SuggestedProof:   "note",
		FocusAreas:       []string{"lifestyle", "mind"},
		MotivationTags:   []string{"self_reflection", "becoming_my_best_self", "calm"},
		DurationMinutes:  5,
	},
	{
		ID:               "read_ten_pages",
		Title:            "Read ten pages",
		Description:      "Ten pages of any book, every day.",
		Category:         "mind",
		SuggestedCadence: "daily",
		SuggestedProof:   "note",
		FocusAreas:       []string{"mind", "lifestyle"},
		MotivationTags:   []string{"becoming_my_best_self", "mental_clarity", "career_growth"},
		DurationMinutes:  15,
	},
}

// Templates returns the catalog in declaration order. Callers must not
// mutate the returned slice.
func Templates() []Template {
	return templateCatalog
}

// TemplateByID looks up a catalog entry; ok is false for unknown IDs.
func TemplateByID(id string) (Template, bool) {
	for _, t := range templateCatalog {
		if t.ID == id {
			return t, true
		}
	}
	return Template{}, false
}
