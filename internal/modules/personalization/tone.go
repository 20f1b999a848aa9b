package personalization

import (
	"fmt"
	"strings"
)

type Tone string

const (
	ToneDirect Tone = "direct"
	ToneCalm   Tone = "calm"
	ToneData   Tone = "data"
	ToneHype   Tone = "hype"
	ToneQuiet  Tone = "quiet"
)

// CopySet is the fixed message bundle for one tone.
type CopySet struct {
	Welcome      string `json:"welcome"`
	MissedDay    string `json:"missed_day"`
	StreakGoing  string `json:"streak_going"`
	NoStreak     string `json:"no_streak"`
	CheckInNudge string `json:"check_in_nudge"`
	KeepGoing    string `json:"keep_going"`
}

// Streak phases for tip selection.
const (
	strongStreakDays = 30
	midStreakDays    = 7
)

var archetypeTones = map[string]Tone{
	"straight_shooter": ToneDirect,
	"steady_builder":   ToneCalm,
	"analyst":          ToneData,
	"competitor":       ToneHype,
	"minimalist":       ToneQuiet,
}

// ToneForArchetype maps a user archetype to its voice. Unknown or empty
// archetypes get the calm tone.
func ToneForArchetype(archetype string) Tone {
	if tone, ok := archetypeTones[archetype]; ok {
		return tone
	}
	return ToneCalm
}

// Archetypes lists the selectable archetype keys.
func Archetypes() []string {
	return []string{"straight_shooter", "steady_builder", "analyst", "competitor", "minimalist"}
}

// IsArchetype reports whether key is a known archetype.
func IsArchetype(key string) bool {
	_, ok := archetypeTones[key]
	return ok
}

// CopyFor returns the copy bundle for an archetype's tone.
func CopyFor(archetype string) CopySet {
	return copySets[ToneForArchetype(archetype)]
}

// TipFor picks the phase tip for a tone: early under 7 days, mid from 7,
// strong from 30.
func TipFor(tone Tone, currentStreak int) string {
	tips, ok := toneTips[tone]
	if !ok {
		tips = toneTips[ToneCalm]
	}
	switch {
	case currentStreak >= strongStreakDays:
		return tips.Strong
	case currentStreak >= midStreakDays:
		return tips.Mid
	default:
		return tips.Early
	}
}

// Greeting builds the time-of-day greeting. hourOfDay is injected by the
// caller so this stays pure.
func Greeting(displayName string, hourOfDay int) string {
	name := strings.TrimSpace(displayName)
	if name == "" {
		name = "there"
	}
	switch {
	case hourOfDay < 12:
		return fmt.Sprintf("Good morning, %s", name)
	case hourOfDay < 17:
		return fmt.Sprintf("Good afternoon, %s", name)
	default:
		return fmt.Sprintf("Good evening, %s", name)
	}
}

var focusAreaLabels = map[string]string{
	"mind":       "your mind",
	"body":       "your body",
	"work":       "your work",
	"creativity": "your creativity",
	"lifestyle":  "your lifestyle",
}

// FocusAreaLabel returns the human label for a focus area category,
// defaulting to "your goals".
func FocusAreaLabel(category string) string {
	if label, ok := focusAreaLabels[category]; ok {
		return label
	}
	return "your goals"
}

// FormatCategory title-cases underscore-separated tokens:
// "mental_clarity" -> "Mental Clarity".
func FormatCategory(category string) string {
	tokens := strings.Split(category, "_")
	for i, token := range tokens {
		if token == "" {
			continue
		}
		tokens[i] = strings.ToUpper(token[:1]) + token[1:]
	}
	return strings.Join(tokens, " ")
}
