package personalization

// Answers are the raw onboarding answers. Missing or empty slices are
// valid and fall through to the default profile.
type Answers struct {
	Motivations     []string `json:"motivations"`
	RewardStyle     []string `json:"reward_style"`
	ChangeStyle     string   `json:"change_style"`
	RelapseTriggers []string `json:"relapse_triggers"`
}

type ProfileKey string

const (
	ProfileStructuredRebuilder ProfileKey = "structured_rebuilder"
	ProfileHighDriveSprinter   ProfileKey = "high_drive_sprinter"
	ProfileGentleSustainer     ProfileKey = "gentle_sustainer"
	ProfileQuietStrategist     ProfileKey = "quiet_strategist"
	ProfileIdentityBuilder     ProfileKey = "identity_builder"
)

// Profile is a static behavioral profile bundle. Classification selects
// one of the five compiled-in profiles, it never constructs new ones.
type Profile struct {
	Key         ProfileKey `json:"key"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Strengths   []string   `json:"strengths"`
	RiskZones   []string   `json:"risk_zones"`
	Strategies  []string   `json:"strategies"`
	Color       string     `json:"color"`
}

// Classify maps onboarding answers to exactly one profile key.
//
// The rules are evaluated first-match-wins and are not mutually
// exclusive; their order is load-bearing. Reordering changes behavior
// silently.
func Classify(answers Answers) ProfileKey {
	switch {
	case answers.ChangeStyle == "all_in_fast":
		return ProfileHighDriveSprinter
	case answers.ChangeStyle == "build_slowly" && contains(answers.RelapseTriggers, "overwhelm"):
		return ProfileGentleSustainer
	case contains(answers.RewardStyle, "building_identity") || contains(answers.Motivations, "becoming_my_best_self"):
		return ProfileIdentityBuilder
	case answers.ChangeStyle == "wait_until_ready" || contains(answers.RelapseTriggers, "lack_of_structure"):
		return ProfileQuietStrategist
	case contains(answers.Motivations, "more_discipline") || contains(answers.Motivations, "better_routine"):
		return ProfileStructuredRebuilder
	default:
		return ProfileGentleSustainer
	}
}

// ProfileFor returns the static bundle for a key. Unknown keys resolve
// to the gentle sustainer so callers never receive an empty profile.
func ProfileFor(key ProfileKey) Profile {
	if p, ok := profiles[key]; ok {
		return p
	}
	return profiles[ProfileGentleSustainer]
}

func contains(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}
