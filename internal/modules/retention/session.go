package retention

// Step is the current screen of the churn-prevention flow.
type Step int

const (
	StepConcern Step = 1
	StepScience Step = 2
	StepConfirm Step = 3
)

type Concern string

const (
	ConcernHard     Concern = "hard"
	ConcernForget   Concern = "forget"
	ConcernBusy     Concern = "busy"
	ConcernFeatures Concern = "features"
	ConcernOther    Concern = "other"
)

// Concerns lists the selectable concern categories.
func Concerns() []Concern {
	return []Concern{ConcernHard, ConcernForget, ConcernBusy, ConcernFeatures, ConcernOther}
}

func IsConcern(value string) bool {
	switch Concern(value) {
	case ConcernHard, ConcernForget, ConcernBusy, ConcernFeatures, ConcernOther:
		return true
	}
	return false
}

// Session is the transient state of one retention flow activation.
// SurveyAnswers is always index-aligned with SurveyQuestions.
type Session struct {
	Active            bool     `json:"active"`
	Step              Step     `json:"step"`
	SelectedConcern   Concern  `json:"selected_concern"`
	SurveyQuestions   []string `json:"survey_questions"`
	SurveyAnswers     []string `json:"survey_answers"`
	SurveyUnavailable bool     `json:"survey_unavailable"`
}

// NewSession is the inactive initial state. Step rests at 1 so the next
// activation starts at concern capture.
func NewSession() Session {
	return Session{Active: false, Step: StepConcern}
}
