package retention

type EventKind string

const (
	EventOpen             EventKind = "open"
	EventQuestionsLoaded  EventKind = "questions_loaded"
	EventQuestionsFailed  EventKind = "questions_failed"
	EventSelectConcern    EventKind = "select_concern"
	EventContinue         EventKind = "continue"
	EventSetAnswer        EventKind = "set_answer"
	EventStillWantToLeave EventKind = "still_want_to_leave"
	EventResume           EventKind = "resume"
	EventKeepAccount      EventKind = "keep_account"
	EventClose            EventKind = "close"
	EventConfirmDelete    EventKind = "confirm_delete"
)

type Event struct {
	Kind        EventKind
	Concern     Concern
	Questions   []string
	AnswerIndex int
	AnswerText  string
}

// Submission is the exit-survey payload handed back as an effect.
type Submission struct {
	Concern string   `json:"concern"`
	Answers []string `json:"answers"`
}

// Effect tells the caller what side work a transition requires. The
// state machine itself never performs I/O.
type Effect struct {
	FetchSurvey    bool
	Submit         *Submission
	SignalDeletion bool
}

// Apply is the pure transition function. Unknown or out-of-state events
// leave the session unchanged; the step only ever increases through
// explicit continue-style events and only resets to 1.
func Apply(s Session, e Event) (Session, Effect) {
	switch e.Kind {
	case EventOpen:
		// A fresh activation always starts from a clean session and
		// kicks off exactly one survey fetch.
		next := NewSession()
		next.Active = true
		return next, Effect{FetchSurvey: true}

	case EventQuestionsLoaded:
		if !s.Active {
			return s, Effect{}
		}
		s.SurveyQuestions = append([]string(nil), e.Questions...)
		s.SurveyAnswers = make([]string, len(e.Questions))
		s.SurveyUnavailable = false
		return s, Effect{}

	case EventQuestionsFailed:
		if !s.Active {
			return s, Effect{}
		}
		s.SurveyQuestions = nil
		s.SurveyAnswers = nil
		s.SurveyUnavailable = true
		return s, Effect{}

	case EventSelectConcern:
		if !s.Active || s.Step != StepConcern || !IsConcern(string(e.Concern)) {
			return s, Effect{}
		}
		s.SelectedConcern = e.Concern
		return s, Effect{}

	case EventContinue:
		// Continue is gated on a selected concern.
		if !s.Active || s.Step != StepConcern || s.SelectedConcern == "" {
			return s, Effect{}
		}
		s.Step = StepScience
		return s, Effect{}

	case EventStillWantToLeave:
		if !s.Active || s.Step != StepScience {
			return s, Effect{}
		}
		s.Step = StepConfirm
		return s, Effect{}

	case EventSetAnswer:
		if !s.Active || s.Step != StepConfirm || s.SurveyUnavailable {
			return s, Effect{}
		}
		if e.AnswerIndex < 0 || e.AnswerIndex >= len(s.SurveyAnswers) {
			return s, Effect{}
		}
		answers := append([]string(nil), s.SurveyAnswers...)
		answers[e.AnswerIndex] = e.AnswerText
		s.SurveyAnswers = answers
		return s, Effect{}

	case EventResume, EventKeepAccount, EventClose:
		return NewSession(), Effect{}

	case EventConfirmDelete:
		if !s.Active || s.Step != StepConfirm {
			return s, Effect{}
		}
		effect := Effect{SignalDeletion: true}
		if !s.SurveyUnavailable && len(s.SurveyQuestions) > 0 {
			effect.Submit = &Submission{
				Concern: string(s.SelectedConcern),
				Answers: append([]string(nil), s.SurveyAnswers...),
			}
		}
		return NewSession(), effect
	}
	return s, Effect{}
}
