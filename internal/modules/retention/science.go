package retention

// scienceStatements is the fixed, non-personalized content shown on the
// second step of the flow. It is never computed from user data.
var scienceStatements = []string{
	"Most people who quit a habit app do it in a moment of frustration, not after a considered decision.",
	"Missing a day has almost no measurable effect on long-term habit formation. Quitting does.",
	"On average it takes about 66 days for a behavior to become automatic, with wide personal variation.",
	"People who restart after a lapse reach their original consistency within about a week.",
	"Deleting your history removes the single strongest predictor of your future success: proof that you have done this before.",
}

func ScienceStatements() []string {
	return scienceStatements
}

// ProgressSummary is the read-only streak/check-in summary shown next to
// the science content when available.
type ProgressSummary struct {
	CurrentStreak int `json:"current_streak"`
	TotalCheckIns int `json:"total_check_ins"`
}
