package personalization

// tipSet holds the three phase tips for one tone.
type tipSet struct {
	Early  string
	Mid    string
	Strong string
}

var copySets = map[Tone]CopySet{
	ToneDirect: {
		Welcome:      "Let's get to work.",
		MissedDay:    "You missed yesterday. Today is the fix.",
		StreakGoing:  "Streak's alive. Don't overthink it, just show up.",
		NoStreak:     "No streak yet. Start one today.",
		CheckInNudge: "Check in. Two taps, done.",
		KeepGoing:    "Keep pushing. Results follow reps.",
	},
	ToneCalm: {
		Welcome:      "Welcome. One small step at a time.",
		MissedDay:    "A missed day is just a day. Pick it back up gently.",
		StreakGoing:  "Your streak is growing, steady as ever.",
		NoStreak:     "Every streak starts with a single day.",
		CheckInNudge: "When you're ready, take a moment to check in.",
		KeepGoing:    "You're doing well. Keep a gentle pace.",
	},
	ToneData: {
		Welcome:      "Welcome. Your baseline starts now.",
		MissedDay:    "One missed day drops weekly completion by at most 14%. Recoverable.",
		StreakGoing:  "Streak trend: positive. Consistency compounds.",
		NoStreak:     "Current streak: 0. Expected value of starting today: high.",
		CheckInNudge: "Log today's data point to keep the series complete.",
		KeepGoing:    "Your completion rate is trending up. Maintain the input.",
	},
	ToneHype: {
		Welcome:      "Let's go! Day one starts right now!",
		MissedDay:    "Shake it off! Comebacks are your thing.",
		StreakGoing:  "That streak is on fire! Keep feeding it!",
		NoStreak:     "Fresh start energy! Today's the day!",
		CheckInNudge: "Quick check-in and the streak lives on!",
		KeepGoing:    "You're unstoppable! One more day!",
	},
	ToneQuiet: {
		Welcome:      "Begin.",
		MissedDay:    "Yesterday passed. Today remains.",
		StreakGoing:  "The streak continues.",
		NoStreak:     "Start small. Start now.",
		CheckInNudge: "A moment to check in.",
		KeepGoing:    "Continue.",
	},
}

var toneTips = map[Tone]tipSet{
	ToneDirect: {
		Early:  "First week rule: show up even when it's ugly.",
		Mid:    "You've proven you can start. Now protect the habit on bad days.",
		Strong: "Thirty days in. Raise the bar a notch, not ten.",
	},
	ToneCalm: {
		Early:  "Keep the habit small enough that starting feels easy.",
		Mid:    "A week in, let the routine settle into your day naturally.",
		Strong: "A month of steady practice. Trust the rhythm you've built.",
	},
	ToneData: {
		Early:  "Days 1-6 have the highest dropout risk. Reduce friction, not ambition.",
		Mid:    "Past day 7, habit automaticity starts climbing. Keep conditions constant.",
		Strong: "30+ days: the habit curve flattens. Consider tracking a second metric.",
	},
	ToneHype: {
		Early:  "First days are the hardest, which makes you the bravest!",
		Mid:    "One week strong! You're officially in the game!",
		Strong: "Thirty days! You're in rare company now!",
	},
	ToneQuiet: {
		Early:  "Begin again each day.",
		Mid:    "Seven days. It is becoming part of you.",
		Strong: "Thirty days. The habit is yours.",
	},
}
