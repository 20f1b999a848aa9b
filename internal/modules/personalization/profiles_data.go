package personalization

// profiles is the canonical bundle table. Keep keys stable because
// clients persist them.
var profiles = map[ProfileKey]Profile{
	ProfileStructuredRebuilder: {
		Key:         ProfileStructuredRebuilder,
		Name:        "Structured Rebuilder",
		Description: "You do your best work inside a clear frame. Routine is not a cage for you, it is scaffolding.",
		Strengths: []string{
			"Consistent once a routine is in place",
			"Responds well to schedules and checklists",
			"Recovers quickly when the plan is visible",
		},
		RiskZones: []string{
			"Unstructured weeks and travel",
			"All-or-nothing thinking after a missed day",
		},
		Strategies: []string{
			"Anchor new habits to fixed times",
			"Plan the next day the evening before",
			"Keep a visible streak tracker",
		},
		Color: "#4F6DF5",
	},
	ProfileHighDriveSprinter: {
		Key:         ProfileHighDriveSprinter,
		Name:        "High-Drive Sprinter",
		Description: "You move fast and commit hard. Momentum is your fuel, and the first two weeks are yours to win.",
		Strengths: []string{
			"Explosive starts",
			"High tolerance for intensity",
			"Thrives on visible progress",
		},
		RiskZones: []string{
			"Burnout after the initial sprint",
			"Losing interest when results plateau",
		},
		Strategies: []string{
			"Cap daily effort to protect the streak",
			"Schedule deliberate recovery days",
			"Set a 30-day target, not a 3-day one",
		},
		Color: "#F5564F",
	},
	ProfileGentleSustainer: {
		Key:         ProfileGentleSustainer,
		Name:        "Gentle Sustainer",
		Description: "You build change the durable way: small steps, low pressure, steady compounding.",
		Strengths: []string{
			"Patient and self-compassionate",
			"Comfortable with small wins",
			"Rarely overcommits",
		},
		RiskZones: []string{
			"Overwhelm when too much changes at once",
			"Undervaluing progress already made",
		},
		Strategies: []string{
			"One habit at a time",
			"Shrink the habit until it feels easy",
			"Celebrate weekly totals, not single days",
		},
		Color: "#4FB286",
	},
	ProfileQuietStrategist: {
		Key:         ProfileQuietStrategist,
		Name:        "Quiet Strategist",
		Description: "You prepare before you commit. Structure and a clear plan matter more to you than hype.",
		Strengths: []string{
			"Thoughtful preparation",
			"Strong follow-through once committed",
			"Learns from every attempt",
		},
		RiskZones: []string{
			"Waiting too long for the perfect moment",
			"Drifting without external structure",
		},
		Strategies: []string{
			"Set a start date and keep it",
			"Write the plan down before day one",
			"Use templates instead of building from scratch",
		},
		Color: "#8B6DF5",
	},
	ProfileIdentityBuilder: {
		Key:         ProfileIdentityBuilder,
		Name:        "Identity Builder",
		Description: "Habits are votes for the person you are becoming. You change by changing who you believe you are.",
		Strengths: []string{
			"Deep, values-driven motivation",
			"Resilient through setbacks",
			"Sees the long game",
		},
		RiskZones: []string{
			"Harsh self-judgment after a lapse",
			"Abstract goals without daily actions",
		},
		Strategies: []string{
			"Phrase habits as identity statements",
			"Keep proof of who you are becoming",
			"Review your why once a week",
		},
		Color: "#F5A14F",
	},
}
